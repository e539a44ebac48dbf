package request

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// CreatePreferenceRequest is the checkout payload sent by the course page.
type CreatePreferenceRequest struct {
	CourseID   string  `json:"courseId" binding:"required"`
	Title      string  `json:"title"`
	Price      float64 `json:"price" binding:"required"`
	CouponCode string  `json:"couponCode"`
}

// WebhookNotification is the part of a Mercado Pago notification we read.
// Both the current ({type, data.id}) and the legacy IPN ({topic, id}) shapes
// are accepted.
type WebhookNotification struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
	ID    any    `json:"id"`
	Data  struct {
		ID any `json:"id"`
	} `json:"data"`
}

// ParseWebhookNotification extracts the notification type and payment id from
// the body, falling back to the query string. A body that is not JSON is
// treated as empty.
func ParseWebhookNotification(body []byte, query url.Values) (kind, paymentID string) {
	var n WebhookNotification
	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		_ = dec.Decode(&n)
	}

	kind = firstNonEmpty(n.Type, n.Topic, query.Get("type"), query.Get("topic"))
	paymentID = firstNonEmpty(idString(n.Data.ID), idString(n.ID), query.Get("data.id"), query.Get("id"))
	return strings.ToLower(kind), paymentID
}

// idString accepts ids sent either as JSON strings or numbers.
func idString(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case json.Number:
		return id.String()
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
