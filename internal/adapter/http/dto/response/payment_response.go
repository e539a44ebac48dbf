package response

import (
	"time"

	"academia_bere/internal/domain/entities"
)

// PreferenceResponse keeps the "id" key the checkout button reads, plus the
// final charged price.
type PreferenceResponse struct {
	ID        string  `json:"id"`
	InitPoint string  `json:"init_point,omitempty"`
	UnitPrice float64 `json:"unit_price"`
}

func FromPreference(p entities.Preference) PreferenceResponse {
	return PreferenceResponse{ID: p.ID, InitPoint: p.InitPoint, UnitPrice: p.UnitPrice}
}

type PaymentRecordResponse struct {
	PaymentID   string    `json:"payment_id"`
	UserID      string    `json:"user_id,omitempty"`
	CourseID    string    `json:"course_id,omitempty"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	CouponCode  string    `json:"coupon_code,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// FromPaymentRecord renders a record; the processor payload is only included
// when withPayload is set (docente views).
func FromPaymentRecord(p entities.PaymentRecord, withPayload bool) PaymentRecordResponse {
	res := PaymentRecordResponse{
		PaymentID:   p.ID,
		UserID:      p.UserID,
		CourseID:    p.CourseID,
		Status:      string(p.Status),
		Amount:      p.Amount,
		CouponCode:  p.CouponCode,
		ProcessedAt: p.ProcessedAt,
	}
	if withPayload {
		res.MPPayloadRaw = string(p.RawPayload)
		res.MPPayload = p.Payload
	}
	return res
}

func FromPaymentRecords(records []entities.PaymentRecord, withPayload bool) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, p := range records {
		out = append(out, FromPaymentRecord(p, withPayload))
	}
	return out
}

// WebhookAck is the body returned to Mercado Pago.
type WebhookAck struct {
	Status string `json:"status"`
}
