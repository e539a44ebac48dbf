package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the status reported by Mercado Pago for a payment.
type PaymentStatus string

const (
	PaymentStatusApproved   PaymentStatus = "approved"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusInProcess  PaymentStatus = "in_process"
	PaymentStatusRejected   PaymentStatus = "rejected"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusChargeback PaymentStatus = "charged_back"
)

// PaymentRecord is the reconciliation record of a processor payment.
//
// Storage model (DynamoDB):
//   - PK: id (Mercado Pago payment id)
//   - GSI (user_id-index): user_id
//
// Writes are keyed upserts, so replaying the same notification converges on
// the same item.
//
// RawPayload keeps the payment as returned by Mercado Pago for audit;
// Payload is its parsed form.
type PaymentRecord struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id,omitempty"`
	CourseID    string          `json:"course_id,omitempty"`
	Status      PaymentStatus   `json:"status"`
	Amount      float64         `json:"amount"`
	CouponCode  string          `json:"coupon_code,omitempty"`
	ProcessedAt time.Time       `json:"processed_at"`
	RawPayload  json.RawMessage `json:"raw_payload,omitempty"`
	Payload     map[string]any  `json:"payload,omitempty"`
}

// ProcessorPayment is the authoritative view of a payment fetched from the
// processor by id.
type ProcessorPayment struct {
	ID                string
	Status            PaymentStatus
	StatusDetail      string
	ExternalReference string
	TransactionAmount float64
	Metadata          map[string]any
	Raw               json.RawMessage
}

// PreferenceItem is a checkout line item.
type PreferenceItem struct {
	ID         string
	Title      string
	UnitPrice  float64
	Quantity   int
	CurrencyID string
}

// PreferenceRequest is everything needed to open a Mercado Pago checkout.
type PreferenceRequest struct {
	Items             []PreferenceItem
	PayerEmail        string
	SuccessURL        string
	FailureURL        string
	PendingURL        string
	NotificationURL   string
	ExternalReference string
	Metadata          map[string]any
}

// Preference is the processor-issued checkout handle.
type Preference struct {
	ID        string  `json:"id"`
	InitPoint string  `json:"init_point,omitempty"`
	UnitPrice float64 `json:"unit_price"`
}
