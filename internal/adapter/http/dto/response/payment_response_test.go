package response

import (
	"encoding/json"
	"testing"
	"time"

	"academia_bere/internal/domain/entities"
)

func TestFromPaymentRecord(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)
	p := entities.PaymentRecord{
		ID:          "123",
		UserID:      "u1",
		CourseID:    "c1",
		Status:      entities.PaymentStatusApproved,
		Amount:      1350,
		ProcessedAt: now,
		RawPayload:  raw,
		Payload:     map[string]interface{}{"a": "b"},
	}

	res := FromPaymentRecord(p, false)
	if res.PaymentID != "123" || res.Status != "approved" || res.Amount != 1350 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.ProcessedAt.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != "" || res.MPPayload != nil {
		t.Fatalf("payload must be hidden: %+v", res)
	}

	res = FromPaymentRecord(p, true)
	if res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromPaymentRecords_Empty(t *testing.T) {
	out := FromPaymentRecords(nil, false)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestFromPreference(t *testing.T) {
	res := FromPreference(entities.Preference{ID: "pref-1", InitPoint: "https://mp/init", UnitPrice: 1350})
	if res.ID != "pref-1" || res.InitPoint != "https://mp/init" || res.UnitPrice != 1350 {
		t.Fatalf("unexpected response: %+v", res)
	}
}
