package payments

import (
	"context"
	"errors"
	"testing"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
)

func TestNewMercadoPagoGateway_RequiresTokenOutsideMock(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockRoundTrip(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	pref, err := g.CreatePreference(context.Background(), entities.PreferenceRequest{
		Items:             []entities.PreferenceItem{{ID: "c1", Title: "Curso", UnitPrice: 100, Quantity: 1, CurrencyID: "MXN"}},
		PayerEmail:        "a@b.com",
		SuccessURL:        "http://front/mis-cursos",
		ExternalReference: "v1.dTE.YzE",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pref.ID == "" || pref.InitPoint == "" {
		t.Fatalf("expected id and init point, got %+v", pref)
	}

	p, err := g.GetPayment(context.Background(), pref.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Status != entities.PaymentStatusApproved {
		t.Fatalf("expected approved, got %s", p.Status)
	}
	if p.ExternalReference != "v1.dTE.YzE" {
		t.Fatalf("expected external reference to be remembered, got %q", p.ExternalReference)
	}
	if len(p.Raw) == 0 {
		t.Fatalf("expected raw payload")
	}
}

func TestMercadoPagoGateway_MockUnknownPayment(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)

	p, err := g.GetPayment(context.Background(), "999")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.ExternalReference != "" {
		t.Fatalf("expected no external reference, got %q", p.ExternalReference)
	}

	if _, err := g.GetPayment(context.Background(), " "); !errors.Is(err, interfaces.ErrInvalidProviderPaymentID) {
		t.Fatalf("expected ErrInvalidProviderPaymentID, got %v", err)
	}
}

func TestMercadoPagoGateway_RealModeRejectsNonNumericID(t *testing.T) {
	g, err := NewMercadoPagoGateway("TEST-123", false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := g.GetPayment(context.Background(), "abc"); !errors.Is(err, interfaces.ErrInvalidProviderPaymentID) {
		t.Fatalf("expected ErrInvalidProviderPaymentID, got %v", err)
	}
}

func TestToPreferenceRequest(t *testing.T) {
	req := toPreferenceRequest(entities.PreferenceRequest{
		Items:             []entities.PreferenceItem{{ID: "c1", Title: "T", UnitPrice: 1350, Quantity: 1, CurrencyID: "MXN"}},
		PayerEmail:        "a@b.com",
		SuccessURL:        "s",
		FailureURL:        "f",
		PendingURL:        "p",
		NotificationURL:   "n",
		ExternalReference: "ref",
		Metadata:          map[string]any{"coupon_code": "X"},
	})

	if len(req.Items) != 1 || req.Items[0].UnitPrice != 1350 || req.Items[0].CurrencyID != "MXN" {
		t.Fatalf("unexpected items: %+v", req.Items)
	}
	if req.Payer == nil || req.Payer.Email != "a@b.com" {
		t.Fatalf("unexpected payer: %+v", req.Payer)
	}
	if req.BackURLs == nil || req.BackURLs.Failure != "f" || req.AutoReturn != "approved" {
		t.Fatalf("unexpected back urls: %+v", req.BackURLs)
	}
	if req.ExternalReference != "ref" || req.NotificationURL != "n" || req.Metadata["coupon_code"] != "X" {
		t.Fatalf("unexpected request: %+v", req)
	}
}
