package interfaces

import (
	"context"
	"errors"

	"academia_bere/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment processor (Mercado Pago).
//
// CreatePreference opens a checkout; GetPayment is the authoritative lookup
// used when a webhook arrives.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (entities.ProcessorPayment, error)
}

// ErrInvalidProviderPaymentID is returned by GetPayment when the id can never
// name a processor payment (e.g. it is not numeric).
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")
