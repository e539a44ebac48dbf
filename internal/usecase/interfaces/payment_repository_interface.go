package interfaces

import (
	"context"

	"academia_bere/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.

type IPaymentRecordRepository interface {
	// Upsert merges the record into the item keyed by its id.
	Upsert(ctx context.Context, p entities.PaymentRecord) error
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.PaymentRecord, error)
}

// ITransferRequestRepository abstracts DynamoDB persistence for bank
// transfer requests.
type ITransferRequestRepository interface {
	Create(ctx context.Context, r entities.TransferRequest) (entities.TransferRequest, error)
	GetByID(ctx context.Context, id string) (entities.TransferRequest, error)
	List(ctx context.Context) ([]entities.TransferRequest, error)
	// TransitionStatus moves the request from one status to another. changed
	// is false when the stored status is not from.
	TransitionStatus(ctx context.Context, id string, from, to entities.TransferRequestStatus) (changed bool, err error)
}
