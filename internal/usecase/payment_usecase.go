package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
)

var ErrPaymentNotFound = errors.New("payment not found")

// IPaymentUseCase reads reconciled payment records.
type IPaymentUseCase interface {
	GetByID(ctx context.Context, identity *entities.Identity, id string) (entities.PaymentRecord, error)
	ListMine(ctx context.Context, identity *entities.Identity) ([]entities.PaymentRecord, error)
	ListByUserID(ctx context.Context, identity *entities.Identity, userID string) ([]entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	repo interfaces.IPaymentRecordRepository
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRecordRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// GetByID is open to the docente and to the payer.
func (u *PaymentUseCase) GetByID(ctx context.Context, identity *entities.Identity, id string) (entities.PaymentRecord, error) {
	if err := requireIdentity(identity); err != nil {
		return entities.PaymentRecord{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if p.ID == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	if !identity.IsDocente() && p.UserID != identity.UID {
		// Not revealing that someone else's payment exists.
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListMine(ctx context.Context, identity *entities.Identity) ([]entities.PaymentRecord, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	return u.list(ctx, identity.UID)
}

func (u *PaymentUseCase) ListByUserID(ctx context.Context, identity *entities.Identity, userID string) ([]entities.PaymentRecord, error) {
	if err := requireDocente(identity); err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserNotFound
	}
	return u.list(ctx, userID)
}

func (u *PaymentUseCase) list(ctx context.Context, userID string) ([]entities.PaymentRecord, error) {
	payments, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].ProcessedAt.After(payments[j].ProcessedAt)
	})
	return payments, nil
}
