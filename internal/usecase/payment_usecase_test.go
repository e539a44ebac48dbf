package usecase

import (
	"context"
	"testing"
	"time"

	"academia_bere/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentGetByID_OwnerOrDocente(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryPayments()
	require.NoError(t, repo.Upsert(ctx, entities.PaymentRecord{ID: "p1", UserID: estudiante.UID, Status: entities.PaymentStatusApproved}))
	uc := NewPaymentUseCase(repo)

	p, err := uc.GetByID(ctx, estudiante, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = uc.GetByID(ctx, docente, "p1")
	require.NoError(t, err)

	other := &entities.Identity{UID: "someone-else", Role: entities.RoleEstudiante}
	_, err = uc.GetByID(ctx, other, "p1")
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	_, err = uc.GetByID(ctx, estudiante, "missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	_, err = uc.GetByID(ctx, nil, "p1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestPaymentLists(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryPayments()
	t0 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, entities.PaymentRecord{ID: "old", UserID: estudiante.UID, ProcessedAt: t0}))
	require.NoError(t, repo.Upsert(ctx, entities.PaymentRecord{ID: "new", UserID: estudiante.UID, ProcessedAt: t0.Add(time.Hour)}))
	require.NoError(t, repo.Upsert(ctx, entities.PaymentRecord{ID: "x", UserID: "other", ProcessedAt: t0}))
	uc := NewPaymentUseCase(repo)

	mine, err := uc.ListMine(ctx, estudiante)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "new", mine[0].ID)

	theirs, err := uc.ListByUserID(ctx, docente, "other")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	_, err = uc.ListByUserID(ctx, estudiante, "other")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
