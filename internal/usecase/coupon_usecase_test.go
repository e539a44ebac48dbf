package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"academia_bere/internal/domain/entities"
	mock_interfaces "academia_bere/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	docente    = &entities.Identity{UID: "d1", Email: "bere@test.com", Role: entities.RoleDocente}
	estudiante = &entities.Identity{UID: "s1", Email: "alumno@test.com", Role: entities.RoleEstudiante}
)

func TestCouponValidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICouponRepository(ctrl)
	uc := NewCouponUseCase(repo)

	repo.EXPECT().GetByCode(gomock.Any(), "BIENVENIDO10").Return(entities.Coupon{Code: "BIENVENIDO10", DiscountPercentage: 10, Active: true}, nil)
	d, err := uc.Validate(context.Background(), "bienvenido10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Code != "BIENVENIDO10" || d.Percentage != 10 || d.Fraction != 0.1 {
		t.Fatalf("unexpected discount: %+v", d)
	}

	repo.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.Coupon{}, nil)
	if _, err := uc.Validate(context.Background(), "nope"); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if _, err := uc.Validate(context.Background(), "   "); !errors.Is(err, ErrInvalidCouponCode) {
		t.Fatalf("expected invalid code, got %v", err)
	}

	boom := errors.New("dynamo down")
	repo.EXPECT().GetByCode(gomock.Any(), "X").Return(entities.Coupon{}, boom)
	if _, err := uc.Validate(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestCouponCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICouponRepository(ctrl)
	uc := NewCouponUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Create(ctx, estudiante, "PROMO", 10); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if _, err := uc.Create(ctx, nil, "PROMO", 10); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	for _, pct := range []int{0, 101, -3} {
		if _, err := uc.Create(ctx, docente, "PROMO", pct); !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("discount %d: expected invalid discount, got %v", pct, err)
		}
	}

	repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Coupon) (bool, error) {
		if c.Code != "PROMO" || !c.Active || c.DiscountPercentage != 25 {
			t.Fatalf("unexpected coupon: %+v", c)
		}
		return true, nil
	})
	c, err := uc.Create(ctx, docente, " promo ", 25)
	if err != nil || c.Code != "PROMO" {
		t.Fatalf("unexpected result: %+v, %v", c, err)
	}

	repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
	if _, err := uc.Create(ctx, docente, "PROMO", 25); !errors.Is(err, ErrCouponAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestCouponAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICouponRepository(ctrl)
	uc := NewCouponUseCase(repo)
	ctx := context.Background()

	older := entities.Coupon{Code: "A", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := entities.Coupon{Code: "B", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	repo.EXPECT().List(gomock.Any()).Return([]entities.Coupon{older, newer}, nil)
	list, err := uc.List(ctx, docente)
	if err != nil || len(list) != 2 || list[0].Code != "B" {
		t.Fatalf("expected newest first, got %+v, %v", list, err)
	}

	repo.EXPECT().SetActive(gomock.Any(), "A", false).Return(entities.Coupon{Code: "A"}, nil)
	if c, err := uc.SetActive(ctx, docente, "a", false); err != nil || c.Active {
		t.Fatalf("unexpected result: %+v, %v", c, err)
	}
	repo.EXPECT().SetActive(gomock.Any(), "GONE", true).Return(entities.Coupon{}, nil)
	if _, err := uc.SetActive(ctx, docente, "gone", true); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "A").Return(true, nil)
	if err := uc.Delete(ctx, docente, "A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.EXPECT().Delete(gomock.Any(), "A").Return(false, nil)
	if err := uc.Delete(ctx, docente, "A"); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := uc.Delete(ctx, estudiante, "A"); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
