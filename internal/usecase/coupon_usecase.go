package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"
)

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponAlreadyExists = errors.New("coupon already exists")
	ErrInvalidCouponCode   = errors.New("invalid coupon code")
	ErrInvalidDiscount     = errors.New("discount percentage must be between 1 and 100")
)

// CouponNotFoundError names the code that failed validation. It matches
// ErrCouponNotFound with errors.Is.
type CouponNotFoundError struct {
	Code string
}

func (e *CouponNotFoundError) Error() string {
	return fmt.Sprintf("El cupón %q no existe o ha expirado.", e.Code)
}

func (e *CouponNotFoundError) Is(target error) bool {
	return target == ErrCouponNotFound
}

// ICouponUseCase covers coupon validation at checkout and the docente's
// coupon administration.
type ICouponUseCase interface {
	Validate(ctx context.Context, code string) (entities.CouponDiscount, error)
	Create(ctx context.Context, identity *entities.Identity, code string, discountPercentage int) (entities.Coupon, error)
	List(ctx context.Context, identity *entities.Identity) ([]entities.Coupon, error)
	SetActive(ctx context.Context, identity *entities.Identity, code string, active bool) (entities.Coupon, error)
	Delete(ctx context.Context, identity *entities.Identity, code string) error
}

type CouponUseCase struct {
	repo interfaces.ICouponRepository
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository) *CouponUseCase {
	return &CouponUseCase{repo: repo}
}

// Validate resolves an explicitly supplied code to its discount. Absent and
// inactive coupons are both reported as *CouponNotFoundError.
func (u *CouponUseCase) Validate(ctx context.Context, code string) (entities.CouponDiscount, error) {
	normalized := entities.NormalizeCouponCode(code)
	if normalized == "" {
		return entities.CouponDiscount{}, ErrInvalidCouponCode
	}

	c, err := u.repo.GetByCode(ctx, normalized)
	if err != nil {
		return entities.CouponDiscount{}, err
	}
	if c.Code == "" || !c.Active {
		logger.WithContext(ctx).Info().Str("coupon_code", normalized).Bool("exists", c.Code != "").Msg("[coupon][usecase] coupon rejected")
		return entities.CouponDiscount{}, &CouponNotFoundError{Code: normalized}
	}
	return c.Discount(), nil
}

func (u *CouponUseCase) Create(ctx context.Context, identity *entities.Identity, code string, discountPercentage int) (entities.Coupon, error) {
	if err := requireDocente(identity); err != nil {
		return entities.Coupon{}, err
	}
	normalized := entities.NormalizeCouponCode(code)
	if normalized == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}
	if discountPercentage < 1 || discountPercentage > 100 {
		return entities.Coupon{}, ErrInvalidDiscount
	}

	c := entities.Coupon{
		Code:               normalized,
		DiscountPercentage: discountPercentage,
		Active:             true,
		CreatedAt:          time.Now().UTC(),
	}
	created, err := u.repo.CreateIfAbsent(ctx, c)
	if err != nil {
		return entities.Coupon{}, err
	}
	if !created {
		return entities.Coupon{}, ErrCouponAlreadyExists
	}
	logger.WithContext(ctx).Info().Str("coupon_code", c.Code).Int("discount_percentage", c.DiscountPercentage).Msg("[coupon][usecase] coupon created")
	return c, nil
}

func (u *CouponUseCase) List(ctx context.Context, identity *entities.Identity) ([]entities.Coupon, error) {
	if err := requireDocente(identity); err != nil {
		return nil, err
	}
	coupons, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(coupons, func(i, j int) bool {
		return coupons[i].CreatedAt.After(coupons[j].CreatedAt)
	})
	return coupons, nil
}

func (u *CouponUseCase) SetActive(ctx context.Context, identity *entities.Identity, code string, active bool) (entities.Coupon, error) {
	if err := requireDocente(identity); err != nil {
		return entities.Coupon{}, err
	}
	normalized := entities.NormalizeCouponCode(code)
	if normalized == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}

	updated, err := u.repo.SetActive(ctx, normalized, active)
	if err != nil {
		return entities.Coupon{}, err
	}
	if updated.Code == "" {
		return entities.Coupon{}, &CouponNotFoundError{Code: normalized}
	}
	return updated, nil
}

func (u *CouponUseCase) Delete(ctx context.Context, identity *entities.Identity, code string) error {
	if err := requireDocente(identity); err != nil {
		return err
	}
	normalized := entities.NormalizeCouponCode(code)
	if normalized == "" {
		return ErrInvalidCouponCode
	}

	deleted, err := u.repo.Delete(ctx, normalized)
	if err != nil {
		return err
	}
	if !deleted {
		return &CouponNotFoundError{Code: normalized}
	}
	return nil
}
