package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/infrastructure/metrics"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"
)

var (
	ErrInvalidPrice              = errors.New("price must be a positive number")
	ErrInvalidCourseID           = errors.New("invalid course_id")
	ErrMissingEmail              = errors.New("user has no email")
	ErrPaymentGatewayNotSet      = errors.New("payment gateway not configured")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway failure")
)

// PreferenceSettings holds the URLs and currency used for every checkout.
type PreferenceSettings struct {
	FrontendURL     string
	NotificationURL string
	CurrencyID      string
}

type CreatePreferenceInput struct {
	CourseID   string
	Title      string
	Price      float64
	CouponCode string
}

// IPaymentPreferenceUseCase opens a Mercado Pago checkout for one course.
type IPaymentPreferenceUseCase interface {
	CreatePreference(ctx context.Context, identity *entities.Identity, in CreatePreferenceInput) (entities.Preference, error)
}

type PaymentPreferenceUseCase struct {
	coupons  ICouponUseCase
	courses  interfaces.ICourseRepository
	gateway  interfaces.IPaymentGateway
	settings PreferenceSettings
}

var _ IPaymentPreferenceUseCase = (*PaymentPreferenceUseCase)(nil)

func NewPaymentPreferenceUseCase(coupons ICouponUseCase, courses interfaces.ICourseRepository, gateway interfaces.IPaymentGateway, settings PreferenceSettings) *PaymentPreferenceUseCase {
	if settings.CurrencyID == "" {
		settings.CurrencyID = "MXN"
	}
	settings.FrontendURL = strings.TrimSuffix(settings.FrontendURL, "/")
	return &PaymentPreferenceUseCase{coupons: coupons, courses: courses, gateway: gateway, settings: settings}
}

// CreatePreference validates the request, applies an optional coupon and
// submits a single-item preference. It persists nothing: the course is only
// granted once the webhook sees the payment approved.
func (u *PaymentPreferenceUseCase) CreatePreference(ctx context.Context, identity *entities.Identity, in CreatePreferenceInput) (entities.Preference, error) {
	log := logger.WithContext(ctx)
	if err := requireIdentity(identity); err != nil {
		return entities.Preference{}, err
	}

	courseID := strings.TrimSpace(in.CourseID)
	if courseID == "" {
		return entities.Preference{}, ErrInvalidCourseID
	}
	if in.Price <= 0 || math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return entities.Preference{}, ErrInvalidPrice
	}
	email := strings.TrimSpace(identity.Email)
	if email == "" {
		return entities.Preference{}, ErrMissingEmail
	}
	if u.gateway == nil {
		log.Error().Str("course_id", courseID).Msg("[payment][usecase] gateway not configured")
		return entities.Preference{}, ErrPaymentGatewayNotSet
	}

	title := strings.TrimSpace(in.Title)

	// The stored course price is the source of truth for the amount.
	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		log.Error().Err(err).Str("course_id", courseID).Msg("[payment][usecase] failed loading course")
		return entities.Preference{}, err
	}
	if course.ID == "" {
		return entities.Preference{}, ErrCourseNotFound
	}
	if course.Price != in.Price {
		log.Warn().Str("course_id", courseID).Float64("client_price", in.Price).Float64("course_price", course.Price).Msg("[payment][usecase] client price differs from catalog, using catalog")
	}
	base := course.Price
	if course.Title != "" {
		title = course.Title
	}

	metadata := map[string]any{
		"user_id":        identity.UID,
		"course_id":      courseID,
		"original_price": base,
	}

	finalPrice := CalculateFinalPrice(base, 0)
	couponApplied := false
	if code := entities.NormalizeCouponCode(in.CouponCode); code != "" {
		discount, err := u.coupons.Validate(ctx, code)
		if err != nil {
			metrics.CouponRejectedTotal.Inc()
			log.Info().Err(err).Str("user_id", identity.UID).Str("course_id", courseID).Msg("[payment][usecase] coupon rejected")
			return entities.Preference{}, err
		}
		finalPrice = CalculateFinalPrice(base, discount.Fraction)
		title = fmt.Sprintf("%s (Cupón: %s -%d%%)", title, discount.Code, discount.Percentage)
		metadata["coupon_code"] = discount.Code
		metadata["discount_percentage"] = discount.Percentage
		couponApplied = true
	}

	req := entities.PreferenceRequest{
		Items: []entities.PreferenceItem{{
			ID:         courseID,
			Title:      title,
			UnitPrice:  finalPrice,
			Quantity:   1,
			CurrencyID: u.settings.CurrencyID,
		}},
		PayerEmail:        email,
		SuccessURL:        u.settings.FrontendURL + "/mis-cursos",
		FailureURL:        u.settings.FrontendURL + "/cursos/" + courseID,
		PendingURL:        u.settings.FrontendURL + "/mis-cursos",
		NotificationURL:   u.settings.NotificationURL,
		ExternalReference: EncodeExternalReference(identity.UID, courseID),
		Metadata:          metadata,
	}

	log.Info().Str("user_id", identity.UID).Str("course_id", courseID).Float64("unit_price", finalPrice).Bool("coupon", couponApplied).Msg("[payment][usecase] creating preference")
	pref, err := u.gateway.CreatePreference(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("user_id", identity.UID).Str("course_id", courseID).Msg("[payment][usecase] preference creation failed")
		return entities.Preference{}, fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
	}
	pref.UnitPrice = finalPrice

	metrics.PreferencesCreatedTotal.WithLabelValues(strconv.FormatBool(couponApplied)).Inc()
	log.Info().Str("preference_id", pref.ID).Str("user_id", identity.UID).Str("course_id", courseID).Msg("[payment][usecase] preference created")
	return pref, nil
}
