package usecase

import (
	"context"
	"errors"
	"testing"

	"academia_bere/internal/domain/entities"
	mock_interfaces "academia_bere/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var buyer = &entities.Identity{UID: "u123", Email: "alumna@test.com", Role: entities.RoleEstudiante}

type preferenceFixture struct {
	coupons *mock_interfaces.MockICouponRepository
	courses *mock_interfaces.MockICourseRepository
	gateway *mock_interfaces.MockIPaymentGateway
	uc      *PaymentPreferenceUseCase
}

func newPreferenceFixture(t *testing.T) preferenceFixture {
	ctrl := gomock.NewController(t)
	f := preferenceFixture{
		coupons: mock_interfaces.NewMockICouponRepository(ctrl),
		courses: mock_interfaces.NewMockICourseRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewPaymentPreferenceUseCase(NewCouponUseCase(f.coupons), f.courses, f.gateway, PreferenceSettings{
		FrontendURL:     "https://academia.test/",
		NotificationURL: "https://api.academia.test/v1/payments/webhook",
	})
	return f
}

func TestCreatePreference_WithCoupon(t *testing.T) {
	f := newPreferenceFixture(t)
	ctx := context.Background()

	f.courses.EXPECT().GetByID(gomock.Any(), "c456").Return(entities.Course{ID: "c456", Title: "Repostería", Price: 1500}, nil)
	f.coupons.EXPECT().GetByCode(gomock.Any(), "BIENVENIDO10").Return(entities.Coupon{Code: "BIENVENIDO10", DiscountPercentage: 10, Active: true}, nil)

	var sent entities.PreferenceRequest
	f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PreferenceRequest) (entities.Preference, error) {
			sent = req
			return entities.Preference{ID: "pref-1", InitPoint: "https://mp.test/init"}, nil
		})

	pref, err := f.uc.CreatePreference(ctx, buyer, CreatePreferenceInput{CourseID: "c456", Title: "Repostería", Price: 1500, CouponCode: " bienvenido10 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pref.ID != "pref-1" || pref.UnitPrice != 1350 {
		t.Fatalf("unexpected preference: %+v", pref)
	}

	if len(sent.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(sent.Items))
	}
	item := sent.Items[0]
	if item.UnitPrice != 1350 || item.Quantity != 1 || item.CurrencyID != "MXN" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.Title != "Repostería (Cupón: BIENVENIDO10 -10%)" {
		t.Fatalf("unexpected title: %q", item.Title)
	}
	if sent.PayerEmail != "alumna@test.com" {
		t.Fatalf("unexpected payer: %q", sent.PayerEmail)
	}
	if sent.SuccessURL != "https://academia.test/mis-cursos" || sent.FailureURL != "https://academia.test/cursos/c456" {
		t.Fatalf("unexpected back urls: %q %q", sent.SuccessURL, sent.FailureURL)
	}
	if sent.NotificationURL != "https://api.academia.test/v1/payments/webhook" {
		t.Fatalf("unexpected notification url: %q", sent.NotificationURL)
	}
	if sent.Metadata["coupon_code"] != "BIENVENIDO10" || sent.Metadata["discount_percentage"] != 10 || sent.Metadata["original_price"] != float64(1500) {
		t.Fatalf("unexpected metadata: %+v", sent.Metadata)
	}

	uid, cid, err := ParseExternalReference(sent.ExternalReference)
	if err != nil || uid != "u123" || cid != "c456" {
		t.Fatalf("external reference %q decoded to %q %q (%v)", sent.ExternalReference, uid, cid, err)
	}
}

func TestCreatePreference_InactiveCouponCreatesNothing(t *testing.T) {
	f := newPreferenceFixture(t)

	f.courses.EXPECT().GetByID(gomock.Any(), "c456").Return(entities.Course{ID: "c456", Title: "Repostería", Price: 1500}, nil)
	f.coupons.EXPECT().GetByCode(gomock.Any(), "EXPIRED1").Return(entities.Coupon{Code: "EXPIRED1", DiscountPercentage: 50, Active: false}, nil)
	f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.uc.CreatePreference(context.Background(), buyer, CreatePreferenceInput{CourseID: "c456", Price: 1500, CouponCode: "EXPIRED1"})
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected coupon not found, got %v", err)
	}
	var notFound *CouponNotFoundError
	if !errors.As(err, &notFound) || notFound.Code != "EXPIRED1" {
		t.Fatalf("expected CouponNotFoundError for EXPIRED1, got %v", err)
	}
}

func TestCreatePreference_WithoutCouponUsesCatalogPrice(t *testing.T) {
	f := newPreferenceFixture(t)

	f.courses.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Course{ID: "c1", Title: "Pan", Price: 800}, nil)
	f.coupons.EXPECT().GetByCode(gomock.Any(), gomock.Any()).Times(0)
	f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.PreferenceRequest) (entities.Preference, error) {
			if req.Items[0].UnitPrice != 800 || req.Items[0].Title != "Pan" {
				t.Fatalf("unexpected item: %+v", req.Items[0])
			}
			if _, ok := req.Metadata["coupon_code"]; ok {
				t.Fatalf("coupon metadata without a coupon: %+v", req.Metadata)
			}
			return entities.Preference{ID: "pref-2"}, nil
		})

	pref, err := f.uc.CreatePreference(context.Background(), buyer, CreatePreferenceInput{CourseID: "c1", Title: "otro", Price: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pref.UnitPrice != 800 {
		t.Fatalf("expected catalog price, got %v", pref.UnitPrice)
	}
}

func TestCreatePreference_Validation(t *testing.T) {
	valid := CreatePreferenceInput{CourseID: "c1", Price: 100}

	tests := []struct {
		name     string
		identity *entities.Identity
		in       CreatePreferenceInput
		want     error
	}{
		{"unauthenticated", nil, valid, ErrUnauthenticated},
		{"missing course", buyer, CreatePreferenceInput{CourseID: " ", Price: 100}, ErrInvalidCourseID},
		{"zero price", buyer, CreatePreferenceInput{CourseID: "c1"}, ErrInvalidPrice},
		{"negative price", buyer, CreatePreferenceInput{CourseID: "c1", Price: -5}, ErrInvalidPrice},
		{"no email", &entities.Identity{UID: "u1"}, valid, ErrMissingEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPreferenceFixture(t)
			f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Times(0)

			_, err := f.uc.CreatePreference(context.Background(), tt.identity, tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreatePreference_GatewayNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	courses := mock_interfaces.NewMockICourseRepository(ctrl)
	uc := NewPaymentPreferenceUseCase(NewCouponUseCase(mock_interfaces.NewMockICouponRepository(ctrl)), courses, nil, PreferenceSettings{})

	_, err := uc.CreatePreference(context.Background(), buyer, CreatePreferenceInput{CourseID: "c1", Price: 100})
	if !errors.Is(err, ErrPaymentGatewayNotSet) {
		t.Fatalf("expected ErrPaymentGatewayNotSet, got %v", err)
	}
}

func TestCreatePreference_CourseNotFound(t *testing.T) {
	f := newPreferenceFixture(t)
	f.courses.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Course{}, nil)

	_, err := f.uc.CreatePreference(context.Background(), buyer, CreatePreferenceInput{CourseID: "missing", Price: 100})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCreatePreference_GatewayFailure(t *testing.T) {
	f := newPreferenceFixture(t)
	boom := errors.New("502 from processor")
	f.courses.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Course{ID: "c1", Price: 100}, nil)
	f.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(entities.Preference{}, boom)

	_, err := f.uc.CreatePreference(context.Background(), buyer, CreatePreferenceInput{CourseID: "c1", Price: 100})
	if !errors.Is(err, ErrPaymentGatewayUnavailable) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped gateway error, got %v", err)
	}
}
