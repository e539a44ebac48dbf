package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	mock_interfaces "academia_bere/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func approvedPayment(id, ref string) entities.ProcessorPayment {
	return entities.ProcessorPayment{
		ID:                id,
		Status:            entities.PaymentStatusApproved,
		ExternalReference: ref,
		TransactionAmount: 1350,
		Metadata:          map[string]any{"coupon_code": "BIENVENIDO10"},
		Raw:               []byte(`{"id":` + id + `,"status":"approved"}`),
	}
}

func paymentNotification(id string) WebhookNotification {
	return WebhookNotification{Type: "payment", PaymentID: id}
}

func TestPaymentWebhook_Ignored(t *testing.T) {
	uc := NewPaymentWebhookUseCase(nil, nil, nil, "")

	for _, n := range []WebhookNotification{
		{Type: "merchant_order", PaymentID: "1"},
		{Type: "payment", PaymentID: "  "},
		{},
	} {
		outcome, err := uc.Reconcile(context.Background(), n)
		require.NoError(t, err)
		assert.Equal(t, WebhookOutcomeIgnored, outcome)
	}
}

func TestPaymentWebhook_GatewayNotConfigured(t *testing.T) {
	uc := NewPaymentWebhookUseCase(nil, newMemoryUsers(), newMemoryPayments(), "")

	_, err := uc.Reconcile(context.Background(), paymentNotification("1"))
	assert.ErrorIs(t, err, ErrPaymentGatewayNotSet)
}

// Coupon BIENVENIDO10 on a 1500 course, paid under the legacy reference.
func TestPaymentWebhook_ApprovedGrantsOnceAcrossReplays(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	users := newMemoryUsers(entities.User{UID: "u123", Email: "a@test.com"})
	payments := newMemoryPayments()
	uc := NewPaymentWebhookUseCase(gateway, users, payments, "")

	gateway.EXPECT().GetPayment(gomock.Any(), "555").Return(approvedPayment("555", "u123_c456"), nil).Times(3)

	for i := 0; i < 3; i++ {
		outcome, err := uc.Reconcile(context.Background(), paymentNotification("555"))
		require.NoError(t, err)
		assert.Equal(t, WebhookOutcomeGranted, outcome)
	}

	u, _ := users.GetByID(context.Background(), "u123")
	assert.Equal(t, []string{"c456"}, u.CursosInscritos)

	rec, _ := payments.GetByID(context.Background(), "555")
	assert.Equal(t, entities.PaymentStatusApproved, rec.Status)
	assert.Equal(t, "u123", rec.UserID)
	assert.Equal(t, "c456", rec.CourseID)
	assert.Equal(t, "BIENVENIDO10", rec.CouponCode)
	assert.Equal(t, float64(1350), rec.Amount)
	assert.Equal(t, "approved", rec.Payload["status"])
	assert.Len(t, payments.records, 1)
}

func TestPaymentWebhook_ConcurrentDeliveries(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	users := newMemoryUsers(entities.User{UID: "u1"})
	payments := newMemoryPayments()
	uc := NewPaymentWebhookUseCase(gateway, users, payments, "")

	gateway.EXPECT().GetPayment(gomock.Any(), "777").Return(approvedPayment("777", EncodeExternalReference("u1", "c1")), nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Reconcile(context.Background(), paymentNotification("777"))
		}()
	}
	wg.Wait()

	u, _ := users.GetByID(context.Background(), "u1")
	assert.Equal(t, []string{"c1"}, u.CursosInscritos)
	assert.Len(t, payments.records, 1)
}

func TestPaymentWebhook_NonApprovedIsRecordedOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	users := newMemoryUsers(entities.User{UID: "u1"})
	payments := newMemoryPayments()
	uc := NewPaymentWebhookUseCase(gateway, users, payments, "")

	p := approvedPayment("10", EncodeExternalReference("u1", "c1"))
	p.Status = entities.PaymentStatusPending
	gateway.EXPECT().GetPayment(gomock.Any(), "10").Return(p, nil)

	outcome, err := uc.Reconcile(context.Background(), paymentNotification("10"))
	require.NoError(t, err)
	assert.Equal(t, WebhookOutcomeRecorded, outcome)

	u, _ := users.GetByID(context.Background(), "u1")
	assert.Empty(t, u.CursosInscritos)
	rec, _ := payments.GetByID(context.Background(), "10")
	assert.Equal(t, entities.PaymentStatusPending, rec.Status)
	assert.Equal(t, "u1", rec.UserID)
}

// Preferences created before the encoded reference carry "<uid>_<courseId>".
func TestPaymentWebhook_LegacyReferenceGrantsNamedCourse(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
	uc := NewPaymentWebhookUseCase(gateway, users, payments, "")

	gateway.EXPECT().GetPayment(gomock.Any(), "555").Return(approvedPayment("555", "u123_c456"), nil)
	users.EXPECT().AddEnrolledCourse(gomock.Any(), "u123", "c456").Return(true, nil)
	var stored entities.PaymentRecord
	payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PaymentRecord) error {
		stored = p
		return nil
	})

	outcome, err := uc.Reconcile(context.Background(), paymentNotification("555"))
	require.NoError(t, err)
	assert.Equal(t, WebhookOutcomeGranted, outcome)
	assert.Equal(t, "555", stored.ID)
	assert.Equal(t, "u123", stored.UserID)
	assert.Equal(t, "c456", stored.CourseID)
}

func TestPaymentWebhook_MalformedReferenceIsUnlinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	payments := newMemoryPayments()
	uc := NewPaymentWebhookUseCase(gateway, users, payments, "")

	gateway.EXPECT().GetPayment(gomock.Any(), "11").Return(approvedPayment("11", "a_b_c"), nil)
	users.EXPECT().AddEnrolledCourse(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	outcome, err := uc.Reconcile(context.Background(), paymentNotification("11"))
	require.NoError(t, err)
	assert.Equal(t, WebhookOutcomeUnlinked, outcome)

	rec, _ := payments.GetByID(context.Background(), "11")
	assert.Equal(t, entities.PaymentStatusApproved, rec.Status)
	assert.Empty(t, rec.UserID)
	assert.Empty(t, rec.CourseID)
}

func TestPaymentWebhook_UnknownUserIsUnlinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	payments := newMemoryPayments()
	uc := NewPaymentWebhookUseCase(gateway, newMemoryUsers(), payments, "")

	gateway.EXPECT().GetPayment(gomock.Any(), "12").Return(approvedPayment("12", "ghost_c1"), nil)

	outcome, err := uc.Reconcile(context.Background(), paymentNotification("12"))
	require.NoError(t, err)
	assert.Equal(t, WebhookOutcomeUnlinked, outcome)
	assert.Equal(t, 1, payments.writes)
}

func TestPaymentWebhook_Failures(t *testing.T) {
	t.Run("invalid provider id is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentWebhookUseCase(gateway, newMemoryUsers(), payments, "")

		gateway.EXPECT().GetPayment(gomock.Any(), "abc").Return(entities.ProcessorPayment{}, interfaces.ErrInvalidProviderPaymentID)

		outcome, err := uc.Reconcile(context.Background(), paymentNotification("abc"))
		require.NoError(t, err)
		assert.Equal(t, WebhookOutcomeIgnored, outcome)
	})

	t.Run("gateway error asks for a retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentWebhookUseCase(gateway, newMemoryUsers(), payments, "")

		boom := errors.New("mp timeout")
		gateway.EXPECT().GetPayment(gomock.Any(), "1").Return(entities.ProcessorPayment{}, boom)

		_, err := uc.Reconcile(context.Background(), paymentNotification("1"))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("enrollment error is not recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentWebhookUseCase(gateway, users, payments, "")

		gateway.EXPECT().GetPayment(gomock.Any(), "1").Return(approvedPayment("1", "u1_c1"), nil)
		users.EXPECT().AddEnrolledCourse(gomock.Any(), "u1", "c1").Return(false, errors.New("throttled"))
		payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Reconcile(context.Background(), paymentNotification("1"))
		assert.Error(t, err)
	})

	t.Run("upsert error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentWebhookUseCase(gateway, newMemoryUsers(entities.User{UID: "u1"}), payments, "")

		gateway.EXPECT().GetPayment(gomock.Any(), "1").Return(approvedPayment("1", "u1_c1"), nil)
		payments.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		_, err := uc.Reconcile(context.Background(), paymentNotification("1"))
		assert.Error(t, err)
	})
}

func TestPaymentWebhook_Signature(t *testing.T) {
	const secret = "whsec"

	t.Run("bad signature fetches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentWebhookUseCase(gateway, newMemoryUsers(), newMemoryPayments(), secret)

		gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Times(0)

		n := paymentNotification("99")
		n.RequestID = "req-1"
		n.Signature = "ts=1700000000,v1=deadbeef"
		_, err := uc.Reconcile(context.Background(), n)
		assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
	})

	t.Run("valid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentWebhookUseCase(gateway, newMemoryUsers(entities.User{UID: "u1"}), newMemoryPayments(), secret)

		gateway.EXPECT().GetPayment(gomock.Any(), "99").Return(approvedPayment("99", "u1_c1"), nil)

		n := paymentNotification("99")
		n.RequestID = "req-1"
		n.Signature = "ts=1700000000,v1=" + signWebhookManifest(secret, "id:99;request-id:req-1;ts:1700000000;")
		outcome, err := uc.Reconcile(context.Background(), n)
		require.NoError(t, err)
		assert.Equal(t, WebhookOutcomeGranted, outcome)
	})
}

func TestVerifyWebhookSignature(t *testing.T) {
	sig := signWebhookManifest("s", "id:abc;ts:42;")

	assert.NoError(t, VerifyWebhookSignature("", "", "", "1"))
	assert.NoError(t, VerifyWebhookSignature("s", "ts=42,v1="+sig, "", "ABC"))
	assert.NoError(t, VerifyWebhookSignature("s", " v1="+sig+" , ts=42", "", "abc"))
	assert.ErrorIs(t, VerifyWebhookSignature("s", "ts=42", "", "abc"), ErrInvalidWebhookSignature)
	assert.ErrorIs(t, VerifyWebhookSignature("s", "ts=43,v1="+sig, "", "abc"), ErrInvalidWebhookSignature)
	assert.ErrorIs(t, VerifyWebhookSignature("other", "ts=42,v1="+sig, "", "abc"), ErrInvalidWebhookSignature)
}
