package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/infrastructure/metrics"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/goccy/go-json"
)

// WebhookNotification is what the handler extracted from an inbound
// Mercado Pago notification. None of it is trusted beyond PaymentID.
type WebhookNotification struct {
	Type      string
	PaymentID string
	RequestID string
	Signature string
}

type WebhookOutcome string

const (
	// WebhookOutcomeIgnored: not a payment notification, nothing done.
	WebhookOutcomeIgnored WebhookOutcome = "ignored"
	// WebhookOutcomeRecorded: payment stored with a non-approved status.
	WebhookOutcomeRecorded WebhookOutcome = "recorded"
	// WebhookOutcomeGranted: payment approved and course granted.
	WebhookOutcomeGranted WebhookOutcome = "granted"
	// WebhookOutcomeUnlinked: payment stored but it could not be tied to an
	// existing user/course, so nothing was granted.
	WebhookOutcomeUnlinked WebhookOutcome = "unlinked"
)

// IPaymentWebhookUseCase reconciles processor notifications.
//
// A nil error means the notification was handled (or deliberately ignored)
// and must be acknowledged; any error means the processor should retry.
type IPaymentWebhookUseCase interface {
	Reconcile(ctx context.Context, n WebhookNotification) (WebhookOutcome, error)
}

type PaymentWebhookUseCase struct {
	gateway  interfaces.IPaymentGateway
	users    interfaces.IUserRepository
	payments interfaces.IPaymentRecordRepository
	secret   string
	now      func() time.Time
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

func NewPaymentWebhookUseCase(gateway interfaces.IPaymentGateway, users interfaces.IUserRepository, payments interfaces.IPaymentRecordRepository, webhookSecret string) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{
		gateway:  gateway,
		users:    users,
		payments: payments,
		secret:   webhookSecret,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentWebhookUseCase) Reconcile(ctx context.Context, n WebhookNotification) (WebhookOutcome, error) {
	outcome, err := u.reconcile(ctx, n)
	if err != nil {
		metrics.WebhookNotificationsTotal.WithLabelValues("error").Inc()
		return outcome, err
	}
	metrics.WebhookNotificationsTotal.WithLabelValues(string(outcome)).Inc()
	return outcome, nil
}

func (u *PaymentWebhookUseCase) reconcile(ctx context.Context, n WebhookNotification) (WebhookOutcome, error) {
	log := logger.WithContext(ctx)
	paymentID := strings.TrimSpace(n.PaymentID)
	kind := strings.ToLower(strings.TrimSpace(n.Type))
	if kind != "payment" || paymentID == "" {
		log.Info().Str("type", kind).Str("payment_id", paymentID).Msg("[payment][webhook] notification ignored")
		return WebhookOutcomeIgnored, nil
	}

	if err := VerifyWebhookSignature(u.secret, n.Signature, n.RequestID, paymentID); err != nil {
		log.Warn().Str("payment_id", paymentID).Str("request_id", n.RequestID).Msg("[payment][webhook] signature verification failed")
		return WebhookOutcomeIgnored, err
	}
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotSet
	}

	// The notification only says "look at payment X"; status and linkage come
	// from the processor.
	p, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidProviderPaymentID) {
			log.Warn().Str("payment_id", paymentID).Msg("[payment][webhook] unusable payment id, ignoring")
			return WebhookOutcomeIgnored, nil
		}
		log.Error().Err(err).Str("payment_id", paymentID).Msg("[payment][webhook] failed fetching payment")
		return "", fmt.Errorf("fetch payment %s: %w", paymentID, err)
	}
	if p.ID == "" {
		p.ID = paymentID
	}

	record := u.newRecord(p)
	outcome := WebhookOutcomeRecorded

	userID, courseID, refErr := ParseExternalReference(p.ExternalReference)
	switch {
	case refErr != nil:
		log.Error().Str("payment_id", p.ID).Str("external_reference", p.ExternalReference).Str("status", string(p.Status)).Msg("[payment][webhook] malformed external reference, not granting")
		outcome = WebhookOutcomeUnlinked
	case p.Status == entities.PaymentStatusApproved:
		record.UserID, record.CourseID = userID, courseID
		found, err := u.users.AddEnrolledCourse(ctx, userID, courseID)
		if err != nil {
			log.Error().Err(err).Str("payment_id", p.ID).Str("user_id", userID).Str("course_id", courseID).Msg("[payment][webhook] enrollment failed")
			return "", fmt.Errorf("grant course %s to %s: %w", courseID, userID, err)
		}
		if found {
			outcome = WebhookOutcomeGranted
			metrics.EnrollmentsGrantedTotal.WithLabelValues("mercadopago").Inc()
			log.Info().Str("payment_id", p.ID).Str("user_id", userID).Str("course_id", courseID).Msg("[payment][webhook] course granted")
		} else {
			outcome = WebhookOutcomeUnlinked
			log.Error().Str("payment_id", p.ID).Str("user_id", userID).Str("course_id", courseID).Msg("[payment][webhook] approved payment for unknown user, not granting")
		}
	default:
		record.UserID, record.CourseID = userID, courseID
	}

	if err := u.payments.Upsert(ctx, record); err != nil {
		log.Error().Err(err).Str("payment_id", p.ID).Msg("[payment][webhook] payment record upsert failed")
		return "", fmt.Errorf("upsert payment %s: %w", p.ID, err)
	}
	log.Info().Str("payment_id", p.ID).Str("status", string(p.Status)).Str("outcome", string(outcome)).Msg("[payment][webhook] notification processed")
	return outcome, nil
}

func (u *PaymentWebhookUseCase) newRecord(p entities.ProcessorPayment) entities.PaymentRecord {
	rec := entities.PaymentRecord{
		ID:          p.ID,
		Status:      p.Status,
		Amount:      p.TransactionAmount,
		ProcessedAt: u.now(),
		RawPayload:  p.Raw,
	}
	if code, ok := p.Metadata["coupon_code"].(string); ok {
		rec.CouponCode = code
	}
	if len(p.Raw) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(p.Raw, &parsed); err == nil {
			rec.Payload = parsed
		}
	}
	return rec
}
