package payments

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	mockMode    bool

	// mock mode only: external reference of each issued preference, by id.
	mockRefs sync.Map
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		logger.Warn().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		logger.Error().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	logger.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.Preference, error) {
	log := logger.WithContext(ctx)
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.mockRefs.Store(id, req.ExternalReference)
		log.Info().Str("preference_id", id).Str("external_reference", req.ExternalReference).Msg("[payment][gateway] mock preference created")
		return entities.Preference{ID: id, InitPoint: req.SuccessURL + "?mock_preference_id=" + id}, nil
	}
	if g == nil || g.preferences == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return entities.Preference{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.preferences.Create(ctx, toPreferenceRequest(req))
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] sdk preference create failed")
		return entities.Preference{}, err
	}
	log.Info().Str("preference_id", resp.ID).Msg("[payment][gateway] preference created")
	return entities.Preference{ID: resp.ID, InitPoint: resp.InitPoint}, nil
}

// GetPayment fetches the payment by id. Mercado Pago payment ids are numeric;
// anything else is rejected with ErrInvalidProviderPaymentID without a call.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.ProcessorPayment, error) {
	log := logger.WithContext(ctx)
	paymentID = strings.TrimSpace(paymentID)
	if g != nil && g.mockMode {
		return g.mockPayment(paymentID)
	}
	if g == nil || g.payments == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return entities.ProcessorPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil || id <= 0 {
		return entities.ProcessorPayment{}, interfaces.ErrInvalidProviderPaymentID
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("[payment][gateway] sdk get payment failed")
		return entities.ProcessorPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("[payment][gateway] response marshal failed")
		return entities.ProcessorPayment{}, err
	}
	log.Info().Str("payment_id", paymentID).Str("status", resp.Status).Msg("[payment][gateway] payment fetched")

	return entities.ProcessorPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            entities.PaymentStatus(resp.Status),
		StatusDetail:      resp.StatusDetail,
		ExternalReference: resp.ExternalReference,
		TransactionAmount: resp.TransactionAmount,
		Metadata:          resp.Metadata,
		Raw:               raw,
	}, nil
}

// mockPayment reports every payment as approved. Ids of preferences issued by
// this gateway resolve to their external reference.
func (g *MercadoPagoGateway) mockPayment(paymentID string) (entities.ProcessorPayment, error) {
	if paymentID == "" {
		return entities.ProcessorPayment{}, interfaces.ErrInvalidProviderPaymentID
	}
	ref := ""
	if v, ok := g.mockRefs.Load(paymentID); ok {
		ref = v.(string)
	}
	p := entities.ProcessorPayment{
		ID:                paymentID,
		Status:            entities.PaymentStatusApproved,
		StatusDetail:      "accredited",
		ExternalReference: ref,
		Metadata:          map[string]any{},
	}
	raw, err := json.Marshal(map[string]any{
		"id":                 paymentID,
		"status":             p.Status,
		"status_detail":      p.StatusDetail,
		"external_reference": ref,
		"date_approved":      time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	p.Raw = raw
	return p, nil
}

func toPreferenceRequest(req entities.PreferenceRequest) preference.Request {
	items := make([]preference.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, preference.ItemRequest{
			ID:         it.ID,
			Title:      it.Title,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
			CurrencyID: it.CurrencyID,
		})
	}
	return preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{Email: req.PayerEmail},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Failure: req.FailureURL,
			Pending: req.PendingURL,
		},
		AutoReturn:        "approved",
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
		Metadata:          req.Metadata,
	}
}
