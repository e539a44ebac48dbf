package handlers

import (
	"net/http"

	"academia_bere/internal/adapter/http/dto/request"
	"academia_bere/internal/adapter/http/dto/response"
	"academia_bere/internal/adapter/http/middleware"
	"academia_bere/internal/usecase"
	"academia_bere/pkg"
	"academia_bere/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout, Mercado Pago notifications and payment history.
type PaymentHandler struct {
	preferences usecase.IPaymentPreferenceUseCase
	webhooks    usecase.IPaymentWebhookUseCase
	payments    usecase.IPaymentUseCase
}

func NewPaymentHandler(preferences usecase.IPaymentPreferenceUseCase, webhooks usecase.IPaymentWebhookUseCase, payments usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{preferences: preferences, webhooks: webhooks, payments: payments}
}

// CreatePreference godoc
// @Summary      Create a Mercado Pago preference
// @Description  Opens a checkout for one course, applying an optional coupon.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      request.CreatePreferenceRequest  true  "Course to buy"
// @Success      200   {object}  response.PreferenceResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /v1/payments/preference [post]
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var body request.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	pref, err := h.preferences.CreatePreference(c.Request.Context(), middleware.IdentityFrom(c), usecase.CreatePreferenceInput{
		CourseID:   body.CourseID,
		Title:      body.Title,
		Price:      body.Price,
		CouponCode: body.CouponCode,
	})
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPreference(pref))
}

// Webhook godoc
// @Summary      Mercado Pago notification
// @Description  Re-fetches the notified payment and grants the course when approved.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookAck
// @Failure      401  {object}  map[string]interface{}
// @Failure      405  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /v1/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		appErr := pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Método no permitido", http.StatusMethodNotAllowed)
		c.Header("Allow", http.MethodPost)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		logger.WithContext(c.Request.Context()).Warn().Err(err).Msg("[payment][webhook] failed reading body")
	}
	kind, paymentID := request.ParseWebhookNotification(raw, c.Request.URL.Query())

	outcome, err := h.webhooks.Reconcile(c.Request.Context(), usecase.WebhookNotification{
		Type:      kind,
		PaymentID: paymentID,
		RequestID: c.GetHeader("x-request-id"),
		Signature: c.GetHeader("x-signature"),
	})
	if err != nil {
		// Everything but a bad signature maps to 500, so Mercado Pago retries.
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.WebhookAck{Status: string(outcome)})
}

// MyPayments returns the caller's reconciled payments.
func (h *PaymentHandler) MyPayments(c *gin.Context) {
	records, err := h.payments.ListMine(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(records, false))
}

// UserPayments returns every payment of one account, with the processor
// payload. Docente only.
func (h *PaymentHandler) UserPayments(c *gin.Context) {
	records, err := h.payments.ListByUserID(c.Request.Context(), middleware.IdentityFrom(c), c.Param("uid"))
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(records, true))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	record, err := h.payments.GetByID(c.Request.Context(), identity, c.Param("payment_id"))
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(record, identity.IsDocente()))
}
