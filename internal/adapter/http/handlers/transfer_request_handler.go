package handlers

import (
	"net/http"

	"academia_bere/internal/adapter/http/dto/request"
	"academia_bere/internal/adapter/http/middleware"
	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TransferRequestHandler handles the bank transfer enrollment workflow.
type TransferRequestHandler struct {
	usecase usecase.ITransferRequestUseCase
}

func NewTransferRequestHandler(uc usecase.ITransferRequestUseCase) *TransferRequestHandler {
	return &TransferRequestHandler{usecase: uc}
}

// Create godoc
// @Summary      Request enrollment by bank transfer
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      request.TransferRequestCreate  true  "Transfer request"
// @Success      201   {object}  entities.TransferRequest
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /v1/transfer-requests [post]
func (h *TransferRequestHandler) Create(c *gin.Context) {
	var body request.TransferRequestCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), middleware.IdentityFrom(c), usecase.TransferRequestInput{
		CourseID:  body.CourseID,
		UserName:  body.UserName,
		UserPhone: body.UserPhone,
	})
	if err != nil {
		respondError(c, "transfer", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List accepts an optional ?status= filter.
func (h *TransferRequestHandler) List(c *gin.Context) {
	status := entities.TransferRequestStatus(c.Query("status"))
	requests, err := h.usecase.List(c.Request.Context(), middleware.IdentityFrom(c), status)
	if err != nil {
		respondError(c, "transfer", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *TransferRequestHandler) Confirm(c *gin.Context) {
	confirmed, err := h.usecase.Confirm(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, "transfer", err)
		return
	}
	c.JSON(http.StatusOK, confirmed)
}

func (h *TransferRequestHandler) Cancel(c *gin.Context) {
	cancelled, err := h.usecase.Cancel(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, "transfer", err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
