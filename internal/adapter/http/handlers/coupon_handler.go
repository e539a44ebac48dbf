package handlers

import (
	"net/http"

	"academia_bere/internal/adapter/http/dto/request"
	"academia_bere/internal/adapter/http/middleware"
	"academia_bere/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CouponHandler exposes coupon validation and the docente's coupon administration.
type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

// Validate godoc
// @Summary      Validate a coupon code
// @Tags         coupons
// @Produce      json
// @Param        code  path      string  true  "Coupon code"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /v1/coupons/{code}/validate [get]
func (h *CouponHandler) Validate(c *gin.Context) {
	discount, err := h.usecase.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, "coupon", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":                discount.Code,
		"discount_percentage": discount.Percentage,
	})
}

func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.usecase.List(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, "coupon", err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

func (h *CouponHandler) Create(c *gin.Context) {
	var body request.CreateCouponRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), middleware.IdentityFrom(c), body.Code, body.DiscountPercentage)
	if err != nil {
		respondError(c, "coupon", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SetActive toggles whether a coupon can be redeemed.
func (h *CouponHandler) SetActive(c *gin.Context) {
	var body request.SetCouponActiveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	updated, err := h.usecase.SetActive(c.Request.Context(), middleware.IdentityFrom(c), c.Param("code"), *body.Active)
	if err != nil {
		respondError(c, "coupon", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.IdentityFrom(c), c.Param("code")); err != nil {
		respondError(c, "coupon", err)
		return
	}
	c.Status(http.StatusNoContent)
}
