package handlers

import (
	"net/http"

	"academia_bere/internal/adapter/http/dto/request"
	"academia_bere/internal/adapter/http/middleware"
	"academia_bere/internal/usecase"
	"academia_bere/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler is the docente's account management.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.usecase.Get(c.Request.Context(), middleware.IdentityFrom(c), c.Param("uid"))
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var body request.UserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), middleware.IdentityFrom(c), toUserInput(body))
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) Update(c *gin.Context) {
	var body request.UserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), middleware.IdentityFrom(c), c.Param("uid"), toUserInput(body))
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.IdentityFrom(c), c.Param("uid")); err != nil {
		respondError(c, "user", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignDocente grants the docente role to the account with the given email.
func (h *UserHandler) AssignDocente(c *gin.Context) {
	var body request.AssignDocenteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		appErr := pkg.NewDomainError("INVALID_EMAIL", "Se necesita un email.", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	updated, err := h.usecase.AssignDocente(c.Request.Context(), middleware.IdentityFrom(c), body.Email)
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Rol de docente asignado a " + updated.Email,
		"user":    updated,
	})
}

// Enroll grants a course to the student without a payment.
func (h *UserHandler) Enroll(c *gin.Context) {
	updated, err := h.usecase.Enroll(c.Request.Context(), middleware.IdentityFrom(c), c.Param("uid"), c.Param("courseId"))
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) Unenroll(c *gin.Context) {
	updated, err := h.usecase.Unenroll(c.Request.Context(), middleware.IdentityFrom(c), c.Param("uid"), c.Param("courseId"))
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func toUserInput(body request.UserRequest) usecase.UserInput {
	return usecase.UserInput{Nombre: body.Nombre, Email: body.Email, Password: body.Password}
}
