package handlers

import (
	"net/http"

	"academia_bere/internal/adapter/http/dto/request"
	"academia_bere/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SetupTokenHeader carries the bootstrap token for the first docente account.
const SetupTokenHeader = "X-Setup-Token"

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary      Create a student account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterRequest  true  "Account"
// @Success      201   {object}  usecase.AuthResult
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var body request.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	res, err := h.usecase.Register(c.Request.Context(), usecase.UserInput{Nombre: body.Nombre, Email: body.Email, Password: body.Password})
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Login godoc
// @Summary      Exchange credentials for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  usecase.AuthResult
// @Failure      401   {object}  map[string]interface{}
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var body request.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	res, err := h.usecase.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SetupAdmin creates the first docente account, guarded by the setup token.
func (h *AuthHandler) SetupAdmin(c *gin.Context) {
	var body request.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalidRequest(c, err)
		return
	}
	res, err := h.usecase.SetupAdmin(c.Request.Context(), c.GetHeader(SetupTokenHeader), usecase.UserInput{Nombre: body.Nombre, Email: body.Email, Password: body.Password})
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
