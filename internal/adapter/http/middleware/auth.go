package middleware

import (
	"net/http"
	"strings"

	"academia_bere/internal/domain/entities"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg"
	"academia_bere/pkg/logger"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Debes iniciar sesión.", http.StatusUnauthorized)
	errNotDocente      = pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Solo los docentes pueden realizar esta acción.", http.StatusForbidden)
)

// Authenticate resolves the bearer token into an Identity and rejects
// requests without a valid one.
func Authenticate(tokens interfaces.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		identity, err := tokens.Parse(raw)
		if err != nil {
			logger.WithContext(c.Request.Context()).Info().Err(err).Msg("[http][auth] rejected token")
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		c.Set(identityKey, &identity)
		l := logger.WithContext(c.Request.Context()).With().Str("user_id", identity.UID).Logger()
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), &l))
		c.Next()
	}
}

// RequireDocente must run after Authenticate.
func RequireDocente() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if !identity.IsDocente() {
			c.AbortWithStatusJSON(errNotDocente.HTTPStatus, errNotDocente.ToHTTPError())
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the caller set by Authenticate, or nil.
func IdentityFrom(c *gin.Context) *entities.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*entities.Identity)
	return identity
}

// SetIdentity is used by handler tests to bypass token parsing.
func SetIdentity(c *gin.Context, identity *entities.Identity) {
	c.Set(identityKey, identity)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
