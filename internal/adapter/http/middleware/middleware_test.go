package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academia_bere/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

type stubTokens struct {
	identity entities.Identity
	err      error
}

func (s stubTokens) Issue(entities.Identity) (string, error) { return "", nil }
func (s stubTokens) Parse(string) (entities.Identity, error) { return s.identity, s.err }

func newAuthRouter(tokens stubTokens, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate(tokens)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		if id := IdentityFrom(c); id != nil {
			c.String(http.StatusOK, id.UID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/x", handlers...)
	return r
}

func doGet(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	ok := stubTokens{identity: entities.Identity{UID: "u1", Role: entities.RoleEstudiante}}
	bad := stubTokens{err: errors.New("expired")}

	t.Run("without token", func(t *testing.T) {
		w := doGet(newAuthRouter(ok), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
	})
	t.Run("bad token", func(t *testing.T) {
		w := doGet(newAuthRouter(bad), "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "anonymous")
	})
	t.Run("valid token", func(t *testing.T) {
		w := doGet(newAuthRouter(ok), "Bearer abc")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", w.Body.String())
	})
	t.Run("non bearer scheme", func(t *testing.T) {
		w := doGet(newAuthRouter(ok), "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireDocente(t *testing.T) {
	student := stubTokens{identity: entities.Identity{UID: "u1", Role: entities.RoleEstudiante}}
	docente := stubTokens{identity: entities.Identity{UID: "d1", Role: entities.RoleDocente}}

	w := doGet(newAuthRouter(student, RequireDocente()), "Bearer t")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Solo los docentes")

	w = doGet(newAuthRouter(docente, RequireDocente()), "Bearer t")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(context.Background(), rate.Limit(0.001), 2, time.Minute, time.Minute)
	defer rl.Shutdown()

	r := gin.New()
	r.GET("/x", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, doGet(r, "").Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(context.Background(), rate.Limit(1), 1, time.Hour, time.Millisecond)
	defer rl.Shutdown()

	rl.getVisitor("1.2.3.4")
	time.Sleep(5 * time.Millisecond)
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.clients)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doGet(r, "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}
