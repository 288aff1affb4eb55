package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"qaforum/internal/config"
	"qaforum/internal/service"
)

func newTokens() service.TokenService {
	return service.NewTokenService(&config.Config{JWTSecretKey: "middleware-secret", TokenDuration: time.Hour})
}

func echoUserID(w http.ResponseWriter, r *http.Request) {
	userID, _ := service.UserIDFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(userID))
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTokens()
	token, err := tokens.Issue("ann-id")
	require.NoError(t, err)

	otherTokens := service.NewTokenService(&config.Config{JWTSecretKey: "other-secret", TokenDuration: time.Hour})
	forged, err := otherTokens.Issue("ann-id")
	require.NoError(t, err)

	handler := AuthMiddleware(tokens)(http.HandlerFunc(echoUserID))

	t.Run("Валидный токен", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ann-id", rr.Body.String())
	})

	unauthorized := map[string]string{
		"Без заголовка":          "",
		"Без Bearer":             token,
		"Другая схема":           "Basic " + token,
		"Мусор вместо токена":    "Bearer not-a-jwt",
		"Чужая подпись":          "Bearer " + forged,
		"Лишние части заголовка": "Bearer " + token + " extra",
	}

	var bodies []string
	for name, header := range unauthorized {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			bodies = append(bodies, body["error"])
		})
	}

	for _, body := range bodies {
		assert.Equal(t, "Требуется аутентификация", body)
	}
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Preflight", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/posts", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.False(t, called)
	})

	t.Run("Обычный запрос", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/posts", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		assert.True(t, called)
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), mark("inner"), mark("outer"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestLoggingMiddleware_PassesStatusThrough(t *testing.T) {
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
