package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashier-flash-report/internal/config"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/authenticating"
	"github.com/vfg2006/cashier-flash-report/pkg/apiErrors"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAndRoles(t *testing.T) {
	log.SetupTestLogger()
	auth := authenticating.NewService(&config.Config{SecretKey: "teste"})

	tokenFor := func(role int) string {
		token, err := auth.IssueToken("ana", role)
		require.NoError(t, err)
		return "Bearer " + token
	}

	tests := []struct {
		name   string
		path   string
		header string
		chain  func(http.Handler) http.Handler
		status int
	}{
		{name: "Healthcheck é público", path: "/healthcheck", chain: func(h http.Handler) http.Handler { return h }, status: http.StatusOK},
		{name: "Sem cabeçalho", path: "/v1/cashiers/flash-report", chain: AllRoles(), status: http.StatusUnauthorized},
		{name: "Sem Bearer", path: "/v1/cashiers/flash-report", header: "Token x", chain: AllRoles(), status: http.StatusUnauthorized},
		{name: "Token inválido", path: "/v1/cashiers/flash-report", header: "Bearer x.y.z", chain: AllRoles(), status: http.StatusUnauthorized},
		{name: "Operador de caixa acessa o relatório", path: "/v1/cashiers/flash-report", header: tokenFor(domain.RoleCashier), chain: AllRoles(), status: http.StatusOK},
		{name: "Operador de caixa não exporta", path: "/v1/cashiers/flash-report/export", header: tokenFor(domain.RoleCashier), chain: AdminOrSupervisor(), status: http.StatusForbidden},
		{name: "Supervisor exporta", path: "/v1/cashiers/flash-report/export", header: tokenFor(domain.RoleSupervisor), chain: AdminOrSupervisor(), status: http.StatusOK},
		{name: "Supervisor não dispara cron", path: "/v1/cron/flash-report/run", header: tokenFor(domain.RoleSupervisor), chain: AdminOnly(), status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := alice.New(AuthMiddleware(auth), tt.chain).Then(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/cashiers/ranking", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/cashiers/ranking", nil)
	req.Header.Set("Origin", "https://desconhecido.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})
	handler := alice.New(LoggingMiddleware(), LogPanicMiddleware()).Then(panicking)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cashiers/flash-report", nil))

	assert.Equal(t, apiErrors.StatusFor(apiErrors.ErrInternalServer), rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestRateLimit(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		requests int
		window   time.Duration
		calls    []string
		expected []int
	}{
		{
			name:     "Bloqueia depois da cota do IP",
			requests: 3,
			window:   15 * time.Minute,
			calls:    []string{"10.0.0.1:1", "10.0.0.1:2", "10.0.0.1:3", "10.0.0.1:4", "10.0.0.9:1"},
			expected: []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusOK},
		},
		{
			name:     "Limite desligado",
			requests: 0,
			window:   15 * time.Minute,
			calls:    []string{"10.0.0.1:1", "10.0.0.1:2", "10.0.0.1:3"},
			expected: []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
		{
			name:     "RemoteAddr sem porta",
			requests: 1,
			window:   time.Minute,
			calls:    []string{"10.0.0.1", "10.0.0.1"},
			expected: []int{http.StatusOK, http.StatusTooManyRequests},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RateLimit(tt.requests, tt.window)(okHandler())

			for i, addr := range tt.calls {
				req := httptest.NewRequest(http.MethodGet, "/v1/cashiers/flash-report", nil)
				req.RemoteAddr = addr
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)

				require.Equal(t, tt.expected[i], rec.Code, "chamada %d de %s", i+1, addr)
				if rec.Code == http.StatusTooManyRequests {
					assert.NotEmpty(t, rec.Header().Get("Retry-After"))
				}
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Strict-Transport-Security"), "max-age=")
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
}
