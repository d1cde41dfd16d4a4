package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medical-appointments-api/config"
	"medical-appointments-api/internal/delivery/http/handler"
	"medical-appointments-api/internal/delivery/http/middleware"
	"medical-appointments-api/pkg/jwt"
	"medical-appointments-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noSessions struct{}

func (noSessions) Register(ctx context.Context, accountID int64, tokenID string, ttl time.Duration) error {
	return nil
}
func (noSessions) IsActive(ctx context.Context, accountID int64, tokenID string) (bool, error) {
	return false, nil
}
func (noSessions) Revoke(ctx context.Context, accountID int64, tokenID string) error { return nil }
func (noSessions) RevokeAll(ctx context.Context, accountID int64) error            { return nil }

// newTestHandler wires the router without usecases. Only requests that are
// rejected before reaching a handler can be served.
func newTestHandler() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "s", Algorithm: "HS256", AccessExpiry: time.Hour})

	router := NewRouter(
		handler.NewAuthHandler(nil, v),
		handler.NewPatientHandler(nil, v),
		handler.NewDoctorHandler(nil, v),
		handler.NewScheduleHandler(nil, v),
		handler.NewAppointmentHandler(nil, v),
		handler.NewClinicalRecordHandler(nil, v),
		handler.NewInvoiceHandler(nil, v),
		handler.NewAuditLogHandler(nil),
		middleware.NewAuthMiddleware(jwtService, noSessions{}, log),
		middleware.NewCORSMiddleware(config.CORSConfig{AllowedOrigins: []string{"*"}}),
		middleware.NewLoggingMiddleware(log),
	)
	return router.Handler()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestProtectedRoutesRequireAuthentication(t *testing.T) {
	h := newTestHandler()

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/doctores"},
		{http.MethodPut, "/api/doctores/1"},
		{http.MethodDelete, "/api/doctores/1"},
		{http.MethodPost, "/api/horarios"},
		{http.MethodPut, "/api/horarios/1"},
		{http.MethodDelete, "/api/horarios/1"},
		{http.MethodPost, "/api/historias"},
		{http.MethodGet, "/api/auditoria"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/auth/logout"},
	}

	for _, route := range routes {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.method+" "+route.path)
	}
}

func TestPublicRouteServesInvalidTokenAnonymously(t *testing.T) {
	// limit=x is rejected by the handler, so a 400 proves the request got past auth.
	req := httptest.NewRequest(http.MethodGet, "/api/citas?limit=x", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Parámetros de paginación inválidos")
}

func TestLoginWithStaleTokenReachesHandler(t *testing.T) {
	// Signed with the router's secret but never registered, so the session is revoked.
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "s", Algorithm: "HS256", AccessExpiry: time.Hour})
	stale, _, err := jwtService.GenerateAccessToken(3, "old@clinica.com", "paciente")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+stale)

	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cuerpo de la solicitud inválido")
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nada", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestNonNumericIDIsNotRouted(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/citas/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreflightOnWriteRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/citas", nil)
	req.Header.Set("Origin", "https://app.clinica.com")

	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverCatchesHandlerPanic(t *testing.T) {
	// GET /api/metodos-pago reaches a handler whose usecase is nil.
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metodos-pago", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusAliasIsRouted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/citas/actualizar_estado", strings.NewReader(`{"estado":"confirmada"}`))

	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
