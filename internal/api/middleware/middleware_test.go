package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

const (
	testSecret = "test-secret"
	testIssuer = "https://auth.example.com"
)

type fakeRoles map[string]domain.Role

func (f fakeRoles) GetRole(_ context.Context, id string) (domain.Role, error) {
	if id == "broken" {
		return "", errors.New("connection refused")
	}
	role, ok := f[id]
	if !ok {
		return "", profileRepo.ErrProfileNotFound
	}
	return role, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func signToken(t *testing.T, claims jwt.RegisteredClaims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func identityEcho(w http.ResponseWriter, r *http.Request) {
	identity, _ := GetIdentity(r.Context())
	w.Header().Set("X-User", identity.UserID)
	w.Header().Set("X-Role", string(identity.Role))
	w.WriteHeader(http.StatusNoContent)
}

func TestAuthenticator_Middleware(t *testing.T) {
	auth := NewAuthenticator(testSecret, testIssuer, fakeRoles{"pro-1": domain.RoleProfessional}, noopLogger{})
	handler := auth.Middleware(http.HandlerFunc(identityEcho))

	expired := validClaims("pro-1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := validClaims("pro-1")
	wrongIssuer.Issuer = "someone-else"

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
		wantRole   string
	}{
		{
			name:       "valid token",
			header:     "Bearer " + signToken(t, validClaims("pro-1"), jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusNoContent,
			wantUser:   "pro-1",
			wantRole:   "professional",
		},
		{
			name:       "missing profile defaults to client",
			header:     "Bearer " + signToken(t, validClaims("new-user"), jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusNoContent,
			wantUser:   "new-user",
			wantRole:   "client",
		},
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, validClaims("pro-1"), jwt.SigningMethodHS256, []byte("other")),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, expired, jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong issuer",
			header:     "Bearer " + signToken(t, wrongIssuer, jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other algorithm",
			header:     "Bearer " + signToken(t, validClaims("pro-1"), jwt.SigningMethodHS512, []byte(testSecret)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "role lookup failure",
			header:     "Bearer " + signToken(t, validClaims("broken"), jwt.SigningMethodHS256, []byte(testSecret)),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
			if tt.header != "" {
				req.Header.Set(authorizationHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-User"))
			assert.Equal(t, tt.wantRole, rec.Header().Get("X-Role"))
		})
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(domain.RoleProfessional, domain.RoleAdmin)(http.HandlerFunc(identityEcho))

	tests := []struct {
		name       string
		ctx        context.Context
		wantStatus int
	}{
		{"anonymous", context.Background(), http.StatusUnauthorized},
		{"client", WithIdentity(context.Background(), domain.Identity{UserID: "c", Role: domain.RoleClient}), http.StatusForbidden},
		{"professional", WithIdentity(context.Background(), domain.Identity{UserID: "p", Role: domain.RoleProfessional}), http.StatusNoContent},
		{"admin", WithIdentity(context.Background(), domain.Identity{UserID: "a", Role: domain.RoleAdmin}), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	const given = "0b5f1f43-8a8f-4d0e-9d3a-5b7c1c7f4e21"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, given)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, given, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid\r\ninjected")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid\r\ninjected", seen)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2, noopLogger{})
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"), "other clients keep their own budget")
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/appointments/{appointmentId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments/5", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/appointments/{appointmentId}", "404"),
	))
}
