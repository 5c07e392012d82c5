package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

var (
	// ErrMissingToken заголовок Authorization отсутствует или без Bearer
	ErrMissingToken = errors.New("auth: missing bearer token")

	// ErrInvalidToken подпись, срок или claims токена некорректны
	ErrInvalidToken = errors.New("auth: invalid token")
)

// RoleResolver отдает роль пользователя по ID из токена
type RoleResolver interface {
	GetRole(ctx context.Context, id string) (domain.Role, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Authenticator проверяет HS256 токены провайдера аутентификации.
// sub = ID пользователя, роль берется из профиля.
type Authenticator struct {
	secret []byte
	issuer string
	roles  RoleResolver
	logger Logger
}

// NewAuthenticator создает проверку токенов. Пустой issuer не проверяется.
func NewAuthenticator(secret, issuer string, roles RoleResolver, logger Logger) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		issuer: issuer,
		roles:  roles,
		logger: logger,
	}
}

// ParseToken проверяет токен и возвращает ID пользователя
func (a *Authenticator) ParseToken(raw string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// Identify достает пользователя из запроса
func (a *Authenticator) Identify(r *http.Request) (domain.Identity, error) {
	header := r.Header.Get(authorizationHeader)
	if !strings.HasPrefix(header, bearerPrefix) {
		return domain.Identity{}, ErrMissingToken
	}

	userID, err := a.ParseToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
	if err != nil {
		return domain.Identity{}, err
	}

	role, err := a.roles.GetRole(r.Context(), userID)
	if err != nil {
		// Профиль еще не создан триггером провайдера
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return domain.Identity{UserID: userID, Role: domain.RoleClient}, nil
		}
		return domain.Identity{}, fmt.Errorf("resolve role: %w", err)
	}

	return domain.Identity{UserID: userID, Role: role}, nil
}

// Middleware требует валидный bearer токен
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := a.Identify(r)
		if err != nil {
			if errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken) {
				a.logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				writeError(w, http.StatusUnauthorized, "требуется аутентификация")
				return
			}
			a.logger.Error("%s %s - Failed to resolve identity: %v", r.Method, r.URL.Path, err)
			writeError(w, http.StatusServiceUnavailable, "сервис временно недоступен, повторите попытку позже")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// RequireRole пропускает только пользователей с одной из ролей. Ставится после Authenticator.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "требуется аутентификация")
				return
			}
			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "доступ запрещен")
		})
	}
}

// writeError повторяет формат handlers.ErrorResponse, пакет handlers сюда не импортируется
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": status, "message": message})
}
