package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"medical-appointments-api/internal/domain/entity"
	"medical-appointments-api/internal/service"
	"medical-appointments-api/pkg/jwt"
	"medical-appointments-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	AccountIDKey contextKey = "account_id"
	EmailKey     contextKey = "account_email"
	RoleKey      contextKey = "account_role"
	TokenIDKey   contextKey = "token_id"
)

const invalidTokenMessage = "Token inválido o expirado"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	sessions   service.SessionStore
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessions service.SessionStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		log:        log,
	}
}

// Authenticate rejects requests without a valid, non-revoked bearer token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			response.Unauthorized(w, "No autenticado")
			return
		}

		ctx, err := m.authenticate(r)
		if err != nil {
			if errors.Is(err, errInvalidToken) {
				response.Unauthorized(w, invalidTokenMessage)
				return
			}
			m.log.Warnf("Failed to validate session: %+v", err)
			response.InternalServerError(w, "")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attributes requests carrying a valid token to their
// account. Anything else, including an expired or revoked token, is served
// as anonymous.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := m.authenticate(r)
		if err != nil {
			if !errors.Is(err, errInvalidToken) {
				m.log.Warnf("Failed to validate session, serving anonymously: %+v", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

var errInvalidToken = errors.New("invalid token")

func (m *AuthMiddleware) authenticate(r *http.Request) (context.Context, error) {
	// Extract token from "Bearer <token>"
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errInvalidToken
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, errInvalidToken
	}

	role, err := entity.ParseRole(claims.Role)
	if err != nil {
		return nil, errInvalidToken
	}

	active, err := m.sessions.IsActive(r.Context(), claims.AccountID, claims.TokenID())
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errInvalidToken
	}

	ctx := context.WithValue(r.Context(), AccountIDKey, claims.AccountID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	ctx = context.WithValue(ctx, RoleKey, role)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID())
	ctx = service.WithActor(ctx, claims.AccountID)

	return ctx, nil
}

// GetAccountIDFromContext extracts account ID from context
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDKey).(int64)
	return accountID, ok
}

// GetEmailFromContext extracts account email from context
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRoleFromContext extracts role from context
func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(RoleKey).(entity.Role)
	return role, ok
}
