package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "trucktrace/internal/delivery/context"
	"trucktrace/internal/domain/entity"
	domainerrors "trucktrace/internal/domain/errors"
	"trucktrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const principalKey = "principal"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves bearer tokens to a Principal once per request.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return errors.WithStack(domainerrors.ErrNoToken)
		}

		principal, err := m.authUC.ResolvePrincipal(c.Request().Context(), token)
		if err != nil {
			return err
		}
		m.attach(c, principal)

		return next(c)
	}
}

// OptionalAuth attaches the principal when the token is valid and ignores it otherwise.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := bearerToken(c); token != "" {
			principal, err := m.authUC.ResolvePrincipal(c.Request().Context(), token)
			if err == nil {
				m.attach(c, principal)
			} else {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Debug("Ignoring invalid optional token", slog.Any("error", err))
			}
		}

		return next(c)
	}
}

// RequireOwner must run after Authenticate.
func (m *AuthMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.IsOwner() {
			return errors.WithStack(domainerrors.ErrOwnerRequired)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) attach(c echo.Context, principal *entity.Principal) {
	c.Set(principalKey, principal)

	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		With(slog.String("user_id", principal.User.ID.String()), slog.String("role", string(principal.Role)))
	c.SetRequest(req.WithContext(deliverycontext.WithLogger(req.Context(), logger)))
}

// GetPrincipal returns the caller attached by Authenticate or OptionalAuth.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(*entity.Principal)

	return principal, ok && principal != nil
}

// GetUserID returns the caller's user ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipal(c)
	if !ok || principal.User == nil {
		return uuid.Nil, false
	}

	return principal.User.ID, true
}

// SetPrincipal attaches a principal directly. Tests use it to skip token resolution.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(principalKey, principal)
}

func bearerToken(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
