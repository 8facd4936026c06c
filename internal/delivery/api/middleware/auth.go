package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "bankauth/internal/delivery/context"
	domainerrors "bankauth/internal/domain/errors"
	"bankauth/internal/domain/service"
	"bankauth/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores its claims on the context.
// Every failure is reported as ErrAccessTokenInvalid.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

		authHeader := req.Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrAccessTokenInvalid, "authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return errors.Wrap(domainerrors.ErrAccessTokenInvalid, "authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(strings.TrimSpace(tokenString))
		if err != nil {
			logger.Debug("Access token rejected", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrAccessTokenInvalid, err.Error())
		}
		if claims.Username == "" {
			return errors.Wrap(domainerrors.ErrAccessTokenInvalid, "access token has no username")
		}

		deliverycontext.SetClaims(c, claims)

		ctx := deliverycontext.WithLogger(req.Context(), logger.With(slog.String("username", claims.Username)))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
