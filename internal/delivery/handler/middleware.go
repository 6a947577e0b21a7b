package handler

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"tutorial-service/internal/application/interfaces"
	"tutorial-service/internal/domain/apperrors"
	"tutorial-service/internal/domain/entities"
)

// identityContextKey is where the guard stores the resolved Identity for the
// handler behind it.
const identityContextKey = "identity"

// AuthGuard rejects a request before its handler runs unless it carries a
// bearer token that resolves to an existing Identity. On success the
// Identity is attached to the request context.
func AuthGuard(authService interfaces.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return apperrors.ErrUnauthorized
			}

			user, err := authService.Authenticate(token)
			if err != nil {
				return err
			}
			if user == nil {
				return apperrors.ErrUnauthorized
			}

			c.Set(identityContextKey, user)
			return next(c)
		}
	}
}

// IdentityFromContext returns the Identity the guard attached, or nil on an
// unguarded route.
func IdentityFromContext(c echo.Context) *entities.User {
	user, _ := c.Get(identityContextKey).(*entities.User)
	return user
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequestLogger logs one line per request: method, path, status and latency.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}
