package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"tutorial-service/internal/application/interfaces"
)

// NewRouter builds the echo instance with all routes registered. Mutations
// and identity-scoped queries sit behind the auth guard; signup, login and
// tutorial reads are open.
func NewRouter(h *Handler, authService interfaces.AuthService, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
	e.Use(RequestLogger(logger))

	guard := AuthGuard(authService)

	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)

	e.GET("/me", h.Me, guard)
	e.GET("/users/:id", h.GetUser, guard)
	e.PUT("/users/:id", h.UpdateUser, guard)
	e.DELETE("/users/:id", h.DeleteUser, guard)

	e.GET("/tutorials", h.ListTutorials)
	e.GET("/tutorials/:id", h.GetTutorial)
	e.POST("/tutorials", h.CreateTutorial, guard)
	e.PUT("/tutorials/:id", h.UpdateTutorial, guard)
	e.DELETE("/tutorials/:id", h.DeleteTutorial, guard)

	return e
}
