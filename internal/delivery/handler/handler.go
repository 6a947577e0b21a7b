// Package handler wires the application services to HTTP. Everything here is
// thin glue: decode, delegate, encode.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"tutorial-service/internal/application/command"
	"tutorial-service/internal/application/common"
	"tutorial-service/internal/application/interfaces"
)

type Handler struct {
	authService     interfaces.AuthService
	userService     interfaces.UserService
	tutorialService interfaces.TutorialService
}

func NewHandler(
	authService interfaces.AuthService,
	userService interfaces.UserService,
	tutorialService interfaces.TutorialService,
) *Handler {
	return &Handler{
		authService:     authService,
		userService:     userService,
		tutorialService: tutorialService,
	}
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	result, err := h.userService.CreateUser(&command.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newUserResponse(result.Result))
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	result, err := h.authService.Login(&command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  newUserResponse(result.User),
	})
}

// Me returns the Identity the guard resolved for this request.
func (h *Handler) Me(c echo.Context) error {
	user := IdentityFromContext(c)

	result, err := h.userService.FindUserById(user.Id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(result.Result))
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	result, err := h.userService.FindUserById(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(result.Result))
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	result, err := h.userService.UpdateUser(&command.UpdateUserCommand{
		Id:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newUserResponse(result.Result))
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.userService.DeleteUser(id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func newUserResponse(result *common.UserResult) userResponse {
	return userResponse{
		Id:        result.Id.String(),
		Name:      result.Name,
		Email:     result.Email,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}
}
