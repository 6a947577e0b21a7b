package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"tutorial-service/internal/application/command"
	"tutorial-service/internal/application/common"
	"tutorial-service/internal/application/query"
)

func (h *Handler) ListTutorials(c echo.Context) error {
	listQuery := &query.ListTutorialsQuery{
		Title: c.QueryParam("title"),
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		listQuery.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		listQuery.Limit = limit
	}

	// date is "YYYY-MM-DD,YYYY-MM-DD"; both bounds must be present for the
	// range to apply.
	if date := c.QueryParam("date"); date != "" {
		parts := strings.SplitN(date, ",", 2)
		if len(parts) == 2 {
			from, errFrom := time.Parse("2006-01-02", parts[0])
			to, errTo := time.Parse("2006-01-02", parts[1])
			if errFrom == nil && errTo == nil {
				listQuery.CreatedFrom = &from
				listQuery.CreatedTo = &to
			}
		}
	}

	result, err := h.tutorialService.ListTutorials(listQuery)
	if err != nil {
		return err
	}

	tutorials := make([]tutorialResponse, 0, len(result.Result))
	for _, tutorial := range result.Result {
		tutorials = append(tutorials, newTutorialResponse(tutorial))
	}

	return c.JSON(http.StatusOK, tutorials)
}

func (h *Handler) GetTutorial(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	result, err := h.tutorialService.FindTutorialById(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTutorialResponse(result.Result))
}

func (h *Handler) CreateTutorial(c echo.Context) error {
	var req createTutorialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	result, err := h.tutorialService.CreateTutorial(&command.CreateTutorialCommand{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newTutorialResponse(result.Result))
}

func (h *Handler) UpdateTutorial(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req updateTutorialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	result, err := h.tutorialService.UpdateTutorial(&command.UpdateTutorialCommand{
		Id:      id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTutorialResponse(result.Result))
}

func (h *Handler) DeleteTutorial(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.tutorialService.DeleteTutorial(id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func newTutorialResponse(result *common.TutorialResult) tutorialResponse {
	return tutorialResponse{
		Id:        result.Id.String(),
		Title:     result.Title,
		Content:   result.Content,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}
}
