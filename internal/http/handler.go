package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "bug-tracker.com/bug-tracker/internal/data_models"
	apperrors "bug-tracker.com/bug-tracker/internal/errors"
	"bug-tracker.com/bug-tracker/internal/http/validators"
	"bug-tracker.com/bug-tracker/internal/services"
)

type Handler struct {
	bugService *services.BugService
}

func NewHandler(bugService *services.BugService) *Handler {
	return &Handler{
		bugService: bugService,
	}
}

func (h *Handler) CreateBug(c echo.Context) error {
	var req dto.CreateBugRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateBugRequest(&req); err != nil {
		return httpError(err)
	}

	ctx := c.Request().Context()

	bug, err := h.bugService.CreateBug(ctx, req.Title, req.Description, req.Status)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, bug)
}

func (h *Handler) GetBug(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrBugIDRequired)
	}

	bug, err := h.bugService.GetBug(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, bug)
}

func (h *Handler) ListBugs(c echo.Context) error {
	bugs, err := h.bugService.ListBugs(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list bugs")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(bugs),
		"bugs":  bugs,
	})
}

func (h *Handler) UpdateBug(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrBugIDRequired)
	}

	var req dto.UpdateBugRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateBugRequest(&req); err != nil {
		return httpError(err)
	}

	bug, err := h.bugService.UpdateBug(c.Request().Context(), id, services.BugUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, bug)
}

func (h *Handler) DeleteBug(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrBugIDRequired)
	}

	if err := h.bugService.DeleteBug(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "bug deleted"})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func httpError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}
