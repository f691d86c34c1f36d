package rating

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medihive/medihive/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.GET("/doctors/:id/ratings", h.Stats)
	protected.POST("/doctors/:id/ratings", h.Submit, auth.RequireRole(auth.RolePatient))
}

func (h *Handler) Submit(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rt, err := h.svc.Submit(c.Request().Context(), ident, doctorID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotEligible):
			return echo.NewHTTPError(http.StatusBadRequest, "you can only rate completed appointments you attended")
		case errors.Is(err, ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, ErrAlreadyRated):
			return echo.NewHTTPError(http.StatusConflict, "appointment already rated")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"rating": rt})
}

func (h *Handler) Stats(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	stats, err := h.svc.DoctorStats(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"stats": stats})
}
