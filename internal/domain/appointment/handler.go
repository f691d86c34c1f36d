package appointment

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

func (h *Handler) RegisterRoutes(protected *echo.Group) {
	protected.POST("/appointments", h.Create)
	protected.GET("/appointments", h.ListMine)
	protected.PATCH("/appointments/:id/cancel", h.Cancel)
	protected.PATCH("/appointments/:id/done", h.Complete)
}

func (h *Handler) Create(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.Create(c.Request().Context(), ident, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"appointment": a})
}

func (h *Handler) ListMine(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	switch ident.Role {
	case auth.RolePatient:
		items, err := h.svc.ListForPatientUser(c.Request().Context(), ident.UserID)
		if err != nil {
			return httpError(err)
		}
		if items == nil {
			items = []*PatientView{}
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"appointments": items})
	case auth.RoleDoctor:
		items, err := h.svc.ListForDoctorUser(c.Request().Context(), ident.UserID)
		if err != nil {
			return httpError(err)
		}
		if items == nil {
			items = []*DoctorView{}
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"appointments": items})
	default:
		return echo.NewHTTPError(http.StatusForbidden, "admins use admin reports")
	}
}

func (h *Handler) Cancel(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	if err := h.svc.Cancel(c.Request().Context(), ident, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "appointment canceled"})
}

func (h *Handler) Complete(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	if err := h.svc.Complete(c.Request().Context(), ident, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "appointment completed"})
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNoProfile):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	case errors.Is(err, ErrDuplicateBooking):
		return echo.NewHTTPError(http.StatusConflict, "you already have an appointment at that time")
	case errors.Is(err, ErrAlreadyFinal):
		return echo.NewHTTPError(http.StatusConflict, "appointment is no longer scheduled")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
