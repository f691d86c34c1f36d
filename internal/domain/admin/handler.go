package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medihive/medihive/internal/platform/auth"
	"github.com/medihive/medihive/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *echo.Group) {
	g := protected.Group("/admin", auth.RequireRole(auth.RoleAdmin))
	g.GET("/stats", h.Stats)
	g.GET("/users", h.ListUsers)
	g.GET("/appointments", h.ListAppointments)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListUsers(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListUsers(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if items == nil {
		items = []*UserRow{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListAppointments(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListAppointments(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if items == nil {
		items = []*AppointmentRow{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
