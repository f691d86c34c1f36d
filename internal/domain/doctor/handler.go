package doctor

import (
	"errors"
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

// RegisterRoutes mounts the public directory and the authenticated
// profile endpoint.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.GET("/doctors", h.List)
	protected.POST("/doctors/profile", h.CreateProfile, auth.RequireRole(auth.RoleDoctor, auth.RoleAdmin))
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	f := Filter{
		Specialty: c.QueryParam("specialty"),
		Search:    c.QueryParam("search"),
	}
	items, total, err := h.svc.ListDoctors(c.Request().Context(), f, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if items == nil {
		items = []*Listing{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) CreateProfile(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p, err := h.svc.CreateProfile(c.Request().Context(), ident.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrProfileExists):
			return echo.NewHTTPError(http.StatusConflict, "doctor profile already exists")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}
	return c.JSON(http.StatusCreated, p)
}
