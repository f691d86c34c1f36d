package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medihive/medihive/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts auth endpoints on the public group and the
// current-user endpoints on the authenticated group.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.POST("/auth/register", h.Register)
	public.POST("/auth/login", h.Login)
	protected.GET("/users/me", h.GetMe)
	protected.PUT("/users/me", h.UpdateMe)
}

func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	resp, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	resp, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMe(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	me, err := h.svc.GetMe(c.Request().Context(), ident)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, me)
}

func (h *Handler) UpdateMe(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	var req UpdateMeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	me, err := h.svc.UpdateMe(c.Request().Context(), ident, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, me)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
