// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"wayfinder/internal/delivery/http/response"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// NavigationHandler holds dependencies for the navigation screen API.
type NavigationHandler struct {
	uc     usecase.NavigationUsecase
	share  service.ShareService
	logger *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler, injected by Fx.
func NewNavigationHandler(uc usecase.NavigationUsecase, share service.ShareService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{
		uc:     uc,
		share:  share,
		logger: logger,
	}
}

type selectBuildingInput struct {
	Building string `json:"building" validate:"required"`
}

type selectFloorInput struct {
	Floor string `json:"floor" validate:"required"`
}

type selectRoomInput struct {
	Room string `json:"room"`
}

type navigateInput struct {
	Building string `json:"building" validate:"required"`
	Floor    string `json:"floor"`
}

// State returns the current navigation screen snapshot.
func (h *NavigationHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.State(), "")
}

// Buildings lists every building with indoor maps.
func (h *NavigationHandler) Buildings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Buildings(), "")
}

// SelectBuilding activates a building.
func (h *NavigationHandler) SelectBuilding(c echo.Context) error {
	var input selectBuildingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid building input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SelectBuilding(c.Request().Context(), input.Building); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "Building selected")
}

// SelectFloor switches floors within the active building.
func (h *NavigationHandler) SelectFloor(c echo.Context) error {
	var input selectFloorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid floor input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SelectFloor(c.Request().Context(), input.Floor); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "Floor selected")
}

// Navigate applies inbound navigation parameters (deep link hand-off).
func (h *NavigationHandler) Navigate(c echo.Context) error {
	var input navigateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Navigate(c.Request().Context(), input.Building, input.Floor); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "Navigation applied")
}

// SelectStartRoom updates the route origin. An empty room clears it.
func (h *NavigationHandler) SelectStartRoom(c echo.Context) error {
	var input selectRoomInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}

	if err := h.uc.SelectStartRoom(c.Request().Context(), input.Room); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "Start room selected")
}

// SelectEndRoom updates the route destination. An empty room clears it.
func (h *NavigationHandler) SelectEndRoom(c echo.Context) error {
	var input selectRoomInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}

	if err := h.uc.SelectEndRoom(c.Request().Context(), input.Room); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "End room selected")
}

// Swap exchanges start and end rooms.
func (h *NavigationHandler) Swap(c echo.Context) error {
	if err := h.uc.Swap(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "Rooms swapped")
}

// Clear resets the room selection and route.
func (h *NavigationHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "Selection cleared")
}

// Share returns a PNG QR code encoding a deep link to the current selection,
// so a kiosk selection can be continued on a visitor's phone.
func (h *NavigationHandler) Share(c echo.Context) error {
	state := h.uc.State()
	if state.Selection.BuildingID == "" {
		return errors.WithStack(domainerrors.ErrInvalidSelection.WithDetails("no building selected"))
	}

	png, err := h.share.GenerateNavigateQR(
		state.Selection.BuildingID,
		state.Selection.CurrentFloor,
		state.Selection.StartRoom,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
