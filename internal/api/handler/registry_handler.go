package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/idekita/idekita-api/internal/api/metrics"
	"github.com/idekita/idekita-api/internal/core/domain"
	"github.com/idekita/idekita-api/internal/core/ports"
)

type RegistryHandler struct {
	service ports.RegistryService
	policy  domain.HandlePolicy
}

func NewRegistryHandler(service ports.RegistryService, policy domain.HandlePolicy) *RegistryHandler {
	return &RegistryHandler{service: service, policy: policy}
}

// Availability handles GET /usernames/:handle/availability — the debounced
// client probe lands here. The answer is advisory: registration re-checks
// uniqueness at commit time.
func (h *RegistryHandler) Availability(c echo.Context) error {
	handle := c.Param("handle")

	if !h.policy.Valid(handle) {
		metrics.HandleProbesTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusOK, availabilityResponse{Username: handle})
	}

	available, err := h.service.CheckAvailability(c.Request().Context(), handle)
	if err != nil {
		metrics.HandleProbesTotal.WithLabelValues("error").Inc()
		return err
	}

	result := "taken"
	if available {
		result = "available"
	}
	metrics.HandleProbesTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, availabilityResponse{
		Username:  handle,
		Valid:     true,
		Available: available,
	})
}

// Register handles POST /register.
func (h *RegistryHandler) Register(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		UID:         identity.UID,
		Handle:      req.Username,
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		PhotoURL:    identity.PhotoURL,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, toProfileResponse(profile))
}

func registerResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrHandleTaken), errors.Is(err, domain.ErrAlreadyRegistered):
		return "taken"
	case errors.Is(err, domain.ErrInvalidHandle):
		return "invalid"
	default:
		return "error"
	}
}
