package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/idekita/idekita-api/internal/api/metrics"
	"github.com/idekita/idekita-api/internal/core/domain"
	"github.com/idekita/idekita-api/internal/core/ports"
)

type EndorsementHandler struct {
	service ports.EndorsementService
}

func NewEndorsementHandler(service ports.EndorsementService) *EndorsementHandler {
	return &EndorsementHandler{service: service}
}

func postIDFromPath(c echo.Context) (domain.PostID, error) {
	author := c.Param("author")
	slug := c.Param("slug")
	if author == "" || slug == "" {
		return domain.PostID{}, echo.NewHTTPError(http.StatusBadRequest, "missing post identity")
	}
	return domain.PostID{AuthorUID: author, Slug: slug}, nil
}

// Endorse handles POST /posts/:author/:slug/endorse. Repeat calls surface
// as 409 through the error handler; the count never moves twice.
func (h *EndorsementHandler) Endorse(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	postID, err := postIDFromPath(c)
	if err != nil {
		return err
	}

	if err := h.service.AddEndorsement(c.Request().Context(), postID, identity.UID); err != nil {
		metrics.EndorsementsTotal.WithLabelValues(endorseResult(err)).Inc()
		return err
	}
	metrics.EndorsementsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, endorsementResponse{Post: postID.Key(), Endorsed: true})
}

// HasEndorsed handles GET /posts/:author/:slug/endorsement.
func (h *EndorsementHandler) HasEndorsed(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	postID, err := postIDFromPath(c)
	if err != nil {
		return err
	}

	endorsed, err := h.service.HasEndorsed(c.Request().Context(), postID, identity.UID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, endorsementResponse{Post: postID.Key(), Endorsed: endorsed})
}

func endorseResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrAlreadyEndorsed):
		return "duplicate"
	default:
		return "error"
	}
}
