package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/idekita/idekita-api/internal/api/metrics"
	"github.com/idekita/idekita-api/internal/core/ports"
)

type FeedHandler struct {
	service         ports.FeedService
	defaultPageSize int
}

func NewFeedHandler(service ports.FeedService, defaultPageSize int) *FeedHandler {
	return &FeedHandler{service: service, defaultPageSize: defaultPageSize}
}

// Page handles GET /feed. Without ?after= it serves the first page; with an
// RFC3339 ?after= cursor it resumes strictly past it. Callers detect the
// end from the short-page flag.
func (h *FeedHandler) Page(c echo.Context) error {
	pageSize := h.defaultPageSize
	if raw := c.QueryParam("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "page_size must be a positive integer")
		}
		pageSize = n
	}

	timer := prometheus.NewTimer(metrics.FeedPageDuration)
	defer timer.ObserveDuration()

	var (
		page *ports.FeedPage
		err  error
	)
	if raw := c.QueryParam("after"); raw != "" {
		cursor, parseErr := time.Parse(time.RFC3339Nano, raw)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "after must be an RFC3339 timestamp")
		}
		page, err = h.service.NextPage(c.Request().Context(), cursor, pageSize)
		metrics.FeedPagesTotal.WithLabelValues("next").Inc()
	} else {
		page, err = h.service.FirstPage(c.Request().Context(), pageSize)
		metrics.FeedPagesTotal.WithLabelValues("first").Inc()
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toFeedResponse(page.Posts, page.End, page.NextCursor))
}
