package fiber

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	dataset "regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/viewer/adapters/render/snapshot"
	"regional-metrics-viewer/internal/viewer/core/domain"
	"regional-metrics-viewer/internal/viewer/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionHeader = "X-Viewer-Session"

	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339
)

type Synchronizer interface {
	Dispatch(ctx context.Context, ev domain.Event) error
	Inspect(label string) domain.Tooltip
	Scale(width float64) domain.TimeScale
}

type ViewReader interface {
	Latest() snapshot.View
}

type ViewHandler struct {
	sync  Synchronizer
	views ViewReader
}

func NewViewHandler(sync Synchronizer, views ViewReader) *ViewHandler {
	return &ViewHandler{sync: sync, views: views}
}

// Session tags every response with the id of this viewer process.
func Session(id string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(SessionHeader, id)
		return c.Next()
	}
}

// ChangeMetric godoc
// @Summary Switch the displayed metric
// @Description Recomputes the timeline series and colour domain, then redraws the current frame
// @Tags Events
// @Accept json
// @Produce json
// @Param request body MetricRequest true "Metric payload"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/metric [post]
func (h *ViewHandler) ChangeMetric(c *fiber.Ctx) error {
	var req MetricRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	metric, err := dataset.ParseMetric(req.Metric)
	if err != nil {
		return h.eventError(c, err)
	}

	return h.dispatch(c, domain.MetricChanged{Metric: metric})
}

// ChangeBrush godoc
// @Summary Set or clear the timeline brush
// @Description Replaces the active date range, recomputes the colour domain and rewinds to the first frame
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BrushRequest true "Brush payload"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/brush [post]
func (h *ViewHandler) ChangeBrush(c *fiber.Ctx) error {
	var req BrushRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	sel, err := h.selection(req)
	if err != nil {
		return h.eventError(c, err)
	}

	return h.dispatch(c, domain.BrushChanged{Selection: sel})
}

// MoveSlider godoc
// @Summary Jump to a frame of the active range
// @Tags Events
// @Accept json
// @Produce json
// @Param request body SliderRequest true "Slider payload"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/slider [post]
func (h *ViewHandler) MoveSlider(c *fiber.Ctx) error {
	var req SliderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}
	if req.Index == nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "index_required",
		})
	}

	return h.dispatch(c, domain.SliderMoved{Index: *req.Index})
}

// TogglePlay godoc
// @Summary Start or pause playback
// @Tags Events
// @Produce json
// @Success 200 {object} ViewResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/play [post]
func (h *ViewHandler) TogglePlay(c *fiber.Ctx) error {
	return h.dispatch(c, domain.PlayToggled{})
}

// GetView godoc
// @Summary Latest rendered view
// @Description Frame, timeline and control state as last drawn
// @Tags View
// @Produce json
// @Param geometry query bool false "Include region geometry"
// @Success 200 {object} ViewResponse
// @Router /view [get]
func (h *ViewHandler) GetView(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(toViewResponse(h.views.Latest(), c.QueryBool("geometry", false)))
}

// GetRegion godoc
// @Summary Inspect one region on the current frame
// @Tags View
// @Produce json
// @Param label path string true "Region label as it appears in the geometry file"
// @Success 200 {object} TooltipResponse
// @Failure 400 {object} ErrorResponse
// @Router /regions/{label} [get]
func (h *ViewHandler) GetRegion(c *fiber.Ctx) error {
	label, err := url.PathUnescape(c.Params("label"))
	if err != nil || label == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_label",
			Message: "label must be a non-empty path segment",
		})
	}

	return c.Status(http.StatusOK).JSON(toTooltipResponse(h.sync.Inspect(label)))
}

func (h *ViewHandler) dispatch(c *fiber.Ctx, ev domain.Event) error {
	if err := h.sync.Dispatch(c.UserContext(), ev); err != nil {
		return h.eventError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toViewResponse(h.views.Latest(), false))
}

func (h *ViewHandler) eventError(c *fiber.Ctx, err error) error {
	var code string
	switch {
	case errors.Is(err, dataset.ErrUnknownMetric):
		code = "invalid_metric"
	case errors.Is(err, usecase.ErrFrameOutOfRange):
		code = "frame_out_of_range"
	case errors.Is(err, domain.ErrInvalidSelection):
		code = "invalid_selection"
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

func (h *ViewHandler) selection(req BrushRequest) (*domain.Selection, error) {
	switch {
	case req.Clear:
		return nil, nil
	case req.From != "" && req.To != "":
		from, err := parseInstant(req.From)
		if err != nil {
			return nil, err
		}
		to, err := parseInstant(req.To)
		if err != nil {
			return nil, err
		}
		sel := domain.NewSelection(from, to)
		return &sel, nil
	case req.X0 != nil && req.X1 != nil:
		sel, err := h.sync.Scale(req.Width).PixelSelection(*req.X0, *req.X1)
		if err != nil {
			return nil, err
		}
		return &sel, nil
	default:
		return nil, domain.ErrInvalidSelection
	}
}

// parseInstant accepts a calendar date or an RFC 3339 timestamp.
func parseInstant(s string) (time.Time, error) {
	if d, err := dataset.ParseCalendarDate(dateLayout, s); err == nil {
		return d.Time(), nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidSelection
	}
	return t, nil
}
