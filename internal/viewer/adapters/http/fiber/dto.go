package fiber

import (
	"regional-metrics-viewer/internal/viewer/adapters/render/snapshot"
	"regional-metrics-viewer/internal/viewer/core/domain"

	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"
)

// MetricRequest switches the displayed metric
// @Description Metric selector payload
type MetricRequest struct {
	Metric string `json:"metric" example:"New Deaths"`
}

// BrushRequest sets or clears the timeline brush. Dates take precedence over
// pixel coordinates; clear wins over both.
// @Description Brush payload: dates, pixels on a timeline of the given width, or clear
type BrushRequest struct {
	From  string   `json:"from,omitempty" example:"2021-07-01"`
	To    string   `json:"to,omitempty" example:"2021-08-31"`
	X0    *float64 `json:"x0,omitempty" example:"120"`
	X1    *float64 `json:"x1,omitempty" example:"340"`
	Width float64  `json:"width,omitempty" example:"960"`
	Clear bool     `json:"clear,omitempty"`
}

type SliderRequest struct {
	Index *int `json:"index" example:"12"`
}

type FillResponse struct {
	Label    string            `json:"label"`
	EntityID string            `json:"entity_id"`
	HasData  bool              `json:"has_data"`
	Value    *float64          `json:"value,omitempty"`
	Color    string            `json:"color" example:"#fc9272"`
	Geometry *orbjson.Geometry `json:"geometry,omitempty" swaggertype:"object"`
}

type FrameResponse struct {
	Index     int            `json:"index"`
	Date      string         `json:"date" example:"2021-07-15"`
	DateText  string         `json:"date_text" example:"Jul 15, 2021"`
	Metric    string         `json:"metric"`
	DomainMin float64        `json:"domain_min"`
	DomainMax float64        `json:"domain_max"`
	Animated  bool           `json:"animated"`
	Fills     []FillResponse `json:"fills"`
}

type SeriesPointResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type AnnotationResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

type SelectionResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type TimelineResponse struct {
	Metric      string                `json:"metric"`
	YMax        float64               `json:"y_max"`
	Points      []SeriesPointResponse `json:"points"`
	Annotations []AnnotationResponse  `json:"annotations"`
	Selection   *SelectionResponse    `json:"selection,omitempty"`
}

type ControlsResponse struct {
	Metric        string `json:"metric"`
	Playing       bool   `json:"playing"`
	PlayLabel     string `json:"play_label" example:"Play"`
	SliderMin     int    `json:"slider_min"`
	SliderMax     int    `json:"slider_max"`
	SliderValue   int    `json:"slider_value"`
	SliderEnabled bool   `json:"slider_enabled"`
	DateText      string `json:"date_text"`
}

// ViewResponse is the latest rendered view. Frame is absent while the
// brushed range holds no dates.
type ViewResponse struct {
	Version  uint64           `json:"version"`
	Frame    *FrameResponse   `json:"frame,omitempty"`
	Timeline TimelineResponse `json:"timeline"`
	Controls ControlsResponse `json:"controls"`
}

type TooltipResponse struct {
	Label    string   `json:"label" example:"Jakarta Raya"`
	EntityID string   `json:"entity_id" example:"DKI Jakarta"`
	Metric   string   `json:"metric"`
	Date     string   `json:"date,omitempty"`
	HasData  bool     `json:"has_data"`
	Value    *float64 `json:"value,omitempty"`
	Display  string   `json:"display" example:"1,204"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_metric"`
	Message string `json:"message" example:"unknown metric"`
}

func toViewResponse(v snapshot.View, withGeometry bool) ViewResponse {
	resp := ViewResponse{
		Version:  v.Version,
		Timeline: toTimelineResponse(v.Timeline),
		Controls: ControlsResponse{
			Metric:        string(v.Controls.Metric),
			Playing:       v.Controls.Playing,
			PlayLabel:     v.Controls.PlayLabel,
			SliderMin:     v.Controls.SliderMin,
			SliderMax:     v.Controls.SliderMax,
			SliderValue:   v.Controls.SliderValue,
			SliderEnabled: v.Controls.SliderEnabled,
			DateText:      v.Controls.DateText,
		},
	}
	if v.Frame != nil {
		f := toFrameResponse(*v.Frame, withGeometry)
		resp.Frame = &f
	}
	return resp
}

func toFrameResponse(f domain.Frame, withGeometry bool) FrameResponse {
	resp := FrameResponse{
		Index:     f.Index,
		Date:      f.Date.String(),
		DateText:  f.DateText,
		Metric:    string(f.Metric),
		DomainMin: f.Domain.Min,
		DomainMax: f.Domain.Max,
		Animated:  f.Animated,
		Fills:     make([]FillResponse, 0, len(f.Fills)),
	}
	for _, fill := range f.Fills {
		fr := FillResponse{
			Label:    fill.Label,
			EntityID: fill.EntityID,
			HasData:  fill.HasData,
			Color:    fill.Color,
		}
		if fill.HasData {
			v := fill.Value
			fr.Value = &v
		}
		if g, ok := fill.Geometry.(orb.Geometry); ok && withGeometry {
			fr.Geometry = orbjson.NewGeometry(g)
		}
		resp.Fills = append(resp.Fills, fr)
	}
	return resp
}

func toTimelineResponse(t domain.Timeline) TimelineResponse {
	resp := TimelineResponse{
		Metric:      string(t.Series.Metric),
		YMax:        t.Series.YMax,
		Points:      make([]SeriesPointResponse, 0, len(t.Series.Points)),
		Annotations: make([]AnnotationResponse, 0, len(t.Annotations)),
	}
	for _, p := range t.Series.Points {
		resp.Points = append(resp.Points, SeriesPointResponse{Date: p.Date.String(), Value: p.Value})
	}
	for _, a := range t.Annotations {
		resp.Annotations = append(resp.Annotations, AnnotationResponse{Date: a.Date.String(), Label: a.Label})
	}
	if t.Selection != nil {
		resp.Selection = &SelectionResponse{
			From: t.Selection.From.Format(timeLayout),
			To:   t.Selection.To.Format(timeLayout),
		}
	}
	return resp
}

func toTooltipResponse(t domain.Tooltip) TooltipResponse {
	resp := TooltipResponse{
		Label:    t.Label,
		EntityID: t.EntityID,
		Metric:   string(t.Metric),
		Date:     t.Date,
		HasData:  t.HasData,
		Display:  t.Display,
	}
	if t.HasData {
		v := t.Value
		resp.Value = &v
	}
	return resp
}
