package ports

import (
	"context"

	"regional-metrics-viewer/internal/viewer/core/domain"
)

// RendererPort is implemented by drawing collaborators. Every value passed in
// is a snapshot; renderers must not expect it to change afterwards.
type RendererPort interface {
	RenderFrame(ctx context.Context, f domain.Frame) error
	// ClearFrame is called when the active range holds no dates.
	ClearFrame(ctx context.Context) error
	RenderTimeline(ctx context.Context, t domain.Timeline) error
	RenderControls(ctx context.Context, c domain.Controls) error
}
