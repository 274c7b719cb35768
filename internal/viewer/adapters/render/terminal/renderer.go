// Package terminal draws the choropleth as a coloured table, the timeline as
// a sparkline and the playback controls as a status line.
package terminal

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	dataset "regional-metrics-viewer/internal/dataset/core/domain"
	"regional-metrics-viewer/internal/viewer/core/domain"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultWidth = 60

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

var (
	colorTitle = lipgloss.Color("#cb181d")
	colorMuted = lipgloss.Color("#737373")
	colorBrush = lipgloss.Color("#fb6a4a")
)

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	brush  lipgloss.Style
	button lipgloss.Style
	swatch lipgloss.Style
}

// Renderer writes every render call to w. Calls are serialized.
type Renderer struct {
	mu      sync.Mutex
	w       io.Writer
	printer *message.Printer
	width   int
	styles  styles
}

type Option func(*Renderer)

// WithWidth sets the number of sparkline columns.
func WithWidth(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.width = n
		}
	}
}

func New(w io.Writer, opts ...Option) *Renderer {
	lg := lipgloss.NewRenderer(w)
	r := &Renderer{
		w:       w,
		printer: message.NewPrinter(language.English),
		width:   DefaultWidth,
		styles: styles{
			title:  lg.NewStyle().Bold(true).Foreground(colorTitle),
			muted:  lg.NewStyle().Foreground(colorMuted),
			brush:  lg.NewStyle().Foreground(colorBrush),
			button: lg.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder(), false, true),
			swatch: lg.NewStyle(),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) RenderFrame(_ context.Context, f domain.Frame) error {
	var b strings.Builder

	b.WriteString(r.styles.title.Render(f.DateText))
	b.WriteString("  ")
	b.WriteString(r.styles.muted.Render(r.printer.Sprintf("%s, scale 0 to %.0f", f.Metric, f.Domain.Max)))
	b.WriteByte('\n')

	labelWidth := 0
	for _, fill := range f.Fills {
		labelWidth = max(labelWidth, lipgloss.Width(fill.Label))
	}

	for _, fill := range f.Fills {
		value := domain.NoValue
		if fill.HasData {
			value = r.printer.Sprintf("%.0f", fill.Value)
		}
		swatch := r.styles.swatch.Background(lipgloss.Color(fill.Color)).Render("  ")
		fmt.Fprintf(&b, "  %-*s %s %s\n", labelWidth, fill.Label, swatch, value)
	}

	return r.write(b.String())
}

func (r *Renderer) ClearFrame(context.Context) error {
	return r.write(r.styles.muted.Render("no dates in the selected range") + "\n")
}

func (r *Renderer) RenderTimeline(_ context.Context, t domain.Timeline) error {
	var b strings.Builder

	b.WriteString(r.styles.title.Render(string(t.Series.Metric)))
	b.WriteString("  ")
	b.WriteString(r.styles.muted.Render(r.printer.Sprintf("peak %.0f", t.Series.YMax)))
	b.WriteByte('\n')

	cols := r.columns(t.Series.Points)
	if len(cols) == 0 {
		return r.write(b.String())
	}

	spark := make([]rune, len(cols))
	marks := make([]rune, len(cols))
	for i, col := range cols {
		spark[i] = sparkRune(col.peak, t.Series.YMax)
		marks[i] = ' '
		if t.Selection != nil && col.selected(t.Selection) {
			marks[i] = '━'
		}
	}
	for _, a := range t.Annotations {
		if i := columnOf(cols, a.Date); i >= 0 {
			marks[i] = '▲'
		}
	}

	b.WriteString("  " + string(spark) + "\n")
	b.WriteString("  " + r.styles.brush.Render(string(marks)) + "\n")
	b.WriteString("  " + r.styles.muted.Render(cols[0].from.Display()+" to "+cols[len(cols)-1].to.Display()) + "\n")
	for _, a := range t.Annotations {
		b.WriteString("  " + r.styles.muted.Render("▲ "+a.Date.Display()+" "+a.Label) + "\n")
	}

	return r.write(b.String())
}

func (r *Renderer) RenderControls(_ context.Context, c domain.Controls) error {
	icon := "▶"
	if c.Playing {
		icon = "❚❚"
	}
	button := r.styles.button.Render(icon + " " + c.PlayLabel)

	status := r.styles.muted.Render("slider disabled")
	if c.SliderEnabled {
		status = r.printer.Sprintf("%d/%d  %s", c.SliderValue+1, c.SliderMax+1, c.DateText)
	}

	return r.write(lipgloss.JoinHorizontal(lipgloss.Center, button, " ", status) + "\n")
}

func (r *Renderer) write(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := io.WriteString(r.w, s)
	return err
}

// column is a run of consecutive series points drawn as one character.
type column struct {
	from dataset.CalendarDate
	to   dataset.CalendarDate
	peak float64
}

func (c column) selected(sel *domain.Selection) bool {
	return sel.Contains(c.from) || sel.Contains(c.to) ||
		(c.from.Time().Before(sel.From) && c.to.Time().After(sel.To))
}

func (r *Renderer) columns(points []dataset.SeriesPoint) []column {
	n := len(points)
	if n == 0 {
		return nil
	}
	width := min(n, r.width)
	cols := make([]column, width)
	for i, p := range points {
		c := &cols[i*width/n]
		if c.from.IsZero() {
			c.from = p.Date
		}
		c.to = p.Date
		c.peak = max(c.peak, p.Value)
	}
	return cols
}

func columnOf(cols []column, d dataset.CalendarDate) int {
	for i, c := range cols {
		if !d.Before(c.from) && !d.After(c.to) {
			return i
		}
	}
	return -1
}

func sparkRune(v, top float64) rune {
	if top <= 0 || v <= 0 {
		return sparkLevels[0]
	}
	i := int(math.Round(v / top * float64(len(sparkLevels)-1)))
	return sparkLevels[min(max(i, 0), len(sparkLevels)-1)]
}
