package domain

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// NoDataColor fills regions without a record for the displayed date.
const NoDataColor = "#cccccc"

// redsStops is the nine-class sequential Reds scheme, light to dark.
var redsStops = []string{
	"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
	"#ef3b2c", "#cb181d", "#a50f15", "#67000d",
}

// ColorRamp interpolates a value in a ColorDomain along colour stops,
// blending in CIE-Lab so perceived lightness changes evenly.
type ColorRamp struct {
	stops []colorful.Color
}

func NewColorRamp(hexStops ...string) (ColorRamp, error) {
	if len(hexStops) < 2 {
		return ColorRamp{}, fmt.Errorf("colour ramp needs at least 2 stops, got %d", len(hexStops))
	}
	stops := make([]colorful.Color, 0, len(hexStops))
	for _, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return ColorRamp{}, fmt.Errorf("stop %q: %w", h, err)
		}
		stops = append(stops, c)
	}
	return ColorRamp{stops: stops}, nil
}

// RedsRamp is the default sequential ramp.
func RedsRamp() ColorRamp {
	r, err := NewColorRamp(redsStops...)
	if err != nil {
		panic(err)
	}
	return r
}

// Color returns the hex colour for v within d.
func (r ColorRamp) Color(v float64, d ColorDomain) string {
	t := d.Normalize(v)
	segments := len(r.stops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		return r.stops[segments].Hex()
	}
	frac := pos - float64(i)
	if frac == 0 {
		return r.stops[i].Hex()
	}
	return r.stops[i].BlendLab(r.stops[i+1], frac).Clamped().Hex()
}
