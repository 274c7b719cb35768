package domain_test

import (
	"testing"

	"regional-metrics-viewer/internal/viewer/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorRamp_Endpoints(t *testing.T) {
	ramp := domain.RedsRamp()
	d := domain.ColorDomain{Min: 0, Max: 100}

	assert.Equal(t, "#fff5f0", ramp.Color(0, d))
	assert.Equal(t, "#67000d", ramp.Color(100, d))
	assert.Equal(t, "#67000d", ramp.Color(1e9, d), "values above the domain clamp")
	assert.Equal(t, "#fff5f0", ramp.Color(-3, d), "negative values clamp")
}

func TestColorRamp_Midpoint(t *testing.T) {
	ramp, err := domain.NewColorRamp("#000000", "#ffffff")
	require.NoError(t, err)

	mid := ramp.Color(50, domain.ColorDomain{Min: 0, Max: 100})
	assert.NotEqual(t, "#000000", mid)
	assert.NotEqual(t, "#ffffff", mid)
}

func TestColorRamp_Invalid(t *testing.T) {
	_, err := domain.NewColorRamp("#ffffff")
	require.Error(t, err)

	_, err = domain.NewColorRamp("#ffffff", "not-a-colour")
	require.Error(t, err)
}
