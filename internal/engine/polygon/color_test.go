package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", ColorRed},
		{"#0F0", ColorGreen},
		{"#0000ff80", RGBA(0, 0, 255, 128)},
		{"  white ", ColorWhite},
		{"Black", ColorBlack},
		{"orange", RGBA(255, 165, 0, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "notacolor"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, "input %q", in)
	}

	assert.Panics(t, func() { MustParseColor("#xyz") })
}

func TestColorAdjustments(t *testing.T) {
	c := Color{0.5, 0.5, 0.5, 0.8}

	assert.InDelta(t, 0.25, c.Darken(0.5).R, 1e-6)
	assert.InDelta(t, 0.75, c.Lighten(0.5).G, 1e-6)
	assert.Equal(t, float32(0.8), c.Darken(0.5).A)
	assert.Equal(t, Color{0.5, 0.5, 0.5, 0.2}, c.WithAlpha(0.2))
	assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 0.8}, c.Vec4())
}
