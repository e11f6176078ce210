package app

import (
	"fmt"

	"github.com/Faultbox/rubiks-gl/internal/config"
	"github.com/Faultbox/rubiks-gl/internal/engine/polygon"
	"github.com/Faultbox/rubiks-gl/internal/engine/scene"
)

// parseFaceColors parses the six sticker colors, ordered -x, +x, -y, +y,
// -z, +z. An empty list selects the scene defaults.
func parseFaceColors(names []string) ([6]polygon.Color, error) {
	var colors [6]polygon.Color
	if len(names) == 0 {
		return scene.DefaultFaceColors, nil
	}
	if len(names) != len(colors) {
		return colors, fmt.Errorf("cube.face_colors: need %d colors, got %d", len(colors), len(names))
	}
	for i, name := range names {
		c, err := polygon.ParseColor(name)
		if err != nil {
			return colors, fmt.Errorf("cube.face_colors[%d]: %w", i, err)
		}
		colors[i] = c
	}
	return colors, nil
}

func parseStyle(cfg config.RenderConfig) (polygon.Style, error) {
	stroke, err := polygon.ParseColor(cfg.StrokeColor)
	if err != nil {
		return polygon.Style{}, fmt.Errorf("render.stroke_color: %w", err)
	}
	return polygon.Style{StrokeColor: stroke, DepthAttenuation: cfg.DepthAttenuation}, nil
}

// cubeRadius is the distance from the puzzle center to its farthest corner.
func cubeRadius(cfg config.CubeConfig) float32 {
	const sqrt3 = 1.7320508
	return (cfg.Offset + 1) * cfg.Scale * sqrt3
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
