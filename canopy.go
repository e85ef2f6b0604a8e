package canopy

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at submit time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default widget background.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default label text color.
var ColorBlack = Color{0, 0, 0, 1}

// RGB builds an opaque Color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// EventType identifies a kind of object lifecycle event.
type EventType uint8

const (
	EventDrawn     EventType = iota // fires when an object receives its draw layer
	EventDestroyed                  // fires when an object leaves its scene
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventDrawn:
		return "drawn"
	case EventDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
