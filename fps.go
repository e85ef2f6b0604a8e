package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

const fpsRefreshInterval = 0.5 // seconds

// FPSLabel is a TextLabel that shows the current FPS and TPS.
// The text refreshes roughly every half second.
type FPSLabel struct {
	*TextLabel

	sinceRefresh float64
}

var _ Widget = (*FPSLabel)(nil)

// NewFPSLabel creates an FPS readout and attaches it to parent.
func NewFPSLabel(parent Parent) *FPSLabel {
	l := newTextLabel(parent)
	l.Width, l.Height = 140, 18
	l.BackgroundColor = Color{A: 1}
	l.Opacity = 0.5
	l.TextColor = ColorWhite
	l.FontSize = 14

	f := &FPSLabel{TextLabel: l, sinceRefresh: fpsRefreshInterval}
	parent.adopt(f)
	return f
}

// Update refreshes the readout when due, then paints it.
func (f *FPSLabel) Update(dt float64, dst Surface) {
	f.sinceRefresh += dt
	if f.sinceRefresh >= fpsRefreshInterval {
		f.sinceRefresh = 0
		f.Text = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	f.TextLabel.Update(dt, dst)
}
