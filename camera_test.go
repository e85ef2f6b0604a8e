package canopy

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewCameraIsIdentity(t *testing.T) {
	c := NewCamera(Rect{Width: 640, Height: 480})
	points := [][2]float64{{0, 0}, {320, 240}, {639, 10}, {-5, 700}}
	for _, p := range points {
		sx, sy := c.WorldToScreen(p[0], p[1])
		if !near(sx, p[0]) || !near(sy, p[1]) {
			t.Errorf("WorldToScreen(%v) = (%v, %v), want identity", p, sx, sy)
		}
	}
}

func TestCameraZoom(t *testing.T) {
	c := NewCamera(Rect{Width: 200, Height: 200})
	c.Zoom = 2
	// Center stays fixed; offsets double.
	sx, sy := c.WorldToScreen(110, 100)
	if !near(sx, 120) || !near(sy, 100) {
		t.Errorf("WorldToScreen = (%v, %v), want (120, 100)", sx, sy)
	}
}

func TestCameraZeroZoomTreatedAsOne(t *testing.T) {
	c := NewCamera(Rect{Width: 100, Height: 100})
	c.Zoom = 0
	sx, sy := c.WorldToScreen(10, 20)
	if !near(sx, 10) || !near(sy, 20) {
		t.Errorf("WorldToScreen = (%v, %v), want (10, 20)", sx, sy)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(Rect{X: 10, Y: 20, Width: 300, Height: 200})
	c.X, c.Y = 57, -13
	c.Zoom = 1.5
	c.Rotation = math.Pi / 6

	tests := [][2]float64{{0, 0}, {57, -13}, {100, 250}, {-40, 12.5}}
	for _, p := range tests {
		sx, sy := c.WorldToScreen(p[0], p[1])
		wx, wy := c.ScreenToWorld(sx, sy)
		if !near(wx, p[0]) || !near(wy, p[1]) {
			t.Errorf("round trip %v = (%v, %v)", p, wx, wy)
		}
	}
}

func TestCameraCenterMapsToViewportCenter(t *testing.T) {
	c := NewCamera(Rect{Width: 400, Height: 300})
	c.X, c.Y = 1000, 1000
	c.Rotation = 1
	sx, sy := c.WorldToScreen(1000, 1000)
	if !near(sx, 200) || !near(sy, 150) {
		t.Errorf("center maps to (%v, %v), want (200, 150)", sx, sy)
	}
}

func TestInvertAffineSingular(t *testing.T) {
	if got := invertAffine([6]float64{0, 0, 0, 0, 5, 5}); got != identityTransform {
		t.Errorf("invertAffine(singular) = %v, want identity", got)
	}
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, 20}
	inv := invertAffine(m)
	x, y := transformPoint(m, 3, 5)
	bx, by := transformPoint(inv, x, y)
	if math.Abs(bx-3) > epsilon || math.Abs(by-5) > epsilon {
		t.Errorf("inverse returned (%v, %v), want (3, 5)", bx, by)
	}
}

func TestCameraScrollTo(t *testing.T) {
	c := NewCamera(Rect{Width: 100, Height: 100})
	c.ScrollTo(150, 250, 1, ease.Linear)
	if !c.Scrolling() {
		t.Fatal("Scrolling() = false after ScrollTo")
	}
	c.update(0.5)
	if !near(c.X, 100) || !near(c.Y, 150) {
		t.Errorf("halfway = (%v, %v), want (100, 150)", c.X, c.Y)
	}
	c.update(0.6)
	if c.Scrolling() {
		t.Error("Scrolling() = true after duration")
	}
	if !near(c.X, 150) || !near(c.Y, 250) {
		t.Errorf("end = (%v, %v), want (150, 250)", c.X, c.Y)
	}
}

func TestNilCameraGeoMIsIdentity(t *testing.T) {
	var c *Camera
	g := c.geoM()
	x, y := g.Apply(7, 9)
	if x != 7 || y != 9 {
		t.Errorf("nil camera geoM.Apply = (%v, %v), want (7, 9)", x, y)
	}
}

func TestCameraGeoMMatchesWorldToScreen(t *testing.T) {
	c := NewCamera(Rect{Width: 320, Height: 240})
	c.X, c.Y, c.Zoom, c.Rotation = 40, 60, 2, 0.3
	g := c.geoM()
	gx, gy := g.Apply(12, 34)
	sx, sy := c.WorldToScreen(12, 34)
	if !near(gx, sx) || !near(gy, sy) {
		t.Errorf("geoM = (%v, %v), WorldToScreen = (%v, %v)", gx, gy, sx, sy)
	}
}
