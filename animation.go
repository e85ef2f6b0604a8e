package canopy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a GameObject together.
// Create one via TweenPosition or TweenSize and call Update(dt) each frame.
// Once the target leaves its scene the group stops without writing.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *GameObject
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && !g.target.IsMember() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates o.X and o.Y to (toX, toY) over duration seconds.
func TweenPosition(o *GameObject, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: o}
	g.tweens[0] = gween.New(float32(o.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(o.Y), float32(toY), duration, fn)
	g.fields[0] = &o.X
	g.fields[1] = &o.Y
	return g
}

// TweenSize animates o.Width and o.Height to (toW, toH) over duration seconds.
func TweenSize(o *GameObject, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: o}
	g.tweens[0] = gween.New(float32(o.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(o.Height), float32(toH), duration, fn)
	g.fields[0] = &o.Width
	g.fields[1] = &o.Height
	return g
}
