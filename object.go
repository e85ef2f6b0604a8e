package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// objectIDCounter is a plain counter (no atomic; canopy is single-threaded).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// DrawOptions tweaks a single object draw. Zero fields mean 1, so the zero
// value draws fully opaque and unflipped. Use -1 for FlipX/FlipY to mirror.
type DrawOptions struct {
	Opacity float64
	FlipX   float64
	FlipY   float64
}

func (o DrawOptions) withDefaults() DrawOptions {
	if o.Opacity == 0 {
		o.Opacity = 1
	}
	if o.FlipX == 0 {
		o.FlipX = 1
	}
	if o.FlipY == 0 {
		o.FlipY = 1
	}
	return o
}

// GameObject is a rectangular scene member. Its bounds are read from X, Y,
// Width and Height at every test; nothing is cached.
type GameObject struct {
	// Identity
	ID   uint32
	Name string

	X, Y          float64
	Width, Height float64

	// Metadata
	UserData any
	EntityID uint32

	// scene is a back-reference; membership is owned by the scene.
	scene *Scene

	drawn bool
	layer int // 0 until the first draw
}

// NewGameObject creates an object and appends it to the scene's object list.
func NewGameObject(scene *Scene, name string) *GameObject {
	o := &GameObject{ID: nextObjectID(), Name: name, scene: scene}
	scene.add(o)
	return o
}

// Scene returns the scene the object was created in.
func (o *GameObject) Scene() *Scene {
	return o.scene
}

// Bounds returns the object's current bounding box.
func (o *GameObject) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// SetBounds moves and resizes the object in one call.
func (o *GameObject) SetBounds(r Rect) {
	o.X, o.Y, o.Width, o.Height = r.X, r.Y, r.Width, r.Height
}

// Drawn reports whether the object has been drawn since it was created.
func (o *GameObject) Drawn() bool {
	return o.drawn
}

// Layer returns the object's draw layer, or 0 if it has never been drawn.
func (o *GameObject) Layer() int {
	return o.layer
}

// IsMember reports whether the object is still in its scene.
func (o *GameObject) IsMember() bool {
	return o.scene != nil && o.scene.Has(o)
}

// Draw paints img over the object's bounds, fully opaque.
func (o *GameObject) Draw(img *ebiten.Image) {
	o.DrawWith(img, DrawOptions{})
}

// DrawWith paints img over the object's bounds. Objects that are no longer in
// their scene are skipped. The first draw assigns the object's layer.
func (o *GameObject) DrawWith(img *ebiten.Image, opts DrawOptions) {
	s := o.scene
	if s == nil || !s.Has(o) {
		if s != nil && s.debug {
			debugWarn("draw on non-member object %q (ID %d)", o.Name, o.ID)
		}
		return
	}
	opts = opts.withDefaults()
	s.commands.DrawImage(img, o.Bounds(), opts.Opacity, opts.FlipX, opts.FlipY)

	if s.layers.Assign(o) {
		s.emit(EventDrawn, o)
	}
}

// Destroy removes the object from its scene and releases one layer.
// Destroying an object that is already gone is a no-op.
func (o *GameObject) Destroy() {
	if o.scene == nil {
		return
	}
	o.scene.remove(o)
}

// CollidesWith reports whether o and other overlap inside their scene.
func (o *GameObject) CollidesWith(other *GameObject) bool {
	if o.scene == nil {
		return false
	}
	return o.scene.CheckCollision(o, other)
}

// LeftClicked reports whether the pointer is down over o and no higher
// object covers the pointer there.
func (o *GameObject) LeftClicked() bool {
	if o.scene == nil {
		return false
	}
	return o.scene.WasLeftClicked(o)
}
