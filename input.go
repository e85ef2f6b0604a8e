package canopy

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame pointer and keyboard snapshot. The pointer position
// is in world coordinates and is unknown until the first move. Keys are kept
// in the order they were pressed, without duplicates.
type Input struct {
	x, y     float64
	hasPos   bool
	down     bool
	keys     []ebiten.Key
	pollKeys []ebiten.Key

	// Last raw cursor position seen by Poll, in screen space.
	cursorX, cursorY int
	polled           bool
}

// NewInput creates an empty snapshot: no pointer position, nothing held.
func NewInput() *Input {
	return &Input{}
}

// Pointer returns the pointer's world position. ok is false until the
// pointer has moved at least once.
func (in *Input) Pointer() (x, y float64, ok bool) {
	return in.x, in.y, in.hasPos
}

// Down reports whether the left pointer button is held.
func (in *Input) Down() bool {
	return in.down
}

// KeyDown reports whether key k is held.
func (in *Input) KeyDown(k ebiten.Key) bool {
	return slices.Contains(in.keys, k)
}

// Keys returns the held keys in press order. The returned slice MUST NOT be
// mutated.
func (in *Input) Keys() []ebiten.Key {
	return in.keys
}

// --- Injection ---

// MoveTo sets the pointer's world position.
func (in *Input) MoveTo(x, y float64) {
	in.x, in.y = x, y
	in.hasPos = true
}

// ClearPointer forgets the pointer position, as before the first move.
func (in *Input) ClearPointer() {
	in.x, in.y = 0, 0
	in.hasPos = false
}

// Press marks the pointer button as held.
func (in *Input) Press() {
	in.down = true
}

// Release marks the pointer button as released.
func (in *Input) Release() {
	in.down = false
}

// PressKey marks k as held. Pressing a held key is a no-op.
func (in *Input) PressKey(k ebiten.Key) {
	if in.KeyDown(k) {
		return
	}
	in.keys = append(in.keys, k)
}

// ReleaseKey marks k as released. Releasing a key that is not held is a no-op.
func (in *Input) ReleaseKey(k ebiten.Key) {
	if i := slices.Index(in.keys, k); i >= 0 {
		in.keys = slices.Delete(in.keys, i, i+1)
	}
}

// --- Polling ---

// Poll refreshes the snapshot from Ebitengine. The cursor position is
// converted to world space through cam; a nil cam means screen == world.
func (in *Input) Poll(cam *Camera) {
	mx, my := ebiten.CursorPosition()
	in.syncCursor(cam, mx, my)
	in.down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	in.pollKeys = inpututil.AppendPressedKeys(in.pollKeys[:0])
	in.syncKeys(in.pollKeys)
}

// syncCursor records a polled cursor position. Ebitengine reports (0, 0)
// before the cursor has entered the window, so the pointer stays unset until
// the position first changes. After that it follows the cursor, and camera
// moves, every poll.
func (in *Input) syncCursor(cam *Camera, sx, sy int) {
	first := !in.polled
	moved := sx != in.cursorX || sy != in.cursorY
	in.cursorX, in.cursorY, in.polled = sx, sy, true
	if !in.hasPos && (first || !moved) {
		return
	}
	in.MoveTo(screenToWorld(cam, float64(sx), float64(sy)))
}

// syncKeys releases keys missing from pressed and appends newly pressed ones,
// keeping existing keys in press order.
func (in *Input) syncKeys(pressed []ebiten.Key) {
	kept := in.keys[:0]
	for _, k := range in.keys {
		if slices.Contains(pressed, k) {
			kept = append(kept, k)
		}
	}
	in.keys = kept
	for _, k := range pressed {
		in.PressKey(k)
	}
}

// screenToWorld converts screen coordinates to world coordinates using cam.
func screenToWorld(cam *Camera, sx, sy float64) (float64, float64) {
	if cam != nil {
		return cam.ScreenToWorld(sx, sy)
	}
	return sx, sy
}
