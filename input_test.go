package canopy

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInputPointerUnknownUntilMove(t *testing.T) {
	in := NewInput()
	if _, _, ok := in.Pointer(); ok {
		t.Fatal("pointer should be unknown before the first move")
	}
	in.MoveTo(3, 4)
	x, y, ok := in.Pointer()
	if !ok || x != 3 || y != 4 {
		t.Errorf("Pointer() = %v, %v, %v; want 3, 4, true", x, y, ok)
	}
	in.ClearPointer()
	if _, _, ok := in.Pointer(); ok {
		t.Error("pointer should be unknown after ClearPointer")
	}
}

func TestInputPressRelease(t *testing.T) {
	in := NewInput()
	if in.Down() {
		t.Fatal("button should start released")
	}
	in.Press()
	if !in.Down() {
		t.Error("Down() should be true after Press")
	}
	in.Release()
	if in.Down() {
		t.Error("Down() should be false after Release")
	}
}

func TestInputKeys(t *testing.T) {
	in := NewInput()
	in.PressKey(ebiten.KeyA)
	in.PressKey(ebiten.KeySpace)
	in.PressKey(ebiten.KeyA) // duplicate

	if !in.KeyDown(ebiten.KeyA) || !in.KeyDown(ebiten.KeySpace) {
		t.Error("pressed keys should be down")
	}
	if in.KeyDown(ebiten.KeyB) {
		t.Error("KeyB was never pressed")
	}
	if keys := in.Keys(); len(keys) != 2 || keys[0] != ebiten.KeyA || keys[1] != ebiten.KeySpace {
		t.Errorf("Keys() = %v, want [A Space]", keys)
	}

	in.ReleaseKey(ebiten.KeyA)
	in.ReleaseKey(ebiten.KeyZ) // not held
	if in.KeyDown(ebiten.KeyA) {
		t.Error("KeyA should be released")
	}
	if keys := in.Keys(); len(keys) != 1 || keys[0] != ebiten.KeySpace {
		t.Errorf("Keys() = %v, want [Space]", keys)
	}
}

func TestInputSyncKeysKeepsPressOrder(t *testing.T) {
	in := NewInput()
	in.PressKey(ebiten.KeyW)
	in.PressKey(ebiten.KeyA)

	// Polled keys come back in key-code order; W stays before A, D is new.
	in.syncKeys([]ebiten.Key{ebiten.KeyA, ebiten.KeyD, ebiten.KeyW})
	want := []ebiten.Key{ebiten.KeyW, ebiten.KeyA, ebiten.KeyD}
	got := in.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	in.syncKeys([]ebiten.Key{ebiten.KeyD})
	if got := in.Keys(); len(got) != 1 || got[0] != ebiten.KeyD {
		t.Errorf("Keys() = %v, want [D]", got)
	}
}

func TestScreenToWorldNilCamera(t *testing.T) {
	x, y := screenToWorld(nil, 12, 34)
	if x != 12 || y != 34 {
		t.Errorf("screenToWorld(nil) = %v, %v", x, y)
	}
}

func TestPollPointerUnsetUntilCursorMoves(t *testing.T) {
	in := NewInput()

	in.syncCursor(nil, 0, 0)
	if _, _, ok := in.Pointer(); ok {
		t.Fatal("first poll should not set the pointer")
	}
	in.syncCursor(nil, 0, 0)
	if _, _, ok := in.Pointer(); ok {
		t.Fatal("unchanged cursor should not set the pointer")
	}

	in.syncCursor(nil, 12, 7)
	x, y, ok := in.Pointer()
	if !ok || x != 12 || y != 7 {
		t.Errorf("Pointer() = (%v, %v, %v), want (12, 7, true)", x, y, ok)
	}
}

func TestPollPointerFollowsCameraOnceSet(t *testing.T) {
	in := NewInput()
	cam := NewCamera(Rect{Width: 100, Height: 100})
	in.syncCursor(cam, 0, 0)
	in.syncCursor(cam, 50, 50)

	cam.X, cam.Y = 150, 150
	in.syncCursor(cam, 50, 50)
	x, y, _ := in.Pointer()
	if !near(x, 150) || !near(y, 150) {
		t.Errorf("Pointer() = (%v, %v), want (150, 150) after the camera moved", x, y)
	}
}

func TestPollAfterClearPointer(t *testing.T) {
	in := NewInput()
	in.syncCursor(nil, 0, 0)
	in.syncCursor(nil, 5, 5)
	in.ClearPointer()
	in.syncCursor(nil, 5, 5)
	if _, _, ok := in.Pointer(); ok {
		t.Error("pointer should stay cleared until the cursor moves again")
	}
	in.syncCursor(nil, 6, 5)
	if _, _, ok := in.Pointer(); !ok {
		t.Error("pointer should return after the cursor moves")
	}
}
