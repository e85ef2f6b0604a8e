package canopy

import "time"

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, object lifecycle events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event ObjectEvent)
}

// ObjectEvent carries lifecycle data for the ECS bridge.
type ObjectEvent struct {
	Type     EventType
	EntityID uint32
	ObjectID uint32
	Layer    int
	Bounds   Rect
}

// Scene owns an ordered list of game objects and UI roots. Object order is
// creation order, not draw order. Only members of the list can be drawn,
// collided or act as occluders.
type Scene struct {
	// Paused skips OnUpdate and UI updates. The last frame's commands stay
	// on screen.
	Paused bool

	// OcclusionMode selects how WasLeftClicked walks potential occluders.
	OcclusionMode OcclusionMode

	// ClearColor fills the screen before the scene's commands are submitted.
	// The zero value leaves the screen transparent black.
	ClearColor Color

	// OnUpdate is the per-frame scene callback. It runs before UI updates and
	// receives the frame delta in seconds.
	OnUpdate func(dt float64)

	objects []*GameObject
	members map[*GameObject]struct{}
	ui      []*ScreenGUI

	layers   *LayerAllocator
	input    *Input
	commands *CommandBuffer
	store    EntityStore
	debug    bool

	sortBuf []*GameObject
}

// NewScene creates an empty scene. A nil allocator or input gives the scene
// its own; pass the Game's to share layering and input across scenes.
func NewScene(layers *LayerAllocator, input *Input) *Scene {
	if layers == nil {
		layers = NewLayerAllocator()
	}
	if input == nil {
		input = NewInput()
	}
	return &Scene{
		members:  make(map[*GameObject]struct{}),
		layers:   layers,
		input:    input,
		commands: NewCommandBuffer(),
	}
}

// Objects returns the scene's objects in creation order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Objects() []*GameObject {
	return s.objects
}

// UI returns the scene's UI roots in creation order. The returned slice MUST
// NOT be mutated.
func (s *Scene) UI() []*ScreenGUI {
	return s.ui
}

// Layers returns the scene's layer allocator.
func (s *Scene) Layers() *LayerAllocator {
	return s.layers
}

// Input returns the input snapshot the scene resolves clicks against.
func (s *Scene) Input() *Input {
	return s.input
}

// Commands returns the commands recorded during the last update.
func (s *Scene) Commands() *CommandBuffer {
	return s.commands
}

// Has reports whether o is currently a member of the scene.
func (s *Scene) Has(o *GameObject) bool {
	if o == nil {
		return false
	}
	_, ok := s.members[o]
	return ok
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, membership
// violations print warnings and per-frame stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// CheckCollision reports whether a and b overlap. Both must be members of the
// scene; otherwise the answer is false.
func (s *Scene) CheckCollision(a, b *GameObject) bool {
	if !s.Has(a) || !s.Has(b) {
		if s.debug {
			debugWarn("collision test with non-member object")
		}
		return false
	}
	return Overlaps(a.Bounds(), b.Bounds())
}

// Update runs one frame: clears the recorded commands, calls OnUpdate, then
// updates every enabled UI root. A paused scene does nothing.
func (s *Scene) Update(dt float64) {
	if s.Paused {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.commands.Reset()
	if s.OnUpdate != nil {
		s.OnUpdate(dt)
	}
	for _, root := range s.ui {
		if root.Enabled {
			root.Update(dt, s.commands)
		}
	}

	if s.debug {
		s.debugLog(debugStats{
			updateTime:   time.Since(t0),
			commandCount: s.commands.Len(),
			objectCount:  len(s.objects),
			layer:        s.layers.Current(),
		})
	}
}

func (s *Scene) add(o *GameObject) {
	s.objects = append(s.objects, o)
	s.members[o] = struct{}{}
}

func (s *Scene) remove(o *GameObject) {
	if !s.Has(o) {
		return
	}
	delete(s.members, o)
	for i := range s.objects {
		if s.objects[i] == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			break
		}
	}
	s.layers.Release()
	s.emit(EventDestroyed, o)
}

func (s *Scene) addUI(g *ScreenGUI) {
	s.ui = append(s.ui, g)
}

// emit forwards a lifecycle event to the entity store, if any.
func (s *Scene) emit(t EventType, o *GameObject) {
	if s.store == nil || o.EntityID == 0 {
		return
	}
	s.store.EmitEvent(ObjectEvent{
		Type:     t,
		EntityID: o.EntityID,
		ObjectID: o.ID,
		Layer:    o.layer,
		Bounds:   o.Bounds(),
	})
}
