package canopy

import (
	"cmp"
	"slices"
)

// OcclusionMode selects the candidate order used by WasLeftClicked.
type OcclusionMode uint8

const (
	// OcclusionInsertionOrder walks objects newest-first and stops at the
	// first one whose layer is not above the clicked object's. Creation order
	// stands in for layer order, which holds as long as objects are destroyed
	// in the reverse of the order they were drawn.
	OcclusionInsertionOrder OcclusionMode = iota
	// OcclusionLayerOrder walks objects by layer, highest first, so a newer
	// object holding a reused low layer cannot hide an older occluder.
	OcclusionLayerOrder
)

// PointInObject reports whether (x, y) lies inside o's bounds, edges included.
func PointInObject(x, y float64, o *GameObject) bool {
	if o == nil {
		return false
	}
	return o.Bounds().Contains(x, y)
}

// collides is CheckCollision without the debug warning.
func (s *Scene) collides(a, b *GameObject) bool {
	return s.Has(a) && s.Has(b) && Overlaps(a.Bounds(), b.Bounds())
}

// WasLeftClicked reports whether the pointer is down inside o and no object
// with a higher layer both overlaps o and contains the pointer.
//
// Membership of o itself is not checked: a destroyed object can still report
// a click, and since it no longer collides with anything nothing occludes it.
func (s *Scene) WasLeftClicked(o *GameObject) bool {
	if o == nil {
		return false
	}
	px, py, ok := s.input.Pointer()
	if !ok || !PointInObject(px, py, o) || !s.input.Down() {
		return false
	}
	if s.debug && !s.Has(o) {
		debugWarn("click test on non-member object %q (ID %d)", o.Name, o.ID)
	}

	if s.OcclusionMode == OcclusionLayerOrder {
		return !s.occludedByLayer(o, px, py)
	}

	for i := len(s.objects) - 1; i >= 0; i-- {
		other := s.objects[i]
		if other == o {
			continue
		}
		if other.layer <= o.layer {
			break
		}
		if !s.collides(o, other) {
			continue
		}
		if PointInObject(px, py, other) {
			return false
		}
	}
	return true
}

// occludedByLayer applies the occlusion rules to objects sorted by layer,
// highest first. Equal layers keep newest-first order.
func (s *Scene) occludedByLayer(o *GameObject, px, py float64) bool {
	buf := s.sortBuf[:0]
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i] != o {
			buf = append(buf, s.objects[i])
		}
	}
	slices.SortStableFunc(buf, func(a, b *GameObject) int {
		return cmp.Compare(b.layer, a.layer)
	})
	s.sortBuf = buf

	for _, other := range buf {
		if other.layer <= o.layer {
			break
		}
		if s.collides(o, other) && PointInObject(px, py, other) {
			return true
		}
	}
	return false
}

// TopmostAt returns the drawn member with the highest layer whose bounds
// contain (x, y), or nil. Ties go to the most recently created object.
func (s *Scene) TopmostAt(x, y float64) *GameObject {
	var top *GameObject
	for i := len(s.objects) - 1; i >= 0; i-- {
		o := s.objects[i]
		if !o.drawn || !PointInObject(x, y, o) {
			continue
		}
		if top == nil || o.layer > top.layer {
			top = o
		}
	}
	return top
}
