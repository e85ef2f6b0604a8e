package canopy

// LayerAllocator hands out draw layers. Each object receives the next counter
// value the first time it is drawn; every destroy gives one value back,
// whichever object it was. Layers are therefore counter positions, not
// identities: after destroying the middle of three drawn objects, the next
// newly drawn object reuses layer 3.
//
// A Game owns one allocator and shares it with every scene it creates, so
// layering survives scene switches. Scenes created with a nil allocator get
// a private one.
type LayerAllocator struct {
	current int
}

// NewLayerAllocator creates an allocator whose counter starts at 0.
func NewLayerAllocator() *LayerAllocator {
	return &LayerAllocator{}
}

// Current returns the counter value, which is also the highest layer handed
// out since the last release.
func (a *LayerAllocator) Current() int {
	return a.current
}

// Assign gives o its layer on the first draw of its drawn session. Later
// calls leave the layer unchanged. Reports whether a layer was assigned.
func (a *LayerAllocator) Assign(o *GameObject) bool {
	if o == nil || o.drawn {
		return false
	}
	o.drawn = true
	a.current++
	o.layer = a.current
	return true
}

// Release returns one layer to the allocator. The counter never drops below 0.
func (a *LayerAllocator) Release() {
	if a.current > 0 {
		a.current--
	}
}

// Reset sets the counter back to 0. Objects keep the layers they hold.
func (a *LayerAllocator) Reset() {
	a.current = 0
}
