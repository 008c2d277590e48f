package picking

import (
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// Pickable is an object that can be hit by a pick ray.
type Pickable interface {
	PickID() string
	PickBounds() AABB
}

// Source supplies the current set of pickable objects.
type Source interface {
	Pickables() []Pickable
}

// ViewState supplies the matrices the pick ray is built from.
type ViewState interface {
	ViewMatrix() math.Mat4
	ProjMatrix() math.Mat4
}

// Hit is a resolved pick: the entity, the world-space surface position and
// the entity bounds (used for fly-to framing).
type Hit struct {
	EntityID string
	WorldPos math.Vec3
	Bounds   AABB
}

// Controller resolves canvas positions against a pickable source.
// It is a pure query layer: a miss is a normal result, not an error.
type Controller struct {
	source    Source
	view      ViewState
	viewportW float32
	viewportH float32
}

// NewController creates a pick controller over the given source and view.
func NewController(source Source, view ViewState) *Controller {
	return &Controller{source: source, view: view, viewportW: 1, viewportH: 1}
}

// SetViewport updates the canvas dimensions used for ray construction.
func (c *Controller) SetViewport(w, h float32) {
	if w > 0 {
		c.viewportW = w
	}
	if h > 0 {
		c.viewportH = h
	}
}

// Pick resolves a canvas position to the nearest entity hit.
// Returns false when the ray misses everything.
func (c *Controller) Pick(canvas math.Vec2) (Hit, bool) {
	ray := c.RayThrough(canvas)

	var best Hit
	bestT := float32(-1)
	for _, p := range c.source.Pickables() {
		t, ok := ray.Intersect(p.PickBounds())
		if !ok {
			continue
		}
		if bestT < 0 || t < bestT {
			bestT = t
			best = Hit{
				EntityID: p.PickID(),
				WorldPos: ray.At(t),
				Bounds:   p.PickBounds(),
			}
		}
	}
	if bestT < 0 {
		return Hit{}, false
	}
	return best, true
}

// RayThrough builds the world-space ray through a canvas position.
func (c *Controller) RayThrough(canvas math.Vec2) Ray {
	viewProj := c.view.ProjMatrix().Mul(c.view.ViewMatrix())
	return ScreenToRay(canvas, c.viewportW, c.viewportH, viewProj.Inverse())
}
