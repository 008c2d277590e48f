package scene

import (
	"testing"

	"github.com/yosiookita/xeokit-sdk/internal/engine/picking"
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

func box(id string, center math.Vec3) *Entity {
	half := math.Vec3{X: 1, Y: 1, Z: 1}
	return &Entity{
		ID:     id,
		Bounds: picking.AABB{Min: center.Sub(half), Max: center.Add(half)},
	}
}

func TestAddAndGet(t *testing.T) {
	s := New()
	s.Add(box("a", math.Vec3{}))
	s.Add(box("b", math.Vec3{X: 5}))

	if got := s.Get("a"); got == nil || got.ID != "a" {
		t.Errorf("Get(a) = %v, want entity a", got)
	}
	if got := s.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if got := len(s.Entities()); got != 2 {
		t.Errorf("entity count = %d, want 2", got)
	}
}

func TestAddDuplicateReplaces(t *testing.T) {
	s := New()
	s.Add(box("a", math.Vec3{}))
	replacement := box("a", math.Vec3{X: 10})
	s.Add(replacement)

	if got := len(s.Entities()); got != 1 {
		t.Fatalf("entity count = %d, want 1 after replacement", got)
	}
	if s.Get("a") != replacement {
		t.Error("Get(a) did not return the replacement entity")
	}
	if s.Entities()[0] != replacement {
		t.Error("entity list still holds the replaced entity")
	}
}

func TestPickables(t *testing.T) {
	s := New()
	s.Add(box("a", math.Vec3{}))
	s.Add(box("b", math.Vec3{X: 5}))

	ps := s.Pickables()
	if len(ps) != 2 {
		t.Fatalf("pickable count = %d, want 2", len(ps))
	}
	if ps[0].PickID() != "a" || ps[1].PickID() != "b" {
		t.Errorf("pickable IDs = %q, %q, want a, b", ps[0].PickID(), ps[1].PickID())
	}
}

func TestBoundsUnion(t *testing.T) {
	s := New()
	if _, ok := s.Bounds(); ok {
		t.Error("empty scene reported bounds")
	}

	s.Add(box("a", math.Vec3{X: -4}))
	s.Add(box("b", math.Vec3{X: 4}))

	b, ok := s.Bounds()
	if !ok {
		t.Fatal("scene with entities reported no bounds")
	}
	if b.Min.X != -5 || b.Max.X != 5 {
		t.Errorf("bounds x = [%v, %v], want [-5, 5]", b.Min.X, b.Max.X)
	}
}
