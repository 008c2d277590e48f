package renderer

import (
	"testing"

	"github.com/yosiookita/xeokit-sdk/internal/engine/picking"
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

func TestWireframeVertices(t *testing.T) {
	b := picking.AABB{
		Min: math.Vec3{X: -1, Y: -2, Z: -3},
		Max: math.Vec3{X: 1, Y: 2, Z: 3},
	}
	verts := wireframeVertices(b)

	// 12 edges, 2 endpoints each, 3 components per vertex.
	if got, want := len(verts), 24*3; got != want {
		t.Fatalf("vertex floats = %d, want %d", got, want)
	}

	for i := 0; i < len(verts); i += 3 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		if x != b.Min.X && x != b.Max.X {
			t.Errorf("vertex %d: x = %v, want corner value", i/3, x)
		}
		if y != b.Min.Y && y != b.Max.Y {
			t.Errorf("vertex %d: y = %v, want corner value", i/3, y)
		}
		if z != b.Min.Z && z != b.Max.Z {
			t.Errorf("vertex %d: z = %v, want corner value", i/3, z)
		}
	}
}

func TestPivotCrossVertices(t *testing.T) {
	p := math.Vec3{X: 1, Y: 2, Z: 3}
	verts := pivotCrossVertices(p)

	// Three axis lines.
	if got, want := len(verts), 6*3; got != want {
		t.Fatalf("vertex floats = %d, want %d", got, want)
	}
	if verts[0] != p.X-pivotIndicatorSize || verts[3] != p.X+pivotIndicatorSize {
		t.Errorf("x axis endpoints = %v, %v, want centered on %v", verts[0], verts[3], p.X)
	}
}
