// Package picking resolves canvas coordinates to world-space surface hits.
package picking

import (
	gomath "math"

	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB builds an AABB, swapping corners per axis so Min <= Max holds.
func NewAABB(min, max math.Vec3) AABB {
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	if min.Z > max.Z {
		min.Z, max.Z = max.Z, min.Z
	}
	return AABB{Min: min, Max: max}
}

// Center returns the box center.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns half the box diagonal.
func (b AABB) Radius() float32 {
	return b.Max.Sub(b.Min).Length() / 2
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: math.Vec3{
			X: minf(b.Min.X, other.Min.X),
			Y: minf(b.Min.Y, other.Min.Y),
			Z: minf(b.Min.Z, other.Min.Z),
		},
		Max: math.Vec3{
			X: maxf(b.Max.X, other.Max.X),
			Y: maxf(b.Max.Y, other.Max.Y),
			Z: maxf(b.Max.Z, other.Max.Z),
		},
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// ScreenToRay converts a canvas position to a world-space ray by unprojecting
// through the inverse view-projection matrix.
func ScreenToRay(canvas math.Vec2, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*canvas.X/viewportW - 1
	ndcY := 1 - 2*canvas.Y/viewportH

	near := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1, 1})
	far := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1, 1})
	if near[3] != 0 {
		near[0], near[1], near[2] = near[0]/near[3], near[1]/near[3], near[2]/near[3]
	}
	if far[3] != 0 {
		far[0], far[1], far[2] = far[0]/far[3], far[1]/far[3], far[2]/far[3]
	}

	origin := math.Vec3{X: near[0], Y: near[1], Z: near[2]}
	dir := math.Vec3{X: far[0] - near[0], Y: far[1] - near[1], Z: far[2] - near[2]}.Normalize()
	return Ray{Origin: origin, Direction: dir}
}

// Intersect tests the ray against an AABB using the slab method.
// Returns the entry distance, or the exit distance when the ray starts
// inside the box.
func (r Ray) Intersect(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origins := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dirs := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	mins := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	maxs := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dirs[axis] != 0 {
			t1 := (mins[axis] - origins[axis]) / dirs[axis]
			t2 := (maxs[axis] - origins[axis]) / dirs[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origins[axis] < mins[axis] || origins[axis] > maxs[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
