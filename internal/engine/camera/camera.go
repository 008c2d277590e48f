// Package camera provides the eye/look/up viewing camera and the movement
// primitives the navigation controller drives it with.
package camera

import (
	gomath "math"

	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// minLookDistance keeps the eye from collapsing onto the look point while
// dollying in.
const minLookDistance = 0.05

// Camera holds the viewing state. It is mutated only through its movement
// primitives; input handlers never touch it directly.
type Camera struct {
	Eye  math.Vec3
	Look math.Vec3
	Up   math.Vec3

	// WorldUp is the fixed world vertical used as the yaw axis.
	WorldUp math.Vec3

	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// New returns a camera with viewer defaults: eye on +Z looking at the origin.
func New() *Camera {
	return &Camera{
		Eye:     math.Vec3{X: 0, Y: 0, Z: 10},
		Look:    math.Vec3{},
		Up:      math.Vec3{Y: 1},
		WorldUp: math.Vec3{Y: 1},
		FOV:     60,
		Aspect:  16.0 / 9.0,
		Near:    0.1,
		Far:     10000,
	}
}

// ViewMatrix returns the view matrix for the current pose.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Look, c.Up)
}

// ProjMatrix returns the perspective projection matrix.
func (c *Camera) ProjMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewDir returns the normalized eye-to-look direction.
func (c *Camera) ViewDir() math.Vec3 {
	return c.Look.Sub(c.Eye).Normalize()
}

// Right returns the normalized camera right axis.
func (c *Camera) Right() math.Vec3 {
	return c.ViewDir().Cross(c.Up).Normalize()
}

func deg2rad(d float32) float32 {
	return d * gomath.Pi / 180
}

// rotation builds the combined yaw (about WorldUp) and pitch (about the
// camera right axis) rotation for a screen-space delta in degrees.
func (c *Camera) rotation(dxDeg, dyDeg float32) math.Quat {
	yaw := math.QuatAxisAngle(c.WorldUp.Normalize(), deg2rad(-dxDeg))
	pitch := math.QuatAxisAngle(c.Right(), deg2rad(-dyDeg))
	return yaw.Mul(pitch).Normalize()
}

// Orbit rotates the eye (and up) about the look point.
func (c *Camera) Orbit(dxDeg, dyDeg float32) {
	c.OrbitAround(c.Look, dxDeg, dyDeg)
}

// OrbitAround rotates eye, look and up about an arbitrary world-space pivot,
// preserving all distances to the pivot.
func (c *Camera) OrbitAround(pivot math.Vec3, dxDeg, dyDeg float32) {
	rot := c.rotation(dxDeg, dyDeg)
	c.Eye = pivot.Add(rot.Rotate(c.Eye.Sub(pivot)))
	c.Look = pivot.Add(rot.Rotate(c.Look.Sub(pivot)))
	c.Up = rot.Rotate(c.Up)
}

// RotateLook rotates the look point about a fixed eye (first-person look).
func (c *Camera) RotateLook(dxDeg, dyDeg float32) {
	rot := c.rotation(dxDeg, dyDeg)
	c.Look = c.Eye.Add(rot.Rotate(c.Look.Sub(c.Eye)))
	c.Up = rot.Rotate(c.Up)
}

// Translate moves eye and look by a world-space vector.
func (c *Camera) Translate(v math.Vec3) {
	c.Eye = c.Eye.Add(v)
	c.Look = c.Look.Add(v)
}

// Dolly moves the eye along the view direction. Positive dist moves toward
// the look point; the eye stops short of it.
func (c *Camera) Dolly(dist float32) {
	dir := c.ViewDir()
	d := c.Eye.Distance(c.Look)
	if dist > d-minLookDistance {
		dist = d - minLookDistance
	}
	c.Eye = c.Eye.Add(dir.Scale(dist))
}

// DollyToward moves eye and look along the ray toward a world-space target,
// stopping short of the target.
func (c *Camera) DollyToward(target math.Vec3, dist float32) {
	toTarget := target.Sub(c.Eye)
	d := toTarget.Length()
	if d < 1e-6 {
		return
	}
	if dist > d-minLookDistance {
		dist = d - minLookDistance
	}
	c.Translate(toTarget.Scale(dist / d))
}

// DollyForward moves eye and look together along the view direction
// (first-person dolly).
func (c *Camera) DollyForward(dist float32) {
	c.Translate(c.ViewDir().Scale(dist))
}
