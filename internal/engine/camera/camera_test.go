package camera

import (
	"testing"

	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

func approx(a, b float32, eps float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func TestOrbitPreservesDistanceToLook(t *testing.T) {
	c := New()
	before := c.Eye.Distance(c.Look)
	c.Orbit(30, 15)
	after := c.Eye.Distance(c.Look)
	if !approx(before, after, 1e-3) {
		t.Errorf("orbit changed eye-look distance: %v -> %v", before, after)
	}
}

func TestOrbitAroundPreservesDistanceToPivot(t *testing.T) {
	c := New()
	pivot := math.Vec3{X: 3, Y: 0, Z: -2}
	before := c.Eye.Distance(pivot)
	c.OrbitAround(pivot, 45, -20)
	after := c.Eye.Distance(pivot)
	if !approx(before, after, 1e-3) {
		t.Errorf("pivot orbit changed eye-pivot distance: %v -> %v", before, after)
	}
}

func TestRotateLookKeepsEyeFixed(t *testing.T) {
	c := New()
	eye := c.Eye
	c.RotateLook(25, 10)
	if c.Eye != eye {
		t.Errorf("first-person look moved the eye: %v -> %v", eye, c.Eye)
	}
	if c.Look == (math.Vec3{}) {
		t.Error("look point did not move")
	}
}

func TestDollyStopsShortOfLook(t *testing.T) {
	c := New() // eye at z=10 looking at origin
	c.Dolly(100)
	if d := c.Eye.Distance(c.Look); d < minLookDistance-1e-4 {
		t.Errorf("dolly overshot the look point, distance %v", d)
	}
	if c.Look != (math.Vec3{}) {
		t.Errorf("orbit dolly moved the look point to %v", c.Look)
	}
}

func TestDollyTowardMovesEyeAndLook(t *testing.T) {
	c := New()
	target := math.Vec3{X: 0, Y: 0, Z: -5}
	look := c.Look
	c.DollyToward(target, 3)
	if !approx(c.Eye.Z, 7, 1e-4) {
		t.Errorf("eye.Z = %v, want 7", c.Eye.Z)
	}
	if c.Look == look {
		t.Error("dolly toward target should carry the look point")
	}
}

func TestDollyForwardKeepsOrientation(t *testing.T) {
	c := New()
	dir := c.ViewDir()
	c.DollyForward(4)
	if got := c.ViewDir(); !approx(got.Dot(dir), 1, 1e-4) {
		t.Errorf("first-person dolly changed view direction: %v -> %v", dir, got)
	}
}

func TestFlightReachesTarget(t *testing.T) {
	c := New()
	f := NewFlight(c)
	done := false
	toEye := math.Vec3{X: 5, Y: 5, Z: 5}
	toLook := math.Vec3{X: 1, Y: 0, Z: 0}
	f.FlyToLook(toEye, toLook, math.Vec3{Y: 1}, 0.5, func() { done = true })

	for i := 0; i < 60 && f.Flying(); i++ {
		f.Update(1.0 / 60.0)
	}
	if !done {
		t.Fatal("flight did not complete")
	}
	if c.Eye.Distance(toEye) > 1e-3 || c.Look.Distance(toLook) > 1e-3 {
		t.Errorf("flight landed at eye=%v look=%v, want eye=%v look=%v", c.Eye, c.Look, toEye, toLook)
	}
}

func TestFlightStopCancels(t *testing.T) {
	c := New()
	f := NewFlight(c)
	done := false
	f.FlyToLook(math.Vec3{X: 5}, math.Vec3{}, math.Vec3{Y: 1}, 1, func() { done = true })
	f.Update(0.1)
	f.Stop()
	if f.Flying() {
		t.Error("flight still flying after Stop")
	}
	f.Update(5)
	if done {
		t.Error("completion callback fired after Stop")
	}
}

func TestFlyToBoundsFramesCenter(t *testing.T) {
	c := New()
	f := NewFlight(c)
	center := math.Vec3{X: 2, Y: 1, Z: 0}
	f.FlyToBounds(center, 3, 0.25, nil)
	for i := 0; i < 60 && f.Flying(); i++ {
		f.Update(1.0 / 60.0)
	}
	if c.Look.Distance(center) > 1e-3 {
		t.Errorf("look = %v, want bounds center %v", c.Look, center)
	}
	if c.Eye.Distance(center) < 3 {
		t.Errorf("eye distance %v inside bounding radius", c.Eye.Distance(center))
	}
}
