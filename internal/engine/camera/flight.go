package camera

import (
	gomath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// DefaultFlightDuration is used when a fly-to is requested with a
// non-positive duration.
const DefaultFlightDuration = 0.5

// Flight animates the camera pose toward a target over time. It advances on
// the render tick, one Update per frame, and is cancellable at any point.
type Flight struct {
	cam *Camera

	tween      *gween.Tween
	fromEye    math.Vec3
	fromLook   math.Vec3
	fromUp     math.Vec3
	toEye      math.Vec3
	toLook     math.Vec3
	toUp       math.Vec3
	flying     bool
	onComplete func()
}

// NewFlight creates a flight animator for the given camera.
func NewFlight(cam *Camera) *Flight {
	return &Flight{cam: cam}
}

// FlyToLook animates the camera to the given pose over duration seconds.
// onComplete may be nil; it fires once when the flight lands.
func (f *Flight) FlyToLook(eye, look, up math.Vec3, duration float32, onComplete func()) {
	if duration <= 0 {
		duration = DefaultFlightDuration
	}
	f.fromEye, f.fromLook, f.fromUp = f.cam.Eye, f.cam.Look, f.cam.Up
	f.toEye, f.toLook, f.toUp = eye, look, up
	f.tween = gween.New(0, 1, duration, ease.InOutQuad)
	f.flying = true
	f.onComplete = onComplete
}

// FlyToBounds frames a bounding sphere: the look point lands on the center
// and the eye backs off along the current view direction far enough for the
// sphere to fit the vertical field of view.
func (f *Flight) FlyToBounds(center math.Vec3, radius float32, duration float32, onComplete func()) {
	if radius <= 0 {
		radius = 1
	}
	dist := radius / float32(gomath.Tan(float64(deg2rad(f.cam.FOV)/2)))
	eye := center.Sub(f.cam.ViewDir().Scale(dist))
	f.FlyToLook(eye, center, f.cam.Up, duration, onComplete)
}

// Flying reports whether a flight is in progress.
func (f *Flight) Flying() bool {
	return f.flying
}

// Stop cancels an in-progress flight, leaving the camera where it is.
// The completion callback does not fire.
func (f *Flight) Stop() {
	f.flying = false
	f.tween = nil
	f.onComplete = nil
}

// Update advances the flight by dt seconds and writes the interpolated pose
// to the camera. Safe to call when no flight is active.
func (f *Flight) Update(dt float32) {
	if !f.flying || f.tween == nil {
		return
	}
	t, done := f.tween.Update(dt)
	f.cam.Eye = f.fromEye.Lerp(f.toEye, t)
	f.cam.Look = f.fromLook.Lerp(f.toLook, t)
	f.cam.Up = f.fromUp.Lerp(f.toUp, t).Normalize()
	if done {
		cb := f.onComplete
		f.Stop()
		if cb != nil {
			cb()
		}
	}
}
