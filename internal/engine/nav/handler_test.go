package nav

import (
	"testing"

	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

func TestHeldKeyPansForward(t *testing.T) {
	cc, cam := newControl()

	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyW})
	cc.Tick(0.1)

	// KeyboardPanRate defaults to 5 world units per second.
	if got, want := cam.Eye.Z, float32(9.5); !approx32(got, want, 1e-4) {
		t.Errorf("eye.Z = %v, want %v after 0.1s forward", got, want)
	}
	if got, want := cam.Look.Z, float32(-0.5); !approx32(got, want, 1e-4) {
		t.Errorf("look.Z = %v, want %v", got, want)
	}

	cc.HandleInput(InputEvent{Type: EventKeyUp, Key: KeyW})
	before := cam.Eye
	cc.Tick(0.1)
	if cam.Eye != before {
		t.Errorf("eye moved from %v to %v after key release", before, cam.Eye)
	}
}

func TestOpposedKeysCancel(t *testing.T) {
	cc, cam := newControl()

	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyA})
	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyD})
	cc.Tick(0.1)

	if cam.Eye != (math.Vec3{Z: 10}) {
		t.Errorf("eye = %v, want unchanged with opposed keys held", cam.Eye)
	}
}

func TestAzertyBindings(t *testing.T) {
	cc, cam := newControl()
	cc.SetKeyboardLayout(LayoutAZERTY)

	// Z is forward on azerty.
	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyZ})
	cc.Tick(0.1)
	if got, want := cam.Eye.Z, float32(9.5); !approx32(got, want, 1e-4) {
		t.Errorf("eye.Z = %v, want %v for azerty forward", got, want)
	}
	cc.HandleInput(InputEvent{Type: EventKeyUp, Key: KeyZ})

	// W does nothing on azerty.
	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyW})
	before := cam.Eye
	cc.Tick(0.1)
	if cam.Eye != before {
		t.Errorf("eye moved from %v to %v on unbound key", before, cam.Eye)
	}
}

func TestArrowKeysOrbit(t *testing.T) {
	cc, cam := newControl()

	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyArrowRight})
	cc.Tick(0.1)

	if cam.Eye.X == 0 {
		t.Error("eye.X = 0, want horizontal orbit from arrow key")
	}
	if got, want := cam.Eye.Distance(cam.Look), float32(10); !approx32(got, want, 1e-3) {
		t.Errorf("eye-look distance = %v, want %v preserved", got, want)
	}
}

func TestArrowKeysIgnoredInPlanView(t *testing.T) {
	cc, cam := newControl()
	cc.SetPlanView(true)

	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyArrowRight})
	cc.Tick(0.1)

	if cam.Eye != (math.Vec3{Z: 10}) {
		t.Errorf("eye = %v, want unchanged in plan view", cam.Eye)
	}
}

func touchEvent(typ EventType, t float64, touches ...TouchPoint) InputEvent {
	e := InputEvent{Type: typ, Time: t, Touches: touches}
	if len(touches) > 0 {
		e.Pos = touches[0].Pos
	}
	return e
}

func TestOneFingerDragRotates(t *testing.T) {
	cc, cam := newControl()

	cc.HandleInput(touchEvent(EventTouchStart, 0,
		TouchPoint{ID: 1, Pos: math.Vec2{X: 400, Y: 300}}))
	cc.HandleInput(touchEvent(EventTouchMove, 16,
		TouchPoint{ID: 1, Pos: math.Vec2{X: 460, Y: 300}}))
	cc.Tick(1.0 / 60)

	if cam.Eye.X == 0 {
		t.Error("eye.X = 0, want orbit from one-finger drag")
	}
	if got, want := cam.Eye.Distance(cam.Look), float32(10); !approx32(got, want, 1e-3) {
		t.Errorf("eye-look distance = %v, want %v preserved", got, want)
	}
}

func TestPinchOutDolliesIn(t *testing.T) {
	cc, cam := newControl()

	cc.HandleInput(touchEvent(EventTouchStart, 0,
		TouchPoint{ID: 1, Pos: math.Vec2{X: 380, Y: 300}},
		TouchPoint{ID: 2, Pos: math.Vec2{X: 420, Y: 300}}))
	cc.HandleInput(touchEvent(EventTouchMove, 16,
		TouchPoint{ID: 1, Pos: math.Vec2{X: 340, Y: 300}},
		TouchPoint{ID: 2, Pos: math.Vec2{X: 460, Y: 300}}))
	cc.Tick(1.0 / 60)

	if cam.Eye.Z >= 10 {
		t.Errorf("eye.Z = %v, want < 10 after pinch out", cam.Eye.Z)
	}
}

func TestTwoFingerDragPans(t *testing.T) {
	cc, cam := newControl()

	cc.HandleInput(touchEvent(EventTouchStart, 0,
		TouchPoint{ID: 1, Pos: math.Vec2{X: 380, Y: 300}},
		TouchPoint{ID: 2, Pos: math.Vec2{X: 420, Y: 300}}))
	cc.HandleInput(touchEvent(EventTouchMove, 16,
		TouchPoint{ID: 1, Pos: math.Vec2{X: 430, Y: 300}},
		TouchPoint{ID: 2, Pos: math.Vec2{X: 470, Y: 300}}))
	cc.Tick(1.0 / 60)

	if cam.Eye.X == 0 {
		t.Fatal("eye did not move on two-finger pan")
	}
	delta := cam.Eye.Sub(math.Vec3{Z: 10})
	if cam.Look != delta {
		t.Errorf("look moved by %v, eye by %v; pan must translate both equally", cam.Look, delta)
	}
}

func TestMismatchedTouchIDsIgnored(t *testing.T) {
	cc, cam := newControl()

	cc.HandleInput(touchEvent(EventTouchStart, 0,
		TouchPoint{ID: 1, Pos: math.Vec2{X: 400, Y: 300}}))
	cc.HandleInput(touchEvent(EventTouchMove, 16,
		TouchPoint{ID: 2, Pos: math.Vec2{X: 460, Y: 300}}))
	cc.Tick(1.0 / 60)

	if cam.Eye != (math.Vec3{Z: 10}) {
		t.Errorf("eye = %v, want unchanged for mismatched touch IDs", cam.Eye)
	}
}
