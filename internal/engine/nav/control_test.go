package nav

import (
	"testing"

	"github.com/yosiookita/xeokit-sdk/internal/engine/camera"
	"github.com/yosiookita/xeokit-sdk/internal/engine/picking"
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

type fakePicker struct {
	hit picking.Hit
	ok  bool
}

func (f *fakePicker) Pick(math.Vec2) (picking.Hit, bool) { return f.hit, f.ok }

type fakeFlight struct {
	stops       int
	boundsCalls int
	lookCalls   int

	lastEye  math.Vec3
	lastLook math.Vec3
	lastUp   math.Vec3
}

func (f *fakeFlight) FlyToBounds(center math.Vec3, radius, duration float32, onComplete func()) {
	f.boundsCalls++
}

func (f *fakeFlight) FlyToLook(eye, look, up math.Vec3, duration float32, onComplete func()) {
	f.lookCalls++
	f.lastEye, f.lastLook, f.lastUp = eye, look, up
}

func (f *fakeFlight) Stop() { f.stops++ }

type fakeSink struct {
	shows int
	hides int
	pos   math.Vec3
}

func (s *fakeSink) Show(p math.Vec3) { s.shows++; s.pos = p }
func (s *fakeSink) Hide()            { s.hides++ }

func newControl(opts ...Option) (*CameraControl, *camera.Camera) {
	cam := camera.New()
	cc := New(cam, opts...)
	cc.SetCanvasSize(800, 600)
	return cc, cam
}

func press(cc *CameraControl, b Button, pos math.Vec2, t float64) {
	cc.HandleInput(InputEvent{Type: EventMouseDown, Button: b, Pos: pos, Time: t})
}

func release(cc *CameraControl, b Button, pos math.Vec2, t float64) {
	cc.HandleInput(InputEvent{Type: EventMouseUp, Button: b, Pos: pos, Time: t})
}

func tap(cc *CameraControl, pos math.Vec2, down, up float64) {
	press(cc, ButtonLeft, pos, down)
	release(cc, ButtonLeft, pos, up)
}

func approx32(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestDollyModesMutuallyExclusive(t *testing.T) {
	cc, _ := newControl()

	cc.SetDollyToPointer(true)
	cc.SetDollyToPivot(true)
	if cc.DollyToPointer() {
		t.Error("dollyToPointer still set after enabling dollyToPivot")
	}
	if !cc.DollyToPivot() {
		t.Error("dollyToPivot not set")
	}

	cc.SetDollyToPointer(true)
	if cc.DollyToPivot() {
		t.Error("dollyToPivot still set after enabling dollyToPointer")
	}
	if !cc.DollyToPointer() {
		t.Error("dollyToPointer not set")
	}
}

func TestInertiaClamped(t *testing.T) {
	cc, _ := newControl()

	cc.SetRotationInertia(1.5)
	if got := cc.RotationInertia(); got != inertiaSoftCap {
		t.Errorf("rotation inertia = %v, want %v", got, float32(inertiaSoftCap))
	}
	cc.SetRotationInertia(-0.2)
	if got := cc.RotationInertia(); got != 0 {
		t.Errorf("rotation inertia = %v, want 0", got)
	}
	cc.SetDollyInertia(2)
	if got := cc.DollyInertia(); got != inertiaSoftCap {
		t.Errorf("dolly inertia = %v, want %v", got, float32(inertiaSoftCap))
	}
}

func TestRateSettersFallBackToDefaults(t *testing.T) {
	cc, _ := newControl()

	cc.SetDollyRate(3)
	if got := cc.DollyRate(); got != 3 {
		t.Errorf("dolly rate = %v, want 3", got)
	}
	cc.SetDollyRate(-1)
	if got := cc.DollyRate(); got != DefaultDollyRate {
		t.Errorf("dolly rate = %v, want default %v", got, float32(DefaultDollyRate))
	}
	cc.SetKeyboardPanRate(0)
	if got := cc.KeyboardPanRate(); got != DefaultKeyboardPanRate {
		t.Errorf("keyboard pan rate = %v, want default %v", got, float32(DefaultKeyboardPanRate))
	}
	cc.SetTapInterval(-10)
	if got := cc.TapInterval(); got != DefaultTapInterval {
		t.Errorf("tap interval = %v, want default %v", got, DefaultTapInterval)
	}
}

func TestKeyboardLayoutFallback(t *testing.T) {
	cc, _ := newControl()

	cc.SetKeyboardLayout(LayoutAZERTY)
	if got := cc.KeyboardLayout(); got != LayoutAZERTY {
		t.Errorf("layout = %q, want %q", got, LayoutAZERTY)
	}
	cc.SetKeyboardLayout("dvorak")
	if got := cc.KeyboardLayout(); got != LayoutQWERTY {
		t.Errorf("layout = %q, want fallback %q", got, LayoutQWERTY)
	}
}

func TestSetActiveResetsMidDrag(t *testing.T) {
	cc, _ := newControl()

	press(cc, ButtonLeft, math.Vec2{X: 400, Y: 300}, 0)
	cc.HandleInput(InputEvent{Type: EventMouseMove, Pos: math.Vec2{X: 500, Y: 300}, Time: 16})
	if cc.pending.rotateX == 0 {
		t.Fatal("drag produced no pending rotation")
	}

	cc.SetActive(false)
	if cc.pending.rotateX != 0 {
		t.Error("pending rotation not cleared by deactivation")
	}
	if cc.state.mouseDown {
		t.Error("mouse-down state not cleared by deactivation")
	}

	cc.HandleInput(InputEvent{Type: EventMouseMove, Pos: math.Vec2{X: 600, Y: 300}, Time: 32})
	if cc.pending.rotateX != 0 {
		t.Error("input accepted while inactive")
	}

	cc.SetActive(true)
	press(cc, ButtonLeft, math.Vec2{X: 400, Y: 300}, 48)
	cc.HandleInput(InputEvent{Type: EventMouseMove, Pos: math.Vec2{X: 450, Y: 300}, Time: 64})
	if cc.pending.rotateX == 0 {
		t.Error("input not accepted after reactivation")
	}
}

func TestPointerDisabledDropsPointerEventsOnly(t *testing.T) {
	cc, _ := newControl()
	cc.SetPointerEnabled(false)

	cc.HandleInput(InputEvent{Type: EventWheel, Wheel: 1})
	if cc.pending.dolly != 0 {
		t.Error("wheel accepted while pointer disabled")
	}

	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyW})
	if !cc.state.heldKeys[KeyW] {
		t.Error("keyboard dropped while only pointer is disabled")
	}
}

func TestDestroyIdempotent(t *testing.T) {
	cc, _ := newControl()

	picked := 0
	cc.Events.Picked.Listen(func(PickedEvent) { picked++ })

	cc.Destroy()
	cc.Destroy()

	cc.HandleInput(InputEvent{Type: EventWheel, Wheel: 1})
	if cc.pending.dolly != 0 {
		t.Error("input accepted after destroy")
	}
	if got := len(cc.Events.Picked.listeners); got != 0 {
		t.Errorf("listeners after destroy = %d, want 0", got)
	}
}

func TestRightClickEmitsOnceWithoutDrag(t *testing.T) {
	cc, _ := newControl()

	clicks := 0
	cc.Events.RightClick.Listen(func(RightClickEvent) { clicks++ })

	pos := math.Vec2{X: 100, Y: 100}
	press(cc, ButtonRight, pos, 0)
	release(cc, ButtonRight, pos, 50)
	if clicks != 1 {
		t.Errorf("right clicks = %d, want 1", clicks)
	}

	press(cc, ButtonRight, pos, 100)
	release(cc, ButtonRight, math.Vec2{X: 160, Y: 100}, 150)
	if clicks != 1 {
		t.Errorf("right clicks after drag = %d, want 1", clicks)
	}
}

func TestHoverEvents(t *testing.T) {
	picker := &fakePicker{
		hit: picking.Hit{EntityID: "box", WorldPos: math.Vec3{Z: 1}},
		ok:  true,
	}
	cc, _ := newControl(WithPicker(picker))

	var hovers, surfaces, outs, offs int
	cc.Events.Hover.Listen(func(HoverEvent) { hovers++ })
	cc.Events.HoverSurface.Listen(func(HoverSurfaceEvent) { surfaces++ })
	cc.Events.HoverOut.Listen(func(HoverOutEvent) { outs++ })
	cc.Events.HoverOff.Listen(func(HoverOffEvent) { offs++ })

	move := func(x float32) {
		cc.HandleInput(InputEvent{Type: EventMouseMove, Pos: math.Vec2{X: x, Y: 300}})
	}

	move(400)
	move(401)
	if hovers != 1 {
		t.Errorf("hover events = %d, want 1 for same entity", hovers)
	}
	if surfaces != 2 {
		t.Errorf("hover surface events = %d, want 2", surfaces)
	}

	picker.ok = false
	move(402)
	if outs != 1 {
		t.Errorf("hover out events = %d, want 1", outs)
	}
	if offs != 1 {
		t.Errorf("hover off events = %d, want 1", offs)
	}
}

func TestAxisViewFliesToSceneBounds(t *testing.T) {
	flight := &fakeFlight{}
	bounds := picking.AABB{Min: math.Vec3{X: -2, Y: -2, Z: -2}, Max: math.Vec3{X: 2, Y: 2, Z: 2}}
	cc, _ := newControl(
		WithFlight(flight),
		WithSceneBounds(func() (picking.AABB, bool) { return bounds, true }),
	)

	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: Key1})
	if flight.lookCalls != 1 {
		t.Fatalf("fly-to-look calls = %d, want 1", flight.lookCalls)
	}
	if flight.lastLook != bounds.Center() {
		t.Errorf("flight look = %v, want scene center %v", flight.lastLook, bounds.Center())
	}
	if flight.lastEye.X <= flight.lastLook.X {
		t.Errorf("view from +X: eye.X = %v not beyond center", flight.lastEye.X)
	}
}

func TestUserInputStopsFlight(t *testing.T) {
	flight := &fakeFlight{}
	cc, _ := newControl(WithFlight(flight))

	cc.HandleInput(InputEvent{Type: EventWheel, Wheel: 1})
	if flight.stops != 1 {
		t.Errorf("flight stops after wheel = %d, want 1", flight.stops)
	}
	press(cc, ButtonLeft, math.Vec2{X: 10, Y: 10}, 0)
	if flight.stops != 2 {
		t.Errorf("flight stops after mouse down = %d, want 2", flight.stops)
	}
	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: KeyW})
	if flight.stops != 3 {
		t.Errorf("flight stops after motion key = %d, want 3", flight.stops)
	}
}

func TestAxisViewKeyDoesNotCancelItsOwnFlight(t *testing.T) {
	flight := &fakeFlight{}
	bounds := picking.AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	cc, _ := newControl(
		WithFlight(flight),
		WithSceneBounds(func() (picking.AABB, bool) { return bounds, true }),
	)

	cc.HandleInput(InputEvent{Type: EventKeyDown, Key: Key3})
	if flight.lookCalls != 1 {
		t.Fatalf("fly-to-look calls = %d, want 1", flight.lookCalls)
	}
	if flight.stops != 0 {
		t.Errorf("flight stops = %d, want 0 for an axis-view key", flight.stops)
	}
}
