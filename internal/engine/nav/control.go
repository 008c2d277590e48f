// Package nav implements the interactive camera navigation controller: it
// merges mouse, touch and keyboard input streams into one deterministic
// per-frame camera update with configurable inertia and pivot-based orbiting.
package nav

import (
	"go.uber.org/zap"

	"github.com/yosiookita/xeokit-sdk/internal/engine/camera"
	"github.com/yosiookita/xeokit-sdk/internal/logger"
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// CameraControl is the navigation facade. It owns the option table, the
// interaction state, the controller set and the device handlers, and
// re-emits high-level interaction events.
//
// All methods must be called from the host's input/render callback context;
// the controller is single-threaded by design.
type CameraControl struct {
	cfg     Config
	state   *interactionState
	pending *pendingUpdate
	pivot   *pivotController
	ctx     *navContext
	updater *cameraUpdater

	// handlers run in registration order: pick handlers resolve pivot and
	// entity state before the pan/rotate handlers that consume it.
	handlers []handler

	// Events are the high-level interaction signals.
	Events Events

	destroyed bool
}

// Option configures optional collaborators at construction.
type Option func(*CameraControl)

// WithPicker wires the object-picking collaborator.
func WithPicker(p Picker) Option {
	return func(cc *CameraControl) { cc.ctx.picker = p }
}

// WithFlight wires the fly-to animation collaborator.
func WithFlight(f FlightAnimator) Option {
	return func(cc *CameraControl) { cc.ctx.flight = f }
}

// WithPivotIndicator wires the optional pivot indicator visual.
func WithPivotIndicator(sink IndicatorSink) Option {
	return func(cc *CameraControl) { cc.pivot.sink = sink }
}

// WithSceneBounds wires the scene bounds provider used by axis views.
func WithSceneBounds(b BoundsProvider) Option {
	return func(cc *CameraControl) { cc.ctx.sceneBounds = b }
}

// New creates a camera control driving the given camera.
func New(cam *camera.Camera, opts ...Option) *CameraControl {
	cc := &CameraControl{
		cfg:     DefaultConfig(),
		state:   newInteractionState(),
		pending: &pendingUpdate{},
		pivot:   &pivotController{},
	}
	cc.ctx = &navContext{
		cfg:     &cc.cfg,
		state:   cc.state,
		pending: cc.pending,
		events:  &cc.Events,
		cam:     cam,
		pivot:   cc.pivot,
		canvasW: 800,
		canvasH: 600,
	}
	cc.ctx.pan = &panController{ctx: cc.ctx}
	cc.updater = &cameraUpdater{ctx: cc.ctx}

	for _, opt := range opts {
		opt(cc)
	}

	cc.handlers = []handler{
		&mouseMiscHandler{ctx: cc.ctx},
		&mousePickHandler{ctx: cc.ctx},
		&touchPickHandler{ctx: cc.ctx},
		&mousePanRotateDollyHandler{ctx: cc.ctx},
		&touchPanRotateDollyHandler{ctx: cc.ctx},
		&keyboardAxisViewHandler{ctx: cc.ctx},
		&keyboardPanRotateDollyHandler{ctx: cc.ctx},
	}
	return cc
}

// SetCanvasSize updates the canvas dimensions pan and rotation scaling are
// derived from. Call on host surface resize.
func (cc *CameraControl) SetCanvasSize(w, h float32) {
	if w > 0 {
		cc.ctx.canvasW = w
	}
	if h > 0 {
		cc.ctx.canvasH = h
	}
}

// HandleInput feeds one raw input event through the handler chain.
// Events are dropped while the controller is inactive; pointer events are
// dropped while pointer handling is disabled.
func (cc *CameraControl) HandleInput(e InputEvent) {
	if cc.destroyed || !cc.cfg.Active {
		return
	}
	if isPointerEvent(e.Type) && !cc.cfg.PointerEnabled {
		return
	}
	for _, h := range cc.handlers {
		h.handle(e)
	}
}

// Tick runs one render-tick update: handlers with continuous behavior
// contribute held-key deltas, then the updater drains the accumulator into
// the camera with inertia decay.
func (cc *CameraControl) Tick(dt float32) {
	if cc.destroyed || !cc.cfg.Active {
		return
	}
	tick := InputEvent{Type: EventTick, DT: dt}
	for _, h := range cc.handlers {
		h.handle(tick)
	}
	cc.updater.tick()
}

// Reset zeroes all pending deltas, residual motion and per-handler
// transient state. It is the universal recovery action and is safe to call
// redundantly.
func (cc *CameraControl) Reset() {
	cc.pending.reset()
	cc.state.reset()
	cc.updater.reset()
	cc.pivot.endDrag()
	for _, h := range cc.handlers {
		h.reset()
	}
}

// Destroy tears down every handler and clears all listeners. Idempotent.
func (cc *CameraControl) Destroy() {
	if cc.destroyed {
		return
	}
	cc.Reset()
	for _, h := range cc.handlers {
		h.destroy()
	}
	cc.pivot.deactivate()
	cc.Events.clearAll()
	cc.destroyed = true
}

// EndPivot explicitly deactivates the pivot anchor and hides its indicator.
func (cc *CameraControl) EndPivot() {
	cc.pivot.deactivate()
}

// PivotState returns the current pivot state.
func (cc *CameraControl) PivotState() PivotState {
	return cc.pivot.state
}

// PivotPosition returns the current pivot anchor position.
func (cc *CameraControl) PivotPosition() math.Vec3 {
	return cc.pivot.position()
}

// SetActive enables or disables the controller. Any change resets all
// transient interaction state first.
func (cc *CameraControl) SetActive(v bool) {
	if cc.cfg.Active == v {
		return
	}
	cc.Reset()
	cc.cfg.Active = v
}

// Active reports whether the controller is enabled.
func (cc *CameraControl) Active() bool { return cc.cfg.Active }

// SetPointerEnabled enables or disables pointer-device handling only.
// Any change resets all transient interaction state first.
func (cc *CameraControl) SetPointerEnabled(v bool) {
	if cc.cfg.PointerEnabled == v {
		return
	}
	cc.Reset()
	cc.cfg.PointerEnabled = v
}

// PointerEnabled reports whether pointer-device handling is enabled.
func (cc *CameraControl) PointerEnabled() bool { return cc.cfg.PointerEnabled }

// SetFirstPerson switches rotation and dolly to first-person semantics.
// Enabling it forces the pivot inactive.
func (cc *CameraControl) SetFirstPerson(v bool) {
	cc.cfg.FirstPerson = v
	if v {
		cc.pivot.deactivate()
	}
}

// FirstPerson reports whether first-person mode is enabled.
func (cc *CameraControl) FirstPerson() bool { return cc.cfg.FirstPerson }

// SetPlanView disables rotation entirely while set.
func (cc *CameraControl) SetPlanView(v bool) { cc.cfg.PlanView = v }

// PlanView reports whether plan view is enabled.
func (cc *CameraControl) PlanView() bool { return cc.cfg.PlanView }

// SetPivoting enables pivot-anchored orbiting. Disabling deactivates any
// current pivot.
func (cc *CameraControl) SetPivoting(v bool) {
	cc.cfg.Pivoting = v
	if !v {
		cc.pivot.deactivate()
	}
}

// Pivoting reports whether pivot-anchored orbiting is enabled.
func (cc *CameraControl) Pivoting() bool { return cc.cfg.Pivoting }

// SetDollyToPointer targets dolly motion at the point under the pointer.
// Mutually exclusive with dolly-to-pivot.
func (cc *CameraControl) SetDollyToPointer(v bool) {
	cc.cfg.DollyToPointer = v
	if v {
		cc.cfg.DollyToPivot = false
	}
}

// DollyToPointer reports whether dolly-to-pointer is enabled.
func (cc *CameraControl) DollyToPointer() bool { return cc.cfg.DollyToPointer }

// SetDollyToPivot targets dolly motion at the pivot position.
// Mutually exclusive with dolly-to-pointer.
func (cc *CameraControl) SetDollyToPivot(v bool) {
	cc.cfg.DollyToPivot = v
	if v {
		cc.cfg.DollyToPointer = false
	}
}

// DollyToPivot reports whether dolly-to-pivot is enabled.
func (cc *CameraControl) DollyToPivot() bool { return cc.cfg.DollyToPivot }

// SetConstrainVertical restricts eye motion to the horizontal plane in
// first-person mode.
func (cc *CameraControl) SetConstrainVertical(v bool) { cc.cfg.ConstrainVertical = v }

// ConstrainVertical reports whether vertical constraint is enabled.
func (cc *CameraControl) ConstrainVertical() bool { return cc.cfg.ConstrainVertical }

func clampInertia(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > inertiaSoftCap {
		return inertiaSoftCap
	}
	return v
}

// SetRotationInertia sets the rotation decay factor, clamped to [0, 1).
func (cc *CameraControl) SetRotationInertia(v float32) {
	cc.cfg.RotationInertia = clampInertia(v)
}

// RotationInertia returns the rotation decay factor.
func (cc *CameraControl) RotationInertia() float32 { return cc.cfg.RotationInertia }

// SetDollyInertia sets the dolly decay factor, clamped to [0, 1).
func (cc *CameraControl) SetDollyInertia(v float32) {
	cc.cfg.DollyInertia = clampInertia(v)
}

// DollyInertia returns the dolly decay factor.
func (cc *CameraControl) DollyInertia() float32 { return cc.cfg.DollyInertia }

func rateOrDefault(v, def float32) float32 {
	if v <= 0 {
		return def
	}
	return v
}

// SetDollyRate sets the wheel/pinch dolly scale; non-positive resets the
// default.
func (cc *CameraControl) SetDollyRate(v float32) {
	cc.cfg.DollyRate = rateOrDefault(v, DefaultDollyRate)
}

// DollyRate returns the dolly scale factor.
func (cc *CameraControl) DollyRate() float32 { return cc.cfg.DollyRate }

// SetMousePanRate sets the mouse pan scale; non-positive resets the default.
func (cc *CameraControl) SetMousePanRate(v float32) {
	cc.cfg.MousePanRate = rateOrDefault(v, DefaultMousePanRate)
}

// MousePanRate returns the mouse pan scale factor.
func (cc *CameraControl) MousePanRate() float32 { return cc.cfg.MousePanRate }

// SetKeyboardPanRate sets keyboard pan speed in world units per second;
// non-positive resets the default.
func (cc *CameraControl) SetKeyboardPanRate(v float32) {
	cc.cfg.KeyboardPanRate = rateOrDefault(v, DefaultKeyboardPanRate)
}

// KeyboardPanRate returns the keyboard pan speed.
func (cc *CameraControl) KeyboardPanRate() float32 { return cc.cfg.KeyboardPanRate }

// SetKeyboardOrbitRate sets arrow-key orbit speed in degrees per second;
// non-positive resets the default.
func (cc *CameraControl) SetKeyboardOrbitRate(v float32) {
	cc.cfg.KeyboardOrbitRate = rateOrDefault(v, DefaultKeyboardOrbitRate)
}

// KeyboardOrbitRate returns the arrow-key orbit speed.
func (cc *CameraControl) KeyboardOrbitRate() float32 { return cc.cfg.KeyboardOrbitRate }

// SetTouchRotateRate sets the one-finger rotation multiplier; non-positive
// resets the default.
func (cc *CameraControl) SetTouchRotateRate(v float32) {
	cc.cfg.TouchRotateRate = rateOrDefault(v, DefaultTouchRotateRate)
}

// TouchRotateRate returns the one-finger rotation multiplier.
func (cc *CameraControl) TouchRotateRate() float32 { return cc.cfg.TouchRotateRate }

// SetTouchPanRate sets the two-finger pan multiplier; non-positive resets
// the default.
func (cc *CameraControl) SetTouchPanRate(v float32) {
	cc.cfg.TouchPanRate = rateOrDefault(v, DefaultTouchPanRate)
}

// TouchPanRate returns the two-finger pan multiplier.
func (cc *CameraControl) TouchPanRate() float32 { return cc.cfg.TouchPanRate }

// SetTouchZoomRate sets the pinch dolly multiplier; non-positive resets the
// default.
func (cc *CameraControl) SetTouchZoomRate(v float32) {
	cc.cfg.TouchZoomRate = rateOrDefault(v, DefaultTouchZoomRate)
}

// TouchZoomRate returns the pinch dolly multiplier.
func (cc *CameraControl) TouchZoomRate() float32 { return cc.cfg.TouchZoomRate }

// SetTapInterval sets the maximum press duration, in milliseconds, for a
// press/release pair to classify as a tap; non-positive resets the default.
func (cc *CameraControl) SetTapInterval(ms float64) {
	if ms <= 0 {
		ms = DefaultTapInterval
	}
	cc.cfg.TapInterval = ms
}

// TapInterval returns the tap window in milliseconds.
func (cc *CameraControl) TapInterval() float64 { return cc.cfg.TapInterval }

// SetDoubleTapInterval sets the maximum time, in milliseconds, between two
// taps classifying as a double-tap; non-positive resets the default.
func (cc *CameraControl) SetDoubleTapInterval(ms float64) {
	if ms <= 0 {
		ms = DefaultDoubleTapInterval
	}
	cc.cfg.DoubleTapInterval = ms
}

// DoubleTapInterval returns the double-tap window in milliseconds.
func (cc *CameraControl) DoubleTapInterval() float64 { return cc.cfg.DoubleTapInterval }

// SetTapDistanceThreshold sets the maximum pointer displacement, in pixels,
// for a tap; non-positive resets the default.
func (cc *CameraControl) SetTapDistanceThreshold(px float32) {
	cc.cfg.TapDistanceThreshold = rateOrDefault(px, DefaultTapDistanceThreshold)
}

// TapDistanceThreshold returns the tap displacement threshold in pixels.
func (cc *CameraControl) TapDistanceThreshold() float32 { return cc.cfg.TapDistanceThreshold }

// SetDoublePickFlyTo makes a double-pick on an entity fly the camera to its
// bounds.
func (cc *CameraControl) SetDoublePickFlyTo(v bool) { cc.cfg.DoublePickFlyTo = v }

// DoublePickFlyTo reports whether double-pick fly-to is enabled.
func (cc *CameraControl) DoublePickFlyTo() bool { return cc.cfg.DoublePickFlyTo }

// SetPanRightClick makes right-click-drag pan instead of middle-click.
func (cc *CameraControl) SetPanRightClick(v bool) { cc.cfg.PanRightClick = v }

// PanRightClick reports whether right-click panning is enabled.
func (cc *CameraControl) PanRightClick() bool { return cc.cfg.PanRightClick }

// SetKeyboardLayout selects the keyboard layout. An unrecognized value logs
// a warning and falls back to qwerty.
func (cc *CameraControl) SetKeyboardLayout(layout KeyboardLayout) {
	switch layout {
	case LayoutQWERTY, LayoutAZERTY:
		cc.cfg.KeyboardLayout = layout
	default:
		logger.Warn("unknown keyboard layout, falling back to qwerty",
			zap.String("layout", string(layout)))
		cc.cfg.KeyboardLayout = LayoutQWERTY
	}
}

// KeyboardLayout returns the active keyboard layout.
func (cc *CameraControl) KeyboardLayout() KeyboardLayout { return cc.cfg.KeyboardLayout }
