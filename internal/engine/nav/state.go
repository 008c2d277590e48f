package nav

import (
	"github.com/yosiookita/xeokit-sdk/internal/engine/camera"
	"github.com/yosiookita/xeokit-sdk/internal/engine/picking"
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// Picker resolves a canvas position to an optional entity hit.
// A miss is a normal result, not an error.
type Picker interface {
	Pick(canvasPos math.Vec2) (picking.Hit, bool)
}

// FlightAnimator is the fly-to collaborator. Implementations animate the
// camera across ticks; Stop cancels without firing the completion callback.
type FlightAnimator interface {
	FlyToBounds(center math.Vec3, radius, duration float32, onComplete func())
	FlyToLook(eye, look, up math.Vec3, duration float32, onComplete func())
	Stop()
}

// BoundsProvider supplies the scene bounds used by axis views.
type BoundsProvider func() (picking.AABB, bool)

// handler is the capability set every device handler implements.
type handler interface {
	handle(e InputEvent)
	reset()
	destroy()
}

type dragMode int

const (
	dragNone dragMode = iota
	dragRotate
	dragPan
)

// interactionState is the ephemeral per-session input bookkeeping, owned
// exclusively by the handler set.
type interactionState struct {
	pointerPos math.Vec2

	mouseDown  bool
	downButton Button
	downPos    math.Vec2
	drag       dragMode

	tapStartPos  math.Vec2
	tapStartTime float64 // ms; negative when no press is pending
	lastTapPos   math.Vec2
	lastTapTime  float64 // ms; negative when no tap is registered

	touches  []TouchPoint
	heldKeys map[Key]bool

	hoverEntity string
}

func newInteractionState() *interactionState {
	s := &interactionState{}
	s.reset()
	return s
}

func (s *interactionState) reset() {
	*s = interactionState{
		tapStartTime: -1,
		lastTapTime:  -1,
		heldKeys:     make(map[Key]bool),
	}
}

// pendingUpdate accumulates camera deltas contributed by handlers within one
// tick. The updater drains it; handlers never clear it themselves.
type pendingUpdate struct {
	rotateX float32 // horizontal drag, degrees
	rotateY float32 // vertical drag, degrees

	pan math.Vec3 // world-space

	dolly          float32 // world units, positive dollies in
	dollyTarget    math.Vec3
	hasDollyTarget bool
}

func (p *pendingUpdate) reset() {
	*p = pendingUpdate{}
}

// navContext is the shared interaction context passed by reference to every
// handler: one config, one state, one accumulator, one controller set.
type navContext struct {
	cfg     *Config
	state   *interactionState
	pending *pendingUpdate
	events  *Events

	cam   *camera.Camera
	pivot *pivotController
	pan   *panController

	picker      Picker         // optional
	flight      FlightAnimator // optional
	sceneBounds BoundsProvider // optional

	canvasW float32
	canvasH float32
}

// stopFlight cancels an in-progress fly-to; any direct user input takes
// precedence over an animation.
func (ctx *navContext) stopFlight() {
	if ctx.flight != nil {
		ctx.flight.Stop()
	}
}

// dollyDepthScale converts wheel detents to world units proportional to the
// current viewing distance, so zoom speed feels constant at any scale.
func (ctx *navContext) dollyDepthScale() float32 {
	d := ctx.cam.Eye.Distance(ctx.cam.Look) * 0.05
	if d < 0.05 {
		d = 0.05
	}
	return d
}

// pointerRay builds the world-space ray through a canvas position.
func (ctx *navContext) pointerRay(canvas math.Vec2) picking.Ray {
	viewProj := ctx.cam.ProjMatrix().Mul(ctx.cam.ViewMatrix())
	return picking.ScreenToRay(canvas, ctx.canvasW, ctx.canvasH, viewProj.Inverse())
}

// resolveDollyTarget stores the world point dolly motion should head for,
// honoring the dollyToPointer / dollyToPivot modes. With dollyToPointer and
// no surface under the pointer, the target falls back to a point along the
// pointer ray at the current look distance.
func (ctx *navContext) resolveDollyTarget(pointer math.Vec2) {
	switch {
	case ctx.cfg.DollyToPointer:
		if ctx.picker != nil {
			if hit, ok := ctx.picker.Pick(pointer); ok {
				ctx.pending.dollyTarget = hit.WorldPos
				ctx.pending.hasDollyTarget = true
				return
			}
		}
		ray := ctx.pointerRay(pointer)
		ctx.pending.dollyTarget = ray.At(ctx.cam.Eye.Distance(ctx.cam.Look))
		ctx.pending.hasDollyTarget = true
	case ctx.cfg.DollyToPivot && ctx.pivot.active():
		ctx.pending.dollyTarget = ctx.pivot.position()
		ctx.pending.hasDollyTarget = true
	}
}
