package nav

import (
	gomath "math"

	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// keyBindings maps movement intents onto physical keys for one layout.
type keyBindings struct {
	forward, back Key
	left, right   Key
	up, down      Key
}

func bindingsFor(layout KeyboardLayout) keyBindings {
	if layout == LayoutAZERTY {
		return keyBindings{
			forward: KeyZ, back: KeyS,
			left: KeyQ, right: KeyD,
			up: KeyE, down: KeyA,
		}
	}
	return keyBindings{
		forward: KeyW, back: KeyS,
		left: KeyA, right: KeyD,
		up: KeyE, down: KeyQ,
	}
}

// keyboardPanRotateDollyHandler turns held keys into continuous pan and
// rotation deltas, contributed once per tick.
type keyboardPanRotateDollyHandler struct {
	ctx *navContext
}

func (h *keyboardPanRotateDollyHandler) handle(e InputEvent) {
	ctx := h.ctx
	switch e.Type {
	case EventKeyDown:
		// Only motion keys cancel a fly-to; the axis-view keys start one.
		if h.motionKey(e.Key) {
			ctx.stopFlight()
		}
		ctx.state.heldKeys[e.Key] = true
	case EventKeyUp:
		delete(ctx.state.heldKeys, e.Key)
	case EventTick:
		h.tick(e.DT)
	}
}

func (h *keyboardPanRotateDollyHandler) motionKey(k Key) bool {
	switch k {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return true
	}
	b := bindingsFor(h.ctx.cfg.KeyboardLayout)
	return k == b.forward || k == b.back || k == b.left ||
		k == b.right || k == b.up || k == b.down
}

func (h *keyboardPanRotateDollyHandler) tick(dt float32) {
	ctx := h.ctx
	held := ctx.state.heldKeys
	if len(held) == 0 {
		return
	}
	b := bindingsFor(ctx.cfg.KeyboardLayout)

	var px, py, pz float32
	if held[b.right] {
		px++
	}
	if held[b.left] {
		px--
	}
	if held[b.up] {
		py++
	}
	if held[b.down] {
		py--
	}
	if held[b.forward] {
		pz++
	}
	if held[b.back] {
		pz--
	}
	if px != 0 || py != 0 || pz != 0 {
		cam := ctx.cam
		step := ctx.cfg.KeyboardPanRate * dt
		move := cam.Right().Scale(px * step).
			Add(cam.Up.Scale(py * step)).
			Add(cam.ViewDir().Scale(pz * step))
		ctx.pending.pan = ctx.pending.pan.Add(move)
	}

	if !ctx.cfg.PlanView {
		orbit := ctx.cfg.KeyboardOrbitRate * dt
		if held[KeyArrowRight] {
			ctx.pending.rotateX += orbit
		}
		if held[KeyArrowLeft] {
			ctx.pending.rotateX -= orbit
		}
		if held[KeyArrowDown] {
			ctx.pending.rotateY += orbit
		}
		if held[KeyArrowUp] {
			ctx.pending.rotateY -= orbit
		}
	}
}

func (h *keyboardPanRotateDollyHandler) reset()   {}
func (h *keyboardPanRotateDollyHandler) destroy() {}

// keyboardAxisViewHandler flies the camera to axis-aligned framings of the
// scene bounds on digit keys 1-6 (+X -X +Y -Y +Z -Z).
type keyboardAxisViewHandler struct {
	ctx *navContext
}

func (h *keyboardAxisViewHandler) handle(e InputEvent) {
	if e.Type != EventKeyDown {
		return
	}
	var dir, up math.Vec3
	switch e.Key {
	case Key1:
		dir, up = math.Vec3{X: 1}, math.Vec3{Y: 1}
	case Key2:
		dir, up = math.Vec3{X: -1}, math.Vec3{Y: 1}
	case Key3:
		dir, up = math.Vec3{Y: 1}, math.Vec3{Z: -1}
	case Key4:
		dir, up = math.Vec3{Y: -1}, math.Vec3{Z: 1}
	case Key5:
		dir, up = math.Vec3{Z: 1}, math.Vec3{Y: 1}
	case Key6:
		dir, up = math.Vec3{Z: -1}, math.Vec3{Y: 1}
	default:
		return
	}
	h.flyToAxis(dir, up)
}

func (h *keyboardAxisViewHandler) flyToAxis(dir, up math.Vec3) {
	ctx := h.ctx
	if ctx.flight == nil || ctx.sceneBounds == nil {
		return
	}
	bounds, ok := ctx.sceneBounds()
	if !ok {
		return
	}
	center := bounds.Center()
	radius := bounds.Radius()
	if radius <= 0 {
		radius = 1
	}
	dist := radius / float32(gomath.Tan(float64(ctx.cam.FOV)*gomath.Pi/360))
	eye := center.Add(dir.Scale(dist))
	ctx.flight.FlyToLook(eye, center, up, 0, nil)
}

func (h *keyboardAxisViewHandler) reset()   {}
func (h *keyboardAxisViewHandler) destroy() {}
