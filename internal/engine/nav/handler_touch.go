package nav

// touchRotationRate is the orbit sweep, in degrees, of a one-finger drag
// across the full canvas height, before the touchRotateRate multiplier.
const touchRotationRate = 180

// touchPickHandler classifies single-finger touch sequences into taps and
// double-taps. Registered before the touch pan/rotate handler.
type touchPickHandler struct {
	ctx *navContext
}

func (h *touchPickHandler) handle(e InputEvent) {
	ctx := h.ctx
	switch e.Type {
	case EventTouchStart:
		if len(e.Touches) == 1 {
			ctx.beginTap(e.Pos, e.Time)
		} else {
			// A second finger is a gesture, not a tap.
			ctx.cancelTap()
		}
	case EventTouchEnd:
		if len(e.Touches) == 0 {
			ctx.endTap(e.Pos, e.Time)
		} else {
			ctx.cancelTap()
		}
	}
}

func (h *touchPickHandler) reset()   {}
func (h *touchPickHandler) destroy() {}

// touchPanRotateDollyHandler maps one-finger drags to rotation and
// two-finger gestures to pan (midpoint) and dolly (pinch).
type touchPanRotateDollyHandler struct {
	ctx *navContext
}

func (h *touchPanRotateDollyHandler) handle(e InputEvent) {
	ctx := h.ctx
	switch e.Type {
	case EventTouchStart:
		ctx.stopFlight()
		if len(e.Touches) == 1 && ctx.cfg.Pivoting {
			ctx.pivot.beginDrag()
		}
		ctx.state.touches = cloneTouches(e.Touches)
	case EventTouchMove:
		h.move(e)
		ctx.state.touches = cloneTouches(e.Touches)
	case EventTouchEnd:
		if len(e.Touches) == 0 {
			ctx.pivot.endDrag()
		}
		ctx.state.touches = cloneTouches(e.Touches)
	}
}

func (h *touchPanRotateDollyHandler) move(e InputEvent) {
	ctx := h.ctx
	prev := ctx.state.touches

	switch {
	case len(e.Touches) == 1 && len(prev) == 1 && e.Touches[0].ID == prev[0].ID:
		if ctx.cfg.PlanView {
			return
		}
		delta := e.Touches[0].Pos.Sub(prev[0].Pos)
		canvasH := ctx.canvasH
		if canvasH < 1 {
			canvasH = 1
		}
		rate := touchRotationRate * ctx.cfg.TouchRotateRate
		ctx.pending.rotateX += delta.X / canvasH * rate
		ctx.pending.rotateY += delta.Y / canvasH * rate

	case len(e.Touches) == 2 && len(prev) == 2 &&
		e.Touches[0].ID == prev[0].ID && e.Touches[1].ID == prev[1].ID:
		h.panAndPinch(e.Touches, prev)
	}
}

func (h *touchPanRotateDollyHandler) panAndPinch(now, prev []TouchPoint) {
	ctx := h.ctx

	midNow := now[0].Pos.Add(now[1].Pos).Scale(0.5)
	midPrev := prev[0].Pos.Add(prev[1].Pos).Scale(0.5)
	panDelta := midNow.Sub(midPrev)
	ctx.pending.pan = ctx.pending.pan.Add(ctx.pan.worldPan(panDelta, ctx.cfg.TouchPanRate))

	spreadNow := now[0].Pos.Distance(now[1].Pos)
	spreadPrev := prev[0].Pos.Distance(prev[1].Pos)
	pinch := spreadNow - spreadPrev
	if pinch != 0 {
		depth := ctx.cam.Eye.Distance(ctx.cam.Look)
		wpp := ctx.pan.worldPerPixel(depth)
		ctx.pending.dolly += pinch * wpp * ctx.cfg.TouchZoomRate
		ctx.resolveDollyTarget(midNow)
	}
}

func (h *touchPanRotateDollyHandler) reset()   {}
func (h *touchPanRotateDollyHandler) destroy() {}

func cloneTouches(src []TouchPoint) []TouchPoint {
	if len(src) == 0 {
		return nil
	}
	out := make([]TouchPoint, len(src))
	copy(out, src)
	return out
}
