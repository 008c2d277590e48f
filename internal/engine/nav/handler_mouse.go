package nav

import (
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// mouseRotationRate is the orbit sweep, in degrees, of a drag across the
// full canvas height.
const mouseRotationRate = 180

// mouseMiscHandler tracks the pointer, emits hover events and right-click.
type mouseMiscHandler struct {
	ctx *navContext
}

func (h *mouseMiscHandler) handle(e InputEvent) {
	ctx := h.ctx
	switch e.Type {
	case EventMouseMove:
		ctx.state.pointerPos = e.Pos
		h.updateHover(e)
	case EventMouseDown:
		ctx.state.pointerPos = e.Pos
	case EventMouseUp:
		if e.Button == ButtonRight &&
			e.Pos.Distance(ctx.state.downPos) < ctx.cfg.TapDistanceThreshold {
			ctx.events.RightClick.emit(RightClickEvent{CanvasPos: e.Pos})
		}
	}
}

func (h *mouseMiscHandler) updateHover(e InputEvent) {
	ctx := h.ctx
	if ctx.picker == nil {
		return
	}
	hit, ok := ctx.picker.Pick(e.Pos)
	if !ok {
		if ctx.state.hoverEntity != "" {
			ctx.events.HoverOut.emit(HoverOutEvent{EntityID: ctx.state.hoverEntity})
			ctx.state.hoverEntity = ""
		}
		ctx.events.HoverOff.emit(HoverOffEvent{CanvasPos: e.Pos})
		return
	}
	if hit.EntityID != ctx.state.hoverEntity {
		if ctx.state.hoverEntity != "" {
			ctx.events.HoverOut.emit(HoverOutEvent{EntityID: ctx.state.hoverEntity})
		}
		ctx.state.hoverEntity = hit.EntityID
		ctx.events.Hover.emit(HoverEvent{EntityID: hit.EntityID, CanvasPos: e.Pos})
	}
	ctx.events.HoverSurface.emit(HoverSurfaceEvent{
		EntityID:  hit.EntityID,
		WorldPos:  hit.WorldPos,
		CanvasPos: e.Pos,
	})
}

func (h *mouseMiscHandler) reset()   {}
func (h *mouseMiscHandler) destroy() {}

// mousePickHandler classifies left-button press/release pairs into taps and
// double-taps. Registered before the pan/rotate handler so pivot state is
// resolved before rotation consumes it.
type mousePickHandler struct {
	ctx *navContext
}

func (h *mousePickHandler) handle(e InputEvent) {
	switch e.Type {
	case EventMouseDown:
		if e.Button == ButtonLeft {
			h.ctx.beginTap(e.Pos, e.Time)
		}
	case EventMouseUp:
		if e.Button == ButtonLeft {
			h.ctx.endTap(e.Pos, e.Time)
		}
	}
}

func (h *mousePickHandler) reset()   {}
func (h *mousePickHandler) destroy() {}

// mousePanRotateDollyHandler turns drags into rotation/pan deltas and wheel
// motion into dolly deltas.
type mousePanRotateDollyHandler struct {
	ctx *navContext

	// lastDrag is the drag reference point; kept here rather than in the
	// shared state because the misc handler advances pointerPos first.
	lastDrag math.Vec2
}

func (h *mousePanRotateDollyHandler) handle(e InputEvent) {
	ctx := h.ctx
	switch e.Type {
	case EventMouseDown:
		h.beginDrag(e)
	case EventMouseMove:
		h.drag(e)
	case EventMouseUp:
		if ctx.state.mouseDown && e.Button == ctx.state.downButton {
			ctx.state.mouseDown = false
			ctx.state.drag = dragNone
			ctx.pivot.endDrag()
		}
	case EventWheel:
		h.wheel(e)
	}
}

func (h *mousePanRotateDollyHandler) beginDrag(e InputEvent) {
	ctx := h.ctx
	ctx.stopFlight()
	ctx.state.mouseDown = true
	ctx.state.downButton = e.Button
	ctx.state.downPos = e.Pos
	ctx.state.pointerPos = e.Pos
	h.lastDrag = e.Pos

	switch e.Button {
	case ButtonLeft:
		ctx.state.drag = dragRotate
	case ButtonMiddle:
		ctx.state.drag = dragPan
	case ButtonRight:
		if ctx.cfg.PanRightClick {
			ctx.state.drag = dragPan
		} else {
			ctx.state.drag = dragNone
		}
	}
	if ctx.state.drag == dragRotate && ctx.cfg.Pivoting {
		ctx.pivot.beginDrag()
	}
}

func (h *mousePanRotateDollyHandler) drag(e InputEvent) {
	ctx := h.ctx
	if !ctx.state.mouseDown {
		return
	}
	delta := e.Pos.Sub(h.lastDrag)
	h.lastDrag = e.Pos

	switch ctx.state.drag {
	case dragRotate:
		if ctx.cfg.PlanView {
			return
		}
		canvasH := ctx.canvasH
		if canvasH < 1 {
			canvasH = 1
		}
		ctx.pending.rotateX += delta.X / canvasH * mouseRotationRate
		ctx.pending.rotateY += delta.Y / canvasH * mouseRotationRate
	case dragPan:
		ctx.pending.pan = ctx.pending.pan.Add(ctx.pan.worldPan(delta, ctx.cfg.MousePanRate))
	}
}

func (h *mousePanRotateDollyHandler) wheel(e InputEvent) {
	ctx := h.ctx
	ctx.stopFlight()
	ctx.pending.dolly += e.Wheel * ctx.cfg.DollyRate * ctx.dollyDepthScale()
	ctx.resolveDollyTarget(ctx.state.pointerPos)
}

func (h *mousePanRotateDollyHandler) reset()   {}
func (h *mousePanRotateDollyHandler) destroy() {}
