package nav

import (
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// beginTap records a press as a potential tap.
func (ctx *navContext) beginTap(pos math.Vec2, now float64) {
	ctx.state.tapStartPos = pos
	ctx.state.tapStartTime = now
}

// cancelTap discards the pending press (multi-touch, drag, etc.).
func (ctx *navContext) cancelTap() {
	ctx.state.tapStartTime = -1
}

// endTap classifies a release against the pending press. A qualifying tap
// either completes a double-tap (when a previous tap is close enough in time
// and space) or registers as the new last tap and picks immediately.
// Classification is lazy: thresholds are compared at event time, no timers.
func (ctx *navContext) endTap(pos math.Vec2, now float64) {
	s := ctx.state
	cfg := ctx.cfg
	if s.tapStartTime < 0 {
		return
	}
	duration := now - s.tapStartTime
	displacement := pos.Distance(s.tapStartPos)
	s.tapStartTime = -1

	if duration >= cfg.TapInterval || displacement >= cfg.TapDistanceThreshold {
		return
	}

	if s.lastTapTime >= 0 &&
		now-s.lastTapTime < cfg.DoubleTapInterval &&
		pos.Distance(s.lastTapPos) < cfg.TapDistanceThreshold {
		s.lastTapTime = -1
		ctx.doublePick(pos)
		return
	}

	s.lastTapTime = now
	s.lastTapPos = pos
	ctx.singlePick(pos)
}

// singlePick resolves a tap: emits pick events and, when pivoting, anchors
// the pivot on the hit surface. A miss keeps any existing pivot.
func (ctx *navContext) singlePick(pos math.Vec2) {
	if ctx.picker == nil {
		return
	}
	hit, ok := ctx.picker.Pick(pos)
	if !ok {
		ctx.events.PickedNothing.emit(PickedNothingEvent{})
		return
	}
	ctx.events.Picked.emit(PickedEvent{EntityID: hit.EntityID})
	ctx.events.PickedSurface.emit(PickedSurfaceEvent{EntityID: hit.EntityID, WorldPos: hit.WorldPos})
	if ctx.cfg.Pivoting && !ctx.cfg.FirstPerson {
		ctx.pivot.show(hit.WorldPos)
	}
}

// doublePick resolves a double-tap: emits double-pick events and optionally
// flies the camera to the entity bounds.
func (ctx *navContext) doublePick(pos math.Vec2) {
	if ctx.picker == nil {
		return
	}
	hit, ok := ctx.picker.Pick(pos)
	if !ok {
		ctx.events.DoublePickedNothing.emit(DoublePickedNothingEvent{})
		return
	}
	ctx.events.DoublePicked.emit(DoublePickedEvent{EntityID: hit.EntityID})
	ctx.events.DoublePickedSurface.emit(DoublePickedSurfaceEvent{EntityID: hit.EntityID, WorldPos: hit.WorldPos})
	if ctx.cfg.DoublePickFlyTo && ctx.flight != nil {
		ctx.flight.FlyToBounds(hit.Bounds.Center(), hit.Bounds.Radius(), 0, nil)
	}
}
