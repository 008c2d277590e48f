package nav

import (
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// Signal is a multi-listener callback list for one event kind.
type Signal[T any] struct {
	listeners []func(T)
}

// Listen registers a callback for this event kind.
func (s *Signal[T]) Listen(fn func(T)) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

func (s *Signal[T]) emit(v T) {
	for _, fn := range s.listeners {
		fn(v)
	}
}

func (s *Signal[T]) clear() {
	s.listeners = nil
}

// HoverEvent fires when the pointer moves onto a new entity.
type HoverEvent struct {
	EntityID  string
	CanvasPos math.Vec2
}

// HoverSurfaceEvent fires on every pointer move over an entity surface.
type HoverSurfaceEvent struct {
	EntityID  string
	WorldPos  math.Vec3
	CanvasPos math.Vec2
}

// HoverOutEvent fires when the pointer leaves an entity.
type HoverOutEvent struct {
	EntityID string
}

// HoverOffEvent fires on pointer moves over empty space.
type HoverOffEvent struct {
	CanvasPos math.Vec2
}

// PickedEvent fires on a tap that hits an entity.
type PickedEvent struct {
	EntityID string
}

// PickedSurfaceEvent accompanies PickedEvent with the surface position.
type PickedSurfaceEvent struct {
	EntityID string
	WorldPos math.Vec3
}

// DoublePickedEvent fires on a double-tap that hits an entity.
type DoublePickedEvent struct {
	EntityID string
}

// DoublePickedSurfaceEvent accompanies DoublePickedEvent.
type DoublePickedSurfaceEvent struct {
	EntityID string
	WorldPos math.Vec3
}

// PickedNothingEvent fires on a tap over empty space.
type PickedNothingEvent struct{}

// DoublePickedNothingEvent fires on a double-tap over empty space.
type DoublePickedNothingEvent struct{}

// RightClickEvent fires on a right-button click without drag.
type RightClickEvent struct {
	CanvasPos math.Vec2
}

// Events groups the high-level interaction signals CameraControl re-emits.
type Events struct {
	Hover               Signal[HoverEvent]
	HoverSurface        Signal[HoverSurfaceEvent]
	HoverOut            Signal[HoverOutEvent]
	HoverOff            Signal[HoverOffEvent]
	Picked              Signal[PickedEvent]
	PickedSurface       Signal[PickedSurfaceEvent]
	DoublePicked        Signal[DoublePickedEvent]
	DoublePickedSurface Signal[DoublePickedSurfaceEvent]
	PickedNothing       Signal[PickedNothingEvent]
	DoublePickedNothing Signal[DoublePickedNothingEvent]
	RightClick          Signal[RightClickEvent]
}

func (e *Events) clearAll() {
	e.Hover.clear()
	e.HoverSurface.clear()
	e.HoverOut.clear()
	e.HoverOff.clear()
	e.Picked.clear()
	e.PickedSurface.clear()
	e.DoublePicked.clear()
	e.DoublePickedSurface.clear()
	e.PickedNothing.clear()
	e.DoublePickedNothing.clear()
	e.RightClick.clear()
}
