package nav

import (
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// EventType identifies a raw input event delivered by the host surface.
type EventType int

const (
	EventMouseDown EventType = iota
	EventMouseUp
	EventMouseMove
	EventWheel
	EventKeyDown
	EventKeyUp
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	// EventTick is synthesized by CameraControl once per render tick so
	// handlers with continuous behavior (held keys) can contribute deltas.
	EventTick
)

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Key identifies a keyboard key the controller reacts to. The host input
// layer maps device scancodes onto these.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyD
	KeyE
	KeyQ
	KeyS
	KeyW
	KeyZ
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
)

// TouchPoint is one active finger.
type TouchPoint struct {
	ID  int64
	Pos math.Vec2
}

// InputEvent is the device-independent raw input record handlers consume.
type InputEvent struct {
	Type EventType

	// Time is the host timestamp in milliseconds. Tap and double-tap
	// windows are evaluated against it, never against wall-clock timers.
	Time float64

	// Pos is the canvas position of the pointer, or of the finger that
	// changed for touch events.
	Pos math.Vec2

	Button Button

	// Wheel is the scroll delta in detents; positive dollies in.
	Wheel float32

	Key Key

	// Touches is the ordered list of fingers still on the surface after
	// this event.
	Touches []TouchPoint

	// DT is the frame delta in seconds; set on EventTick only.
	DT float32
}

func isPointerEvent(t EventType) bool {
	switch t {
	case EventMouseDown, EventMouseUp, EventMouseMove, EventWheel,
		EventTouchStart, EventTouchMove, EventTouchEnd:
		return true
	}
	return false
}
