// Package input polls SDL2 events and translates them into the
// device-independent records the navigation controller consumes.
package input

import (
	"sort"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yosiookita/xeokit-sdk/internal/engine/nav"
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// EventType classifies a processed host event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	// EventNav wraps one navigation input record.
	EventNav
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int
	Height int
	Nav    nav.InputEvent
}

// Input handles all input processing.
type Input struct {
	events []Event

	// fingers tracks active touches so each SDL finger event can report
	// the full remaining set, ordered by finger ID.
	fingers map[int64]nav.TouchPoint

	canvasW float32
	canvasH float32
}

// New creates a new input handler for a canvas of the given size.
func New(w, h int) *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		fingers: make(map[int64]nav.TouchPoint),
		canvasW: float32(w),
		canvasH: float32(h),
	}
}

// SetCanvasSize updates the size SDL's normalized touch coordinates are
// scaled by. Call on window resize.
func (i *Input) SetCanvasSize(w, h int) {
	i.canvasW = float32(w)
	i.canvasH = float32(h)
}

// Update polls SDL events and converts them to processed events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE && e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventQuit})
				quit = true
				break
			}
			key := translateScancode(e.Keysym.Scancode)
			if key == nav.KeyNone || e.Repeat != 0 {
				break
			}
			typ := nav.EventKeyDown
			if e.Type == sdl.KEYUP {
				typ = nav.EventKeyUp
			}
			i.push(nav.InputEvent{
				Type: typ,
				Time: float64(e.Timestamp),
				Key:  key,
			})

		case *sdl.MouseMotionEvent:
			if e.Which == sdl.TOUCH_MOUSEID {
				break
			}
			i.push(nav.InputEvent{
				Type: nav.EventMouseMove,
				Time: float64(e.Timestamp),
				Pos:  math.Vec2{X: float32(e.X), Y: float32(e.Y)},
			})

		case *sdl.MouseButtonEvent:
			if e.Which == sdl.TOUCH_MOUSEID {
				break
			}
			typ := nav.EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				typ = nav.EventMouseUp
			}
			i.push(nav.InputEvent{
				Type:   typ,
				Time:   float64(e.Timestamp),
				Pos:    math.Vec2{X: float32(e.X), Y: float32(e.Y)},
				Button: translateButton(e.Button),
			})

		case *sdl.MouseWheelEvent:
			i.push(nav.InputEvent{
				Type:  nav.EventWheel,
				Time:  float64(e.Timestamp),
				Wheel: float32(e.Y),
			})

		case *sdl.TouchFingerEvent:
			i.touchFinger(e)
		}
	}

	return quit
}

func (i *Input) touchFinger(e *sdl.TouchFingerEvent) {
	// SDL reports normalized coordinates.
	pos := math.Vec2{X: e.X * i.canvasW, Y: e.Y * i.canvasH}
	id := int64(e.FingerID)

	var typ nav.EventType
	switch e.Type {
	case sdl.FINGERDOWN:
		typ = nav.EventTouchStart
		i.fingers[id] = nav.TouchPoint{ID: id, Pos: pos}
	case sdl.FINGERMOTION:
		typ = nav.EventTouchMove
		i.fingers[id] = nav.TouchPoint{ID: id, Pos: pos}
	case sdl.FINGERUP:
		typ = nav.EventTouchEnd
		delete(i.fingers, id)
	default:
		return
	}

	i.push(nav.InputEvent{
		Type:    typ,
		Time:    float64(e.Timestamp),
		Pos:     pos,
		Touches: i.activeTouches(),
	})
}

func (i *Input) activeTouches() []nav.TouchPoint {
	if len(i.fingers) == 0 {
		return nil
	}
	out := make([]nav.TouchPoint, 0, len(i.fingers))
	for _, tp := range i.fingers {
		out = append(out, tp)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

func (i *Input) push(e nav.InputEvent) {
	i.events = append(i.events, Event{Type: EventNav, Nav: e})
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func translateButton(b uint8) nav.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return nav.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return nav.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return nav.ButtonRight
	}
	return nav.ButtonNone
}

func translateScancode(sc sdl.Scancode) nav.Key {
	switch sc {
	case sdl.SCANCODE_A:
		return nav.KeyA
	case sdl.SCANCODE_D:
		return nav.KeyD
	case sdl.SCANCODE_E:
		return nav.KeyE
	case sdl.SCANCODE_Q:
		return nav.KeyQ
	case sdl.SCANCODE_S:
		return nav.KeyS
	case sdl.SCANCODE_W:
		return nav.KeyW
	case sdl.SCANCODE_Z:
		return nav.KeyZ
	case sdl.SCANCODE_UP:
		return nav.KeyArrowUp
	case sdl.SCANCODE_DOWN:
		return nav.KeyArrowDown
	case sdl.SCANCODE_LEFT:
		return nav.KeyArrowLeft
	case sdl.SCANCODE_RIGHT:
		return nav.KeyArrowRight
	case sdl.SCANCODE_1:
		return nav.Key1
	case sdl.SCANCODE_2:
		return nav.Key2
	case sdl.SCANCODE_3:
		return nav.Key3
	case sdl.SCANCODE_4:
		return nav.Key4
	case sdl.SCANCODE_5:
		return nav.Key5
	case sdl.SCANCODE_6:
		return nav.Key6
	}
	return nav.KeyNone
}
