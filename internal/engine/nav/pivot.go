package nav

import (
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// PivotState is the pivot-point state machine.
type PivotState int

const (
	// PivotInactive: no pivot anchor; orbiting happens about the look point.
	PivotInactive PivotState = iota
	// PivotShown: a pivot anchor is set and the indicator (if any) is visible.
	PivotShown
	// PivotDragging: a rotation drag anchored on the pivot is in progress.
	PivotDragging
)

// String implements fmt.Stringer for logs.
func (s PivotState) String() string {
	switch s {
	case PivotShown:
		return "shown"
	case PivotDragging:
		return "dragging"
	default:
		return "inactive"
	}
}

// IndicatorSink is the optional host-supplied visual for the pivot anchor.
// Pivot logic functions without one.
type IndicatorSink interface {
	Show(worldPos math.Vec3)
	Hide()
}

// pivotController owns the pivot anchor position and its state machine.
// A pick miss while a pivot is shown keeps the previous anchor, so a stray
// tap on empty space never loses the orbit anchor.
type pivotController struct {
	state PivotState
	pos   math.Vec3
	sink  IndicatorSink
}

func (p *pivotController) show(pos math.Vec3) {
	p.pos = pos
	if p.state == PivotInactive {
		p.state = PivotShown
	}
	if p.sink != nil {
		p.sink.Show(pos)
	}
}

func (p *pivotController) beginDrag() {
	if p.state == PivotShown {
		p.state = PivotDragging
	}
}

func (p *pivotController) endDrag() {
	if p.state == PivotDragging {
		p.state = PivotShown
	}
}

func (p *pivotController) deactivate() {
	p.state = PivotInactive
	if p.sink != nil {
		p.sink.Hide()
	}
}

func (p *pivotController) active() bool {
	return p.state != PivotInactive
}

func (p *pivotController) position() math.Vec3 {
	return p.pos
}
