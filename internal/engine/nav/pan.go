package nav

import (
	gomath "math"

	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// panController converts screen-space deltas into world-space pan vectors
// using the camera orientation and the depth of the look point.
type panController struct {
	ctx *navContext
}

// worldPerPixel returns the world-space width of one pixel at the given
// viewing depth.
func (p *panController) worldPerPixel(depth float32) float32 {
	h := p.ctx.canvasH
	if h < 1 {
		h = 1
	}
	frustumH := 2 * depth * float32(gomath.Tan(float64(p.ctx.cam.FOV)*gomath.Pi/360))
	return frustumH / h
}

// worldPan maps a screen delta to a world-space pan vector scaled by rate.
// The scene follows the pointer: dragging right moves the camera left.
func (p *panController) worldPan(delta math.Vec2, rate float32) math.Vec3 {
	cam := p.ctx.cam
	depth := cam.Eye.Distance(cam.Look)
	wpp := p.worldPerPixel(depth)
	right := cam.Right().Scale(-delta.X * wpp * rate)
	up := cam.Up.Scale(delta.Y * wpp * rate)
	return right.Add(up)
}
