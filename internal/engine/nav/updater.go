package nav

import (
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// residualEpsilon zeroes decaying residual motion once it is imperceptible,
// so inertia never produces perpetual micro-motion.
const residualEpsilon = 1e-4

// cameraUpdater drains the pending accumulator once per render tick and
// applies the combined deltas to the camera, carrying decayed residuals
// between ticks for inertial motion.
type cameraUpdater struct {
	ctx *navContext

	rotResidualX  float32
	rotResidualY  float32
	dollyResidual float32

	dollyTarget    math.Vec3
	hasDollyTarget bool
}

func (u *cameraUpdater) reset() {
	u.rotResidualX = 0
	u.rotResidualY = 0
	u.dollyResidual = 0
	u.hasDollyTarget = false
}

func decay(residual, inertia, input float32) float32 {
	v := residual*inertia + input
	if v < residualEpsilon && v > -residualEpsilon {
		return 0
	}
	return v
}

func (u *cameraUpdater) tick() {
	ctx := u.ctx
	cfg := ctx.cfg
	cam := ctx.cam
	p := ctx.pending

	// Rotation.
	rx := decay(u.rotResidualX, cfg.RotationInertia, p.rotateX)
	ry := decay(u.rotResidualY, cfg.RotationInertia, p.rotateY)
	if (rx != 0 || ry != 0) && !cfg.PlanView {
		switch {
		case cfg.FirstPerson:
			cam.RotateLook(rx, ry)
		case cfg.Pivoting && ctx.pivot.active():
			cam.OrbitAround(ctx.pivot.position(), rx, ry)
		default:
			cam.Orbit(rx, ry)
		}
	}
	u.rotResidualX, u.rotResidualY = rx, ry

	// Pan, applied directly with no inertia.
	pan := p.pan
	if cfg.FirstPerson && cfg.ConstrainVertical {
		pan.Y = 0
	}
	if pan != (math.Vec3{}) {
		cam.Translate(pan)
	}

	// Dolly. The target resolved by the contributing handler stays in
	// effect while the residual decays; fresh untargeted input clears it.
	if p.hasDollyTarget {
		u.dollyTarget = p.dollyTarget
		u.hasDollyTarget = true
	} else if p.dolly != 0 {
		u.hasDollyTarget = false
	}
	d := decay(u.dollyResidual, cfg.DollyInertia, p.dolly)
	if d != 0 {
		switch {
		case cfg.FirstPerson:
			u.dollyFirstPerson(d)
		case u.hasDollyTarget:
			cam.DollyToward(u.dollyTarget, d)
		default:
			cam.Dolly(d)
		}
	}
	u.dollyResidual = d

	p.reset()
}

// dollyFirstPerson moves eye and look together; with constrainVertical the
// motion is projected onto the horizontal plane.
func (u *cameraUpdater) dollyFirstPerson(d float32) {
	cam := u.ctx.cam
	dir := cam.ViewDir()
	if u.ctx.cfg.ConstrainVertical {
		dir.Y = 0
		dir = dir.Normalize()
		if dir == (math.Vec3{}) {
			return
		}
	}
	cam.Translate(dir.Scale(d))
}
