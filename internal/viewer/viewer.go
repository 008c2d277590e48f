// Package viewer implements the interactive viewer application: window,
// demo scene, render loop and camera navigation wiring.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yosiookita/xeokit-sdk/internal/config"
	"github.com/yosiookita/xeokit-sdk/internal/engine/camera"
	"github.com/yosiookita/xeokit-sdk/internal/engine/input"
	"github.com/yosiookita/xeokit-sdk/internal/engine/nav"
	"github.com/yosiookita/xeokit-sdk/internal/engine/picking"
	"github.com/yosiookita/xeokit-sdk/internal/engine/renderer"
	"github.com/yosiookita/xeokit-sdk/internal/engine/scene"
	"github.com/yosiookita/xeokit-sdk/internal/engine/window"
	"github.com/yosiookita/xeokit-sdk/internal/logger"
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

// Viewer is the main application instance.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	scene   *scene.Scene
	cam     *camera.Camera
	picker  *picking.Controller
	flight  *camera.Flight
	control *nav.CameraControl
}

// New creates a new viewer instance.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	v := &Viewer{cfg: cfg}

	// Window first: it owns the OpenGL context everything else needs.
	var err error
	v.window, err = window.New(window.Config{
		Title:      "xeokit viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New(cfg.Graphics.Width, cfg.Graphics.Height)

	v.scene = buildDemoScene()
	v.cam = camera.New()
	v.cam.Aspect = float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)

	v.picker = picking.NewController(v.scene, v.cam)
	v.picker.SetViewport(float32(cfg.Graphics.Width), float32(cfg.Graphics.Height))

	v.flight = camera.NewFlight(v.cam)

	v.control = nav.New(v.cam,
		nav.WithPicker(v.picker),
		nav.WithFlight(v.flight),
		nav.WithPivotIndicator(v.renderer),
		nav.WithSceneBounds(v.scene.Bounds),
	)
	v.control.SetCanvasSize(float32(cfg.Graphics.Width), float32(cfg.Graphics.Height))
	applyNavConfig(v.control, cfg.Navigation)
	v.subscribe()

	logger.Info("viewer initialized successfully")
	return v, nil
}

// applyNavConfig pushes startup navigation settings through the validating
// setters.
func applyNavConfig(c *nav.CameraControl, cfg config.NavigationConfig) {
	c.SetFirstPerson(cfg.FirstPerson)
	c.SetPlanView(cfg.PlanView)
	c.SetPivoting(cfg.Pivoting)
	c.SetDollyToPivot(cfg.DollyToPivot)
	c.SetDollyToPointer(cfg.DollyToPointer)
	c.SetConstrainVertical(cfg.ConstrainVertical)
	c.SetDoublePickFlyTo(cfg.DoublePickFlyTo)
	c.SetPanRightClick(cfg.PanRightClick)
	c.SetRotationInertia(cfg.RotationInertia)
	c.SetDollyInertia(cfg.DollyInertia)
	c.SetDollyRate(cfg.DollyRate)
	c.SetMousePanRate(cfg.MousePanRate)
	c.SetKeyboardPanRate(cfg.KeyboardPanRate)
	c.SetKeyboardOrbitRate(cfg.KeyboardOrbitRate)
	c.SetTouchRotateRate(cfg.TouchRotateRate)
	c.SetTouchPanRate(cfg.TouchPanRate)
	c.SetTouchZoomRate(cfg.TouchZoomRate)
	c.SetKeyboardLayout(nav.KeyboardLayout(cfg.KeyboardLayout))
}

// subscribe routes navigation events to the renderer highlights and the log.
func (v *Viewer) subscribe() {
	v.control.Events.Hover.Listen(func(e nav.HoverEvent) {
		v.renderer.SetHover(e.EntityID)
	})
	v.control.Events.HoverOut.Listen(func(e nav.HoverOutEvent) {
		v.renderer.SetHover("")
	})
	v.control.Events.Picked.Listen(func(e nav.PickedEvent) {
		logger.Info("picked", zap.String("entity", e.EntityID))
		v.renderer.SetSelected(e.EntityID)
	})
	v.control.Events.PickedNothing.Listen(func(nav.PickedNothingEvent) {
		v.renderer.SetSelected("")
	})
	v.control.Events.DoublePicked.Listen(func(e nav.DoublePickedEvent) {
		logger.Info("double picked", zap.String("entity", e.EntityID))
	})
	v.control.Events.RightClick.Listen(func(e nav.RightClickEvent) {
		logger.Debug("right click",
			zap.Float32("x", e.CanvasPos.X),
			zap.Float32("y", e.CanvasPos.Y),
		)
	})
}

// buildDemoScene creates a grid of unit boxes to navigate around.
func buildDemoScene() *scene.Scene {
	s := scene.New()
	for ix := -1; ix <= 1; ix++ {
		for iz := -1; iz <= 1; iz++ {
			center := math.Vec3{X: float32(ix) * 3, Z: float32(iz) * 3}
			half := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
			s.Add(&scene.Entity{
				ID:     fmt.Sprintf("box-%d-%d", ix+1, iz+1),
				Bounds: picking.AABB{Min: center.Sub(half), Max: center.Add(half)},
			})
		}
	}
	return s
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true
	lastTime := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventQuit:
				v.running = false
			case input.EventWindowResize:
				v.resize(event.Width, event.Height)
			case input.EventNav:
				v.control.HandleInput(event.Nav)
			}
		}

		v.control.Tick(dt)
		v.flight.Update(dt)

		v.renderer.Begin()
		v.renderer.DrawScene(v.scene, v.cam)
		v.renderer.End()
		v.window.SwapBuffers()

		if v.cfg.Graphics.FPSLimit > 0 {
			frame := time.Second / time.Duration(v.cfg.Graphics.FPSLimit)
			if elapsed := time.Since(now); elapsed < frame {
				time.Sleep(frame - elapsed)
			}
		}
	}

	logger.Info("viewer loop ended")
	return nil
}

func (v *Viewer) resize(w, h int) {
	v.renderer.Resize(w, h)
	v.input.SetCanvasSize(w, h)
	v.picker.SetViewport(float32(w), float32(h))
	v.control.SetCanvasSize(float32(w), float32(h))
	if h > 0 {
		v.cam.Aspect = float32(w) / float32(h)
	}
}

// Close shuts down the viewer and releases resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	v.control.Destroy()
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
