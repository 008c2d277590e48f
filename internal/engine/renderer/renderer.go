// Package renderer provides OpenGL rendering for the viewer: wireframe
// entity boxes, hover and selection highlights, and the pivot indicator.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/yosiookita/xeokit-sdk/internal/engine/camera"
	"github.com/yosiookita/xeokit-sdk/internal/engine/picking"
	"github.com/yosiookita/xeokit-sdk/internal/engine/scene"
	"github.com/yosiookita/xeokit-sdk/internal/engine/shader"
	"github.com/yosiookita/xeokit-sdk/internal/logger"
	"github.com/yosiookita/xeokit-sdk/pkg/math"
)

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uMVP;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const fragmentShaderSource = `
#version 410 core

uniform vec3 uColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`

// Line colors.
var (
	colorEntity   = [3]float32{0.55, 0.55, 0.6}
	colorHover    = [3]float32{0.3, 0.8, 1.0}
	colorSelected = [3]float32{1.0, 0.8, 0.2}
	colorPivot    = [3]float32{1.0, 0.3, 0.3}
)

// pivotIndicatorSize is the half-extent, in world units, of the pivot cross.
const pivotIndicatorSize = 0.25

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program  uint32
	uMVP     int32
	uColor   int32
	lineVAO  uint32
	lineVBO  uint32
	capacity int

	hoverID    string
	selectedID string

	pivotVisible bool
	pivotPos     math.Vec3
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.uMVP = shader.MustGetUniform(r.program, "uMVP")
	r.uColor = shader.MustGetUniform(r.program, "uColor")

	// One dynamic line buffer, re-filled per draw call.
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
}

// SetHover marks the entity drawn with the hover highlight. Empty clears it.
func (r *Renderer) SetHover(id string) { r.hoverID = id }

// SetSelected marks the entity drawn with the selection highlight.
// Empty clears it.
func (r *Renderer) SetSelected(id string) { r.selectedID = id }

// Show displays the pivot indicator at the given world position.
// Implements the navigation controller's indicator sink.
func (r *Renderer) Show(worldPos math.Vec3) {
	r.pivotVisible = true
	r.pivotPos = worldPos
}

// Hide removes the pivot indicator.
func (r *Renderer) Hide() {
	r.pivotVisible = false
}

// DrawScene draws every entity as a wireframe box, with hover and selection
// highlights, then the pivot indicator on top.
func (r *Renderer) DrawScene(s *scene.Scene, cam *camera.Camera) {
	mvp := cam.ProjMatrix().Mul(cam.ViewMatrix())

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uMVP, 1, false, mvp.Ptr())
	gl.BindVertexArray(r.lineVAO)

	for _, e := range s.Entities() {
		color := colorEntity
		switch e.ID {
		case r.selectedID:
			color = colorSelected
		case r.hoverID:
			color = colorHover
		}
		r.drawLines(wireframeVertices(e.Bounds), color)
	}

	if r.pivotVisible {
		gl.Disable(gl.DEPTH_TEST)
		r.drawLines(pivotCrossVertices(r.pivotPos), colorPivot)
		gl.Enable(gl.DEPTH_TEST)
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) drawLines(vertices []float32, color [3]float32) {
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	if len(vertices) > r.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
		r.capacity = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))
	}
	gl.Uniform3f(r.uColor, color[0], color[1], color[2])
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// wireframeVertices creates line vertices for a wireframe bounding box:
// 24 vertices (12 edges, 2 endpoints each), [x, y, z] per vertex.
func wireframeVertices(b picking.AABB) []float32 {
	minX, minY, minZ := b.Min.X, b.Min.Y, b.Min.Z
	maxX, maxY, maxZ := b.Max.X, b.Max.Y, b.Max.Z
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// pivotCrossVertices creates a three-axis cross centered on the pivot.
func pivotCrossVertices(p math.Vec3) []float32 {
	s := float32(pivotIndicatorSize)
	return []float32{
		p.X - s, p.Y, p.Z, p.X + s, p.Y, p.Z,
		p.X, p.Y - s, p.Z, p.X, p.Y + s, p.Z,
		p.X, p.Y, p.Z - s, p.X, p.Y, p.Z + s,
	}
}
