// Package glpolygon implements the polygon renderer's program and backend
// on OpenGL 4.1 core.
package glpolygon

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/rubiks-gl/internal/engine/polygon"
	"github.com/Faultbox/rubiks-gl/internal/engine/shader"
	"github.com/Faultbox/rubiks-gl/internal/engine/shaders"
	"github.com/Faultbox/rubiks-gl/internal/logger"
)

// Program is the GL shader program behind polygon.Renderer.
type Program struct {
	polygon.SequenceState

	id uint32

	attribXYZW uint32
	attribY    uint32

	locColor      int32
	locDepth      int32
	locStreaming  int32
	locProjection int32

	color      polygon.Color
	depth      float32
	projection mgl32.Mat4
	successive bool
}

// NewProgram returns an unbuilt program. Init compiles it and needs a
// current GL context.
func NewProgram() *Program {
	return &Program{
		color:      polygon.ColorWhite,
		projection: mgl32.Ident4(),
	}
}

// Init compiles and links the embedded polygon shaders.
func (p *Program) Init() error {
	id, err := shader.CompileProgram(shaders.PolygonVertexShader, shaders.PolygonFragmentShader)
	if err != nil {
		return err
	}

	xyzw, err := shader.GetAttrib(id, "aXYZW")
	if err != nil {
		gl.DeleteProgram(id)
		return err
	}
	y, err := shader.GetAttrib(id, "aY")
	if err != nil {
		gl.DeleteProgram(id)
		return fmt.Errorf("streaming layout: %w", err)
	}

	p.id = id
	p.attribXYZW = xyzw
	p.attribY = y
	p.locColor = shader.GetUniform(id, "uColor")
	p.locDepth = shader.GetUniform(id, "uDepthAttenuation")
	p.locStreaming = shader.GetUniform(id, "uStreaming")
	p.locProjection = shader.GetUniform(id, "uProjection")

	logger.Debug("polygon program linked",
		zap.Uint32("program", id),
		zap.Uint32("aXYZW", xyzw),
		zap.Uint32("aY", y),
	)
	return nil
}

// Close deletes the GL program.
func (p *Program) Close() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// SetProjection sets the matrix applied to every vertex.
func (p *Program) SetProjection(m mgl32.Mat4) {
	p.projection = m
}

// ActivateProgram binds the program and uploads the current uniforms.
func (p *Program) ActivateProgram(streaming bool) {
	gl.UseProgram(p.id)

	var s int32
	if streaming {
		s = 1
	}
	gl.Uniform1i(p.locStreaming, s)
	gl.Uniform4f(p.locColor, p.color.R, p.color.G, p.color.B, p.color.A)
	gl.Uniform1f(p.locDepth, p.depth)
	gl.UniformMatrix4fv(p.locProjection, 1, false, &p.projection[0])
}

// DeactivateProgram unbinds the program unless a successive-drawings
// bracket is open.
func (p *Program) DeactivateProgram() {
	if !p.successive {
		gl.UseProgram(0)
	}
}

func (p *Program) AttribXYZW() uint32 { return p.attribXYZW }
func (p *Program) AttribY() uint32    { return p.attribY }

func (p *Program) SetColor(c polygon.Color) { p.color = c }

func (p *Program) SetDepthAttenuation(factor float32) { p.depth = factor }

// StartSuccessiveDrawings keeps the program bound between draws.
func (p *Program) StartSuccessiveDrawings() {
	p.successive = true
	gl.UseProgram(p.id)
}

// FinishSuccessiveDrawings unbinds the program.
func (p *Program) FinishSuccessiveDrawings() {
	p.successive = false
	gl.UseProgram(0)
}
