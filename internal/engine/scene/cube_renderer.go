// Package scene draws the puzzle's sub-cubes.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rubiks-gl/internal/engine/polygon"
	"github.com/Faultbox/rubiks-gl/internal/engine/rubiks"
	"github.com/Faultbox/rubiks-gl/internal/engine/shader"
	"github.com/Faultbox/rubiks-gl/internal/engine/shaders"
)

// DefaultFaceColors are the sticker colors of the -x, +x, -y, +y, -z and
// +z faces.
var DefaultFaceColors = [6]polygon.Color{
	polygon.MustParseColor("orange"),
	polygon.MustParseColor("red"),
	polygon.MustParseColor("yellow"),
	polygon.MustParseColor("white"),
	polygon.MustParseColor("blue"),
	polygon.MustParseColor("green"),
}

// DefaultBodyColor is the plastic between stickers.
var DefaultBodyColor = polygon.RGBA(20, 20, 24, 255)

// CubeRenderer draws the 27 sub-cubes of a rubiks.Cube.
type CubeRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	count   int32

	locModel       int32
	locViewProj    int32
	locFaceColors  int32
	locBodyColor   int32
	locStickerMask int32
	locLightDir    int32
	locHighlight   int32

	faceColors [6 * 4]float32
	bodyColor  polygon.Color
	lightDir   mgl32.Vec3
}

// NewCubeRenderer compiles the cube shader and uploads the sub-cube mesh.
func NewCubeRenderer(faceColors [6]polygon.Color) (*CubeRenderer, error) {
	cr := &CubeRenderer{
		bodyColor: DefaultBodyColor,
		lightDir:  mgl32.Vec3{-0.4, -1, -0.6},
	}
	cr.SetFaceColors(faceColors)

	program, err := shader.CompileProgram(shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cube shader: %w", err)
	}
	cr.program = program

	cr.locModel = shader.GetUniform(program, "uModel")
	cr.locViewProj = shader.GetUniform(program, "uViewProj")
	cr.locFaceColors = shader.GetUniform(program, "uFaceColors")
	cr.locBodyColor = shader.GetUniform(program, "uBodyColor")
	cr.locStickerMask = shader.GetUniform(program, "uStickerMask")
	cr.locLightDir = shader.GetUniform(program, "uLightDir")
	cr.locHighlight = shader.GetUniform(program, "uHighlightSide")

	mesh := cubeMesh()
	cr.count = int32(len(mesh) / floatsPerVertex)

	gl.GenVertexArrays(1, &cr.vao)
	gl.BindVertexArray(cr.vao)
	gl.GenBuffers(1, &cr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, cr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh)*4, gl.Ptr(mesh), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return cr, nil
}

// SetFaceColors sets the sticker colors in -x, +x, -y, +y, -z, +z order.
func (cr *CubeRenderer) SetFaceColors(colors [6]polygon.Color) {
	for i, c := range colors {
		v := c.Vec4()
		copy(cr.faceColors[i*4:], v[:])
	}
}

// Render draws every sub-cube with its model matrix from data and
// highlights the hit face.
func (cr *CubeRenderer) Render(data *rubiks.Data, viewProj mgl32.Mat4) {
	gl.UseProgram(cr.program)
	gl.UniformMatrix4fv(cr.locViewProj, 1, false, &viewProj[0])
	gl.Uniform4fv(cr.locFaceColors, 6, &cr.faceColors[0])
	gl.Uniform4f(cr.locBodyColor, cr.bodyColor.R, cr.bodyColor.G, cr.bodyColor.B, cr.bodyColor.A)
	gl.Uniform3f(cr.locLightDir, cr.lightDir[0], cr.lightDir[1], cr.lightDir[2])

	gl.BindVertexArray(cr.vao)
	for id := range data.Models {
		model := data.Models[id]
		gl.UniformMatrix4fv(cr.locModel, 1, false, &model[0])
		gl.Uniform1i(cr.locStickerMask, stickerMask(id))

		var highlight int32
		if id == data.CubeHit {
			highlight = int32(data.SideHit)
		}
		gl.Uniform1i(cr.locHighlight, highlight)

		gl.DrawArrays(gl.TRIANGLES, 0, cr.count)
	}
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Close releases GL resources.
func (cr *CubeRenderer) Close() {
	if cr.vbo != 0 {
		gl.DeleteBuffers(1, &cr.vbo)
	}
	if cr.vao != 0 {
		gl.DeleteVertexArrays(1, &cr.vao)
	}
	if cr.program != 0 {
		gl.DeleteProgram(cr.program)
	}
}
