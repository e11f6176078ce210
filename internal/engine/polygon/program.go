// Package polygon draws filled primitives through a strict begin/end
// protocol modelled on immediate-mode glBegin/glEnd, batching every vertex
// of a sequence into a single draw call.
package polygon

// Program is the shader-program collaborator the renderer draws through.
//
// ActivateProgram binds the program, updates uniforms and enables vertex
// attributes. With streaming set, the program expects planar vertices from
// two separate arrays: x on AttribXYZW and y on AttribY.
type Program interface {
	Init() error
	Close()

	ActivateProgram(streaming bool)
	DeactivateProgram()
	AttribXYZW() uint32
	AttribY() uint32

	SetColor(c Color)
	SetDepthAttenuation(factor float32)

	ActiveSequence() bool
	StartSequence() bool
	EndSequence() bool

	StartSuccessiveDrawings()
	FinishSuccessiveDrawings()
}

// Backend issues non-indexed draws of float32 vertex data.
type Backend interface {
	// VertexAttribPointer sources attribute index from data, size
	// components per vertex.
	VertexAttribPointer(index uint32, size int, data []float32)
	DrawArrays(kind Primitive, first, count int)
}

// SequenceState tracks whether a drawing sequence is open. Program
// implementations embed it to satisfy the sequence half of Program.
type SequenceState struct {
	active bool
}

// ActiveSequence reports whether a sequence is open.
func (s *SequenceState) ActiveSequence() bool {
	return s.active
}

// StartSequence opens a sequence. It fails if one is already open.
func (s *SequenceState) StartSequence() bool {
	if s.active {
		return false
	}
	s.active = true
	return true
}

// EndSequence closes the open sequence. It fails if none is open.
func (s *SequenceState) EndSequence() bool {
	if !s.active {
		return false
	}
	s.active = false
	return true
}

// Style is the polygon drawing style.
type Style struct {
	StrokeColor Color

	// DepthAttenuation darkens fragments with depth; 0 disables it.
	DepthAttenuation float32
}

// DefaultStyle is opaque white without attenuation.
var DefaultStyle = Style{StrokeColor: ColorWhite}

// Stats counts the draws issued by a renderer.
type Stats struct {
	DrawCalls int
	Vertices  int
}
