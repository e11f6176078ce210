package polygon

type fakeProgram struct {
	SequenceState

	initErr error
	inits   int
	closed  bool

	activations   []bool
	deactivations int

	color              Color
	depth              float32
	successiveStarts   int
	successiveFinishes int
}

func (p *fakeProgram) Init() error {
	p.inits++
	return p.initErr
}

func (p *fakeProgram) Close() { p.closed = true }
func (p *fakeProgram) ActivateProgram(streaming bool) {
	p.activations = append(p.activations, streaming)
}
func (p *fakeProgram) DeactivateProgram()                 { p.deactivations++ }
func (p *fakeProgram) AttribXYZW() uint32                 { return 0 }
func (p *fakeProgram) AttribY() uint32                    { return 1 }
func (p *fakeProgram) SetColor(c Color)                   { p.color = c }
func (p *fakeProgram) SetDepthAttenuation(factor float32) { p.depth = factor }
func (p *fakeProgram) StartSuccessiveDrawings()           { p.successiveStarts++ }
func (p *fakeProgram) FinishSuccessiveDrawings()          { p.successiveFinishes++ }

type attribCall struct {
	index uint32
	size  int
	data  []float32
}

type drawCall struct {
	kind  Primitive
	first int
	count int
}

type fakeBackend struct {
	attribs []attribCall
	draws   []drawCall
}

func (b *fakeBackend) VertexAttribPointer(index uint32, size int, data []float32) {
	b.attribs = append(b.attribs, attribCall{index: index, size: size, data: append([]float32(nil), data...)})
}

func (b *fakeBackend) DrawArrays(kind Primitive, first, count int) {
	b.draws = append(b.draws, drawCall{kind: kind, first: first, count: count})
}

// newTestRenderer returns an initialized renderer wired to fakes.
func newTestRenderer(minCache int) (*Renderer, *fakeProgram, *fakeBackend) {
	prog := &fakeProgram{}
	backend := &fakeBackend{}
	r := NewRenderer(minCache, func() Program { return prog }, backend)
	if err := r.Init(); err != nil {
		panic(err)
	}
	return r, prog, backend
}
