package polygon

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rubiks-gl/internal/logger"
)

// Renderer draws polygons either one-shot (Draw, DrawXY) or as a sequence
// of single vertices bracketed by StartSequence and EndSequence.
//
// A sequence is the only state in which vertices may be streamed, and no
// other drawing or style change is allowed while it is open. EndSequence
// submits everything streamed since StartSequence in one draw call.
type Renderer struct {
	newProgram func() Program
	backend    Backend
	prog       Program

	cache    *VertexCache
	scratch  []float32
	scratchY []float32

	style      Style
	kind       Primitive
	tupleSize  int
	successive bool

	stats Stats
	log   *zap.Logger
}

// NewRenderer creates a renderer. The program is not built until Init.
// minCacheElems is both the initial size and the minimum growth step of
// the vertex cache.
func NewRenderer(minCacheElems int, newProgram func() Program, backend Backend) *Renderer {
	return &Renderer{
		newProgram: newProgram,
		backend:    backend,
		cache:      NewVertexCache(minCacheElems),
		style:      DefaultStyle,
		log:        logger.Named("polygon"),
	}
}

// Init builds the shader program. It is idempotent; after a failure the
// next call tries again.
func (r *Renderer) Init() error {
	if r.prog != nil {
		return nil
	}

	prog := r.newProgram()
	if err := prog.Init(); err != nil {
		return fmt.Errorf("polygon program: %w", err)
	}
	r.prog = prog

	r.log.Debug("polygon renderer initialized", zap.Int("cache", r.cache.Cap()))
	return nil
}

// Close releases the program and the vertex cache.
func (r *Renderer) Close() {
	if r.prog != nil {
		r.prog.Close()
		r.prog = nil
	}
	r.cache.Release()
	r.scratch = nil
	r.scratchY = nil
}

// Initialized reports whether Init succeeded.
func (r *Renderer) Initialized() bool {
	return r.prog != nil
}

// InSequence reports whether a sequence is open.
func (r *Renderer) InSequence() bool {
	return r.prog != nil && r.prog.ActiveSequence()
}

// Style returns the current style.
func (r *Renderer) Style() Style {
	return r.style
}

// Stats returns the draw counters.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// ResetStats zeroes the draw counters, typically once per frame.
func (r *Renderer) ResetStats() {
	r.stats = Stats{}
}

// CacheLen returns the number of components streamed into the open sequence.
func (r *Renderer) CacheLen() int {
	return r.cache.Len()
}

// CacheCap returns the allocated size of the vertex cache.
func (r *Renderer) CacheCap() int {
	return r.cache.Cap()
}

// SetColor sets the stroke color of following polygons. Unlike SetStyle
// it is allowed inside a sequence, like glColor inside glBegin/glEnd.
func (r *Renderer) SetColor(c Color) bool {
	if r.prog == nil {
		return false
	}
	r.prog.SetColor(c)
	r.style.StrokeColor = c
	return true
}

// SetStyle replaces the style. It is rejected while a sequence is open.
func (r *Renderer) SetStyle(s Style) bool {
	if !r.requireIdle("set style") {
		return false
	}
	r.style = s
	r.prog.SetColor(s.StrokeColor)
	r.prog.SetDepthAttenuation(s.DepthAttenuation)
	return true
}

// StartSuccessivePolygonDrawings announces a run of one-shot draws that is
// not interrupted by other rendering, so the program can stay bound between
// them. Brackets do not nest.
func (r *Renderer) StartSuccessivePolygonDrawings() bool {
	if !r.requireIdle("start successive drawings") {
		return false
	}
	if r.successive {
		logger.DPanic("polygon: successive drawings already started")
		return false
	}
	r.prog.StartSuccessiveDrawings()
	r.successive = true
	return true
}

// FinishSuccessivePolygonDrawings closes the bracket opened by
// StartSuccessivePolygonDrawings and restores program state.
func (r *Renderer) FinishSuccessivePolygonDrawings() bool {
	if !r.requireIdle("finish successive drawings") {
		return false
	}
	if !r.successive {
		logger.DPanic("polygon: successive drawings not started")
		return false
	}
	r.prog.FinishSuccessiveDrawings()
	r.successive = false
	return true
}

// Draw draws one primitive run from interleaved float32 coordinates.
// See the generic Draw for the rules.
func (r *Renderer) Draw(kind Primitive, tupleSize int, coords []float32) bool {
	return Draw(r, kind, tupleSize, coords)
}

// DrawXY draws one planar primitive run from separate x and y arrays.
func (r *Renderer) DrawXY(kind Primitive, xs, ys []float32) bool {
	return DrawXY(r, kind, xs, ys)
}

// StartSequence opens a sequence of kind with tupleSize components per
// vertex. It fails if a sequence is already open.
func (r *Renderer) StartSequence(kind Primitive, tupleSize int) bool {
	if !r.requireIdle("start sequence") {
		return false
	}
	if !checkPrimitive(kind, tupleSize) {
		return false
	}

	r.prog.StartSequence()
	r.kind = kind
	r.tupleSize = tupleSize
	r.cache.Reset()
	return true
}

// DrawSequence streams one vertex into the open sequence. z is dropped for
// 2-tuples; 4-tuples get w = 1.
func (r *Renderer) DrawSequence(x, y, z float32) bool {
	return Vertex(r, x, y, z)
}

// DrawSequenceCoords streams interleaved float32 coordinates into the open
// sequence.
func (r *Renderer) DrawSequenceCoords(coords []float32) bool {
	return Vertices(r, coords)
}

// EndSequence closes the open sequence and draws everything streamed into
// it with one draw call. The cache keeps its storage for the next sequence.
// It fails, leaving all state untouched, if no sequence is open.
func (r *Renderer) EndSequence() bool {
	if r.prog == nil {
		return false
	}
	if !r.prog.EndSequence() {
		logger.DPanic("polygon: end sequence without active sequence")
		return false
	}

	data := r.cache.Data()
	r.submit(false, r.kind, r.tupleSize, data, nil)

	r.tupleSize = 0
	r.cache.Reset()
	return true
}

// Draw draws one primitive run from interleaved coordinates of any numeric
// type, tupleSize components per vertex. It is only valid outside a
// sequence and never touches the sequence cache; non-float32 input is
// narrowed into a scratch buffer.
func Draw[T Scalar](r *Renderer, kind Primitive, tupleSize int, coords []T) bool {
	if !r.requireIdle("draw") {
		return false
	}
	if !checkPrimitive(kind, tupleSize) {
		return false
	}

	var data []float32
	data, r.scratch = narrow(r.scratch, coords)
	r.submit(false, kind, tupleSize, data, nil)
	return true
}

// DrawXY draws planar vertices (xs[i], ys[i]) using the program's streaming
// layout. xs and ys must have the same length.
func DrawXY[T Scalar](r *Renderer, kind Primitive, xs, ys []T) bool {
	if !r.requireIdle("draw xy") {
		return false
	}
	if !checkPrimitive(kind, 2) {
		return false
	}
	if len(xs) != len(ys) {
		logger.DPanic("polygon: coordinate arrays differ in length",
			zap.Int("x", len(xs)),
			zap.Int("y", len(ys)),
		)
		return false
	}

	var dataX, dataY []float32
	dataX, r.scratch = narrow(r.scratch, xs)
	dataY, r.scratchY = narrow(r.scratchY, ys)
	r.submit(true, kind, 1, dataX, dataY)
	return true
}

// Vertex streams one vertex into the open sequence.
func Vertex[T Scalar](r *Renderer, x, y, z T) bool {
	if !r.requireSequence() {
		return false
	}

	c := r.cache
	c.Reserve(r.tupleSize)
	c.AppendScalar(float32(x))
	c.AppendScalar(float32(y))
	if r.tupleSize >= 3 {
		c.AppendScalar(float32(z))
	}
	if r.tupleSize == 4 {
		c.AppendScalar(1.0)
	}
	return true
}

// Vertices streams interleaved coordinates into the open sequence. The
// count must be a whole number of vertices.
func Vertices[T Scalar](r *Renderer, coords []T) bool {
	if !r.requireSequence() {
		return false
	}
	if len(coords)%r.tupleSize != 0 {
		logger.DPanic("polygon: partial vertex in sequence",
			zap.Int("count", len(coords)),
			zap.Int("tuple", r.tupleSize),
		)
		return false
	}

	r.cache.Reserve(len(coords))
	return Append(r.cache, coords...)
}

// submit runs activate, attribute setup, draw and deactivate.
// In streaming mode data holds x per vertex and dataY holds y.
func (r *Renderer) submit(streaming bool, kind Primitive, size int, data, dataY []float32) {
	count := len(data) / size

	r.prog.ActivateProgram(streaming)
	r.backend.VertexAttribPointer(r.prog.AttribXYZW(), size, data)
	if streaming {
		r.backend.VertexAttribPointer(r.prog.AttribY(), 1, dataY)
	}
	r.backend.DrawArrays(kind, 0, count)
	r.prog.DeactivateProgram()

	r.stats.DrawCalls++
	r.stats.Vertices += count
}

// requireIdle checks the program exists and no sequence is open.
// A missing program is a soft failure; an open sequence is a caller bug.
func (r *Renderer) requireIdle(op string) bool {
	if r.prog == nil {
		r.log.Debug("polygon renderer not initialized", zap.String("op", op))
		return false
	}
	if r.prog.ActiveSequence() {
		logger.DPanic("polygon: operation not allowed inside a sequence", zap.String("op", op))
		return false
	}
	return true
}

// requireSequence checks the program exists and a sequence is open.
func (r *Renderer) requireSequence() bool {
	if r.prog == nil {
		return false
	}
	if !r.prog.ActiveSequence() {
		logger.DPanic("polygon: vertex outside a sequence")
		return false
	}
	return true
}

func checkPrimitive(kind Primitive, tupleSize int) bool {
	if !kind.IsPolygon() {
		logger.DPanic("polygon: not a polygon primitive", zap.Stringer("kind", kind))
		return false
	}
	if !validTupleSize(tupleSize) {
		logger.DPanic("polygon: tuple size must be 2, 3 or 4", zap.Int("tuple", tupleSize))
		return false
	}
	return true
}

// narrow returns src as float32. float32 input is returned as is; other
// types are converted into buf, which is returned for reuse.
func narrow[T Scalar](buf []float32, src []T) (data, scratch []float32) {
	if f, ok := any(src).([]float32); ok {
		return f, buf
	}
	buf = buf[:0]
	for _, v := range src {
		buf = append(buf, float32(v))
	}
	return buf, buf
}
