package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubiks-gl/internal/engine/polygon"
	"github.com/Faultbox/rubiks-gl/internal/engine/rubiks"
)

type stubProgram struct {
	polygon.SequenceState
	successive int
}

func (p *stubProgram) Init() error                 { return nil }
func (p *stubProgram) Close()                      {}
func (p *stubProgram) ActivateProgram(bool)        {}
func (p *stubProgram) DeactivateProgram()          {}
func (p *stubProgram) AttribXYZW() uint32          { return 0 }
func (p *stubProgram) AttribY() uint32             { return 1 }
func (p *stubProgram) SetColor(polygon.Color)      {}
func (p *stubProgram) SetDepthAttenuation(float32) {}
func (p *stubProgram) StartSuccessiveDrawings()    { p.successive++ }
func (p *stubProgram) FinishSuccessiveDrawings()   {}

type recordedDraw struct {
	kind  polygon.Primitive
	count int
}

type recordingBackend struct {
	draws []recordedDraw
}

func (b *recordingBackend) VertexAttribPointer(uint32, int, []float32) {}

func (b *recordingBackend) DrawArrays(kind polygon.Primitive, _, count int) {
	b.draws = append(b.draws, recordedDraw{kind: kind, count: count})
}

func newTestHUD(t *testing.T) (*HUD, *polygon.Renderer, *stubProgram, *recordingBackend) {
	t.Helper()
	prog := &stubProgram{}
	backend := &recordingBackend{}
	poly := polygon.NewRenderer(64, func() polygon.Program { return prog }, backend)
	require.NoError(t, poly.Init())
	return NewHUD(poly), poly, prog, backend
}

func TestHUDIdleFrame(t *testing.T) {
	hud, poly, prog, backend := newTestHUD(t)

	require.True(t, hud.Draw(HUDState{Width: 800, Height: 600}))

	// Track bar plus the nine selector cells.
	require.Len(t, backend.draws, 10)
	assert.Equal(t, recordedDraw{kind: polygon.TriangleStrip, count: 4}, backend.draws[0])
	for _, d := range backend.draws[1:] {
		assert.Equal(t, recordedDraw{kind: polygon.TriangleFan, count: 4}, d)
	}
	assert.Zero(t, prog.successive)
	assert.False(t, poly.InSequence())
}

func TestHUDAnimatingFrame(t *testing.T) {
	hud, poly, prog, backend := newTestHUD(t)

	require.True(t, hud.Draw(HUDState{
		Width:    800,
		Height:   600,
		Progress: 0.5,
		Pending:  3,
		Axis:     rubiks.AxisY,
		Row:      rubiks.RowMid,
	}))

	// Track, progress, three pips, nine selector cells.
	assert.Len(t, backend.draws, 14)
	assert.Equal(t, 1, prog.successive)
	assert.Equal(t, polygon.Stats{DrawCalls: 14, Vertices: 56}, poly.Stats())
}

func TestHUDCapsPips(t *testing.T) {
	hud, _, _, backend := newTestHUD(t)

	require.True(t, hud.Draw(HUDState{Width: 800, Height: 600, Pending: 500}))
	assert.Len(t, backend.draws, 1+maxPips+9)
}

func TestHUDFailsInsideOpenSequence(t *testing.T) {
	hud, poly, _, _ := newTestHUD(t)

	require.True(t, poly.StartSequence(polygon.Triangles, 2))
	assert.False(t, hud.Draw(HUDState{Width: 800, Height: 600}))
	require.True(t, poly.EndSequence())
}
