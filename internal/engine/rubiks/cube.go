package rubiks

import (
	"math"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/rubiks-gl/internal/engine/picking"
	"github.com/Faultbox/rubiks-gl/internal/logger"
)

// DefaultAnimationTime is the duration of one animated quarter turn.
const DefaultAnimationTime = time.Second

// Data is what a renderer needs to draw the cube.
type Data struct {
	// Models holds the model matrix of each sub-cube, indexed by sub-cube
	// identity rather than by cell.
	Models [NumCubes]mgl32.Mat4

	// CubeHit is the sub-cube under the cursor, -1 for none.
	CubeHit int
	// SideHit is the world-space face of CubeHit under the cursor.
	SideHit picking.Side
}

// Cube is the animated puzzle. Operations queue up through Change and are
// played one at a time by Update, which must be called once per frame.
type Cube struct {
	offset float32
	scale  float32

	index     CellIndex
	placement [NumCubes]mgl32.Mat4
	committed [NumCubes]mgl32.Mat4
	overlay   [NumCubes]mgl32.Mat4
	data      Data

	pending       []ChangeOperation
	active        bool
	start         time.Time
	animationTime time.Duration

	clock    Clock
	shuffler *Shuffler
	log      *zap.Logger
}

// Option configures a Cube.
type Option func(*Cube)

// WithClock sets the clock animations are timed with.
func WithClock(clock Clock) Option {
	return func(c *Cube) { c.clock = clock }
}

// WithAnimationTime sets the duration of one quarter turn.
func WithAnimationTime(d time.Duration) Option {
	return func(c *Cube) { c.SetAnimationTime(d) }
}

// WithShuffler sets the generator used by Shuffle.
func WithShuffler(s *Shuffler) Option {
	return func(c *Cube) { c.shuffler = s }
}

// New returns a solved cube. offset is the unscaled distance between
// neighbouring sub-cubes and scale the scale of a single sub-cube.
func New(offset, scale float32, opts ...Option) *Cube {
	c := &Cube{
		animationTime: DefaultAnimationTime,
		clock:         SystemClock,
		log:           logger.Named("rubiks"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.shuffler == nil {
		c.shuffler = NewShuffler(nil)
	}
	c.Init(offset, scale)
	return c
}

// Init resets the cube to solved with the given geometry. Pending
// operations and any running animation are dropped.
func (c *Cube) Init(offset, scale float32) *Cube {
	c.index = NewCellIndex()
	for i := range c.committed {
		c.committed[i] = mgl32.Ident4()
		c.overlay[i] = mgl32.Ident4()
	}
	c.pending = c.pending[:0]
	c.active = false
	c.ResetHit()
	return c.SetGeometry(offset, scale)
}

// SetGeometry changes sub-cube spacing and size without touching the
// arrangement.
func (c *Cube) SetGeometry(offset, scale float32) *Cube {
	c.offset = offset
	c.scale = scale

	for i := range c.placement {
		x, y, z := Coordinates(i)
		home := mgl32.Vec3{float32(x - 1), float32(y - 1), float32(z - 1)}.Mul(offset)
		c.placement[i] = mgl32.Scale3D(scale, scale, scale).Mul4(mgl32.Translate3D(home[0], home[1], home[2]))
	}
	c.updateModels()
	return c
}

func (c *Cube) Offset() float32 { return c.offset }
func (c *Cube) Scale() float32  { return c.scale }

// Data returns the render data. It stays valid for the cube's lifetime and
// is rewritten by Update.
func (c *Cube) Data() *Data {
	return &c.data
}

// ResetHit clears the cursor hit.
func (c *Cube) ResetHit() *Cube {
	c.data.CubeHit = -1
	c.data.SideHit = picking.SideNone
	return c
}

// AnimationActive reports whether a turn is being animated.
func (c *Cube) AnimationActive() bool {
	return c.active
}

// AnimationPending reports whether a turn is animated or queued.
func (c *Cube) AnimationPending() bool {
	return c.active || len(c.pending) > 0
}

// PendingCount returns the number of queued turns, including the one
// being animated.
func (c *Cube) PendingCount() int {
	return len(c.pending)
}

// Progress returns the fraction of the current turn played so far, 0 when
// idle.
func (c *Cube) Progress() float32 {
	if !c.active || len(c.pending) == 0 {
		return 0
	}
	if c.animationTime <= 0 {
		return 1
	}
	return float32(math.Min(1, c.fraction(c.clock.Now())))
}

// CubeIndex returns the sub-cube in cell i, -1 if i is out of range.
func (c *Cube) CubeIndex(i int) int {
	return c.index.CellIdentity(i)
}

// Index returns a copy of the cell mapping.
func (c *Cube) Index() CellIndex {
	return c.index
}

// AnimationTime returns the duration of one quarter turn.
func (c *Cube) AnimationTime() time.Duration {
	return c.animationTime
}

// SetAnimationTime sets the duration of one quarter turn. Negative values
// are treated as zero, which commits each turn on the tick after it starts.
func (c *Cube) SetAnimationTime(d time.Duration) *Cube {
	c.animationTime = max(d, 0)
	return c
}

// Change queues op. It never interrupts the turn being animated.
func (c *Cube) Change(op ChangeOperation) *Cube {
	if !op.Valid() {
		logger.DPanic("rubiks: invalid change operation", zap.Stringer("op", op))
		return c
	}
	c.pending = append(c.pending, op)
	return c
}

// Shuffle queues steps random turns.
func (c *Cube) Shuffle(steps int) error {
	ops, err := c.shuffler.Generate(steps)
	if err != nil {
		return err
	}
	c.pending = append(c.pending, ops...)
	c.log.Debug("shuffle queued", zap.Int("steps", len(ops)))
	return nil
}

// ClearPending drops every queued turn. A turn being animated is aborted
// and the cube snaps back to its last committed arrangement.
func (c *Cube) ClearPending() *Cube {
	if len(c.pending) == 0 && !c.active {
		return c
	}

	c.log.Debug("pending turns cleared",
		zap.Int("dropped", len(c.pending)),
		zap.Bool("aborted", c.active),
	)
	c.pending = c.pending[:0]
	if c.active {
		c.active = false
		c.resetOverlay()
		c.updateModels()
	}
	return c
}

// Update advances the animation. The first call that sees a queued turn
// only starts its clock; later calls rotate the turning layer
// proportionally to the elapsed time until the turn is committed.
func (c *Cube) Update() *Cube {
	if len(c.pending) == 0 {
		c.active = false
		return c
	}

	now := c.clock.Now()
	op := c.pending[0]

	if !c.active {
		c.active = true
		c.start = now
		return c
	}

	if now.Sub(c.start) < c.animationTime {
		rot := rotation(op, float32(c.fraction(now)))
		for _, id := range c.index.LayerIdentities(op.Axis, op.Row) {
			c.overlay[id] = rot
		}
		c.updateModels()
		return c
	}

	c.active = false
	c.pending = c.pending[1:]
	c.rotate(op)
	c.updateModels()
	return c
}

// Solved reports whether every sub-cube is home and unrotated.
func (c *Cube) Solved() bool {
	if !c.index.IsIdentity() {
		return false
	}
	for _, m := range c.committed {
		if !m.ApproxEqual(mgl32.Ident4()) {
			return false
		}
	}
	return true
}

// Pick records the sub-cube nearest along ray, and the face it is entered
// through, as the current hit. It reports whether anything was hit.
func (c *Cube) Pick(ray picking.Ray) bool {
	c.ResetHit()

	best := float32(math32.MaxFloat32)
	for id, model := range c.data.Models {
		t, side, hit := ray.IntersectBox(picking.UnitCube, model)
		if hit && t < best {
			best = t
			c.data.CubeHit = id
			c.data.SideHit = side
		}
	}
	return c.data.CubeHit >= 0
}

// CellOf returns the cell sub-cube id occupies, -1 if id is out of range.
func (c *Cube) CellOf(id int) int {
	for pos, occupant := range c.index {
		if occupant == id {
			return pos
		}
	}
	return -1
}

// fraction is the elapsed share of the animation time at now.
func (c *Cube) fraction(now time.Time) float64 {
	return float64(now.Sub(c.start)) / float64(c.animationTime)
}

// rotate commits op: the turning layer's sub-cubes get the full quarter
// turn composed into their orientation and the cell mapping is permuted.
func (c *Cube) rotate(op ChangeOperation) {
	rot := rotation(op, 1)
	for _, id := range c.index.LayerIdentities(op.Axis, op.Row) {
		c.committed[id] = snap(rot.Mul4(c.committed[id]))
	}
	c.index.ApplyRotation(op)
	c.resetOverlay()

	c.log.Debug("turn committed", zap.Stringer("op", op), zap.Int("pending", len(c.pending)))
}

func (c *Cube) resetOverlay() {
	for i := range c.overlay {
		c.overlay[i] = mgl32.Ident4()
	}
}

func (c *Cube) updateModels() {
	for i := range c.data.Models {
		c.data.Models[i] = c.overlay[i].Mul4(c.committed[i]).Mul4(c.placement[i])
	}
}

// rotation returns the share t of op's quarter turn.
func rotation(op ChangeOperation, t float32) mgl32.Mat4 {
	var axis mgl32.Vec3
	axis[op.Axis] = 1
	return mgl32.HomogRotate3D(op.Direction.sign()*math32.Pi/2*t, axis)
}

// snap rounds a composition of quarter turns to its exact signed
// permutation matrix.
func snap(m mgl32.Mat4) mgl32.Mat4 {
	for i := range m {
		m[i] = math32.Round(m[i])
	}
	return m
}
