package rubiks

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleConstraints(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		s := NewShuffler(rand.NewPCG(seed, seed+1))
		ops, err := s.Generate(200)
		require.NoError(t, err)
		require.Len(t, ops, 200)

		for i := 1; i < len(ops); i++ {
			assert.NotEqual(t, ops[i-1].Inverse(), ops[i], "seed %d step %d undoes its predecessor", seed, i)
			if i >= 2 {
				triple := ops[i-2] == ops[i-1] && ops[i-1] == ops[i]
				assert.False(t, triple, "seed %d step %d repeats three times", seed, i)
			}
		}
	}
}

func TestShuffleIsDeterministicPerSource(t *testing.T) {
	a, err := NewShuffler(rand.NewPCG(42, 42)).Generate(30)
	require.NoError(t, err)
	b, err := NewShuffler(rand.NewPCG(42, 42)).Generate(30)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestShuffleZeroSteps(t *testing.T) {
	ops, err := NewShuffler(nil).Generate(0)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

// constSource always yields the same value, so every draw picks the same
// operation and the triple-repeat rule can never be satisfied.
type constSource struct{}

func (constSource) Uint64() uint64 { return 1<<63 | 1<<31 }

func TestShuffleExhaustion(t *testing.T) {
	ops, err := NewShuffler(constSource{}).Generate(3)
	assert.ErrorIs(t, err, ErrShuffleExhausted)
	assert.Nil(t, ops)
}

func TestAcceptable(t *testing.T) {
	op := ChangeOperation{Axis: AxisY, Row: RowMid, Direction: Left}

	assert.True(t, acceptable(nil, op))
	assert.False(t, acceptable([]ChangeOperation{op.Inverse()}, op))
	assert.True(t, acceptable([]ChangeOperation{op}, op))
	assert.False(t, acceptable([]ChangeOperation{op, op}, op))
	assert.True(t, acceptable([]ChangeOperation{op, op.Inverse().Inverse(), {Axis: AxisX}}, op))
}
