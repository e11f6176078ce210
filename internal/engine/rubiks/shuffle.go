package rubiks

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrShuffleExhausted means no acceptable operation was drawn within the
// retry bound. With 18 operations and at most two rejected per step this
// indicates a broken random source.
var ErrShuffleExhausted = errors.New("shuffle: retry bound exhausted")

const maxShuffleRetries = 1000

// allOperations enumerates the 18 quarter turns in axis, row, direction order.
var allOperations = func() [18]ChangeOperation {
	var ops [18]ChangeOperation
	i := 0
	for a := AxisX; a <= AxisZ; a++ {
		for r := RowLow; r <= RowHigh; r++ {
			for _, d := range [...]Direction{Left, Right} {
				ops[i] = ChangeOperation{Axis: a, Row: r, Direction: d}
				i++
			}
		}
	}
	return ops
}()

// Shuffler draws random operation sequences that never undo the previous
// operation and never repeat the same operation three times in a row.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler returns a shuffler drawing from src. A nil src seeds from
// the current time.
func NewShuffler(src rand.Source) *Shuffler {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>32|1)
	}
	return &Shuffler{rng: rand.New(src)}
}

// Generate returns steps operations. Constraints are checked against the
// operations generated by this call only.
func (s *Shuffler) Generate(steps int) ([]ChangeOperation, error) {
	if steps <= 0 {
		return nil, nil
	}

	ops := make([]ChangeOperation, 0, steps)
	for len(ops) < steps {
		op, err := s.next(ops)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", len(ops), err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (s *Shuffler) next(prev []ChangeOperation) (ChangeOperation, error) {
	for range maxShuffleRetries {
		op := allOperations[s.rng.IntN(len(allOperations))]
		if acceptable(prev, op) {
			return op, nil
		}
	}
	return ChangeOperation{}, ErrShuffleExhausted
}

// acceptable reports whether op may follow prev: it must not be the
// inverse of the last operation, nor equal to both of the last two.
func acceptable(prev []ChangeOperation, op ChangeOperation) bool {
	n := len(prev)
	if n >= 1 && prev[n-1] == op.Inverse() {
		return false
	}
	if n >= 2 && prev[n-1] == op && prev[n-2] == op {
		return false
	}
	return true
}
