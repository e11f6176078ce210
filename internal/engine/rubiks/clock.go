package rubiks

import "time"

// Clock supplies the wall-clock time animations are measured against.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the real-time clock.
var SystemClock Clock = systemClock{}
