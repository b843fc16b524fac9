package clock

import "time"

// Clock abstracts wall-clock access so schedulers can be tested without real
// sleeps.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// New returns a Clock backed by the system clock.
func New() Clock { return systemClock{} }
