package clock

import (
	"time"
)

// Clock lets journal timestamps be controlled in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the time package.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
