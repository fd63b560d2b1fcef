package adapter

import "time"

// Clock abstracts wall-clock time so cycle windows and sweeper ticks can be driven in tests
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current time in UTC
	Now() time.Time
	Since(t time.Time) time.Duration
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

// NewClock returns the system clock
func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
