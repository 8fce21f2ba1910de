// Package clock lets repositories stamp records with an injectable time source.
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant. Advance moves it forward.
type Fixed struct {
	At time.Time
}

// NewFixed returns a clock frozen at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{At: t}
}

func (c *Fixed) Now() time.Time {
	return c.At
}

// Advance moves the clock forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
