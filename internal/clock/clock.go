// Package clock provides the time source for "today" so that puzzle
// progression can be simulated across days in tests.
package clock

import (
	"sync"
	"time"

	"wordy/internal/domain"
)

// Clock reports the current instant and the current puzzle date
type Clock interface {
	Now() time.Time
	Today() domain.Date
}

// System is a Clock backed by the wall clock in a fixed location
type System struct {
	loc *time.Location
}

// NewSystem creates a wall clock that evaluates dates in loc
func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.UTC
	}
	return &System{loc: loc}
}

func (c *System) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *System) Today() domain.Date {
	return domain.DateOf(c.Now())
}

// Manual is a Clock that only moves when told to.
//
// Thread-safety: all methods are safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock set to now
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// NewManualAt creates a manual clock set to noon UTC on date
func NewManualAt(date domain.Date) *Manual {
	return NewManual(date.Time().Add(12 * time.Hour))
}

func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Manual) Today() domain.Date {
	return domain.DateOf(c.Now())
}

// SetCurrentDate moves the clock to noon UTC on date
func (c *Manual) SetCurrentDate(date domain.Date) {
	c.Set(date.Time().Add(12 * time.Hour))
}

// Set moves the clock to t
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
