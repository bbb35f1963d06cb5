package clock

import (
	"sync"
	"time"
)

// Clock reports the current time in a fixed location.
type Clock struct {
	loc *time.Location
}

// New creates a clock for loc. A nil loc means the process local zone.
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// Mock is a manually driven clock for tests.
type Mock struct {
	mx    sync.RWMutex
	value time.Time
}

func NewMock(value time.Time) *Mock {
	return &Mock{value: value}
}

func (m *Mock) Now() time.Time {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return m.value
}

func (m *Mock) Set(t time.Time) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.value = t
}

// Advance moves the mock forward by d and returns the new time.
func (m *Mock) Advance(d time.Duration) time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.value = m.value.Add(d)
	return m.value
}
