package store

import "github.com/runoshun/tasks/internal/domain"

// MonotonicIDs issues millisecond-timestamp IDs that never repeat.
// When the clock has not advanced past the last issued ID, the next ID is last+1.
type MonotonicIDs struct {
	clock domain.Clock
	last  int64
}

// Ensure MonotonicIDs implements domain.IDGenerator.
var _ domain.IDGenerator = (*MonotonicIDs)(nil)

// NewMonotonicIDs creates a generator driven by clock.
func NewMonotonicIDs(clock domain.Clock) *MonotonicIDs {
	return &MonotonicIDs{clock: clock}
}

// NextID returns the next ID.
func (g *MonotonicIDs) NextID() int64 {
	id := g.clock.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an existing ID. IDs outside 1..domain.MaxTaskID are
// ignored so last+1 can never overflow.
func (g *MonotonicIDs) Observe(id int64) {
	if domain.ValidID(id) && id > g.last {
		g.last = id
	}
}
