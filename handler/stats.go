package handler

import (
	"sync/atomic"

	"github.com/philipp01105/nlogd/core"
)

// Stats tracks dispatch statistics
type Stats struct {
	// delivered counts successful sink invocations per level
	delivered [core.DebugLevel + 1]atomic.Uint64
	// failedTotal counts sink invocations that returned an error or panicked
	failedTotal atomic.Uint64
	// reentrantTotal counts records dropped because a fan-out was in flight
	reentrantTotal atomic.Uint64
	// unroutedTotal counts records dropped because no sink was registered at their level
	unroutedTotal atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDelivered atomically increments the delivered counter for a level
func (s *Stats) IncrementDelivered(level core.Level) {
	if level.Valid() {
		s.delivered[level].Add(1)
	}
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failedTotal.Add(1)
}

// IncrementReentrant atomically increments the reentrant-drop counter
func (s *Stats) IncrementReentrant() {
	s.reentrantTotal.Add(1)
}

// IncrementUnrouted atomically increments the unrouted-drop counter
func (s *Stats) IncrementUnrouted() {
	s.unroutedTotal.Add(1)
}

// GetDelivered returns the delivered count for a level
func (s *Stats) GetDelivered(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.delivered[level].Load()
}

// GetTotalDelivered returns the delivered count across all levels
func (s *Stats) GetTotalDelivered() uint64 {
	var total uint64
	for i := range s.delivered {
		total += s.delivered[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.delivered {
		s.delivered[i].Store(0)
	}
	s.failedTotal.Store(0)
	s.reentrantTotal.Store(0)
	s.unroutedTotal.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Delivered      map[core.Level]uint64
	FailedTotal    uint64
	ReentrantTotal uint64
	UnroutedTotal  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	delivered := make(map[core.Level]uint64, len(s.delivered))
	for _, l := range core.Levels() {
		delivered[l] = s.delivered[l].Load()
	}
	return Snapshot{
		Delivered:      delivered,
		FailedTotal:    s.failedTotal.Load(),
		ReentrantTotal: s.reentrantTotal.Load(),
		UnroutedTotal:  s.unroutedTotal.Load(),
	}
}
