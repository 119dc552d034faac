package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies the wall-clock time used for record metadata.
type Clock func() time.Time

// SystemClock reads time.Now on every call.
func SystemClock() time.Time {
	return time.Now()
}

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// CoarseClock returns a Clock backed by a cached time refreshed every
// 500µs by a background goroutine. The goroutine is started on the first
// call and lives for the rest of the process.
func CoarseClock() Clock {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
	return func() time.Time {
		return *coarseNow.Load()
	}
}

// FixedClock always returns t. Useful in tests.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
