package core

import "time"

// Clock is the per-tick time sample shared by all systems
// Now is elapsed game time since session start, Delta the time since the previous tick
type Clock struct {
	Now   time.Duration
	Delta time.Duration
	Tick  uint64
}

// Seconds returns Now as float seconds
func (c Clock) Seconds() float64 {
	return c.Now.Seconds()
}

// Since returns the elapsed duration between t and Now
func (c Clock) Since(t time.Duration) time.Duration {
	return c.Now - t
}

// FromSeconds converts float seconds to a Duration
func FromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
