package engine

import "time"

// Timer is a cooldown gate on the game clock. It is ready once Interval has
// elapsed since it last fired.
type Timer struct {
	Last     time.Duration
	Interval time.Duration
}

// NewTimer creates a timer that first becomes ready one interval after now.
func NewTimer(interval, now time.Duration) Timer {
	return Timer{Last: now, Interval: interval}
}

// ReadyTimer creates a timer that is ready immediately.
func ReadyTimer(interval, now time.Duration) Timer {
	return Timer{Last: now - interval, Interval: interval}
}

// Ready reports whether the interval has elapsed at now.
func (t Timer) Ready(now time.Duration) bool {
	return now-t.Last >= t.Interval
}

// Fire records now as the last firing time.
func (t *Timer) Fire(now time.Duration) {
	t.Last = now
}

// TryFire fires the timer if it is ready.
func (t *Timer) TryFire(now time.Duration) bool {
	if !t.Ready(now) {
		return false
	}
	t.Last = now
	return true
}

// Remaining returns how long until the timer is ready, zero if it already is.
func (t Timer) Remaining(now time.Duration) time.Duration {
	left := t.Interval - (now - t.Last)
	if left < 0 {
		return 0
	}
	return left
}

// Progress returns the elapsed fraction of the interval in [0, 1].
func (t Timer) Progress(now time.Duration) float64 {
	if t.Interval <= 0 {
		return 1
	}
	p := float64(now-t.Last) / float64(t.Interval)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
