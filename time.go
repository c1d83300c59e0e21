package state

import "time"

// Time tracks frame timing for the engine loop.
type Time struct {
	frameDuration time.Duration
	frame         uint64
	elapsed       time.Duration
}

// SetDuration sets the duration of the current frame.
func (t *Time) SetDuration(d time.Duration) {
	t.frameDuration = d
}

// FrameTime returns the duration of the current frame.
func (t *Time) FrameTime() time.Duration {
	return t.frameDuration
}

// Advance records a completed frame of duration d.
func (t *Time) Advance(d time.Duration) {
	t.frameDuration = d
	t.frame++
	t.elapsed += d
}

// Frame returns how many frames Advance has recorded.
func (t *Time) Frame() uint64 {
	return t.frame
}

// Elapsed returns the sum of all durations passed to Advance.
func (t *Time) Elapsed() time.Duration {
	return t.elapsed
}

// Reset clears all timing data.
func (t *Time) Reset() {
	*t = Time{}
}

// FromRegistry implements FromRegistry.
func (Time) FromRegistry(r *Registry) (Cell[Time], error) {
	return Get[Time](r)
}
