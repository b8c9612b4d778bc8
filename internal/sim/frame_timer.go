package sim

import "time"

// FrameTimer measures frame durations for the frame-rate readout. The
// readout always reports the previous completed frame.
type FrameTimer struct {
	now   Clock
	start time.Time
	prev  time.Duration
}

func NewFrameTimer(now Clock) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	// one clock tick until the first frame completes
	return &FrameTimer{now: now, prev: time.Nanosecond}
}

func (f *FrameTimer) Begin() {
	f.start = f.now()
}

// End records the duration since Begin. Zero-length frames are stored as
// one tick so FPS stays finite.
func (f *FrameTimer) End() {
	d := f.now().Sub(f.start)
	if d <= 0 {
		d = time.Nanosecond
	}
	f.prev = d
}

func (f *FrameTimer) FPS() float64 {
	return 1 / f.prev.Seconds()
}

func (f *FrameTimer) Previous() time.Duration {
	return f.prev
}
