/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import "time"

// FrameTimer averages the time per frame since the first tick.
type FrameTimer struct {
	start  time.Time
	last   time.Time
	frames int64
}

func (f *FrameTimer) Tick(now time.Time) {
	if f.start.IsZero() {
		f.start = now
	}
	f.last = now
	f.frames++
}

func (f *FrameTimer) Count() int64 { return f.frames }

func (f *FrameTimer) Average() time.Duration {
	if f.frames == 0 {
		return 0
	}
	return f.last.Sub(f.start) / time.Duration(f.frames)
}
