/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimerEmpty(t *testing.T) {
	var f FrameTimer
	assert.Equal(t, time.Duration(0), f.Average())
	assert.Equal(t, int64(0), f.Count())
}

func TestFrameTimerAverage(t *testing.T) {
	var f FrameTimer
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		f.Tick(start.Add(time.Duration(i) * 20 * time.Millisecond))
	}
	assert.Equal(t, int64(4), f.Count())
	assert.Equal(t, 15*time.Millisecond, f.Average())
	assert.Equal(t, int64(15), f.Average().Milliseconds())
}
