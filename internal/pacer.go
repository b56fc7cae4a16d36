/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import "time"

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Pacer sleeps out the rest of each frame period.
type Pacer struct {
	Interval time.Duration
	Clock    Clock
}

// Wait blocks until Interval has passed since start. Late frames return
// immediately.
func (p Pacer) Wait(start time.Time) {
	if p.Interval <= 0 {
		return
	}
	if rest := p.Interval - p.Clock.Now().Sub(start); rest > 0 {
		p.Clock.Sleep(rest)
	}
}
