// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		renderImage()
//		fps.Wait()
//	}
//
// Wait() runs in the calling goroutine. The sleep duration is adjusted every
// frame to account for the time spent outside of Wait() and for any
// oversleeping, so that the average rate over many frames is accurate.
package limiter

import (
	"time"
)

// if the limiter falls this many frames behind then it gives up trying to
// catch up and starts again from the current time
const maxLag = 3

// FpsLimiter stalls the caller so that calls to Wait() return at a fixed rate.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	// the time at which the next call to Wait() should return
	next time.Time

	// the current time. replaced in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the rate at which Wait() returns. Values less than one are
// treated as one.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	lim.framesPerSecond = max(framesPerSecond, 1)
	lim.secondsPerFrame = time.Second / time.Duration(lim.framesPerSecond)
	lim.next = time.Time{}
}

// Limit returns the current rate.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until the next frame is due.
func (lim *FpsLimiter) Wait() {
	now := lim.now()

	if lim.next.IsZero() || now.Sub(lim.next) > maxLag*lim.secondsPerFrame {
		lim.next = now.Add(lim.secondsPerFrame)
	}

	if d := lim.next.Sub(now); d > 0 {
		lim.sleep(d)
	}

	lim.next = lim.next.Add(lim.secondsPerFrame)
}
