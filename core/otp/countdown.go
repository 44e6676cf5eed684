// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

package otp

import (
	"fmt"
	"time"
)

const (
	DefaultExpirationTime = 120 // seconds
	DefaultResendTimer    = 10  // seconds
	DefaultTickInterval   = time.Second
)

// Countdown is a seconds counter that the owner ticks once per interval.
// Every Start hands out a new tag; ticks carrying an older tag belong to a
// replaced run and are ignored.
type Countdown struct {
	remaining int
	running   bool
	tag       int
}

// Start (re)arms the countdown with seconds and returns the tag its ticks
// must carry. A non-positive duration leaves the countdown idle.
func (c *Countdown) Start(seconds int) int {
	c.tag++
	c.remaining = max(seconds, 0)
	c.running = c.remaining > 0
	return c.tag
}

// Reset stops the countdown and loads seconds without running it, so the
// full duration reads back before the first Start.
func (c *Countdown) Reset(seconds int) {
	c.tag++
	c.remaining = max(seconds, 0)
	c.running = false
}

// Stop halts the countdown and orphans any scheduled tick.
func (c *Countdown) Stop() {
	c.tag++
	c.running = false
}

// Tick decrements the countdown if tag matches the current run. It reports
// whether another tick has to be scheduled.
func (c *Countdown) Tick(tag int) bool {
	if !c.running || tag != c.tag {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining, c.running = 0, false
	}
	return c.running
}

func (c Countdown) Remaining() int { return c.remaining }
func (c Countdown) Running() bool  { return c.running }
func (c Countdown) Tag() int       { return c.tag }

// Cooldown guards an action with a minimum interval.
type Cooldown struct {
	Countdown
}

// Trigger starts the cooldown unless it is still running, in which case the
// triggering action must be dropped.
func (c *Cooldown) Trigger(seconds int) (int, bool) {
	if c.Running() {
		return c.Tag(), false
	}
	return c.Start(seconds), true
}

// FormatRemaining renders seconds as "MM:SSs" above one minute and as "Ns"
// otherwise.
func FormatRemaining(seconds int) string {
	if seconds > 60 {
		return fmt.Sprintf("%02d:%02ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}
