// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_RunsDownAndStops(t *testing.T) {
	var c Countdown
	tag := c.Start(3)
	assert.True(t, c.Running())
	assert.Equal(t, 3, c.Remaining())

	assert.True(t, c.Tick(tag))
	assert.True(t, c.Tick(tag))
	assert.False(t, c.Tick(tag), "last tick stops the countdown")
	assert.False(t, c.Running())
	assert.Zero(t, c.Remaining())

	assert.False(t, c.Tick(tag), "idle countdown ignores ticks")
	assert.Zero(t, c.Remaining())
}

func TestCountdown_StartReplacesRunningInstance(t *testing.T) {
	var c Countdown
	old := c.Start(10)
	c.Tick(old)

	tag := c.Start(5)
	assert.NotEqual(t, old, tag)
	assert.False(t, c.Tick(old), "ticks of the replaced run are ignored")
	assert.Equal(t, 5, c.Remaining())

	assert.True(t, c.Tick(tag))
	assert.Equal(t, 4, c.Remaining())
}

func TestCountdown_NonPositiveStartStaysIdle(t *testing.T) {
	var c Countdown
	c.Start(4)
	tag := c.Start(0)
	assert.False(t, c.Running())
	assert.False(t, c.Tick(tag))

	c.Start(-2)
	assert.Zero(t, c.Remaining())
	assert.False(t, c.Running())
}

func TestCountdown_Stop(t *testing.T) {
	var c Countdown
	tag := c.Start(10)
	c.Stop()
	assert.False(t, c.Running())
	assert.False(t, c.Tick(tag))
	assert.Equal(t, 10, c.Remaining())
}

func TestCooldown_RejectsWhileRunning(t *testing.T) {
	var c Cooldown
	tag, ok := c.Trigger(10)
	assert.True(t, ok)

	c.Tick(tag)
	c.Tick(tag)
	c.Tick(tag)

	again, ok := c.Trigger(10)
	assert.False(t, ok)
	assert.Equal(t, tag, again)
	assert.Equal(t, 7, c.Remaining(), "rejected trigger must not reset the cooldown")

	for c.Tick(tag) {
	}
	_, ok = c.Trigger(10)
	assert.True(t, ok, "accepted again once cooled down")
	assert.Equal(t, 10, c.Remaining())
}

func TestCooldown_ZeroDurationNeverBlocks(t *testing.T) {
	var c Cooldown
	_, ok := c.Trigger(0)
	assert.True(t, ok)
	_, ok = c.Trigger(0)
	assert.True(t, ok)
}

func TestFormatRemaining(t *testing.T) {
	tests := map[int]string{
		125: "02:05s",
		61:  "01:01s",
		60:  "60s",
		45:  "45s",
		9:   "9s",
		0:   "0s",
		600: "10:00s",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatRemaining(in), "seconds=%d", in)
	}
}

func TestCountdown_ResetLoadsWithoutRunning(t *testing.T) {
	var c Countdown
	tag := c.Start(10)
	c.Reset(120)
	assert.False(t, c.Running())
	assert.Equal(t, 120, c.Remaining())
	assert.False(t, c.Tick(tag))

	c.Reset(-1)
	assert.Zero(t, c.Remaining())
}
