// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/toeirei/otpform/config"
	"github.com/toeirei/otpform/ui/tui/models/components/otpform"
)

func TestWidgetOptions(t *testing.T) {
	w := config.Widget{
		Title:          "Login",
		SentTo:         "me@example.com",
		ExpirationTime: 30,
		ResendTimer:    5,
		InputCount:     6,
		Width:          16,
		Height:         32,
		Debounce:       50 * time.Millisecond,
		BackspaceDelay: 5 * time.Millisecond,
	}

	m := otpform.New(WidgetOptions(w)...)
	opts := m.Options()
	assert.Equal(t, "Login", opts.Title)
	assert.Equal(t, "me@example.com", opts.SentTo)
	assert.False(t, opts.EmitWhenValidityChanged)
	assert.Equal(t, 30, opts.ExpirationTime)
	assert.Equal(t, 5, opts.ResendTimer)
	assert.Len(t, m.Cells(), 6)
	assert.Equal(t, 16, opts.CellWidth)
	assert.Equal(t, 32, opts.CellHeight)
	assert.Equal(t, 50*time.Millisecond, opts.Debounce)
	assert.Equal(t, 5*time.Millisecond, opts.BackspaceDelay)
}

func TestNewRootFollowsCodeLength(t *testing.T) {
	var c config.Config
	c.Widget.InputCount = 4
	c.Demo = config.Demo{TOTPSecret: "JBSWY3DPEHPK3PXP", Digits: 8, Period: 30}

	assert.Len(t, NewRoot(c).Widget().Cells(), 8)
}
