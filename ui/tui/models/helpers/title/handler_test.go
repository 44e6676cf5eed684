// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleHandler(t *testing.T) {
	h := NewHandler("OTPForm dev", " | ")
	assert.Equal(t, "OTPForm dev", h.Title())
	assert.NotNil(t, h.Init())

	assert.Nil(t, h.Handle("unrelated"))
	assert.NotNil(t, h.Handle(Set("Code accepted")()))
	assert.Equal(t, "OTPForm dev | Code accepted", h.Title())

	// unchanged titles are not sent again
	assert.Nil(t, h.Handle(Set("Code accepted")()))
}
