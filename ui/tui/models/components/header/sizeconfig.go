// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpform/ui/tui/models/components/stack"
	"github.com/toeirei/otpform/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate gives the full logo room on tall terminals, a single line on
// medium ones and hides the header on very small ones.
func (s *sizeConfig) Calculate(_ util.Model, _ int, total int) int {
	switch {
	case total >= 20+lipgloss.Height(logo)+1:
		return lipgloss.Height(logo) + 1
	case total >= 14:
		return 2
	default:
		return 0
	}
}
