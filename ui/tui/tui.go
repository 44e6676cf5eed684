// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/otpform/config"
	"github.com/toeirei/otpform/internal/logging"
	"github.com/toeirei/otpform/internal/totp"
	"github.com/toeirei/otpform/ui/tui/models/components/otpform"
	"github.com/toeirei/otpform/ui/tui/models/views/root"
)

// WidgetOptions translates the widget section of the configuration.
func WidgetOptions(c config.Widget) []otpform.Option {
	return []otpform.Option{
		otpform.WithTitle(c.Title),
		otpform.WithDescription(c.Description),
		otpform.WithSentTo(c.SentTo),
		otpform.WithEmitWhenValidityChanged(c.EmitWhenValidityChanged),
		otpform.WithDisabled(c.Disabled),
		otpform.WithMaxResendReached(c.MaxResendReached),
		otpform.WithExpirationTime(c.ExpirationTime),
		otpform.WithResendTimer(c.ResendTimer),
		otpform.WithInputCount(c.InputCount),
		otpform.WithCellSize(c.Width, c.Height),
		otpform.WithDebounce(c.Debounce),
		otpform.WithBackspaceDelay(c.BackspaceDelay),
	}
}

// NewRoot builds the demo host for c. With a TOTP secret configured the
// cell count follows the code length, otherwise codes could never match.
func NewRoot(c config.Config) *root.Model {
	opts := WidgetOptions(c.Widget)

	var codes *totp.Source
	if c.Demo.TOTPSecret != "" {
		codes = totp.New(c.Demo.TOTPSecret, c.Demo.Digits, c.Demo.Period)
		if codes.Digits() != c.Widget.InputCount {
			logging.Infof("using %d cells to match the TOTP code length", codes.Digits())
		}
		opts = append(opts, otpform.WithInputCount(codes.Digits()))
	}

	return root.New(otpform.New(opts...), codes)
}

func Run(c config.Config) error {
	_, err := tea.NewProgram(
		NewRoot(c),
		tea.WithAltScreen(),
	).Run()
	return err
}
