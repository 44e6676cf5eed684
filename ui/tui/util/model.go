// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// Model is the pointer-receiver flavour of tea.Model used by nested
// components: Update mutates in place and only returns the command.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// Emit wraps msg into a command that delivers it on the next loop turn.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
