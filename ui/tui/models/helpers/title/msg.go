// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set changes the current part of the window title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
