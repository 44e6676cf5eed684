// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package button

import "github.com/charmbracelet/lipgloss"

// Model is a stateless push button. Whoever owns it decides what a press
// does; the button only knows how to look.
type Model struct {
	Label    string
	Disabled bool
	Focused  bool

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style
}

func New(label string) Model {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())

	return Model{
		Label: label,
		DisabledStyle: base.
			BorderForeground(lipgloss.Color("237")).
			Foreground(lipgloss.Color("240")).
			Faint(true),
		BlurredStyle: base.
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("252")),
		FocusedStyle: base.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("252")).
			Bold(true),
	}
}

func (b Model) style() lipgloss.Style {
	switch {
	case b.Disabled:
		return b.DisabledStyle
	case b.Focused:
		return b.FocusedStyle
	default:
		return b.BlurredStyle
	}
}

// View renders the button; width <= 0 means unbounded.
func (b Model) View(width int) string {
	style := b.style()
	if width > 2 {
		style = style.MaxWidth(width)
	}
	return style.Render(b.Label)
}
