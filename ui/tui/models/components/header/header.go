// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpform/ui/tui/util"
)

const logo string = "" +
	"╔═╗╔╦╗╔═╗  ┌─┐┌─┐┬─┐┌┬┐\n" +
	"║ ║ ║ ╠═╝  ├┤ │ │├┬┘│││\n" +
	"╚═╝ ╩ ╩    └  └─┘┴└─┴ ┴"
const compactLogo string = "🔐 OTPForm"

var style = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205")).
	Border(lipgloss.NormalBorder(), false).
	BorderBottom(true)

type Model struct {
	size util.Size
}

func New() *Model {
	return &Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) currentLogo() string {
	if m.size.Width < lipgloss.Width(logo) || m.size.Height < lipgloss.Height(logo)+1 {
		return compactLogo
	}
	return logo
}

func (m Model) View() string {
	return style.Render(lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, m.currentLogo()))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
