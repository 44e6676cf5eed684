// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpform/ui/tui/util"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

var statusStyles = map[statusKind]lipgloss.Style{
	statusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	statusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	statusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// status is the one line report of what the host last heard from the widget.
type status struct {
	text string
	kind statusKind
	size util.Size
}

func (s *status) set(kind statusKind, text string) {
	s.kind, s.text = kind, text
}

func (s status) Init() tea.Cmd { return nil }

func (s *status) Update(msg tea.Msg) tea.Cmd {
	s.size.Update(msg)
	return nil
}

func (s status) View() string {
	return lipgloss.PlaceHorizontal(s.size.Width, lipgloss.Center, statusStyles[s.kind].Render(s.text))
}

func (s *status) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (s *status) Blur()                          {}

var _ util.Model = (*status)(nil)

// centered places a child in the middle of the space it is given.
type centered struct {
	util.Model
	size util.Size
}

func (c *centered) Update(msg tea.Msg) tea.Cmd {
	if c.size.Update(msg) {
		return nil
	}
	return c.Model.Update(msg)
}

func (c *centered) View() string {
	return lipgloss.Place(c.size.Width, c.size.Height, lipgloss.Center, lipgloss.Center, c.Model.View())
}
