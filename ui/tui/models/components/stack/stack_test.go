// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/otpform/ui/tui/util"
)

type fakeModel struct {
	content string
	size    util.Size
	msgs    []tea.Msg
	focused bool
}

func (f *fakeModel) Init() tea.Cmd { return nil }
func (f *fakeModel) Update(msg tea.Msg) tea.Cmd {
	if !f.size.Update(msg) {
		f.msgs = append(f.msgs, msg)
	}
	return nil
}
func (f *fakeModel) View() string { return f.content }
func (f *fakeModel) Blur()         { f.focused = false }

func (f *fakeModel) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	return nil, nil
}

func TestVerticalSizing(t *testing.T) {
	header := &fakeModel{content: "a\nb"}
	body := &fakeModel{content: "body"}
	footer := &fakeModel{content: "f"}
	s := New(
		WithOrientation(Vertical),
		WithItem(header, FitSize(Vertical)),
		WithItem(body, VariableSize(1)),
		WithItem(footer, StaticSize(1)),
	)

	s.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, util.Size{Width: 20, Height: 2}, header.size)
	assert.Equal(t, util.Size{Width: 20, Height: 7}, body.size)
	assert.Equal(t, util.Size{Width: 20, Height: 1}, footer.size)

	lines := strings.Split(s.View(), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "a", strings.TrimSpace(lines[0]))
	assert.Equal(t, "body", strings.TrimSpace(lines[2]))
	assert.Equal(t, "f", strings.TrimSpace(lines[9]))
}

func TestVariableWeights(t *testing.T) {
	left := &fakeModel{}
	right := &fakeModel{}
	s := New(
		WithItem(left, VariableSize(1)),
		WithItem(right, VariableSize(3)),
	)

	s.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	assert.Equal(t, 10, left.size.Width)
	assert.Equal(t, 30, right.size.Width)
	assert.Equal(t, 5, right.size.Height)
}

func TestFitItemsFollowContent(t *testing.T) {
	status := &fakeModel{content: "one"}
	body := &fakeModel{}
	s := New(
		WithOrientation(Vertical),
		WithItem(body, VariableSize(1)),
		WithItem(status, FitSize(Vertical)),
	)
	s.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Equal(t, 9, body.size.Height)

	status.content = "one\ntwo"
	s.Update("tick")
	assert.Equal(t, 8, body.size.Height)
	assert.Equal(t, []tea.Msg{"tick"}, status.msgs)
}

func TestFocus(t *testing.T) {
	a, b := &fakeModel{}, &fakeModel{}
	s := New(WithItem(a, StaticSize(1)), WithItem(b, StaticSize(1)), WithFocus(FocusIndex(1)))

	s.Focus()
	assert.False(t, a.focused)
	assert.True(t, b.focused)

	s.SetFocus(FocusAll())
	assert.True(t, a.focused)
	assert.True(t, b.focused)

	s.SetFocus(FocusIndex(7))
	assert.False(t, a.focused)
	assert.True(t, b.focused)
}
