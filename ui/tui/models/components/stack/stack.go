// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models in a row or a column and hands each
// of them its share of the window as a tea.WindowSizeMsg.
package stack

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpform/ui/tui/util"
	"github.com/toeirei/otpform/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int

	items []Item
	size  util.Size
	focus Focus
}

type Item struct {
	Model      util.Model
	SizeConfig SizeConfig
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slices.Map(s.items, func(item Item) tea.Cmd {
		return item.Model.Init()
	})...)
}

// Update forwards msg to every item. Window size messages are split up
// between the items instead.
func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			return item.Model.Update(msg)
		})...)

		// content may have changed the size fitted items want
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s Model) style(size, margin int) lipgloss.Style {
	if s.Orientation == Vertical {
		return lipgloss.NewStyle().
			Width(s.size.Width).
			Height(size + margin).
			MaxWidth(s.size.Width).
			MaxHeight(size + margin).
			MarginTop(margin)
	}
	return lipgloss.NewStyle().
		Width(size + margin).
		Height(s.size.Height).
		MaxWidth(size + margin).
		MaxHeight(s.size.Height).
		MarginLeft(margin)
}

func (s Model) View() string {
	join := lipgloss.JoinHorizontal
	if s.Orientation == Vertical {
		join = lipgloss.JoinVertical
	}

	views := slicest.MapI(s.items, func(i int, item Item) string {
		if item.size == 0 {
			return ""
		}
		// no gap before the first item
		margin := s.Gap * min(i, 1)
		return s.style(item.size, margin).Render(item.Model.View())
	})
	return join(s.Align, slices.Filter(views, func(v string) bool { return v != "" })...)
}

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focus == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))
		for i, item := range s.items {
			cmds[i], keyMaps[i] = item.Model.Focus()
		}
		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return s.items[s.focus].Model.Focus()
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focus == FocusAll() {
		for _, item := range s.items {
			item.Model.Blur()
		}
		return
	}
	s.items[s.focus].Model.Blur()
}

// SetFocus blurs the current focus and focuses the given item, or all of
// them for FocusAll.
func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focus = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
