// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"math"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpform/ui/tui/util"
)

// SizeConfig decides how much of the stack an item gets. Items are sized
// in ascending Priority; each one sees what the earlier ones left over.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remaining int, total int) int
}

type staticSize struct {
	size int
}

type fitSize struct {
	orientation Orientation
}

type variableSize struct {
	weight      int
	totalWeight int
}

func StaticSize(size int) SizeConfig     { return &staticSize{size: size} }
func VariableSize(weight int) SizeConfig { return &variableSize{weight: weight} }

// FitSize sizes an item to its rendered height (Vertical) or width
// (Horizontal).
func FitSize(orientation Orientation) SizeConfig { return &fitSize{orientation: orientation} }

func (sc *staticSize) Priority() int   { return 0 }
func (sc *fitSize) Priority() int      { return 5 }
func (sc *variableSize) Priority() int { return math.MaxInt }

func (sc *staticSize) Calculate(_ util.Model, _ int, _ int) int {
	return sc.size
}

func (sc *fitSize) Calculate(model util.Model, _ int, _ int) int {
	if sc.orientation == Vertical {
		return lipgloss.Height(model.View())
	}
	return lipgloss.Width(model.View())
}

func (sc *variableSize) Calculate(_ util.Model, remaining int, _ int) int {
	if sc.totalWeight == 0 {
		return remaining
	}
	// remaining * (weight / totalWeight) without leaving integer math
	return (remaining * sc.weight) / sc.totalWeight
}

func (s *Model) calculateItemSizes() {
	total := s.size.Width
	if s.Orientation == Vertical {
		total = s.size.Height
	}
	remaining := max(total-s.Gap*(len(s.items)-1), 0)

	sorted := make([]*Item, len(s.items))
	totalWeight := 0
	for i := range s.items {
		sorted[i] = &s.items[i]
		if v, ok := s.items[i].SizeConfig.(*variableSize); ok {
			totalWeight += v.weight
		}
	}
	slices.SortStableFunc(sorted, func(a, b *Item) int {
		return a.SizeConfig.Priority() - b.SizeConfig.Priority()
	})

	for _, item := range sorted {
		v, variable := item.SizeConfig.(*variableSize)
		if variable {
			v.totalWeight = totalWeight
		}

		size := max(min(item.SizeConfig.Calculate(item.Model, remaining, total), remaining), 0)

		if variable {
			totalWeight -= v.weight
		}
		remaining -= size
		item.oldSize, item.size = item.size, size
	}
}

func (s *Model) updateResizedItems(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range s.items {
		if !force && item.size == item.oldSize {
			continue
		}
		msg := tea.WindowSizeMsg{Width: item.size, Height: s.size.Height}
		if s.Orientation == Vertical {
			msg = tea.WindowSizeMsg{Width: s.size.Width, Height: item.size}
		}
		cmds = append(cmds, item.Model.Update(msg))
	}
	return cmds
}
