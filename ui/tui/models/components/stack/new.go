// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpform/ui/tui/util"
)

type NewOpt = func(stack *Model)

func New(opts ...NewOpt) *Model {
	s := Model{
		Orientation: Horizontal,
		Align:       lipgloss.Top,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.focus = util.Clamp(FocusAll(), s.focus, Focus(len(s.items)-1))
	return &s
}

func WithOrientation(orientation Orientation) NewOpt {
	return func(s *Model) { s.Orientation = orientation }
}

func WithAlign(align lipgloss.Position) NewOpt {
	return func(s *Model) { s.Align = align }
}

func WithGap(gap int) NewOpt {
	return func(s *Model) { s.Gap = gap }
}

func WithItem(model util.Model, sizeConfig SizeConfig) NewOpt {
	return func(s *Model) {
		s.items = append(s.items, Item{Model: model, SizeConfig: sizeConfig})
	}
}

func WithFocus(focus Focus) NewOpt {
	return func(s *Model) { s.focus = focus }
}
