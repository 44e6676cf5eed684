// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func enabled(b key.Binding) bool { return b.Enabled() }

// fit keeps items from the left while they fit into width. When an item has
// to be dropped the ellipsis tail takes its place, if that fits.
func fit(items []string, width int, tail string) []string {
	var (
		out  []string
		used int
	)
	tailWidth := lipgloss.Width(tail)

	for i, item := range items {
		w := lipgloss.Width(item)
		last := i == len(items)-1
		if (last && used+w <= width) || (!last && used+w+tailWidth <= width) {
			used += w
			out = append(out, item)
			continue
		}
		if used+tailWidth <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}

// ShortHelpView renders enabled bindings on one line. Unlike
// help.Model.ShortHelpView it never places a separator in front of the first
// visible binding when earlier ones are disabled.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	bindings = slices.Filter(bindings, enabled)
	if len(bindings) == 0 {
		return ""
	}

	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	items := make([]string, 0, len(bindings))
	for i, kb := range bindings {
		var sep string
		if i > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	return strings.Join(fit(items, m.Width, tail), "")
}

// FullHelpView renders one column per group, skipping groups without an
// enabled binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	groups = slices.Filter(groups, func(group []key.Binding) bool {
		return slices.ContainsFunc(group, enabled)
	})
	if len(groups) == 0 {
		return ""
	}

	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	cols := make([]string, 0, len(groups))
	for i, group := range groups {
		var (
			sep          string
			keys         []string
			descriptions []string
		)
		if i > 0 {
			sep = separator
		}
		for _, binding := range slices.Filter(group, enabled) {
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, tail)...)
}
