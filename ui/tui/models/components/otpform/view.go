// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package otpform

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpform/core/otp"
	"github.com/toeirei/otpform/internal/i18n"
	"github.com/toeirei/otpform/util/slicest"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	expiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("252")).
			Align(lipgloss.Center, lipgloss.Center)
	focusedCellStyle  = cellStyle.BorderForeground(lipgloss.Color("205")).Bold(true)
	validCellStyle    = cellStyle.BorderForeground(lipgloss.Color("42"))
	disabledCellStyle = cellStyle.BorderForeground(lipgloss.Color("237")).Faint(true)
)

// cellExtent converts a pixel size to terminal cells, never below one.
func cellExtent(pixels, perCell int) int {
	return max(pixels/perCell, 1)
}

func (m Model) viewCells() string {
	width := cellExtent(m.opts.CellWidth, PixelsPerColumn)
	height := cellExtent(m.opts.CellHeight, PixelsPerRow)
	complete := m.cells.Len() > 0 && m.cells.Valid()

	var row []string
	for i, cell := range slicest.MapI(m.cells.Values(), func(i int, char string) string {
		style := cellStyle
		switch {
		case m.opts.Disabled:
			style = disabledCellStyle
		case m.focused && i == m.cursor:
			style = focusedCellStyle
		case complete:
			style = validCellStyle
		}
		return style.Width(width).Height(height).Render(char)
	}) {
		if i > 0 {
			row = append(row, " ")
		}
		row = append(row, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

func (m Model) viewExpiration() string {
	if m.Expired() {
		return expiredStyle.Render(i18n.T("otp.expired"))
	}
	return mutedStyle.Render(i18n.Tf("otp.expires_in", map[string]any{
		"Remaining": m.FormattedExpirationTime(),
	}))
}

func (m Model) viewResend() string {
	if m.opts.MaxResendReached {
		return mutedStyle.Render(i18n.T("otp.max_resend"))
	}

	b := m.resendButton
	b.Disabled = !m.ResendAllowed()
	if m.resend.Running() {
		b.Label = i18n.Tf("otp.resend_in", map[string]any{
			"Remaining": otp.FormatRemaining(m.resend.Remaining()),
		})
	}
	return b.View(0)
}

func (m Model) View() string {
	title := m.opts.Title
	if title == "" {
		title = i18n.T("otp.title")
	}

	lines := []string{titleStyle.Render(title)}
	if m.opts.Description != "" {
		lines = append(lines, textStyle.Render(m.opts.Description))
	}
	if m.opts.SentTo != "" {
		lines = append(lines, mutedStyle.Render(i18n.Tf("otp.sent_to", map[string]any{
			"SentTo": m.opts.SentTo,
		})))
	}

	lines = append(lines, "", m.viewCells(), "")

	if m.opts.ExpirationTime > 0 {
		lines = append(lines, m.viewExpiration())
	}
	lines = append(lines, m.viewResend())

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
