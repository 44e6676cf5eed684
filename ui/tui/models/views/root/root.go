// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the demo host screen: it embeds one passcode widget and
// reacts to its notifications the way a consuming application would.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/otpform/buildvars"
	"github.com/toeirei/otpform/internal/i18n"
	"github.com/toeirei/otpform/internal/logging"
	"github.com/toeirei/otpform/internal/totp"
	"github.com/toeirei/otpform/ui/tui/models/components/header"
	"github.com/toeirei/otpform/ui/tui/models/components/otpform"
	"github.com/toeirei/otpform/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/otpform/ui/tui/models/helpers/title"
	"github.com/toeirei/otpform/ui/tui/models/views/footer"
	"github.com/toeirei/otpform/ui/tui/util"
)

const title string = "OTPForm"

type Model struct {
	KeyMap KeyMap

	stack        *stack.Model
	widget       *otpform.Model
	footer       *footer.Model
	status       *status
	titleHandler *windowtitle.TitleHandler

	// codes verifies complete codes and produces resent ones. May be nil.
	codes *totp.Source
}

func New(widget *otpform.Model, codes *totp.Source) *Model {
	keyMap := DefaultKeyMap()
	_footer := footer.New(keyMap)
	_status := &status{text: i18n.T("demo.waiting")}

	return &Model{
		KeyMap: keyMap,
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(header.New(), header.SizeConfig),
			stack.WithItem(&centered{Model: widget}, stack.VariableSize(1)),
			stack.WithItem(_status, stack.FitSize(stack.Vertical)),
			stack.WithItem(_footer, footer.SizeConfig),
		),
		widget:       widget,
		footer:       _footer,
		status:       _status,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | "),
		codes:        codes,
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Exit):
			m.widget.Close()
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Help):
			m.footer.ToggleExpanded()
		}
	case otpform.ChangedMsg:
		if msg.ID == m.widget.ID() {
			return m, tea.Batch(m.changed(msg), m.stack.Update(msg))
		}
	case otpform.ResendCodeMsg:
		if msg.ID == m.widget.ID() {
			return m, tea.Batch(m.resent(), m.stack.Update(msg))
		}
	case otpform.PasteErrorMsg:
		if msg.ID == m.widget.ID() {
			logging.Warnf("clipboard read failed: %v", msg.Err)
			m.status.set(statusError, i18n.Tf("demo.paste_error", map[string]any{"Error": msg.Err}))
			return m, m.stack.Update(msg)
		}
	}

	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	return m, m.stack.Update(msg)
}

// changed reports a new code value. Complete codes are checked against the
// code source when there is one.
func (m Model) changed(msg otpform.ChangedMsg) tea.Cmd {
	if !msg.Valid || m.codes == nil {
		validity := i18n.T("demo.invalid")
		if msg.Valid {
			validity = i18n.T("demo.valid")
		}
		m.status.set(statusInfo, i18n.Tf("demo.changed", map[string]any{
			"Value":    msg.Value,
			"Validity": validity,
		}))
		return nil
	}

	data := map[string]any{"Value": msg.Value}
	if m.codes.Validate(msg.Value) {
		logging.Infof("code accepted")
		m.status.set(statusSuccess, i18n.Tf("demo.accepted", data))
	} else {
		logging.Infof("code rejected")
		m.status.set(statusError, i18n.Tf("demo.rejected", data))
	}
	return windowtitle.Set(m.status.text)
}

// resent stands in for delivering a new code: without a mail or SMS gateway
// the code is shown in the status line. Every new code restarts the
// expiration countdown.
func (m Model) resent() tea.Cmd {
	sentTo := m.widget.Options().SentTo
	switch {
	case m.codes == nil:
		m.status.set(statusInfo, i18n.Tf("demo.code_sent", map[string]any{"SentTo": sentTo}))
	default:
		code, err := m.codes.Code()
		if err != nil {
			logging.Errorf("generating code: %v", err)
			m.status.set(statusError, i18n.Tf("demo.code_error", map[string]any{"Error": err}))
			return nil
		}
		m.status.set(statusInfo, i18n.Tf("demo.code_sent_with", map[string]any{
			"SentTo": sentTo,
			"Code":   code,
		}))
	}
	return m.widget.SetExpirationTime(m.widget.Options().ExpirationTime)
}

func (m Model) Widget() *otpform.Model { return m.widget }

func (m Model) View() string {
	return m.stack.View()
}

// Model implements tea.Model
var _ tea.Model = (*Model)(nil)
