// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package otpform is the passcode entry widget: a row of single character
// cells that behaves as one code value. It drives the state machines of
// core/otp from Bubble Tea messages; debounce windows, countdown ticks and
// deferred focus moves are tea.Tick commands tagged so that released
// sources are ignored when their message finally arrives.
package otpform

import (
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/otpform/core/otp"
	"github.com/toeirei/otpform/internal/i18n"
	"github.com/toeirei/otpform/internal/logging"
	"github.com/toeirei/otpform/ui/tui/models/components/button"
	"github.com/toeirei/otpform/ui/tui/util"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

type Model struct {
	KeyMap KeyMap

	id   int
	opts Options

	cells      *otp.Cells
	router     *otp.Router
	notifier   *otp.Notifier
	expiration otp.Countdown
	resend     otp.Cooldown

	// cursor is the cell holding the caret. Only focus commands move it.
	cursor  int
	focused bool
	closed  bool

	resendButton  button.Model
	readClipboard func() (string, error)
}

func New(opts ...Option) *Model {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells := otp.NewCells(o.InputCount)
	m := &Model{
		KeyMap:        DefaultKeyMap(),
		id:            nextID(),
		opts:          o,
		cells:         cells,
		router:        otp.NewRouter(cells, o.BackspaceDelay),
		notifier:      otp.NewNotifier(o.mode()),
		resendButton:  button.New(i18n.T("otp.resend")),
		readClipboard: clipboard.ReadAll,
	}
	m.KeyMap.Resend.SetEnabled(!o.MaxResendReached)
	m.expiration.Reset(o.ExpirationTime)
	return m
}

// Init starts the expiration countdown and runs the fresh cells through the
// notifier once.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.mutated(), m.startExpiration())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.closed {
		return nil
	}

	switch msg := msg.(type) {
	case InputMsg:
		return m.handleInput(msg.Index, msg.Data)
	case KeydownMsg:
		return m.handleKeydown(msg.Index, msg.Key)
	case tea.KeyMsg:
		if m.focused {
			return m.handleKey(msg)
		}
	case focusMsg:
		if msg.id == m.id {
			m.focusCell(msg.index)
		}
	case debounceMsg:
		if msg.id == m.id {
			return m.settle(msg.ticket)
		}
	case tickMsg:
		if msg.id == m.id {
			return m.tick(msg)
		}
	case pasteMsg:
		if msg.id == m.id {
			return m.paste(msg.text)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.KeyMap.Resend):
		return m.Resend()
	case key.Matches(msg, m.KeyMap.Paste):
		return m.pasteFromClipboard()
	case key.Matches(msg, m.KeyMap.Next):
		m.focusCell(m.cursor + 1)
	case key.Matches(msg, m.KeyMap.Prev):
		m.focusCell(m.cursor - 1)
	case key.Matches(msg, m.KeyMap.Delete):
		// keydown first, then the default action of the key, which empties
		// the cell the caret is in
		index := m.cursor
		return tea.Batch(
			m.handleKeydown(index, otp.KeyBackspace),
			m.handleInput(index, ""),
		)
	case msg.Alt:
		// alt-modified presses never write cells
		return nil
	case msg.Paste || (msg.Type == tea.KeyRunes && len(msg.Runes) > 1):
		return m.paste(string(msg.Runes))
	case msg.Type == tea.KeyRunes:
		return m.handleInput(m.cursor, string(msg.Runes))
	case msg.Type == tea.KeySpace:
		return m.handleInput(m.cursor, " ")
	}
	return nil
}

func (m *Model) handleInput(index int, data string) tea.Cmd {
	if m.opts.Disabled {
		return nil
	}
	return m.route(m.router.HandleInput(index, data))
}

func (m *Model) handleKeydown(index int, key string) tea.Cmd {
	if m.opts.Disabled {
		return nil
	}
	return m.route(m.router.HandleKeydown(index, key))
}

func (m *Model) route(cmd otp.Command) tea.Cmd {
	var cmds []tea.Cmd
	if cmd.Mutated {
		cmds = append(cmds, m.mutated())
	}
	if cmd.HasFocus() {
		cmds = append(cmds, m.focusCmd(cmd.Focus, cmd.Delay))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) focusCmd(index int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		m.focusCell(index)
		return nil
	}
	id := m.id
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return focusMsg{id: id, index: index}
	})
}

func (m *Model) focusCell(index int) {
	if index < 0 || index >= m.cells.Len() {
		return
	}
	m.cursor = index
}

// paste spreads text over the cells starting at the caret, one character
// per cell, and leaves the caret after the last written cell.
func (m *Model) paste(text string) tea.Cmd {
	if m.opts.Disabled {
		return nil
	}

	var (
		index   = m.cursor
		mutated bool
	)
	for _, char := range otp.SplitCharacters(text) {
		cmd := m.router.HandleInput(index, char)
		mutated = mutated || cmd.Mutated
		if !cmd.HasFocus() {
			break
		}
		index = cmd.Focus
	}
	m.focusCell(index)

	if !mutated {
		return nil
	}
	return m.mutated()
}

func (m *Model) pasteFromClipboard() tea.Cmd {
	if m.opts.Disabled {
		return nil
	}
	id, read := m.id, m.readClipboard
	return func() tea.Msg {
		text, err := read()
		if err != nil {
			return PasteErrorMsg{ID: id, Err: err}
		}
		return pasteMsg{id: id, text: text}
	}
}

// mutated queues the current cells for evaluation once the debounce window
// passes without further mutations.
func (m *Model) mutated() tea.Cmd {
	ticket, ok := m.notifier.Push(m.cells.Snapshot())
	if !ok {
		return nil
	}
	id := m.id
	return tea.Tick(m.opts.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{id: id, ticket: ticket}
	})
}

func (m *Model) settle(ticket otp.Ticket) tea.Cmd {
	change, ok := m.notifier.Settle(ticket)
	if !ok {
		return nil
	}
	logging.Debugf("otpform %d: changed value=%q valid=%v", m.id, change.Value, change.Valid)
	return util.Emit(ChangedMsg{ID: m.id, Value: change.Value, Valid: change.Valid})
}

func (m *Model) startExpiration() tea.Cmd {
	tag := m.expiration.Start(m.opts.ExpirationTime)
	if !m.expiration.Running() {
		return nil
	}
	return m.tickCmd(timerExpiration, tag)
}

func (m *Model) tickCmd(timer timerKind, tag int) tea.Cmd {
	id := m.id
	return tea.Tick(m.opts.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id, timer: timer, tag: tag}
	})
}

func (m *Model) tick(msg tickMsg) tea.Cmd {
	countdown := &m.expiration
	if msg.timer == timerResend {
		countdown = &m.resend.Countdown
	}
	if countdown.Tick(msg.tag) {
		return m.tickCmd(msg.timer, msg.tag)
	}
	return nil
}

// Resend triggers the resend action unless the cooldown of the previous one
// is still running or the host reported the maximum number of resends.
func (m *Model) Resend() tea.Cmd {
	if m.closed || m.opts.MaxResendReached {
		return nil
	}

	tag, ok := m.resend.Trigger(m.opts.ResendTimer)
	if !ok {
		logging.Debugf("otpform %d: resend rejected, %ds cooldown left", m.id, m.resend.Remaining())
		return nil
	}

	cmds := []tea.Cmd{util.Emit(ResendCodeMsg{ID: m.id})}
	if m.resend.Running() {
		cmds = append(cmds, m.tickCmd(timerResend, tag))
	}
	return tea.Batch(cmds...)
}

// Close releases the notifier subscription and both countdowns. Messages
// arriving afterwards are dropped.
func (m *Model) Close() {
	m.closed = true
	m.notifier.Unsubscribe()
	m.expiration.Stop()
	m.resend.Stop()
}

// Setters

// SetInputCount rebuilds the cells from scratch. The previous notifier
// subscription is released before the new one starts.
func (m *Model) SetInputCount(count int) tea.Cmd {
	m.opts.InputCount = count
	m.cells.Configure(count)
	m.notifier.Subscribe()
	m.cursor = 0
	return m.mutated()
}

// SetExpirationTime restarts the expiration countdown with seconds.
func (m *Model) SetExpirationTime(seconds int) tea.Cmd {
	m.opts.ExpirationTime = seconds
	return m.startExpiration()
}

func (m *Model) SetEmitWhenValidityChanged(enabled bool) {
	m.opts.EmitWhenValidityChanged = enabled
	m.notifier.SetMode(m.opts.mode())
}

func (m *Model) SetDisabled(disabled bool) { m.opts.Disabled = disabled }

func (m *Model) SetMaxResendReached(reached bool) {
	m.opts.MaxResendReached = reached
	m.KeyMap.Resend.SetEnabled(!reached)
}

// SetBackspaceDelay changes the pause between clearing a cell on backspace
// and moving focus to the previous one.
func (m *Model) SetBackspaceDelay(d time.Duration) {
	m.opts.BackspaceDelay = d
	m.router.SetBackspaceDelay(d)
}

// SetResendTimer applies to the next accepted resend.
func (m *Model) SetResendTimer(seconds int) { m.opts.ResendTimer = seconds }

func (m *Model) SetTitle(title string)             { m.opts.Title = title }
func (m *Model) SetDescription(description string) { m.opts.Description = description }
func (m *Model) SetSentTo(sentTo string)           { m.opts.SentTo = sentTo }

// SetClipboardReader replaces the system clipboard used for ctrl+v.
func (m *Model) SetClipboardReader(read func() (string, error)) { m.readClipboard = read }

// Reads

func (m Model) ID() int                  { return m.id }
func (m Model) Options() Options         { return m.opts }
func (m Model) Value() string            { return m.cells.Value() }
func (m Model) Valid() bool              { return m.cells.Valid() }
func (m Model) Cells() []string          { return m.cells.Values() }
func (m Model) Focused() int             { return m.cursor }
func (m Model) ExpirationRemaining() int { return m.expiration.Remaining() }
func (m Model) ResendRemaining() int     { return m.resend.Remaining() }

// Expired reports whether a configured expiration countdown ran out. A
// stopped countdown with time left is not expired.
func (m Model) Expired() bool {
	return m.opts.ExpirationTime > 0 && m.expiration.Remaining() == 0
}

func (m Model) ResendAllowed() bool {
	return !m.closed && !m.opts.MaxResendReached && !m.resend.Running()
}

// FormattedExpirationTime renders the remaining expiration time.
func (m Model) FormattedExpirationTime() string {
	return otp.FormatRemaining(m.expiration.Remaining())
}

// Focusable

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.KeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
