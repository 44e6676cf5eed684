// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package otpform

import "github.com/toeirei/otpform/core/otp"

// InputMsg is a raw input event for one cell, carrying the inserted text.
type InputMsg struct {
	Index int
	Data  string
}

// KeydownMsg is a raw keydown event for one cell. Only otp.KeyBackspace has
// an effect.
type KeydownMsg struct {
	Index int
	Key   string
}

// ChangedMsg notifies the host of a new code value, subject to the
// widget's emission policy.
type ChangedMsg struct {
	ID    int
	Value string
	Valid bool
}

// ResendCodeMsg is sent once per accepted resend trigger.
type ResendCodeMsg struct {
	ID int
}

// PasteErrorMsg reports a failed clipboard read.
type PasteErrorMsg struct {
	ID  int
	Err error
}

type timerKind int

const (
	timerExpiration timerKind = iota
	timerResend
)

type tickMsg struct {
	id    int
	timer timerKind
	tag   int
}

type debounceMsg struct {
	id     int
	ticket otp.Ticket
}

type focusMsg struct {
	id    int
	index int
}

type pasteMsg struct {
	id   int
	text string
}
