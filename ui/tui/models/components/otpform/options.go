// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package otpform

import (
	"time"

	"github.com/toeirei/otpform/core/otp"
)

// Options are the host inputs of the widget.
type Options struct {
	Title       string
	Description string
	SentTo      string

	EmitWhenValidityChanged bool
	Disabled                bool
	MaxResendReached        bool

	ExpirationTime int // seconds
	ResendTimer    int // seconds
	InputCount     int

	// CellWidth and CellHeight are in pixels, rendered at PixelsPerColumn
	// and PixelsPerRow.
	CellWidth  int
	CellHeight int

	Debounce       time.Duration
	BackspaceDelay time.Duration
	TickInterval   time.Duration
}

const (
	PixelsPerColumn = 8
	PixelsPerRow    = 16
)

func DefaultOptions() Options {
	return Options{
		SentTo:                  "youremail@gmail.com",
		EmitWhenValidityChanged: true,
		ExpirationTime:          otp.DefaultExpirationTime,
		ResendTimer:             otp.DefaultResendTimer,
		InputCount:              otp.DefaultInputCount,
		CellWidth:               40,
		CellHeight:              40,
		Debounce:                otp.DefaultDebounce,
		BackspaceDelay:          otp.DefaultBackspaceDelay,
		TickInterval:            otp.DefaultTickInterval,
	}
}

func (o Options) mode() otp.Mode {
	return otp.ModeFor(o.EmitWhenValidityChanged)
}

type Option func(*Options)

func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

func WithDescription(description string) Option {
	return func(o *Options) { o.Description = description }
}

func WithSentTo(sentTo string) Option {
	return func(o *Options) { o.SentTo = sentTo }
}

func WithEmitWhenValidityChanged(enabled bool) Option {
	return func(o *Options) { o.EmitWhenValidityChanged = enabled }
}

func WithDisabled(disabled bool) Option {
	return func(o *Options) { o.Disabled = disabled }
}

func WithMaxResendReached(reached bool) Option {
	return func(o *Options) { o.MaxResendReached = reached }
}

func WithExpirationTime(seconds int) Option {
	return func(o *Options) { o.ExpirationTime = seconds }
}

func WithResendTimer(seconds int) Option {
	return func(o *Options) { o.ResendTimer = seconds }
}

func WithInputCount(count int) Option {
	return func(o *Options) { o.InputCount = count }
}

func WithCellSize(width, height int) Option {
	return func(o *Options) { o.CellWidth, o.CellHeight = width, height }
}

func WithDebounce(d time.Duration) Option {
	return func(o *Options) { o.Debounce = d }
}

func WithBackspaceDelay(d time.Duration) Option {
	return func(o *Options) { o.BackspaceDelay = d }
}

// WithTickInterval changes how long one countdown second lasts.
func WithTickInterval(d time.Duration) Option {
	return func(o *Options) { o.TickInterval = d }
}
