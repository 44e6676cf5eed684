// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package totp is the demo host's code source. It produces the codes the
// demo pretends to send and checks the codes the widget reports. The widget
// itself never sees the secret.
package totp

import (
	"errors"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// ErrNoSecret is returned when a Source is used without a secret.
var ErrNoSecret = errors.New("totp: no secret configured")

// Source generates and validates time based codes for one secret.
type Source struct {
	secret string
	period uint
	skew   uint
	digits otp.Digits
	now    func() time.Time
}

// New returns a Source. Digits other than 6 or 8 fall back to 6; a zero
// period falls back to 30 seconds.
func New(secret string, digits int, period uint) *Source {
	d := otp.Digits(digits)
	if d != otp.DigitsSix && d != otp.DigitsEight {
		d = otp.DigitsSix
	}
	if period == 0 {
		period = 30
	}
	return &Source{
		secret: secret,
		period: period,
		skew:   1,
		digits: d,
		now:    time.Now,
	}
}

// Digits is the code length, which the demo uses as its cell count.
func (s *Source) Digits() int { return s.digits.Length() }

func (s *Source) opts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    s.period,
		Skew:      s.skew,
		Digits:    s.digits,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// Code returns the code valid right now.
func (s *Source) Code() (string, error) {
	return s.CodeAt(s.now())
}

// CodeAt returns the code valid at t.
func (s *Source) CodeAt(t time.Time) (string, error) {
	if s.secret == "" {
		return "", ErrNoSecret
	}
	code, err := totp.GenerateCodeCustom(s.secret, t, s.opts())
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return code, nil
}

// Validate reports whether code is accepted right now, allowing one period
// of skew either way.
func (s *Source) Validate(code string) bool {
	if s.secret == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, s.secret, s.now(), s.opts())
	return ok && err == nil
}

// GenerateSecret creates a fresh base32 secret for accountName.
func GenerateSecret(issuer, accountName string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		SecretSize:  20,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return key.Secret(), nil
}
