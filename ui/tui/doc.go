// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the demo host program. Presentation and input handling
// live here; the state machines of the widget are provided by `core/otp`.
package tui
