// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package otp holds the headless state machines behind the passcode widget:
// the cell array, the input/focus router, the change notifier and the
// countdown timers. Nothing in here knows about terminals or rendering; the
// UI layer feeds raw events in and schedules the returned delays on its own
// event loop.
package otp
