// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for OTPForm using Cobra.
// It wires configuration, logging and the message catalog, then hands over
// to the TUI. CLI code should remain thin.
package cli
