// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for OTPForm.
//
// Usage:
//
//	go run . [flags]
//	./otpform [flags]
//
// This launches the OTPForm demo. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/otpform/internal/logging"
	"github.com/toeirei/otpform/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
