// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Command maintest runs the demo host without the CLI: defaults, any
// otpform.yaml found and OTPFORM_* variables only.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/toeirei/otpform/config"
	tui "github.com/toeirei/otpform/ui/tui"
)

func main() {
	c, err := config.LoadConfig[config.Config](nil, config.Defaults(), nil, nil)
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := tui.Run(c); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
