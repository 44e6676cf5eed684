// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/otpform/internal/totp"
)

// newCodeCmd prints the current code for a secret, to type into the demo.
func newCodeCmd() *cobra.Command {
	var (
		secret   string
		digits   int
		period   uint
		generate bool
	)

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Print the current TOTP code for a secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generate {
				s, err := totp.GenerateSecret("OTPForm", "demo")
				if err != nil {
					return err
				}
				secret = s
				fmt.Fprintf(cmd.OutOrStdout(), "secret: %s\n", secret)
			}
			if secret == "" {
				return errors.New("either --secret or --generate is required")
			}

			code, err := totp.New(secret, digits, period).Code()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "base32 TOTP secret")
	cmd.Flags().IntVar(&digits, "digits", 6, "code length (6 or 8)")
	cmd.Flags().UintVar(&period, "period", 30, "code period in seconds")
	cmd.Flags().BoolVar(&generate, "generate", false, "generate a new secret first")
	return cmd
}
