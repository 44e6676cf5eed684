// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command: flags, config loading, logging and the
// launch of the interactive demo.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/otpform/config"
	"github.com/toeirei/otpform/core/otp"
	"github.com/toeirei/otpform/internal/i18n"
	"github.com/toeirei/otpform/internal/logging"
	"github.com/toeirei/otpform/ui/tui"
	"golang.org/x/term"
)

// flagKeys binds root flags to config keys. --emit-every-change is the
// inverse of its key and is applied by hand.
var flagKeys = map[string]string{
	"language":                  "language",
	"log.file":                  "log-file",
	"log.level":                 "log-level",
	"widget.input_count":        "count",
	"widget.expiration_time":    "expiration",
	"widget.resend_timer":       "resend-timer",
	"widget.title":              "title",
	"widget.description":        "description",
	"widget.sent_to":            "sent-to",
	"widget.disabled":           "disabled",
	"widget.max_resend_reached": "max-resend-reached",
	"demo.totp_secret":          "totp-secret",
}

// Overridden in tests.
var (
	runTUI     = tui.Run
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
)

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// loadConfig loads, adjusts and validates the configuration and initialises
// the message catalog with its language. Running without a config file is
// fine.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return config.Config{}, err
	}

	c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), flagKeys, path)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults")
	} else if err != nil {
		return c, fmt.Errorf("error loading config: %w", err)
	}

	if cmd.Flags().Changed("emit-every-change") {
		every, _ := cmd.Flags().GetBool("emit-every-change")
		c.Widget.EmitWhenValidityChanged = !every
	}
	if c.Language == "" {
		c.Language = "en"
	}

	if err := config.Validate(c); err != nil {
		return c, err
	}

	i18n.Init(c.Language)
	return c, nil
}

// setupLogging points the logger at the configured file. The alternate
// screen owns the terminal, so without a file the output is discarded.
func setupLogging(c config.Log) (func(), error) {
	if c.Level != "" {
		if err := logging.SetLevel(c.Level); err != nil {
			return nil, err
		}
	}
	if c.File == "" {
		logging.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.SetOutput(f)
	return func() {
		logging.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(c.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if !isTerminal() {
		return errors.New("otpform needs an interactive terminal")
	}

	logging.Infof("starting demo: %d cells, emit on %s", c.Widget.InputCount, otp.ModeFor(c.Widget.EmitWhenValidityChanged))
	return runTUI(c)
}

// NewRootCmd creates and configures a new root cobra command. Tests call it
// for fresh, isolated instances.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otpform",
		Short: "OTPForm is a one-time passcode entry widget for the terminal.",
		Long: `OTPForm renders a row of single character cells that behave as one
passcode, with debounced change notifications, an expiration countdown and
a guarded resend action.

Running without a subcommand launches the interactive demo. With a TOTP
secret configured the demo checks entered codes and "sends" new ones on
resend.`,
		Version:       resolveVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.Flags().String("config", "", "config file")
	cmd.Flags().String("language", "en", "message catalog language")
	cmd.Flags().String("log-file", "", "write logs to this file (default: discard)")
	cmd.Flags().String("log-level", "info", `log level ("debug", "info", "warn", "error")`)
	cmd.Flags().Int("count", otp.DefaultInputCount, "number of cells")
	cmd.Flags().Int("expiration", otp.DefaultExpirationTime, "code expiration in seconds, 0 disables")
	cmd.Flags().Int("resend-timer", otp.DefaultResendTimer, "resend cooldown in seconds")
	cmd.Flags().Bool("emit-every-change", false, "notify on every value change, not only validity changes")
	cmd.Flags().String("title", "", "widget title")
	cmd.Flags().String("description", "", "widget description")
	cmd.Flags().String("sent-to", "", "address the code was sent to")
	cmd.Flags().Bool("disabled", false, "disable cell editing")
	cmd.Flags().Bool("max-resend-reached", false, "reject resend requests")
	cmd.Flags().String("totp-secret", "", "base32 TOTP secret used to check and resend codes")

	cmd.AddCommand(
		newCodeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}
