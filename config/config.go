// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/otpform/core/otp"
)

const (
	appName   = "otpform"
	envPrefix = "OTPFORM"
)

type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	Log      Log    `mapstructure:"log" yaml:"log"`
	Widget   Widget `mapstructure:"widget" yaml:"widget"`
	Demo     Demo   `mapstructure:"demo" yaml:"demo"`
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	// File receives log output while the TUI runs. Empty discards it.
	File string `mapstructure:"file" yaml:"file"`
}

// Widget mirrors the host inputs of the passcode widget.
type Widget struct {
	Title                   string        `mapstructure:"title" yaml:"title"`
	Description             string        `mapstructure:"description" yaml:"description"`
	SentTo                  string        `mapstructure:"sent_to" yaml:"sent_to"`
	EmitWhenValidityChanged bool          `mapstructure:"emit_when_validity_changed" yaml:"emit_when_validity_changed"`
	Disabled                bool          `mapstructure:"disabled" yaml:"disabled"`
	ExpirationTime          int           `mapstructure:"expiration_time" yaml:"expiration_time" validate:"gte=0"`
	Width                   int           `mapstructure:"width" yaml:"width" validate:"gte=1"`
	Height                  int           `mapstructure:"height" yaml:"height" validate:"gte=1"`
	ResendTimer             int           `mapstructure:"resend_timer" yaml:"resend_timer" validate:"gte=0"`
	MaxResendReached        bool          `mapstructure:"max_resend_reached" yaml:"max_resend_reached"`
	InputCount              int           `mapstructure:"input_count" yaml:"input_count" validate:"gte=0,lte=32"`
	Debounce                time.Duration `mapstructure:"debounce" yaml:"debounce" validate:"gte=0"`
	BackspaceDelay          time.Duration `mapstructure:"backspace_delay" yaml:"backspace_delay" validate:"gte=0"`
}

// Demo configures the code source of the demo host.
type Demo struct {
	TOTPSecret string `mapstructure:"totp_secret" yaml:"totp_secret"`
	Digits     int    `mapstructure:"digits" yaml:"digits" validate:"omitempty,oneof=6 8"`
	Period     uint   `mapstructure:"period" yaml:"period"`
}

// Defaults returns the default values keyed by their viper path.
func Defaults() map[string]any {
	return map[string]any{
		"language":                          "en",
		"log.level":                         "info",
		"log.file":                          "",
		"widget.title":                      "",
		"widget.description":                "",
		"widget.sent_to":                    "youremail@gmail.com",
		"widget.emit_when_validity_changed": true,
		"widget.disabled":                   false,
		"widget.expiration_time":            otp.DefaultExpirationTime,
		"widget.width":                      40,
		"widget.height":                     40,
		"widget.resend_timer":               otp.DefaultResendTimer,
		"widget.max_resend_reached":         false,
		"widget.input_count":                otp.DefaultInputCount,
		"widget.debounce":                   otp.DefaultDebounce,
		"widget.backspace_delay":            otp.DefaultBackspaceDelay,
		"demo.totp_secret":                  "",
		"demo.digits":                       6,
		"demo.period":                       30,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "OTPForm")
		default:
			configDir = "/etc/otpform"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig layers defaults, the first otpform.yaml found (or path, when
// given), OTPFORM_* environment variables and the flags named in flagKeys
// (config key -> flag name). When no config file was used the decoded
// config is returned together with a viper.ConfigFileNotFoundError.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, flagKeys map[string]string, path *string) (T, error) {
	var c T
	v := viper.New()

	// 1. defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. file search paths
	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if path != nil && *path != "" {
		v.SetConfigFile(*path)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var fileErr error
	if path != nil && *path != "" && isMissingOrEmpty(*path) {
		// an empty candidate would otherwise fail as a parse error
		fileErr = viper.ConfigFileNotFoundError{}
	} else if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("read config: %w", err)
		}
		fileErr = err
	}

	// 3. environment
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. flags
	if cmd != nil {
		for key, flag := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c, decodeHook); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	return c, fileErr
}

var decodeHook = viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
))

// Default returns the configuration made of defaults only, ignoring config
// files, the environment and flags.
func Default[T any](defaults map[string]any) (T, error) {
	var c T
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := v.Unmarshal(&c, decodeHook); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func isMissingOrEmpty(path string) bool {
	info, err := os.Stat(path)
	return err != nil || info.Size() == 0
}

// WriteConfigFile writes c as YAML to the user (or system) config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.MarshalWithOptions(c,
		yaml.CustomMarshaler[time.Duration](func(d time.Duration) ([]byte, error) {
			return []byte(d.String()), nil
		}),
	)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the demo section may hold a TOTP secret
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}

	return path, nil
}
