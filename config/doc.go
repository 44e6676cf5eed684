// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
// Package config provides configuration loading, validation and persistence
// for otpform. It uses Viper for file/env/flag parsing and writes YAML files
// with goccy/go-yaml.
package config
