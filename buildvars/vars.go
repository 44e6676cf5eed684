// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Set at link time via `-ldflags -X github.com/toeirei/otpform/buildvars.Version=...`
// (likewise GitCommit and BuildDate). They are empty for local builds.
var (
	Version   string
	GitCommit string
	BuildDate string // RFC3339
)

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
