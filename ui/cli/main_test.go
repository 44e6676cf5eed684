// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/toeirei/otpform/buildvars"
	"github.com/toeirei/otpform/config"
)

// isolate keeps real config files out of the test and returns the temp home.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(t.TempDir())
	return tmp
}

// fakeTUI replaces the program run and reports the config it was given.
func fakeTUI(t *testing.T, terminal bool) *config.Config {
	t.Helper()
	origRun, origTerm := runTUI, isTerminal
	t.Cleanup(func() { runTUI, isTerminal = origRun, origTerm })

	got := new(config.Config)
	runTUI = func(c config.Config) error {
		*got = c
		return nil
	}
	isTerminal = func() bool { return terminal }
	return got
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_FlagsReachTUI(t *testing.T) {
	tmp := isolate(t)
	got := fakeTUI(t, true)
	logFile := filepath.Join(tmp, "otpform.log")

	_, err := execute(t,
		"--count", "6",
		"--emit-every-change",
		"--title", "Login",
		"--sent-to", "me@example.com",
		"--log-file", logFile,
	)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Widget.InputCount != 6 {
		t.Fatalf("expected 6 cells, got %d", got.Widget.InputCount)
	}
	if got.Widget.EmitWhenValidityChanged {
		t.Fatalf("expected --emit-every-change to switch the mode")
	}
	if got.Widget.Title != "Login" || got.Widget.SentTo != "me@example.com" {
		t.Fatalf("unexpected widget config: %+v", got.Widget)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "starting demo") {
		t.Fatalf("expected startup line in log, got %q", data)
	}
}

func TestRoot_DefaultsWithoutFlags(t *testing.T) {
	isolate(t)
	got := fakeTUI(t, true)

	if _, err := execute(t); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Widget.InputCount != 4 || !got.Widget.EmitWhenValidityChanged {
		t.Fatalf("unexpected defaults: %+v", got.Widget)
	}
	if got.Widget.ExpirationTime != 120 || got.Widget.ResendTimer != 10 {
		t.Fatalf("unexpected timer defaults: %+v", got.Widget)
	}
}

func TestRoot_RequiresTerminal(t *testing.T) {
	isolate(t)
	fakeTUI(t, false)

	if _, err := execute(t); err == nil {
		t.Fatalf("expected an error without a terminal")
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	isolate(t)
	fakeTUI(t, true)

	_, err := execute(t, "--count", "40")
	if err == nil || !strings.Contains(err.Error(), "widget.input_count") {
		t.Fatalf("expected a validation error for widget.input_count, got %v", err)
	}
}

func TestRoot_MissingConfigFile(t *testing.T) {
	isolate(t)
	fakeTUI(t, true)

	if _, err := execute(t, "--config", "does-not-exist.yaml"); err == nil {
		t.Fatalf("expected an error for a missing --config file")
	}
}

func TestRoot_ReadsConfigFile(t *testing.T) {
	tmp := isolate(t)
	got := fakeTUI(t, true)

	path := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(path, []byte("widget:\n  input_count: 8\n  resend_timer: 3\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := execute(t, "--config", path, "--resend-timer", "7"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Widget.InputCount != 8 {
		t.Fatalf("expected 8 cells from file, got %d", got.Widget.InputCount)
	}
	if got.Widget.ResendTimer != 7 {
		t.Fatalf("expected flag to override file, got %d", got.Widget.ResendTimer)
	}
}

func TestCode(t *testing.T) {
	out, err := execute(t, "code", "--secret", "JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !regexp.MustCompile(`^\d{6}\n$`).MatchString(out) {
		t.Fatalf("expected a 6 digit code, got %q", out)
	}

	out, err = execute(t, "code", "--secret", "JBSWY3DPEHPK3PXP", "--digits", "8")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !regexp.MustCompile(`^\d{8}\n$`).MatchString(out) {
		t.Fatalf("expected an 8 digit code, got %q", out)
	}
}

func TestCode_Generate(t *testing.T) {
	out, err := execute(t, "code", "--generate")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !regexp.MustCompile(`^secret: [A-Z2-7]+\n\d{6}\n$`).MatchString(out) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCode_RequiresSecret(t *testing.T) {
	if _, err := execute(t, "code"); err == nil {
		t.Fatalf("expected an error without a secret")
	}
}

func TestConfigInit(t *testing.T) {
	isolate(t)
	t.Setenv("OTPFORM_WIDGET_INPUT_COUNT", "9")

	out, err := execute(t, "config", "init")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	if out != "wrote "+path+"\n" {
		t.Fatalf("unexpected output %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if !strings.Contains(string(data), "input_count: 4") {
		t.Fatalf("expected defaults only in written file, got:\n%s", data)
	}
	if !strings.Contains(string(data), "debounce: 100ms") {
		t.Fatalf("expected duration as text, got:\n%s", data)
	}

	if _, err := execute(t, "config", "init"); err == nil {
		t.Fatalf("expected an error when the file exists")
	}
	if _, err := execute(t, "config", "init", "--force"); err != nil {
		t.Fatalf("expected --force to overwrite: %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "version: ") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
}

func TestResolveBuildVersion_LinkerVersionWins(t *testing.T) {
	orig := buildvars.Version
	defer func() { buildvars.Version = orig }()
	buildvars.Version = "v2.0.0"

	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v2.0.0" {
		t.Fatalf("expected linker version, got %s", v)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/host", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: modulePath, Version: "v0.3.1-0.20260110120000-d1692e4643ee"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v0.3.1-0.20260110120000-d1692e4643ee" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := buildvars.GitCommit
	defer func() { buildvars.GitCommit = orig }()
	buildvars.GitCommit = "deadbeef"

	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.time", Value: "2026-01-10T12:00:00Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "deadbeef" || c != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s (%s)", v, c)
	}
	if d != "2026-01-10T12:00:00Z" {
		t.Fatalf("expected vcs.time as build date, got %s", d)
	}
}
