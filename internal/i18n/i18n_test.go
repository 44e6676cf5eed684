// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/toeirei/otpform/internal/logging"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func TestT_KnownMessage(t *testing.T) {
	Init("en")
	if got := T("otp.title"); got != "OTP Verification" {
		t.Fatalf("unexpected title: %q", got)
	}
}

func TestT_UnknownMessageFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestTf_TemplateData(t *testing.T) {
	Init("en")
	got := Tf("otp.expires_in", map[string]any{"Remaining": "02:05s"})
	if got != "Code expires in 02:05s" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestInit_UnknownLanguageUsesEnglish(t *testing.T) {
	Init("xx")
	defer Init("en")
	if got := T("otp.resend"); got != "Resend code" {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestT_LazyInit(t *testing.T) {
	localizer = nil
	if got := T("otp.expired"); got != "Code expired" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestLoadMessageFiles_LogsBrokenCatalog(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("greeting: Hello\n")},
		"locales/de.yaml": {Data: []byte("greeting: [unclosed\n")},
	}
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	loadMessageFiles(b, fsys, "locales")

	if !strings.Contains(buf.String(), "locales/de.yaml") {
		t.Fatalf("expected the broken file to be logged, got: %s", buf.String())
	}
	got, err := goi18n.NewLocalizer(b, "en").Localize(&goi18n.LocalizeConfig{MessageID: "greeting"})
	if err != nil || got != "Hello" {
		t.Fatalf("expected the valid file to load, got %q, %v", got, err)
	}
}

func TestLoadMessageFiles_MissingDir(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	loadMessageFiles(goi18n.NewBundle(language.English), fstest.MapFS{}, "locales")
	if !strings.Contains(buf.String(), "i18n: reading locales") {
		t.Fatalf("expected the missing dir to be logged, got: %s", buf.String())
	}
}
