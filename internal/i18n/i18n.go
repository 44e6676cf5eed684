// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n is the message catalog for every user-visible string of the
// widget and the demo host. It uses go-i18n over embedded YAML files; only
// English ships.
package i18n

import (
	"embed"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/toeirei/otpform/internal/logging"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var bundle *i18n.Bundle

var localizer *i18n.Localizer

// Init loads the embedded catalog and selects lang, falling back to English
// for unknown languages or missing messages.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	loadMessageFiles(bundle, localeFS, "locales")

	localizer = i18n.NewLocalizer(bundle, lang, language.English.String())
}

// loadMessageFiles parses every catalog file in dir into b. Files that fail
// to read or parse are logged and skipped; their messages fall back to the
// message id.
func loadMessageFiles(b *i18n.Bundle, fsys fs.FS, dir string) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		logging.Errorf("i18n: reading %s: %v", dir, err)
		return
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := path.Join(dir, f.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			logging.Errorf("i18n: reading %s: %v", name, err)
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			logging.Errorf("i18n: parsing %s: %v", name, err)
		}
	}
}

// T translates messageID. Unknown IDs are returned unchanged.
func T(messageID string) string {
	return Tf(messageID, nil)
}

// Tf translates messageID and executes its template with data.
func Tf(messageID string, data map[string]any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
