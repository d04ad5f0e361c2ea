// Package i18n holds the translated strings of the settings screens.
package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys
const (
	MsgPrivacySecurityTitle = "pref_privacy_security_title"
	MsgNotAllowed           = "pref_security_not_allowed"
	MsgAskBeforeUsing       = "pref_security_ask_before_using"
	MsgWebsiteSettings      = "pref_website_settings"
	MsgClearSelectedData    = "pref_clear_selected_data"
	MsgLocation             = "pref_privacy_enable_geolocation"
	MsgMicrophone           = "pref_microphone"
	MsgCamera               = "pref_camera"
	MsgDistractingContents  = "pref_distracting_contents"
	MsgPopupWindows         = "pref_popup_windows"
	MsgAcceptCookies        = "pref_security_accept_cookies"
	MsgAcceptThirdCookies   = "pref_security_accept_third_cookies"
	MsgDoNotTrack           = "pref_do_not_track"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		MsgPrivacySecurityTitle: "Privacy & security",
		MsgNotAllowed:           "Not allowed",
		MsgAskBeforeUsing:       "Ask before using",
		MsgWebsiteSettings:      "Website settings",
		MsgClearSelectedData:    "Clear selected data",
		MsgLocation:             "Location",
		MsgMicrophone:           "Microphone",
		MsgCamera:               "Camera",
		MsgDistractingContents:  "Allow distracting contents",
		MsgPopupWindows:         "Allow pop-up windows",
		MsgAcceptCookies:        "Accept cookies",
		MsgAcceptThirdCookies:   "Accept third-party cookies",
		MsgDoNotTrack:           "Do not track",
	},
	language.German: {
		MsgPrivacySecurityTitle: "Datenschutz & Sicherheit",
		MsgNotAllowed:           "Nicht zulässig",
		MsgAskBeforeUsing:       "Vor Verwendung fragen",
		MsgWebsiteSettings:      "Website-Einstellungen",
		MsgClearSelectedData:    "Ausgewählte Daten löschen",
		MsgLocation:             "Standort",
		MsgMicrophone:           "Mikrofon",
		MsgCamera:               "Kamera",
		MsgDistractingContents:  "Ablenkende Inhalte zulassen",
		MsgPopupWindows:         "Pop-up-Fenster zulassen",
		MsgAcceptCookies:        "Cookies akzeptieren",
		MsgAcceptThirdCookies:   "Drittanbieter-Cookies akzeptieren",
		MsgDoNotTrack:           "Nicht verfolgen",
	},
}

var (
	initOnce  sync.Once
	initErr   error
	builder   *catalog.Builder
	supported = []language.Tag{language.English, language.German}
	matcher   = language.NewMatcher(supported)
)

// newCatalog builds a catalog from table and returns the first message
// that failed to compile
func newCatalog(table map[language.Tag]map[string]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range table {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("message %q (%s): %w", key, tag, err)
			}
		}
	}
	return b, nil
}

func initialize() error {
	initOnce.Do(func() {
		builder, initErr = newCatalog(translations)
	})
	return initErr
}

// Match returns the supported language closest to lang, English when
// nothing fits or lang does not parse.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}

// Printer returns a message printer for lang. If the catalog could not be
// built the printer is still usable but prints message keys untranslated.
func Printer(lang string) (*message.Printer, error) {
	tag := Match(lang)
	if err := initialize(); err != nil {
		return message.NewPrinter(tag), err
	}
	return message.NewPrinter(tag, message.Catalog(builder)), nil
}
