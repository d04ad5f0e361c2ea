package preferences

import "strings"

// Key identifies a preference shown on (or consulted by) the privacy screen
type Key int

const (
	KeyUnknown Key = iota
	KeyWebsiteSettings
	KeyClearSelectedData
	KeyEnableGeolocation
	KeyMicrophone
	KeyCamera
	KeyDistractingContents
	KeyPopupWindows
	KeyAcceptCookies
	KeyAcceptThirdCookies
	KeyDoNotTrack
	KeyPrivacyClearHistory
)

var keyNames = [...]string{
	KeyUnknown:             "",
	KeyWebsiteSettings:     "website_settings",
	KeyClearSelectedData:   "clear_selected_data",
	KeyEnableGeolocation:   "enable_geolocation",
	KeyMicrophone:          "microphone",
	KeyCamera:              "camera",
	KeyDistractingContents: "distracting_contents",
	KeyPopupWindows:        "popup_windows",
	KeyAcceptCookies:       "accept_cookies",
	KeyAcceptThirdCookies:  "accept_third_cookies",
	KeyDoNotTrack:          "do_not_track",
	KeyPrivacyClearHistory: "privacy_clear_history",
}

// String returns the preference name, empty for KeyUnknown
func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return ""
	}
	return keyNames[k]
}

// ParseKey matches a preference name case-insensitively. Unrecognised
// names map to KeyUnknown.
func ParseKey(name string) Key {
	name = strings.TrimSpace(name)
	if name == "" {
		return KeyUnknown
	}
	for i, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(i)
		}
	}
	return KeyUnknown
}
