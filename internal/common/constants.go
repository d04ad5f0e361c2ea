package common

const (
	// Screen identifiers
	PrivacyScreenID         = "privacy_security"
	WebsiteSettingsScreenID = "website_settings"

	// Event names
	EventNavigationPush = "navigation:push"
	EventNavigationPop  = "navigation:pop"
	EventPrivacyResult  = "privacy:result"
	EventScreenUpdate   = "privacy:screen"

	// File operation constants
	DefaultDirPermissions = 0755
)
