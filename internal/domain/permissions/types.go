package permissions

// Type identifies a controllable browser capability
type Type int

const (
	Geolocation Type = iota
	Voice
	Video
	WebRefiner
	Popup
	Cookie
	ThirdPartyCookies
)

var typeNames = [...]string{
	Geolocation:       "GEOLOCATION",
	Voice:             "VOICE",
	Video:             "VIDEO",
	WebRefiner:        "WEBREFINER",
	Popup:             "POPUP",
	Cookie:            "COOKIE",
	ThirdPartyCookies: "THIRDPARTYCOOKIES",
}

// String returns the upper-case permission name
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "UNKNOWN"
	}
	return typeNames[t]
}

// Valid reports whether t is one of the declared permission types
func (t Type) Valid() bool {
	return t >= 0 && int(t) < len(typeNames)
}

// Defaults returns the values used before the user has changed anything
func Defaults() map[Type]bool {
	return map[Type]bool{
		Geolocation:       true,
		Voice:             true,
		Video:             true,
		WebRefiner:        false,
		Popup:             false,
		Cookie:            true,
		ThirdPartyCookies: false,
	}
}

// Store reads and writes the default permission values
type Store interface {
	Get(t Type) (bool, error)
	Set(t Type, allowed bool) error
}
