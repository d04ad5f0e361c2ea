package application

const (
	// Window constants
	WindowTitle  = "Privacy & security"
	WindowWidth  = 480
	WindowHeight = 720
)
