package tui

// Screen is what fills the area between header and footer.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenWizard
	ScreenProjects
	ScreenDetail
	ScreenLogin
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenWizard:
		return "wizard"
	case ScreenProjects:
		return "projects"
	case ScreenDetail:
		return "detail"
	case ScreenLogin:
		return "login"
	default:
		return "unknown"
	}
}

// NavIndex is the header tab highlighted for the screen.
func (s Screen) NavIndex() int {
	switch s {
	case ScreenWizard:
		return 1
	case ScreenProjects, ScreenDetail:
		return 2
	case ScreenLogin:
		return -1
	default:
		return 0
	}
}

// screenForNav maps a header tab back to its screen.
func screenForNav(i int) (Screen, bool) {
	switch i {
	case 0:
		return ScreenHome, true
	case 1:
		return ScreenWizard, true
	case 2:
		return ScreenProjects, true
	}
	return 0, false
}

// intent is the payload of a modal: what to do when it is confirmed.
type intent struct {
	kind intentKind
	id   string
}

type intentKind int

const (
	intentDeleteFromList intentKind = iota
	intentDeleteFromDetail
	intentImageInstructions
	intentVideoInstructions
)
