package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

// Pane identifies which part of the screen has keyboard focus in normal mode
type Pane int

const (
	PaneParks Pane = iota
	PaneAmenities
)

func (p Pane) String() string {
	if p == PaneAmenities {
		return "amenities"
	}
	return "parks"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	FocusedPane() Pane
	CurrentAmenity() string
	CurrentPark() (string, bool)
	SearchTerm() string
	ShowingPopup() bool
	AmenitiesVisible() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
