package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type CyclePaneAction struct{}

func (a CyclePaneAction) Type() string { return "cycle_pane" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Restore string // value to put back
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Filter actions
type ToggleAmenityAction struct {
	Amenity string
}

func (a ToggleAmenityAction) Type() string { return "toggle_amenity" }

type OnlyAmenityAction struct {
	Amenity string
}

func (a OnlyAmenityAction) Type() string { return "only_amenity" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Popups and external views
type OpenDetailAction struct {
	ParkName string
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type ClosePopupAction struct{}

func (a ClosePopupAction) Type() string { return "close_popup" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
