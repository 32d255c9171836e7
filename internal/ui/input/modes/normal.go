package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"parkgrip/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys

	if key.Matches(msg, k.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// While a popup is open only closing keys do anything
	if ctx.ShowingPopup() {
		switch {
		case key.Matches(msg, k.ClosePopup), key.Matches(msg, k.Detail), key.Matches(msg, k.Help), key.Matches(msg, k.Quit):
			return []types.Action{types.ClosePopupAction{}}, true
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, k.Tab):
		if !ctx.AmenitiesVisible() {
			return nil, true
		}
		return []types.Action{types.CyclePaneAction{}}, true
	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchTerm()}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearFiltersAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	}

	switch ctx.FocusedPane() {
	case types.PaneAmenities:
		return m.handleAmenityKey(msg, ctx)
	default:
		return m.handleParkKey(msg, ctx)
	}
}

func (m *NormalMode) handleAmenityKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	amenity := ctx.CurrentAmenity()
	if amenity == "" {
		return nil, false
	}
	switch {
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Detail):
		return []types.Action{types.ToggleAmenityAction{Amenity: amenity}}, true
	case key.Matches(msg, m.keys.Only):
		return []types.Action{types.OnlyAmenityAction{Amenity: amenity}}, true
	}
	return nil, false
}

func (m *NormalMode) handleParkKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.keys.Detail) {
		if name, ok := ctx.CurrentPark(); ok {
			return []types.Action{types.OpenDetailAction{ParkName: name}}, true
		}
	}
	return nil, false
}
