package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"parkgrip/internal/ui/input/types"
)

// SearchMode edits the park name search. The input keeps its own buffer;
// every edit is reported upward as an UpdateTextAction.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
