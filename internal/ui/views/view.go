package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"parkgrip/internal/domain"
	"parkgrip/internal/ui/input/types"
)

// Focus aliases so callers of this package don't need the input types
const (
	FocusParks     = types.PaneParks
	FocusAmenities = types.PaneAmenities
)

// amenityPaneWidth is the outer width of the checkbox column
const amenityPaneWidth = 30

// chromeLines is everything around the list rows: container padding,
// title, search line, spacing, pane border and heading, footer
const chromeLines = 11

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string
	City   string

	Status    domain.LoadStatus
	LoadError string
	Spinner   string

	Parks             []domain.Park
	TotalParks        int
	Amenities         []string
	SelectedAmenities []string
	SearchTerm        string

	Searching   bool
	SearchInput string

	Focus           types.Pane
	ParkCursor      int
	ParkOffset      int
	AmenityCursor   int
	AmenityOffset   int
	ShowAmenityPane bool

	StatusMessage string
	HelpView      string
	Popup         string
}

// ListHeight is how many rows a pane can show for a terminal of the given height
func ListHeight(height int) int {
	if height <= 0 {
		height = 24
	}
	if h := height - chromeLines; h > 3 {
		return h
	}
	return 3
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	parkRender    *ParkRenderer
	amenityRender *AmenityRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showAmenities bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		parkRender:    NewParkRenderer(styles, showAmenities),
		amenityRender: NewAmenityRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Styles exposes the style set for popups rendered outside this package
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := termWidth - 4 // main container padding

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state, innerWidth))
	content.WriteString("\n\n")
	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderBody(state, innerWidth))
	content.WriteString("\n\n")

	footer := state.HelpView
	if state.StatusMessage != "" {
		footer = r.styles.Filter.Render(state.StatusMessage)
	}
	content.WriteString(r.styles.Help.Render(footer))

	main := r.styles.Main.MaxHeight(max(state.Height, 1)).Render(content.String())
	if state.Popup != "" {
		return r.popupRender.RenderPopupOverlay(state.Popup, state.Height, termWidth)
	}
	return main
}

func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render(state.Title)

	var right []string
	switch state.Status {
	case domain.StatusNotLoaded, domain.StatusLoading:
		right = append(right, r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading parks", state.Spinner)))
	case domain.StatusFailed:
		right = append(right, r.styles.StatusError.Render("✗ Failed to load parks"))
	case domain.StatusLoaded:
		right = append(right, r.styles.StatusSuccess.Render(fmt.Sprintf("%d of %d parks", len(state.Parks), state.TotalParks)))
	}
	if len(state.SelectedAmenities) > 0 {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Amenities: %s]", strings.Join(state.SelectedAmenities, ", "))))
	}
	rightContent := strings.Join(right, "  ")

	padding := width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	line := logo + strings.Repeat(" ", padding) + rightContent

	if state.Status == domain.StatusFailed && state.LoadError != "" {
		line += "\n" + r.styles.StatusError.Render(truncate(state.LoadError, width))
	}
	return line
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	prompt := r.styles.Prompt.Render("Search: ")
	if state.Searching {
		return prompt + state.SearchInput
	}
	if state.SearchTerm == "" {
		return prompt + r.styles.Dim.Render("press / to search parks by name")
	}
	return prompt + r.styles.Filter.Render(state.SearchTerm)
}

func (r *Renderer) renderBody(state ViewState, width int) string {
	rows := ListHeight(state.Height)

	parkStyle := r.styles.PaneBlurred
	amenityStyle := r.styles.PaneBlurred
	if state.Focus == FocusAmenities && state.ShowAmenityPane {
		amenityStyle = r.styles.PaneFocused
	} else {
		parkStyle = r.styles.PaneFocused
	}

	parkWidth := width
	var amenityPane string
	if state.ShowAmenityPane {
		inner := amenityPaneWidth - 4
		body := r.styles.PaneTitle.Render("Filter by Amenities") + "\n" +
			r.amenityRender.RenderAmenityList(state, inner, rows)
		amenityPane = amenityStyle.Width(inner).Height(rows + 1).Render(body)
		parkWidth = width - lipgloss.Width(amenityPane) - 1
	}

	parkInner := parkWidth - 4
	if parkInner < 10 {
		parkInner = 10
	}
	heading := "Parks"
	if state.City != "" {
		heading = "Parks in " + state.City
	}
	parkBody := r.styles.PaneTitle.Render(heading) + "\n" + r.parkRender.RenderParkList(state, parkInner, rows)
	parkPane := parkStyle.Width(parkInner).Height(rows + 1).Render(parkBody)

	if amenityPane == "" {
		return parkPane
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, amenityPane, " ", parkPane)
}

// window returns the [start, end) slice of n rows shown from offset
func window(n, cursor, offset, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	if offset > cursor {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > n {
		end = n
	}
	return offset, end
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
