package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"parkgrip/internal/domain"
)

// ParkRenderer handles rendering of park rows
type ParkRenderer struct {
	styles        *Styles
	showAmenities bool
}

// NewParkRenderer creates a new park renderer
func NewParkRenderer(styles *Styles, showAmenities bool) *ParkRenderer {
	return &ParkRenderer{
		styles:        styles,
		showAmenities: showAmenities,
	}
}

// RenderPark renders a single park row, highlighting the part of the name
// that matched the search term.
func (r *ParkRenderer) RenderPark(park domain.Park, isCursor bool, searchTerm string, selected map[string]bool, width int) string {
	nameStyle := r.styles.ParkName
	highlightStyle := r.styles.Highlight
	amenityStyle := r.styles.Amenity
	checkedStyle := r.styles.Checked
	if isCursor {
		nameStyle = nameStyle.Inherit(r.styles.SelectionBg)
		highlightStyle = highlightStyle.Inherit(r.styles.SelectionBg)
		amenityStyle = amenityStyle.Inherit(r.styles.SelectionBg)
		checkedStyle = checkedStyle.Inherit(r.styles.SelectionBg)
	}

	marker := "  "
	if isCursor {
		marker = "▸ "
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(highlightMatch(park.Name, searchTerm, highlightStyle, nameStyle))

	if r.showAmenities {
		if len(park.Amenities) == 0 {
			b.WriteString(amenityStyle.Render("  (no amenities listed)"))
		} else {
			parts := make([]string, 0, len(park.Amenities))
			for _, a := range park.Amenities {
				if selected[a] {
					parts = append(parts, checkedStyle.Render(a))
				} else {
					parts = append(parts, amenityStyle.Render(a))
				}
			}
			b.WriteString(amenityStyle.Render("  "))
			b.WriteString(strings.Join(parts, amenityStyle.Render(", ")))
		}
	}

	line := b.String()
	if width > 0 && lipgloss.Width(line) > width {
		line = truncate(line, width)
	}
	return line
}

// RenderParkList renders the visible window of parks
func (r *ParkRenderer) RenderParkList(state ViewState, width, height int) string {
	if len(state.Parks) == 0 {
		return r.styles.Dim.Render(emptyMessage(state))
	}

	selected := make(map[string]bool, len(state.SelectedAmenities))
	for _, a := range state.SelectedAmenities {
		selected[a] = true
	}

	start, end := window(len(state.Parks), state.ParkCursor, state.ParkOffset, height)
	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.RenderPark(state.Parks[i], state.Focus == FocusParks && i == state.ParkCursor, state.SearchTerm, selected, width))
	}
	if end < len(state.Parks) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Parks)-end)))
	}
	return strings.Join(lines, "\n")
}

func emptyMessage(state ViewState) string {
	switch state.Status {
	case domain.StatusNotLoaded, domain.StatusLoading:
		return "Loading parks..."
	case domain.StatusFailed:
		return "No parks to show."
	}
	if state.TotalParks == 0 {
		return "The dataset is empty."
	}
	return "No parks match the current search and amenity filters. Press c to clear."
}

// highlightMatch renders text with the first case-insensitive match of query highlighted
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lower-casing can change byte lengths for some runes; offsets into the
	// lowered strings only line up with text when neither one changed
	if index == -1 || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	end := index + len(lowerQuery)
	before := text[:index]
	match := text[index:end]
	after := text[end:]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}
