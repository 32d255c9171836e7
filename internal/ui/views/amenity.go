package views

import (
	"fmt"
	"strings"
)

// AmenityRenderer draws the amenity checkbox list
type AmenityRenderer struct {
	styles *Styles
}

// NewAmenityRenderer creates a new amenity renderer
func NewAmenityRenderer(styles *Styles) *AmenityRenderer {
	return &AmenityRenderer{styles: styles}
}

// RenderAmenityList renders one checkbox line per amenity in the vocabulary
func (r *AmenityRenderer) RenderAmenityList(state ViewState, width, height int) string {
	if len(state.Amenities) == 0 {
		return r.styles.Dim.Render("none")
	}

	selected := make(map[string]bool, len(state.SelectedAmenities))
	for _, a := range state.SelectedAmenities {
		selected[a] = true
	}

	start, end := window(len(state.Amenities), state.AmenityCursor, state.AmenityOffset, height)
	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		amenity := state.Amenities[i]
		box := "[ ]"
		style := r.styles.Amenity
		if selected[amenity] {
			box = "[x]"
			style = r.styles.Checked
		}
		line := style.Render(fmt.Sprintf("%s %s", box, amenity))
		if state.Focus == FocusAmenities && i == state.AmenityCursor {
			line = r.styles.SelectionBg.Render(fmt.Sprintf("%s %s", box, amenity))
		}
		lines = append(lines, truncate(line, width))
	}
	if end < len(state.Amenities) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Amenities)-end)))
	}
	return strings.Join(lines, "\n")
}
