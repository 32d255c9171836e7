package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"parkgrip/internal/domain"
)

// parkMarkdown describes a park as markdown for the detail popup
func parkMarkdown(park domain.Park, selected []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", park.Name)

	if len(park.Amenities) == 0 {
		b.WriteString("_No amenities listed._\n")
		return b.String()
	}

	chosen := make(map[string]bool, len(selected))
	for _, a := range selected {
		chosen[a] = true
	}

	b.WriteString("## Amenities\n\n")
	for _, a := range park.Amenities {
		if chosen[a] {
			fmt.Fprintf(&b, "- **%s** (filtering)\n", a)
		} else {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	return b.String()
}

// renderDetail renders the park detail with glamour, falling back to the
// raw markdown if the renderer cannot be built.
func renderDetail(park domain.Park, selected []string, width int) string {
	md := parkMarkdown(park, selected)

	wrap := width - 12
	if wrap < 30 {
		wrap = 30
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n") + "\n\n" + "esc to close"
}
