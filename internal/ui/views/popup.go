package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers the boxed popup on an otherwise blank screen
func (pr *PopupRenderer) RenderPopupOverlay(popupContent string, height, width int) string {
	if height <= 0 {
		height = 24
	}
	box := pr.styles.PopupBox
	if maxW := width - 6; maxW > 20 && lipgloss.Width(popupContent) > maxW-4 {
		box = box.Width(maxW - 4)
	}
	if maxH := height - 2; maxH > 5 {
		box = box.MaxHeight(maxH)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(popupContent))
}
