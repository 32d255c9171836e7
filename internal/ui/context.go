package ui

import (
	"parkgrip/internal/ui/input/types"
)

// modelContext gives input modes read-only access to the model
type modelContext struct {
	m *Model
}

func (c modelContext) FocusedPane() types.Pane {
	return c.m.focus
}

func (c modelContext) CurrentAmenity() string {
	amenities := c.m.dir.Amenities()
	if c.m.amenityCursor < 0 || c.m.amenityCursor >= len(amenities) {
		return ""
	}
	return amenities[c.m.amenityCursor]
}

func (c modelContext) CurrentPark() (string, bool) {
	parks := c.m.dir.VisibleParks()
	if c.m.parkCursor < 0 || c.m.parkCursor >= len(parks) {
		return "", false
	}
	return parks[c.m.parkCursor].Name, true
}

func (c modelContext) SearchTerm() string {
	return c.m.dir.SearchTerm()
}

func (c modelContext) ShowingPopup() bool {
	return c.m.showHelp || c.m.detail != ""
}

func (c modelContext) AmenitiesVisible() bool {
	return len(c.m.dir.Amenities()) > 0
}
