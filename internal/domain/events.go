package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventParksLoaded      EventType = "ParksLoaded"
	EventParksLoadFailed  EventType = "ParksLoadFailed"
	EventSearchChanged    EventType = "SearchChanged"
	EventAmenitiesChanged EventType = "AmenitiesChanged"
	EventFiltersCleared   EventType = "FiltersCleared"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ParksLoadedEvent is emitted once the dataset has been loaded
type ParksLoadedEvent struct {
	Count int
}

func (e ParksLoadedEvent) Type() EventType { return EventParksLoaded }

// ParksLoadFailedEvent is emitted when the data source could not be read
type ParksLoadFailedEvent struct {
	Err error
}

func (e ParksLoadFailedEvent) Type() EventType { return EventParksLoadFailed }

// SearchChangedEvent is emitted after the search term changed and the
// visible list was recomputed
type SearchChangedEvent struct {
	Term    string
	Visible int
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// AmenitiesChangedEvent is emitted after the amenity selection changed
type AmenitiesChangedEvent struct {
	Selected []string
	Visible  int
}

func (e AmenitiesChangedEvent) Type() EventType { return EventAmenitiesChanged }

// FiltersClearedEvent is emitted when search and selection were reset together
type FiltersClearedEvent struct {
	Visible int
}

func (e FiltersClearedEvent) Type() EventType { return EventFiltersCleared }
