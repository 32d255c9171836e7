// Package directory holds the park dataset and the two filter criteria,
// and keeps the visible list equal to Derive(all, term, selected) after
// every mutation.
package directory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"parkgrip/internal/domain"
	"parkgrip/internal/eventbus"
	"parkgrip/internal/provider"
)

// ErrAlreadyLoaded is returned when Load is called more than once
var ErrAlreadyLoaded = errors.New("parks already loaded for this session")

// Directory is the per-session state container. Load may run on its own
// goroutine while filters change, so all state sits behind mu.
type Directory struct {
	mu       sync.RWMutex
	provider provider.Provider
	bus      eventbus.EventBus
	logger   *zap.Logger

	allParks  []domain.Park
	amenities []string
	term      string
	selected  map[string]struct{}
	visible   []domain.Park

	status  domain.LoadStatus
	loadErr error
}

// Option customizes a Directory
type Option func(*Directory)

// WithBus publishes domain events on bus after each change
func WithBus(bus eventbus.EventBus) Option {
	return func(d *Directory) { d.bus = bus }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(d *Directory) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates an empty, not-yet-loaded directory
func New(p provider.Provider, opts ...Option) *Directory {
	d := &Directory{
		provider: p,
		logger:   zap.NewNop(),
		selected: make(map[string]struct{}),
		visible:  []domain.Park{},
		status:   domain.StatusNotLoaded,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.Named("directory")
	return d
}

// Load fetches the dataset from the provider. It runs at most once: later
// calls return ErrAlreadyLoaded without touching the provider. On failure
// the directory stays empty and the error is both recorded and returned.
func (d *Directory) Load(ctx context.Context) error {
	d.mu.Lock()
	if d.status != domain.StatusNotLoaded {
		d.mu.Unlock()
		return ErrAlreadyLoaded
	}
	d.status = domain.StatusLoading
	d.mu.Unlock()

	d.logger.Debug("loading parks")
	parks, err := d.fetch(ctx)

	d.mu.Lock()
	if err != nil {
		d.status = domain.StatusFailed
		d.loadErr = fmt.Errorf("failed to load parks: %w", err)
		d.allParks = nil
		d.amenities = nil
		d.visible = []domain.Park{}
		loadErr := d.loadErr
		d.mu.Unlock()

		d.logger.Warn("park load failed", zap.Error(err))
		d.publish(domain.ParksLoadFailedEvent{Err: loadErr})
		return loadErr
	}

	d.allParks = parks
	d.amenities = AmenityVocabulary(parks)
	d.status = domain.StatusLoaded
	d.recompute()
	count := len(parks)
	d.mu.Unlock()

	d.logger.Info("parks loaded", zap.Int("count", count))
	d.publish(domain.ParksLoadedEvent{Count: count})
	return nil
}

// fetch calls the provider, converting a panic into an error so a broken
// provider can never take the session down.
func (d *Directory) fetch(ctx context.Context) (parks []domain.Park, err error) {
	if d.provider == nil {
		return nil, errors.New("no data provider configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()
	parks, err = d.provider.FetchParks(ctx)
	if err != nil {
		return nil, err
	}
	return cloneParks(parks), nil
}

// cloneParks copies parks down to their amenity slices, so neither the
// provider nor a reader shares backing arrays with the directory
func cloneParks(parks []domain.Park) []domain.Park {
	out := make([]domain.Park, len(parks))
	for i, p := range parks {
		p.Amenities = slices.Clone(p.Amenities)
		out[i] = p
	}
	return out
}

// SetSearchTerm replaces the search term; the empty string matches all parks
func (d *Directory) SetSearchTerm(term string) {
	d.mu.Lock()
	d.term = term
	d.recompute()
	visible := len(d.visible)
	d.mu.Unlock()

	d.publish(domain.SearchChangedEvent{Term: term, Visible: visible})
}

// ToggleAmenity adds amenity to the selection, or removes it when present
func (d *Directory) ToggleAmenity(amenity string) {
	d.mu.Lock()
	if _, ok := d.selected[amenity]; ok {
		delete(d.selected, amenity)
	} else {
		d.selected[amenity] = struct{}{}
	}
	d.recompute()
	selected, visible := sortedKeys(d.selected), len(d.visible)
	d.mu.Unlock()

	d.publish(domain.AmenitiesChangedEvent{Selected: selected, Visible: visible})
}

// FilterByAmenity narrows the selection to exactly one amenity, replacing
// whatever was accumulated by ToggleAmenity. An empty amenity clears the
// selection. The search term still applies.
func (d *Directory) FilterByAmenity(amenity string) {
	d.mu.Lock()
	d.selected = make(map[string]struct{}, 1)
	if amenity != "" {
		d.selected[amenity] = struct{}{}
	}
	d.recompute()
	selected, visible := sortedKeys(d.selected), len(d.visible)
	d.mu.Unlock()

	d.publish(domain.AmenitiesChangedEvent{Selected: selected, Visible: visible})
}

// ClearFilters resets both the search term and the amenity selection
func (d *Directory) ClearFilters() {
	d.mu.Lock()
	d.term = ""
	d.selected = make(map[string]struct{})
	d.recompute()
	visible := len(d.visible)
	d.mu.Unlock()

	d.publish(domain.FiltersClearedEvent{Visible: visible})
}

// VisibleParks returns a copy of the derived list
func (d *Directory) VisibleParks() []domain.Park {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return cloneParks(d.visible)
}

// AllParks returns a copy of the loaded dataset
func (d *Directory) AllParks() []domain.Park {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return cloneParks(d.allParks)
}

// SearchTerm returns the current search term
func (d *Directory) SearchTerm() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.term
}

// SelectedAmenities returns the selection in sorted order
func (d *Directory) SelectedAmenities() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return sortedKeys(d.selected)
}

// IsSelected reports whether amenity is part of the selection
func (d *Directory) IsSelected(amenity string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.selected[amenity]
	return ok
}

// Amenities returns every amenity offered by the loaded parks, sorted
func (d *Directory) Amenities() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string{}, d.amenities...)
}

// Status returns the load status
func (d *Directory) Status() domain.LoadStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// LoadErr returns the error from a failed load, if any
func (d *Directory) LoadErr() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loadErr
}

// recompute must be called with mu held for writing
func (d *Directory) recompute() {
	d.visible = Derive(d.allParks, d.term, d.selected)
}

func (d *Directory) publish(event domain.DomainEvent) {
	if d.bus != nil {
		d.bus.Publish(event)
	}
}
