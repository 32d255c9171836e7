package domain

// Park is a single directory entry. Records are treated as immutable once
// loaded; the directory never edits them in place.
type Park struct {
	Name      string   `json:"name" yaml:"name"`
	Amenities []string `json:"amenities" yaml:"amenities"`
}

// HasAmenity reports whether the park lists the given amenity
func (p Park) HasAmenity(amenity string) bool {
	for _, a := range p.Amenities {
		if a == amenity {
			return true
		}
	}
	return false
}

// LoadStatus describes where the dataset is in its one-way load lifecycle
type LoadStatus int

const (
	StatusNotLoaded LoadStatus = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusNotLoaded:
		return "not-loaded"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
