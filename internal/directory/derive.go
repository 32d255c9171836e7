package directory

import (
	"sort"
	"strings"

	"parkgrip/internal/domain"
)

// MatchesName reports whether term is a case-insensitive substring of the
// park's name. An empty term matches every park.
func MatchesName(p domain.Park, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(term))
}

// SatisfiesAmenities reports whether the park offers every selected amenity.
// An empty selection matches every park.
func SatisfiesAmenities(p domain.Park, selected map[string]struct{}) bool {
	for amenity := range selected {
		if !p.HasAmenity(amenity) {
			return false
		}
	}
	return true
}

// Derive returns the parks matching both the search term and the amenity
// selection, in their original order. It never returns nil.
func Derive(all []domain.Park, term string, selected map[string]struct{}) []domain.Park {
	visible := make([]domain.Park, 0, len(all))
	for _, p := range all {
		if MatchesName(p, term) && SatisfiesAmenities(p, selected) {
			visible = append(visible, p)
		}
	}
	return visible
}

// AmenityVocabulary is the sorted set of amenities offered by any park
func AmenityVocabulary(parks []domain.Park) []string {
	seen := make(map[string]struct{})
	for _, p := range parks {
		for _, a := range p.Amenities {
			seen[a] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
