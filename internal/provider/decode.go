package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"

	"parkgrip/internal/domain"
)

// Format is the encoding of a dataset
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

var (
	// ErrMalformedDataset is returned when the payload is not an array of park records
	ErrMalformedDataset = errors.New("malformed park dataset")
	// ErrRecordsPath is returned when the configured JSONPath does not resolve
	ErrRecordsPath = errors.New("records path did not resolve")
)

// FormatFor guesses the dataset format from a file name or URL path
func FormatFor(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawPark mirrors a record on the wire; every field is optional here and
// normalization decides what survives.
type rawPark struct {
	Name      string   `json:"name" yaml:"name"`
	Amenities []string `json:"amenities" yaml:"amenities"`
}

// Decode parses a dataset into parks. When recordsPath is set it is
// evaluated as JSONPath against the document and must yield the record
// array. The second return value counts records dropped by normalization.
func Decode(data []byte, format Format, recordsPath string) ([]domain.Park, int, error) {
	var raws []rawPark

	if recordsPath == "" {
		var err error
		switch format {
		case FormatYAML:
			err = yaml.Unmarshal(data, &raws)
		default:
			err = json.Unmarshal(data, &raws)
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
		}
	} else {
		selected, err := selectRecords(data, format, recordsPath)
		if err != nil {
			return nil, 0, err
		}
		// Round-trip through JSON so YAML and JSON documents decode the same way
		buf, err := json.Marshal(selected)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
		}
		if err := json.Unmarshal(buf, &raws); err != nil {
			return nil, 0, fmt.Errorf("%w: %s is not a list of parks: %v", ErrMalformedDataset, recordsPath, err)
		}
	}

	parks, dropped := normalize(raws)
	return parks, dropped, nil
}

func selectRecords(data []byte, format Format, recordsPath string) (interface{}, error) {
	var doc interface{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}

	val, err := jsonpath.Get(recordsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRecordsPath, recordsPath, err)
	}
	if val == nil {
		return nil, fmt.Errorf("%w: %s", ErrRecordsPath, recordsPath)
	}
	return val, nil
}

// normalize drops records without a name and later duplicates of an
// already-seen name, and replaces missing amenity lists with empty ones.
func normalize(raws []rawPark) ([]domain.Park, int) {
	parks := make([]domain.Park, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	dropped := 0

	for _, r := range raws {
		name := strings.TrimSpace(r.Name)
		if name == "" || seen[name] {
			dropped++
			continue
		}
		seen[name] = true

		amenities := make([]string, 0, len(r.Amenities))
		for _, a := range r.Amenities {
			if a = strings.TrimSpace(a); a != "" {
				amenities = append(amenities, a)
			}
		}
		parks = append(parks, domain.Park{Name: name, Amenities: amenities})
	}
	return parks, dropped
}
