package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"parkgrip/internal/domain"
)

const atlantaJSON = `[
  {"name": "Piedmont Park", "amenities": ["trails", "playground"]},
  {"name": "Freedom Park", "amenities": ["trails"]}
]`

var atlanta = []domain.Park{
	{Name: "Piedmont Park", Amenities: []string{"trails", "playground"}},
	{Name: "Freedom Park", Amenities: []string{"trails"}},
}

func TestDecodeJSONArray(t *testing.T) {
	parks, dropped, err := Decode([]byte(atlantaJSON), FormatJSON, "")
	require.NoError(t, err)
	require.Zero(t, dropped)
	if diff := cmp.Diff(atlanta, parks); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := `- name: Piedmont Park
  amenities: [trails, playground]
- name: Freedom Park
  amenities:
    - trails
`
	parks, _, err := Decode([]byte(doc), FormatYAML, "")
	require.NoError(t, err)
	if diff := cmp.Diff(atlanta, parks); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeWithRecordsPath(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{
			name:   "json envelope",
			format: FormatJSON,
			doc:    `{"city": "Atlanta", "parks": ` + atlantaJSON + `}`,
		},
		{
			name:   "yaml envelope",
			format: FormatYAML,
			doc: `city: Atlanta
parks:
  - name: Piedmont Park
    amenities: [trails, playground]
  - name: Freedom Park
    amenities: [trails]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parks, _, err := Decode([]byte(tt.doc), tt.format, "$.parks")
			require.NoError(t, err)
			if diff := cmp.Diff(atlanta, parks); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRecordsPathMissing(t *testing.T) {
	_, _, err := Decode([]byte(`{"city": "Atlanta"}`), FormatJSON, "$.parks")
	require.ErrorIs(t, err, ErrRecordsPath)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "truncated", doc: `[{"name": "Piedmont Park"`},
		{name: "object instead of array", doc: `{"name": "Piedmont Park"}`},
		{name: "amenities not strings", doc: `[{"name": "Piedmont Park", "amenities": [1, 2]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.doc), FormatJSON, "")
			require.ErrorIs(t, err, ErrMalformedDataset)
		})
	}
}

func TestDecodeNormalizesRecords(t *testing.T) {
	doc := `[
	  {"name": "Piedmont Park", "amenities": ["trails", " ", "playground "]},
	  {"amenities": ["trails"]},
	  {"name": "  "},
	  {"name": "Grant Park"},
	  {"name": "Piedmont Park", "amenities": ["dog park"]}
	]`

	parks, dropped, err := Decode([]byte(doc), FormatJSON, "")
	require.NoError(t, err)
	require.Equal(t, 3, dropped)

	want := []domain.Park{
		{Name: "Piedmont Park", Amenities: []string{"trails", "playground"}},
		{Name: "Grant Park", Amenities: []string{}},
	}
	if diff := cmp.Diff(want, parks); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatFor(t *testing.T) {
	require.Equal(t, FormatYAML, FormatFor("data/parks.YAML"))
	require.Equal(t, FormatYAML, FormatFor("https://example.com/parks.yml?v=2"))
	require.Equal(t, FormatJSON, FormatFor("/parks.json"))
	require.Equal(t, FormatJSON, FormatFor("https://example.com/parks"))
}

func TestHTTPProviderFetchesParks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/parks.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(atlantaJSON))
	}))
	defer srv.Close()

	p := New(srv.URL+"/parks.json", Options{Timeout: time.Second})
	_, isHTTP := p.(*HTTPProvider)
	require.True(t, isHTTP)

	parks, err := p.FetchParks(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(atlanta, parks); diff != "" {
		t.Errorf("FetchParks() mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPProviderHonoursYAMLContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte("- name: Freedom Park\n  amenities: [trails]\n"))
	}))
	defer srv.Close()

	parks, err := NewHTTPProvider(srv.URL, Options{}).FetchParks(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.Park{{Name: "Freedom Park", Amenities: []string{"trails"}}}, parks)
}

func TestHTTPProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPProvider(srv.URL, Options{}).FetchParks(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 500")
}

func TestHTTPProviderTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTPProvider(srv.URL, Options{Timeout: 50 * time.Millisecond}).FetchParks(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parks.json")
	require.NoError(t, os.WriteFile(path, []byte(atlantaJSON), 0o644))

	p := New(path, Options{})
	_, isFile := p.(*FileProvider)
	require.True(t, isFile)

	parks, err := p.FetchParks(context.Background())
	require.NoError(t, err)
	require.Len(t, parks, 2)

	_, err = New(filepath.Join(dir, "missing.json"), Options{}).FetchParks(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileProviderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileProvider("parks.json", Options{}).FetchParks(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
