//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// atlantaParks is the dataset most tests start from
const atlantaParks = `[
  {"name": "Piedmont Park", "amenities": ["Dog Park", "Playground", "Trails"]},
  {"name": "Freedom Park", "amenities": ["Trails", "Bike Paths"]},
  {"name": "Grant Park", "amenities": ["Playground", "Pool"]},
  {"name": "Woodruff Park", "amenities": []}
]`

// WorkspaceOption configures workspace creation
type WorkspaceOption func(*workspaceOptions)

type workspaceOptions struct {
	dataset   string
	noDataset bool
	config    string
}

// WithDataset replaces the default dataset contents
func WithDataset(json string) WorkspaceOption {
	return func(opts *workspaceOptions) {
		opts.dataset = json
	}
}

// WithoutDataset leaves parks.json out so loading fails
func WithoutDataset() WorkspaceOption {
	return func(opts *workspaceOptions) {
		opts.noDataset = true
	}
}

// WithConfig appends raw TOML to the generated config
func WithConfig(toml string) WorkspaceOption {
	return func(opts *workspaceOptions) {
		opts.config = toml
	}
}

// CreateTestWorkspace creates a temp directory holding parks.json and a
// .parkgrip.toml pointing at it
func (tf *TUITestFramework) CreateTestWorkspace(options ...WorkspaceOption) (string, error) {
	opts := workspaceOptions{dataset: atlantaParks}
	for _, opt := range options {
		opt(&opts)
	}

	dir := tf.t.TempDir()
	tf.workspace = dir

	if !opts.noDataset {
		if err := os.WriteFile(filepath.Join(dir, "parks.json"), []byte(opts.dataset), 0o644); err != nil {
			return "", err
		}
	}

	cfg := "version = 1\nsource = \"parks.json\"\nlog_file = \"parkgrip.log\"\n" + opts.config
	if err := os.WriteFile(filepath.Join(dir, ".parkgrip.toml"), []byte(cfg), 0o644); err != nil {
		return "", err
	}
	return dir, nil
}
