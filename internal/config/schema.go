// Package config contains the schema and helper functions to work with the
// ingestion manifest that tells cmd/ivtree which BED files to load.
package config

// Accepted merge-mode values for a source's MergeMode field.
const (
	MergeModeNone     = "none"
	MergeModeTouching = "touching"
	MergeModeStrict   = "strict"
)

// Source describes one BED file to ingest into the genome index.
type Source struct {
	// Path is the filesystem path to the tab-delimited BED file.
	Path string `yaml:"path" validate:"required"`

	// ChromColumn is the 0-based column index holding the chromosome key.
	// It defaults to 0, the first BED column, and is left unvalidated
	// beyond being non-negative.
	ChromColumn int `yaml:"chrom_column" validate:"gte=0"`

	// MergeMode controls what Tree.MergeOverlaps pass, if any, runs on
	// each shard after loading this source.
	MergeMode string `yaml:"merge_mode" validate:"required,oneof=none touching strict"`
}

// Manifest is the top-level ingestion manifest read by cmd/ivtree load.
type Manifest struct {
	Sources []Source `yaml:"sources" validate:"required,min=1,dive"`
}
