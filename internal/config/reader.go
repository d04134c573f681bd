package config

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// read parses an ingestion manifest from the given bytes and validates it.
func read(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(manifest); err != nil {
		return nil, err
	}

	return &manifest, nil
}

// ReadManifest reads an ingestion manifest from the given reader and
// returns it.
func ReadManifest(reader io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return read(data)
}
