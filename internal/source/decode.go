// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/labinfos/pkg/types"
)

// Decode parses data into a T. Documents whose name ends in .yaml or .yml
// are parsed as YAML; everything else as JSON. A JSON document must be a
// single non-null value. Decoding failures wrap ErrMalformed.
func Decode[T any](data []byte, name string) (T, error) {
	var v T
	if isYAML(name) {
		if err := yaml.Unmarshal(data, &v); err != nil {
			return v, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return v, nil
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return v, fmt.Errorf("%w: document is null", ErrMalformed)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("%w: unexpected data after the top-level value", ErrMalformed)
	}
	return v, nil
}

func isYAML(name string) bool {
	// Strip any query string from URLs before looking at the extension.
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load fetches the document at location and decodes it into a T. Every
// failure is returned as a *LoadError naming location.
func Load[T any](ctx context.Context, f Fetcher, location string) (T, error) {
	var zero T
	data, err := f.Fetch(ctx, location)
	if err != nil {
		return zero, &LoadError{Document: location, Err: err}
	}
	v, err := Decode[T](data, location)
	if err != nil {
		return zero, &LoadError{Document: location, Err: err}
	}
	return v, nil
}

// LoadPublications loads an array of publications.
func LoadPublications(ctx context.Context, f Fetcher, location string) ([]types.Publication, error) {
	return loadList[types.Publication](ctx, f, location)
}

// LoadTeam loads an array of people.
func LoadTeam(ctx context.Context, f Fetcher, location string) ([]types.Person, error) {
	return loadList[types.Person](ctx, f, location)
}

// loadList loads an array document. A document without an array (an empty
// or null YAML document) is malformed; "[]" is an empty collection.
func loadList[R any](ctx context.Context, f Fetcher, location string) ([]R, error) {
	v, err := Load[[]R](ctx, f, location)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &LoadError{Document: location, Err: fmt.Errorf("%w: document is not an array", ErrMalformed)}
	}
	return v, nil
}

// LoadNEC loads the services document and keeps its top-level scalars for
// data-nec lookups.
func LoadNEC(ctx context.Context, f Fetcher, location string) (types.NEC, error) {
	nec, fields, err := loadWithFields[types.NEC](ctx, f, location)
	if err != nil {
		return types.NEC{}, err
	}
	nec.Fields = fields
	return nec, nil
}

// LoadSite loads the site document and keeps its top-level scalars for
// data-site lookups.
func LoadSite(ctx context.Context, f Fetcher, location string) (types.Site, error) {
	site, fields, err := loadWithFields[types.Site](ctx, f, location)
	if err != nil {
		return types.Site{}, err
	}
	site.Fields = fields
	return site, nil
}

func loadWithFields[T any](ctx context.Context, f Fetcher, location string) (T, map[string]types.Text, error) {
	var zero T
	data, err := f.Fetch(ctx, location)
	if err != nil {
		return zero, nil, &LoadError{Document: location, Err: err}
	}
	v, err := Decode[T](data, location)
	if err != nil {
		return zero, nil, &LoadError{Document: location, Err: err}
	}
	fields, err := Decode[map[string]types.Text](data, location)
	if err != nil {
		return zero, nil, &LoadError{Document: location, Err: err}
	}
	return v, fields, nil
}
