// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index flattens records into normalized search blobs.
package index

import (
	"strings"

	"github.com/pdiddy/labinfos/internal/textnorm"
)

// Entry pairs a record with its normalized search blob. Entries are built
// once per collection load and never modified.
type Entry[R any] struct {
	Record R
	Blob   string
}

// Build returns one Entry per record, in input order. fields extracts the
// searchable fields of a record in a fixed order, "" for absent ones. The
// blob is the fields joined by single spaces and then normalized, so an
// absent field still contributes its empty segment.
func Build[R any](records []R, fields func(R) []string) []Entry[R] {
	entries := make([]Entry[R], len(records))
	for i, r := range records {
		entries[i] = Entry[R]{
			Record: r,
			Blob:   Blob(fields(r)...),
		}
	}
	return entries
}

// Blob joins parts with single spaces and normalizes the result.
func Blob(parts ...string) string {
	return textnorm.Normalize(strings.Join(parts, " "))
}

// Records returns the records of entries in order.
func Records[R any](entries []Entry[R]) []R {
	out := make([]R, len(entries))
	for i, e := range entries {
		out[i] = e.Record
	}
	return out
}
