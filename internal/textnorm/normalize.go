// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm canonicalizes text for matching and compares it for
// display order.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks. It is not
// recomposed: after removal nothing is left to compose.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize lower-cases s, decomposes it and removes combining diacritical
// marks, so "João" and "JOAO" both become "joao". Normalize is idempotent.
// Indexed blobs and live queries go through the same function.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		// Invalid UTF-8 is replaced rather than rejected by the transformers;
		// fall back to the lower-cased input if anything else goes wrong.
		return strings.ToLower(s)
	}
	return out
}
