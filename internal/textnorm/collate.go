// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation used by every listing.
const DefaultLocale = "pt-BR"

// Collator compares strings using the rules of a locale, so accented letters
// sort next to their base letter ("Álvaro" before "Bruno").
type Collator struct {
	mu     sync.Mutex
	locale language.Tag
	c      *collate.Collator
}

// NewCollator returns a Collator for the BCP 47 tag locale. An empty locale
// selects DefaultLocale.
func NewCollator(locale string) (*Collator, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return &Collator{locale: tag, c: collate.New(tag)}, nil
}

// MustCollator is NewCollator for locales known at compile time.
func MustCollator(locale string) *Collator {
	c, err := NewCollator(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locale returns the tag the collator was built for.
func (c *Collator) Locale() string { return c.locale.String() }

// Compare returns -1, 0 or +1 as a sorts before, equal to, or after b.
func (c *Collator) Compare(a, b string) int {
	// collate.Collator reuses internal buffers.
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}
