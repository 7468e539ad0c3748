// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes a filtered listing view as a table, JSON or
// CSL-YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/labinfos/internal/render"
)

const (
	titleWidth    = 56
	subtitleWidth = 28
)

// Table writes cards as a human-readable table to w followed by the result
// count.
func Table(w io.Writer, cards []render.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "Nenhum resultado.")
		fmt.Fprintln(w, "\n0 resultados")
		return
	}

	fmt.Fprintf(w, "%-4s  %-*s  %-*s  %s\n", "#", titleWidth, "Título", subtitleWidth, "Autores/Função", "Tags")
	fmt.Fprintln(w, strings.Repeat("-", 4+2+titleWidth+2+subtitleWidth+2+20))

	for i, c := range cards {
		fmt.Fprintf(w, "%-4d  %-*s  %-*s  %s\n",
			i+1,
			titleWidth, truncate(c.Title, titleWidth),
			subtitleWidth, truncate(c.Subtitle, subtitleWidth),
			strings.Join(c.Tags, " · "))
	}

	fmt.Fprintf(w, "\n%d resultados\n", len(cards))
}

// JSON writes v as indented JSON to w.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
