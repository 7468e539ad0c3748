// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "fmt"

// Surface is where a listing is displayed: a list of cards plus a visible
// result counter.
type Surface interface {
	// Replace discards whatever the list shows and displays cards instead.
	Replace(cards []Card)

	// SetCount writes the number of displayed results to the counter.
	SetCount(n int)

	// ShowLoadError replaces the list with the load-failure message for
	// document.
	ShowLoadError(document string)
}

// Render replaces the surface's list with cards and updates the counter.
// Rendering the same cards twice leaves the surface in the same state.
func Render(s Surface, cards []Card) int {
	s.Replace(cards)
	s.SetCount(len(cards))
	return len(cards)
}

// RenderLoadError shows the load-failure message for document and forces
// the counter to zero.
func RenderLoadError(s Surface, document string) {
	s.ShowLoadError(document)
	s.SetCount(0)
}

// LoadErrorMessage is the text shown when document could not be loaded.
func LoadErrorMessage(document string) string {
	return fmt.Sprintf("Não consegui carregar %s. Verifique o caminho/JSON.", document)
}
