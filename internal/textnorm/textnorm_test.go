// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lower cases ascii", "ABC", "abc"},
		{"strips acute", "ÁBC", "abc"},
		{"strips tilde and cedilla", "Ação João", "acao joao"},
		{"keeps digits and punctuation", "Ano 2021: Revisão!", "ano 2021: revisao!"},
		{"strips precomposed and combining forms alike", "é", "e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"", "João Silva", "ÉÈÊË", "çÇ ñÑ", "Ünïcödé 42"} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "Normalize(%q)", s)
	}
}

func TestNormalizeCaseAndDiacriticInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("é"), Normalize("É"))
	assert.Equal(t, Normalize("abc"), Normalize("ÁBC"))
	assert.Equal(t, "e", Normalize("É"))
}

func TestNewCollatorInvalidLocale(t *testing.T) {
	_, err := NewCollator("not a locale!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing locale")
}

func TestNewCollatorDefaultsToPortuguese(t *testing.T) {
	c, err := NewCollator("")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", c.Locale())
}

func TestCollatorSortsAccentsNextToBaseLetter(t *testing.T) {
	c := MustCollator("pt-BR")

	names := []string{"Bruno", "Zeca", "Álvaro", "Ana", "Érica", "Eduardo"}
	slices.SortFunc(names, c.Compare)

	assert.Equal(t, []string{"Álvaro", "Ana", "Bruno", "Eduardo", "Érica", "Zeca"}, names)
}

func TestCollatorCompare(t *testing.T) {
	c := MustCollator("pt-BR")
	assert.Negative(t, c.Compare("a", "b"))
	assert.Positive(t, c.Compare("b", "a"))
	assert.Zero(t, c.Compare("casa", "casa"))
	assert.Negative(t, c.Compare("ábaco", "bola"))
}
