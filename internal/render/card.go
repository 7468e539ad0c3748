// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render maps listing records to display cards and commits them to
// an output surface.
//
// Every record yields exactly one card. Missing text fields are replaced by
// fixed placeholders so an editor can see at a glance which entries are
// incomplete; missing link fields yield no link at all.
package render

import (
	"fmt"

	"github.com/pdiddy/labinfos/pkg/types"
)

// Kind identifies the record variant a card was built from.
type Kind string

const (
	KindPublication Kind = "publication"
	KindPerson      Kind = "person"
	KindService     Kind = "service"
)

// Placeholders shown in place of missing fields.
const (
	PlaceholderTitle       = "[TÍTULO DA PUBLICAÇÃO]"
	PlaceholderAuthors     = "[AUTORES]"
	PlaceholderYear        = "Sem ano"
	PlaceholderType        = "Sem tipo"
	PlaceholderName        = "[NOME]"
	PlaceholderRole        = "[FUNÇÃO]"
	PlaceholderBio         = "[PREENCHA: mini-bio (2–4 linhas).]"
	PlaceholderPhoto       = "assets/img/team/p1.svg"
	PlaceholderPerson      = "pesquisador(a)"
	PlaceholderService     = "[SERVIÇO]"
	PlaceholderDescription = "[PREENCHA: descrição do serviço.]"
)

// maxPersonTags caps the keyword tags shown on a person card.
const maxPersonTags = 6

// Card is the display form of one record.
type Card struct {
	Kind Kind

	Title    string
	Subtitle string
	Tags     []string
	Body     string
	Note     string

	Image    string
	ImageAlt string

	Links []Link
}

// Cards maps records to cards, one per record, in order.
func Cards[R any](records []R, toCard func(R) Card) []Card {
	cards := make([]Card, len(records))
	for i, r := range records {
		cards[i] = toCard(r)
	}
	return cards
}

func orPlaceholder(t types.Text, placeholder string) string {
	if s := t.String(); s != "" {
		return s
	}
	return placeholder
}

// Publication builds the card of a publication: title, authors, year/type
// tags plus the journal when present, and DOI/PDF/Preprint/code links.
func (l Linker) Publication(p types.Publication) Card {
	c := Card{
		Kind:     KindPublication,
		Title:    orPlaceholder(p.Title, PlaceholderTitle),
		Subtitle: orPlaceholder(p.Authors, PlaceholderAuthors),
		Tags: []string{
			orPlaceholder(p.Year, PlaceholderYear),
			orPlaceholder(p.Type, PlaceholderType),
		},
		Note: p.Note.String(),
	}
	if p.Journal != "" {
		c.Tags = append(c.Tags, p.Journal.String())
	}
	c.Links = l.links(
		linkSpec{"DOI", DOIURL(p.DOI.String())},
		linkSpec{"PDF", p.PDF.String()},
		linkSpec{"Preprint", p.Preprint.String()},
		linkSpec{"Código/Dados", p.CodeOrData.String()},
	)
	return c
}

// Person builds the card of a team member: photo, name, role, bio, up to six
// keyword tags and profile links.
func (l Linker) Person(p types.Person) Card {
	who := p.Name.String()
	if who == "" {
		who = PlaceholderPerson
	}
	c := Card{
		Kind:     KindPerson,
		Title:    orPlaceholder(p.Name, PlaceholderName),
		Subtitle: orPlaceholder(p.Role, PlaceholderRole),
		Body:     orPlaceholder(p.Bio, PlaceholderBio),
		Image:    orPlaceholder(p.Photo, PlaceholderPhoto),
		ImageAlt: fmt.Sprintf("Foto de %s", who),
	}
	for i, k := range p.Keywords {
		if i == maxPersonTags {
			break
		}
		c.Tags = append(c.Tags, k.String())
	}
	email := ""
	if p.Email != "" {
		email = "mailto:" + p.Email.String()
	}
	c.Links = l.links(
		linkSpec{"Lattes", p.Lattes.String()},
		linkSpec{"ORCID", p.ORCID.String()},
		linkSpec{"Scholar", p.Scholar.String()},
		linkSpec{"GitHub", p.GitHub.String()},
		linkSpec{"E-mail", email},
	)
	return c
}

// Service builds the card of a service listing entry.
func Service(s types.Service) Card {
	return Card{
		Kind:  KindService,
		Title: orPlaceholder(s.Title, PlaceholderService),
		Body:  orPlaceholder(s.Description, PlaceholderDescription),
		Note:  s.Note.String(),
	}
}
