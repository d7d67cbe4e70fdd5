package rolltable

import (
	"fmt"

	"github.com/MichalGniadek/mdbook-rolltables/internal/config"
	"github.com/MichalGniadek/mdbook-rolltables/internal/markdown"
	"github.com/MichalGniadek/mdbook-rolltables/internal/mdbook"
	"github.com/MichalGniadek/mdbook-rolltables/internal/ui"
)

// Name is the preprocessor name mdBook knows this program by, both in the
// binary name and in the [preprocessor.rolltables] table of book.toml.
const Name = "rolltables"

// Processor rewrites roll tables across a book.
type Processor struct {
	cfg  *config.Config
	warn func(format string, args ...any)
}

func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{cfg: cfg, warn: ui.DefaultStyles().Warnf}
}

// ProcessBook rewrites every chapter in place, including chapters nested
// under other chapters' sub-items.
func (p *Processor) ProcessBook(book *mdbook.Book) error {
	return mdbook.WalkChapters(book, func(ch *mdbook.Chapter) error {
		out, err := p.ProcessChapter(ch.Content)
		if err != nil {
			return fmt.Errorf("chapter %q: %w", ch.Name, err)
		}
		ch.Content = out
		return nil
	})
}

// ProcessChapter renders the chapter back from its parse with every roll
// table filled in. Chapters without roll tables take the same parse/render
// round trip, which normalizes formatting but keeps meaning.
func (p *Processor) ProcessChapter(content string) (string, error) {
	source := []byte(content)
	tokens := markdown.Tokenize(source)
	tables, err := Extract(tokens)
	if err != nil {
		return "", err
	}
	for i := range tables {
		if IsRollTable(&tables[i]) {
			p.fill(&tables[i])
		}
	}
	return markdown.Render(source, splice(tokens, tables)), nil
}

// fill replaces the marker header with die notation and the empty first
// cells with roll values.
func (p *Processor) fill(t *Table) {
	dice := ChooseDice(len(t.Rows))
	if dice.Unusual() && p.cfg.WarnOnUnusualDice {
		p.warn("Roll table created with unusual dice: %s", dice.Header(p.cfg))
	}
	t.Header[0] = Cell{markdown.TextToken(dice.Header(p.cfg))}
	labels := dice.Labels(p.cfg)
	if len(labels) != len(t.Rows) {
		panic(fmt.Sprintf("rolltable: %d labels generated for %d rows", len(labels), len(t.Rows)))
	}
	for i := range t.Rows {
		if len(t.Rows[i]) > 0 {
			t.Rows[i][0] = Cell{markdown.TextToken(labels[i])}
		}
	}
}

// splice rebuilds the stream with each table's tokens in place of the run it
// was extracted from. Tables arrive in stream order.
func splice(tokens []markdown.Token, tables []Table) []markdown.Token {
	out := make([]markdown.Token, 0, len(tokens))
	pos := 0
	for i := range tables {
		t := &tables[i]
		out = append(out, tokens[pos:t.Start]...)
		out = append(out, t.Tokens()...)
		pos = t.End + 1
	}
	return append(out, tokens[pos:]...)
}
