// Package mdbook models the slice of the mdBook preprocessor protocol this
// program needs: the [context, book] stdin tuple, the book tree with its
// externally tagged items, and the host version check.
package mdbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Book is the book tree mdBook hands to a preprocessor. The __non_exhaustive
// marker mdBook attaches to the struct survives the round trip unchanged.
type Book struct {
	Sections []BookItem

	nonExhaustive bool
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var raw struct {
		Sections      []BookItem      `json:"sections"`
		NonExhaustive json.RawMessage `json:"__non_exhaustive"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Sections = raw.Sections
	b.nonExhaustive = raw.NonExhaustive != nil
	return nil
}

func (b Book) MarshalJSON() ([]byte, error) {
	sections := b.Sections
	if sections == nil {
		sections = []BookItem{}
	}
	if !b.nonExhaustive {
		return json.Marshal(struct {
			Sections []BookItem `json:"sections"`
		}{sections})
	}
	return json.Marshal(struct {
		Sections      []BookItem `json:"sections"`
		NonExhaustive *struct{}  `json:"__non_exhaustive"`
	}{sections, nil})
}

// BookItem is one entry in the book tree: a chapter, a separator line, or a
// part title. mdBook serializes the variants with external tags, so a
// chapter arrives as {"Chapter": {...}}, a separator as the bare string
// "Separator" and a part title as {"PartTitle": "..."}. Exactly one variant
// field is set.
type BookItem struct {
	Chapter   *Chapter
	PartTitle *string
	Separator bool
}

func (it *BookItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "Separator" {
			return fmt.Errorf("unknown book item %q", s)
		}
		it.Separator = true
		return nil
	}
	var tagged struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("book item: %w", err)
	}
	switch {
	case tagged.Chapter != nil:
		it.Chapter = tagged.Chapter
	case tagged.PartTitle != nil:
		it.PartTitle = tagged.PartTitle
	default:
		return fmt.Errorf("book item with no recognized variant: %s", data)
	}
	return nil
}

func (it BookItem) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(struct {
			Chapter *Chapter `json:"Chapter"`
		}{it.Chapter})
	case it.PartTitle != nil:
		return json.Marshal(struct {
			PartTitle string `json:"PartTitle"`
		}{*it.PartTitle})
	case it.Separator:
		return json.Marshal("Separator")
	}
	return nil, fmt.Errorf("book item with no variant set")
}

// Chapter is one chapter of the book. Number stays null for unnumbered
// chapters, but the slice fields marshal as empty arrays because mdBook
// rejects null where it expects a sequence.
type Chapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []int      `json:"number"`
	SubItems    []BookItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
}

func (c Chapter) MarshalJSON() ([]byte, error) {
	type chapter Chapter
	out := chapter(c)
	if out.SubItems == nil {
		out.SubItems = []BookItem{}
	}
	if out.ParentNames == nil {
		out.ParentNames = []string{}
	}
	return json.Marshal(out)
}

// WalkChapters applies fn to every chapter in the book, depth first,
// visiting each chapter before the chapters nested under it.
func WalkChapters(b *Book, fn func(*Chapter) error) error {
	return walkItems(b.Sections, fn)
}

func walkItems(items []BookItem, fn func(*Chapter) error) error {
	for i := range items {
		ch := items[i].Chapter
		if ch == nil {
			continue
		}
		if err := fn(ch); err != nil {
			return err
		}
		if err := walkItems(ch.SubItems, fn); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes the book to w the way mdBook expects it back: one JSON
// document, HTML characters left alone.
func (b *Book) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode book: %w", err)
	}
	return nil
}
