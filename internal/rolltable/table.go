// Package rolltable finds marker tables in a chapter and fills them with
// dice rolls: a die picked from the row count, the header replaced by die
// notation and one roll value per row.
package rolltable

import (
	"errors"
	"fmt"

	"github.com/MichalGniadek/mdbook-rolltables/internal/markdown"
)

// Cell is the token content of a single table cell.
type Cell []markdown.Token

// Table is one pipe table lifted out of a token stream.
type Table struct {
	// Start and End index the table's TableStart and TableEnd tokens in the
	// stream it was extracted from; the table owns everything in between.
	Start, End int

	Alignments []markdown.Alignment
	Header     []Cell
	Rows       [][]Cell
}

// ErrMalformedStream reports table tokens that do not nest the way Tokenize
// produces them.
var ErrMalformedStream = errors.New("malformed table token stream")

// Extract collects every table in the stream, in order. Tables do not nest,
// so a single pass suffices; any table token outside the shape Tokenize
// emits yields an error wrapping ErrMalformedStream.
func Extract(tokens []markdown.Token) ([]Table, error) {
	var tables []Table
	var cur *Table
	var row []Cell
	var cell Cell
	inHead := false
	inRow := false
	inCell := false

	for i, tok := range tokens {
		switch tok.Kind {
		case markdown.KindTableStart:
			if cur != nil {
				return nil, fmt.Errorf("%w: table start at token %d inside an open table", ErrMalformedStream, i)
			}
			cur = &Table{Start: i, Alignments: tok.Alignments}
		case markdown.KindTableEnd:
			if cur == nil || inRow || inCell {
				return nil, fmt.Errorf("%w: table end at token %d with open structure", ErrMalformedStream, i)
			}
			cur.End = i
			tables = append(tables, *cur)
			cur = nil
		case markdown.KindHeadStart, markdown.KindRowStart:
			if cur == nil || inRow {
				return nil, fmt.Errorf("%w: row start at token %d outside a table", ErrMalformedStream, i)
			}
			inHead = tok.Kind == markdown.KindHeadStart
			inRow = true
			row = nil
		case markdown.KindHeadEnd, markdown.KindRowEnd:
			if !inRow || inCell || (tok.Kind == markdown.KindHeadEnd) != inHead {
				return nil, fmt.Errorf("%w: row end at token %d without a matching start", ErrMalformedStream, i)
			}
			if inHead {
				cur.Header = row
			} else {
				cur.Rows = append(cur.Rows, row)
			}
			inRow = false
		case markdown.KindCellStart:
			if !inRow || inCell {
				return nil, fmt.Errorf("%w: cell start at token %d outside a row", ErrMalformedStream, i)
			}
			inCell = true
			cell = nil
		case markdown.KindCellEnd:
			if !inCell {
				return nil, fmt.Errorf("%w: cell end at token %d without an open cell", ErrMalformedStream, i)
			}
			row = append(row, cell)
			inCell = false
		default:
			if inCell {
				cell = append(cell, tok)
			} else if cur != nil {
				return nil, fmt.Errorf("%w: content token %d between table cells", ErrMalformedStream, i)
			}
		}
	}
	if cur != nil {
		return nil, fmt.Errorf("%w: table never closed", ErrMalformedStream)
	}
	return tables, nil
}

// Tokens rebuilds the table's token run, TableStart through TableEnd.
func (t *Table) Tokens() []markdown.Token {
	out := []markdown.Token{{Kind: markdown.KindTableStart, Alignments: t.Alignments}}
	out = appendRow(out, markdown.KindHeadStart, markdown.KindHeadEnd, t.Header)
	for _, row := range t.Rows {
		out = appendRow(out, markdown.KindRowStart, markdown.KindRowEnd, row)
	}
	return append(out, markdown.Token{Kind: markdown.KindTableEnd, Alignments: t.Alignments})
}

func appendRow(out []markdown.Token, start, end markdown.Kind, cells []Cell) []markdown.Token {
	out = append(out, markdown.Token{Kind: start})
	for _, c := range cells {
		out = append(out, markdown.Token{Kind: markdown.KindCellStart})
		out = append(out, c...)
		out = append(out, markdown.Token{Kind: markdown.KindCellEnd})
	}
	return append(out, markdown.Token{Kind: end})
}
