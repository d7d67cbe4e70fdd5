// Package markdown flattens a parsed markdown document into a stream of
// tokens and renders such a stream back to markdown text.
//
// The stream distinguishes only the constructs the table rewriter needs to
// address: table structure markers and plain text. Every other construct
// travels through the stream as an opaque token carrying its parsed node,
// preserved verbatim and never inspected.
package markdown

import (
	"fmt"

	"github.com/yuin/goldmark/ast"
)

// Alignment is the per-column alignment of a table, captured from the
// delimiter row and re-emitted unchanged.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// Kind classifies a token in the flattened stream.
type Kind uint8

const (
	// KindOther is the catch-all for every construct the stream carries but
	// never interprets. The token keeps the underlying parse node; wrapper
	// constructs appear as an entering/leaving pair bracketing their
	// children, atomic constructs as a single entering token.
	KindOther Kind = iota

	// KindText is a run of plain text with its decoded value.
	KindText

	KindTableStart
	KindTableEnd
	KindHeadStart
	KindHeadEnd
	KindRowStart
	KindRowEnd
	KindCellStart
	KindCellEnd
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindTableStart:
		return "TableStart"
	case KindTableEnd:
		return "TableEnd"
	case KindHeadStart:
		return "HeadStart"
	case KindHeadEnd:
		return "HeadEnd"
	case KindRowStart:
		return "RowStart"
	case KindRowEnd:
		return "RowEnd"
	case KindCellStart:
		return "CellStart"
	case KindCellEnd:
		return "CellEnd"
	default:
		return "Other"
	}
}

// Token is one unit of the flattened stream.
type Token struct {
	Kind Kind

	// Text is the decoded value of a KindText token.
	Text string

	// Alignments is the table's column alignment list, present on
	// KindTableStart and KindTableEnd tokens.
	Alignments []Alignment

	// Node is the parse node behind KindOther tokens, and behind KindText
	// tokens that came from a parse (nil for synthesized text).
	Node ast.Node

	// Entering distinguishes the opening token of a KindOther wrapper pair
	// from its closing counterpart.
	Entering bool
}

// TextToken returns a synthesized plain-text token.
func TextToken(s string) Token {
	return Token{Kind: KindText, Text: s}
}

func (t Token) String() string {
	switch t.Kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", t.Text)
	case KindTableStart, KindTableEnd:
		return fmt.Sprintf("%s%v", t.Kind, t.Alignments)
	case KindOther:
		dir := "leave"
		if t.Entering {
			dir = "enter"
		}
		if t.Node == nil {
			return fmt.Sprintf("Other(<nil>,%s)", dir)
		}
		return fmt.Sprintf("Other(%s,%s)", t.Node.Kind(), dir)
	default:
		return t.Kind.String()
	}
}
