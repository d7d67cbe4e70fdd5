package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// tableMarkdown is a shared goldmark instance with the table extension, the
// only extension the renderer understands.
var tableMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Tokenize parses source as markdown and flattens the document into a token
// stream in document order. Table structure surfaces as dedicated tokens and
// plain text as Text tokens; every other construct travels as an opaque
// Other token that Render reproduces from its parse node.
func Tokenize(source []byte) []Token {
	doc := tableMarkdown.Parser().Parse(text.NewReader(source))

	tokens := make([]Token, 0, 64)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Document:
			// The document wrapper carries no content of its own.
		case *east.Table:
			kind := KindTableStart
			if !entering {
				kind = KindTableEnd
			}
			tokens = append(tokens, Token{Kind: kind, Alignments: tableAlignments(n)})
		case *east.TableHeader:
			tokens = append(tokens, structural(KindHeadStart, KindHeadEnd, entering))
		case *east.TableRow:
			tokens = append(tokens, structural(KindRowStart, KindRowEnd, entering))
		case *east.TableCell:
			tokens = append(tokens, structural(KindCellStart, KindCellEnd, entering))
		case *ast.Text:
			if entering {
				tokens = append(tokens, Token{
					Kind: KindText,
					Text: string(n.Segment.Value(source)),
					Node: n,
				})
			}
		default:
			if atomic(n) {
				if entering {
					tokens = append(tokens, Token{Kind: KindOther, Node: n, Entering: true})
				}
				return ast.WalkSkipChildren, nil
			}
			tokens = append(tokens, Token{Kind: KindOther, Node: n, Entering: entering})
		}
		return ast.WalkContinue, nil
	})
	return tokens
}

// atomic reports whether a node becomes a single token whose content Render
// reads from the node itself, so its children never enter the stream.
func atomic(n ast.Node) bool {
	switch n.(type) {
	case *ast.CodeSpan, *ast.AutoLink, *ast.RawHTML, *ast.String,
		*ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.ThematicBreak:
		return true
	}
	return false
}

func structural(start, end Kind, entering bool) Token {
	if entering {
		return Token{Kind: start}
	}
	return Token{Kind: end}
}

func tableAlignments(t *east.Table) []Alignment {
	out := make([]Alignment, len(t.Alignments))
	for i, a := range t.Alignments {
		switch a {
		case east.AlignLeft:
			out[i] = AlignLeft
		case east.AlignCenter:
			out[i] = AlignCenter
		case east.AlignRight:
			out[i] = AlignRight
		default:
			out[i] = AlignNone
		}
	}
	return out
}
