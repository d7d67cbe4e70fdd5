package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Render serializes a token stream back to markdown text. Output is
// normalized: ATX headings, fenced code blocks, the parsed list markers,
// backslash hard breaks and a single blank line between blocks. Re-parsing
// the result yields the same document structure, so a stream taken straight
// from Tokenize renders to markdown that means what the source meant.
func Render(source []byte, tokens []Token) string {
	r := &renderer{src: source}
	for _, tok := range tokens {
		r.render(tok)
	}
	return r.out.String()
}

// container is an open block that prefixes every line it spans, such as a
// blockquote or a list item. A fresh container has not written its first
// marker yet; fresh containers always form the top of the stack.
type container struct {
	first string
	rest  string
	fresh bool
}

type listState struct {
	ordered bool
	marker  byte
	num     int
	tight   bool
}

type tableState struct {
	alignments []Alignment
	cells      []string
}

type renderer struct {
	src []byte
	out strings.Builder

	containers []container
	lists      []listState

	// needBlank records that the previous block closed and the next line of
	// content must be separated from it by a blank line.
	needBlank bool
	// lineContent reports whether the current line holds anything beyond
	// container prefixes.
	lineContent bool
	// heading suppresses line breaks while an ATX heading line is open.
	heading bool

	table *tableState
	cell  *strings.Builder
}

func (r *renderer) render(tok Token) {
	switch tok.Kind {
	case KindText:
		r.renderText(tok)
	case KindTableStart:
		r.startBlock()
		r.table = &tableState{alignments: tok.Alignments}
	case KindTableEnd:
		r.table = nil
		r.needBlank = true
	case KindHeadStart, KindRowStart:
		r.table.cells = r.table.cells[:0]
	case KindHeadEnd:
		r.writeRow(r.table.cells)
		r.nl()
		r.write(delimiterRow(r.table.alignments))
	case KindRowEnd:
		r.nl()
		r.writeRow(r.table.cells)
	case KindCellStart:
		r.cell = &strings.Builder{}
	case KindCellEnd:
		r.table.cells = append(r.table.cells, strings.TrimSpace(r.cell.String()))
		r.cell = nil
	case KindOther:
		r.renderOther(tok)
	}
}

func (r *renderer) renderText(tok Token) {
	t, _ := tok.Node.(*ast.Text)

	if r.cell != nil {
		r.cell.WriteString(escapePipes(tok.Text))
		if t != nil && (t.SoftLineBreak() || t.HardLineBreak()) {
			r.cell.WriteByte(' ')
		}
		return
	}

	s := tok.Text
	if !r.lineContent {
		s = escapeLineStart(s)
	}
	r.write(s)
	if t == nil {
		return
	}
	switch {
	case t.HardLineBreak():
		if r.heading {
			r.write(" ")
		} else {
			r.write("\\")
			r.nl()
		}
	case t.SoftLineBreak():
		if r.heading {
			r.write(" ")
		} else {
			r.nl()
		}
	}
}

func (r *renderer) renderOther(tok Token) {
	switch n := tok.Node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if tok.Entering {
			r.startBlock()
		} else {
			// Tight list items hold text blocks; those close without
			// forcing a blank line before the next item.
			r.needBlank = tok.Node.Kind() == ast.KindParagraph
		}
	case *ast.Heading:
		if tok.Entering {
			r.startBlock()
			r.write(strings.Repeat("#", n.Level) + " ")
			r.heading = true
		} else {
			r.heading = false
			r.needBlank = true
		}
	case *ast.Blockquote:
		if tok.Entering {
			r.startBlock()
			r.openContainer("> ", "> ")
		} else {
			r.closeContainer()
			r.needBlank = true
		}
	case *ast.List:
		if tok.Entering {
			r.lists = append(r.lists, listState{
				ordered: n.IsOrdered(),
				marker:  n.Marker,
				num:     n.Start,
				tight:   n.IsTight,
			})
		} else {
			r.lists = r.lists[:len(r.lists)-1]
			r.needBlank = true
		}
	case *ast.ListItem:
		if tok.Entering {
			r.startBlock()
			ls := &r.lists[len(r.lists)-1]
			marker := string(ls.marker) + " "
			if ls.ordered {
				marker = fmt.Sprintf("%d%c ", ls.num, ls.marker)
				ls.num++
			}
			r.openContainer(marker, strings.Repeat(" ", len(marker)))
		} else {
			r.closeContainer()
			r.needBlank = !r.lists[len(r.lists)-1].tight
		}
	case *ast.FencedCodeBlock:
		r.startBlock()
		info := ""
		if n.Info != nil {
			info = string(n.Info.Segment.Value(r.src))
		}
		r.writeCodeBlock(info, blockLines(n.Lines(), r.src))
		r.needBlank = true
	case *ast.CodeBlock:
		r.startBlock()
		r.writeCodeBlock("", blockLines(n.Lines(), r.src))
		r.needBlank = true
	case *ast.HTMLBlock:
		r.startBlock()
		lines := blockLines(n.Lines(), r.src)
		if n.HasClosure() {
			lines = append(lines, strings.TrimSuffix(string(n.ClosureLine.Value(r.src)), "\n"))
		}
		for i, line := range lines {
			if i > 0 {
				r.nl()
			}
			r.write(line)
		}
		r.needBlank = true
	case *ast.ThematicBreak:
		r.startBlock()
		r.write("---")
		r.needBlank = true
	case *ast.Emphasis:
		r.write(strings.Repeat("*", n.Level))
	case *ast.Link:
		if tok.Entering {
			r.write("[")
		} else {
			r.write("](" + linkDestination(n.Destination, n.Title) + ")")
		}
	case *ast.Image:
		if tok.Entering {
			r.write("![")
		} else {
			r.write("](" + linkDestination(n.Destination, n.Title) + ")")
		}
	case *ast.CodeSpan:
		r.write(codeSpan(codeSpanContent(n, r.src)))
	case *ast.AutoLink:
		r.write("<" + string(n.URL(r.src)) + ">")
	case *ast.RawHTML:
		r.write(rawSegments(n.Segments, r.src))
	case *ast.String:
		r.write(string(n.Value))
	}
}

// startBlock begins a new block of content. The first block inside a fresh
// container lands right after the container marker; every later block opens
// on a new line, preceded by a blank line when the previous block asked for
// one.
func (r *renderer) startBlock() {
	if n := len(r.containers); n > 0 && r.containers[n-1].fresh {
		r.consumeFresh()
		r.needBlank = false
		r.lineContent = false
		return
	}
	if r.out.Len() == 0 {
		r.needBlank = false
		return
	}
	if r.needBlank {
		r.out.WriteByte('\n')
		r.writeBlankPrefixes()
		r.needBlank = false
	}
	r.nl()
}

// consumeFresh writes the first-line marker of every container that has not
// produced one yet, in stack order.
func (r *renderer) consumeFresh() {
	for i := range r.containers {
		if r.containers[i].fresh {
			r.out.WriteString(r.containers[i].first)
			r.containers[i].fresh = false
		}
	}
}

func (r *renderer) openContainer(first, rest string) {
	r.containers = append(r.containers, container{first: first, rest: rest, fresh: true})
}

func (r *renderer) closeContainer() {
	n := len(r.containers) - 1
	if r.containers[n].fresh {
		// Nothing materialized the container; emit its markers alone so an
		// empty blockquote or list item survives the round trip.
		var line strings.Builder
		for i := range r.containers {
			if r.containers[i].fresh {
				line.WriteString(r.containers[i].first)
				r.containers[i].fresh = false
			}
		}
		r.out.WriteString(strings.TrimRight(line.String(), " "))
		r.lineContent = true
	}
	r.containers = r.containers[:n]
}

func (r *renderer) write(s string) {
	if s == "" {
		return
	}
	if r.cell != nil {
		r.cell.WriteString(s)
		return
	}
	r.out.WriteString(s)
	r.lineContent = true
}

// nl ends the current line and opens the next one with the prefixes of every
// open container.
func (r *renderer) nl() {
	r.out.WriteByte('\n')
	for _, c := range r.containers {
		r.out.WriteString(c.rest)
	}
	r.lineContent = false
}

// writeBlankPrefixes writes a separating line that carries only container
// prefixes, trimmed of trailing spaces.
func (r *renderer) writeBlankPrefixes() {
	var line strings.Builder
	for _, c := range r.containers {
		line.WriteString(c.rest)
	}
	r.out.WriteString(strings.TrimRight(line.String(), " "))
}

func (r *renderer) writeRow(cells []string) {
	var b strings.Builder
	b.WriteByte('|')
	for _, c := range cells {
		b.WriteString(" " + c + " |")
	}
	r.write(b.String())
}

func (r *renderer) writeCodeBlock(info string, lines []string) {
	fence := codeFence(info, lines)
	r.write(fence + info)
	for _, line := range lines {
		r.nl()
		r.write(line)
	}
	r.nl()
	r.write(fence)
}

// codeFence picks a fence one character longer than the longest fence-like
// run inside the block. Backtick fences switch to tildes when the info
// string itself contains a backtick.
func codeFence(info string, lines []string) string {
	ch := byte('`')
	if strings.Contains(info, "`") {
		ch = '~'
	}
	run := 2
	for _, line := range lines {
		for i := 0; i < len(line); i++ {
			if line[i] != ch {
				continue
			}
			j := i
			for j < len(line) && line[j] == ch {
				j++
			}
			if j-i > run {
				run = j - i
			}
			i = j
		}
	}
	return strings.Repeat(string(ch), run+1)
}

func delimiterRow(aligns []Alignment) string {
	var b strings.Builder
	b.WriteByte('|')
	for _, a := range aligns {
		switch a {
		case AlignLeft:
			b.WriteString(" :--- |")
		case AlignCenter:
			b.WriteString(" :---: |")
		case AlignRight:
			b.WriteString(" ---: |")
		default:
			b.WriteString(" --- |")
		}
	}
	return b.String()
}

func linkDestination(dest, title []byte) string {
	d := string(dest)
	if d == "" || strings.ContainsAny(d, " \t") {
		d = "<" + d + ">"
	}
	if len(title) > 0 {
		d += ` "` + strings.ReplaceAll(string(title), `"`, `\"`) + `"`
	}
	return d
}

func codeSpanContent(n *ast.CodeSpan, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return strings.ReplaceAll(b.String(), "\n", " ")
}

// codeSpan wraps content in a backtick run longer than any run it contains,
// padding with spaces when the content would bleed into the delimiters.
func codeSpan(content string) string {
	ticks := "`"
	for strings.Contains(content, ticks) {
		ticks += "`"
	}
	if strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") ||
		(strings.HasPrefix(content, " ") && strings.HasSuffix(content, " ") && strings.TrimSpace(content) != "") {
		content = " " + content + " "
	}
	return ticks + content + ticks
}

func rawSegments(segs *text.Segments, src []byte) string {
	parts := make([]string, 0, segs.Len())
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		parts = append(parts, strings.TrimSuffix(string(seg.Value(src)), "\n"))
	}
	return strings.Join(parts, " ")
}

func blockLines(lines *text.Segments, src []byte) []string {
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		out = append(out, strings.TrimSuffix(string(line.Value(src)), "\n"))
	}
	return out
}

// escapePipes backslash-escapes every pipe that is not already escaped, so
// cell text cannot open a new column when written back inside a table row.
func escapePipes(s string) string {
	return escapeUnescaped(s, '|')
}

func escapeUnescaped(s string, c byte) string {
	var b strings.Builder
	run := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c && run%2 == 0 {
			b.WriteByte('\\')
		}
		if s[i] == '\\' {
			run++
		} else {
			run = 0
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// escapeLineStart protects text that opens a line from re-parsing as a block
// introducer. Text that came out of the parser rarely needs this, but
// normalized line shifts and synthesized text must not change the document
// structure.
func escapeLineStart(s string) string {
	if s == "" {
		return s
	}
	switch c := s[0]; {
	case c == '>':
		return "\\" + s
	case c == '#':
		run := 0
		for run < len(s) && s[run] == '#' {
			run++
		}
		if run <= 6 && (run == len(s) || s[run] == ' ') {
			return "\\" + s
		}
	case c == '-' || c == '+' || c == '*':
		if len(s) == 1 || s[1] == ' ' || breakRun(s, c) {
			return "\\" + s
		}
	case c == '=':
		if allSameByte(s, c) {
			return "\\" + s
		}
	case c == '_':
		if breakRun(s, c) {
			return "\\" + s
		}
	case c == '~':
		if allSameByte(s, c) && len(s) >= 3 {
			return "\\" + s
		}
	case c >= '0' && c <= '9':
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i <= 9 && i < len(s) && (s[i] == '.' || s[i] == ')') && (i+1 == len(s) || s[i+1] == ' ') {
			return s[:i] + "\\" + s[i:]
		}
	}
	return s
}

func allSameByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

// breakRun reports whether s is a thematic-break line for marker c: at least
// three markers with nothing but spaces and tabs between them.
func breakRun(s string, c byte) bool {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case c:
			n++
		case ' ', '\t':
		default:
			return false
		}
	}
	return n >= 3
}
