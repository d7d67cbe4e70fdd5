package markdown

import (
	"strings"
	"testing"
)

func summarize(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

func TestTokenizeTable(t *testing.T) {
	source := "|d|Class|\n|:---:|:---|\n||Warrior|\n"
	got := summarize(Tokenize([]byte(source)))
	want := `TableStart[center left] HeadStart CellStart Text("d") CellEnd CellStart Text("Class") CellEnd HeadEnd RowStart CellStart CellEnd CellStart Text("Warrior") CellEnd RowEnd TableEnd[center left]`
	if got != want {
		t.Fatalf("Tokenize(%q) =\n%s\nwant\n%s", source, got, want)
	}
}

func TestTokenizeWrapperPairs(t *testing.T) {
	source := "hi *there*\n"
	got := summarize(Tokenize([]byte(source)))
	want := `Other(Paragraph,enter) Text("hi ") Other(Emphasis,enter) Text("there") Other(Emphasis,leave) Other(Paragraph,leave)`
	if got != want {
		t.Fatalf("Tokenize(%q) =\n%s\nwant\n%s", source, got, want)
	}
}

func TestTokenizeAtomicInline(t *testing.T) {
	source := "run `go build` now\n"
	got := summarize(Tokenize([]byte(source)))
	want := `Other(Paragraph,enter) Text("run ") Other(CodeSpan,enter) Text(" now") Other(Paragraph,leave)`
	if got != want {
		t.Fatalf("Tokenize(%q) =\n%s\nwant\n%s", source, got, want)
	}
}

func TestTokenizeAtomicBlock(t *testing.T) {
	source := "```go\nx()\n```\n"
	got := summarize(Tokenize([]byte(source)))
	want := `Other(FencedCodeBlock,enter)`
	if got != want {
		t.Fatalf("Tokenize(%q) =\n%s\nwant\n%s", source, got, want)
	}
}

func TestTextToken(t *testing.T) {
	tok := TextToken("7")
	if tok.Kind != KindText || tok.Text != "7" {
		t.Fatalf("TextToken(%q) = %+v", "7", tok)
	}
	if tok.Node != nil {
		t.Fatalf("TextToken(%q) carries a parse node", "7")
	}
}
