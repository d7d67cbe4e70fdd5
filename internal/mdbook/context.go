package mdbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Context is the preprocessor context mdBook sends as the first element of
// the input tuple.
type Context struct {
	Root          string `json:"root"`
	Config        Config `json:"config"`
	Renderer      string `json:"renderer"`
	MdbookVersion string `json:"mdbook_version"`
}

// Config is the book configuration. Only the preprocessor tables matter
// here; the rest of book.toml stays with the host.
type Config struct {
	Book         map[string]any            `json:"book"`
	Preprocessor map[string]map[string]any `json:"preprocessor"`
}

// PreprocessorConfig returns the raw [preprocessor.<name>] table, or nil
// when the book does not configure that preprocessor.
func (c *Context) PreprocessorConfig(name string) map[string]any {
	return c.Config.Preprocessor[name]
}

// ParseInput decodes the [context, book] tuple mdBook writes to the
// preprocessor's stdin.
func ParseInput(r io.Reader) (*Context, *Book, error) {
	var tuple []json.RawMessage
	if err := json.NewDecoder(r).Decode(&tuple); err != nil {
		return nil, nil, fmt.Errorf("decode preprocessor input: %w", err)
	}
	if len(tuple) != 2 {
		return nil, nil, fmt.Errorf("preprocessor input has %d elements, want 2", len(tuple))
	}
	var ctx Context
	if err := json.Unmarshal(tuple[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("decode context: %w", err)
	}
	var book Book
	if err := json.Unmarshal(tuple[1], &book); err != nil {
		return nil, nil, fmt.Errorf("decode book: %w", err)
	}
	return &ctx, &book, nil
}
