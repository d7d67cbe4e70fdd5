package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MichalGniadek/mdbook-rolltables/internal/mdbook"
)

func TestPreprocess(t *testing.T) {
	input := `[
		{
			"root": "/book",
			"config": {
				"book": {"title": "T"},
				"preprocessor": {"rolltables": {"command": "mdbook-rolltables"}}
			},
			"renderer": "html",
			"mdbook_version": "0.4.40"
		},
		{
			"sections": [
				{"Chapter": {
					"name": "Ch",
					"content": "|d|Class|\n|---|---|\n||a|\n||b|\n",
					"number": [1],
					"sub_items": [],
					"path": "ch.md",
					"source_path": "ch.md",
					"parent_names": []
				}}
			],
			"__non_exhaustive": null
		}
	]`
	var out bytes.Buffer
	if err := preprocess(strings.NewReader(input), &out); err != nil {
		t.Fatalf("preprocess: %v", err)
	}

	var book mdbook.Book
	if err := json.Unmarshal(out.Bytes(), &book); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	got := book.Sections[0].Chapter.Content
	want := "| d2 | Class |\n| --- | --- |\n| 1 | a |\n| 2 | b |"
	if got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if !strings.Contains(out.String(), `"__non_exhaustive":null`) {
		t.Fatalf("output lost the __non_exhaustive marker: %s", out.String())
	}
}

func TestPreprocessBadConfig(t *testing.T) {
	input := `[
		{
			"root": "/",
			"config": {"book": {}, "preprocessor": {"rolltables": {"value-separator": 5}}},
			"renderer": "html",
			"mdbook_version": "0.4.40"
		},
		{"sections": []}
	]`
	var out bytes.Buffer
	if err := preprocess(strings.NewReader(input), &out); err == nil {
		t.Fatal("expected an error for a mistyped configuration value")
	}
	if out.Len() != 0 {
		t.Fatalf("failed run still wrote output: %s", out.String())
	}
}

func TestPreprocessBadInput(t *testing.T) {
	var out bytes.Buffer
	if err := preprocess(strings.NewReader("not json"), &out); err == nil {
		t.Fatal("expected an error for malformed input")
	}
	if out.Len() != 0 {
		t.Fatalf("failed run still wrote output: %s", out.String())
	}
}
