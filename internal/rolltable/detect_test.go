package rolltable

import (
	"testing"

	"github.com/MichalGniadek/mdbook-rolltables/internal/markdown"
)

func extractOne(t *testing.T, src string) *Table {
	t.Helper()
	tables, err := Extract(markdown.Tokenize([]byte(src)))
	if err != nil {
		t.Fatalf("Extract(%q): %v", src, err)
	}
	if len(tables) != 1 {
		t.Fatalf("Extract(%q) found %d tables, want 1", src, len(tables))
	}
	return &tables[0]
}

func TestIsRollTable(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want bool
	}{
		{"marker header and empty rows", "|d|x|\n|---|---|\n||a|\n||b|\n", true},
		{"padded marker header", "| d | x |\n| --- | --- |\n|  | a |\n", true},
		{"header only", "|d|x|\n|---|---|\n", true},
		{"uppercase header", "|D|x|\n|---|---|\n||a|\n", false},
		{"longer header", "|dice|x|\n|---|---|\n||a|\n", false},
		{"styled header", "|*d*|x|\n|---|---|\n||a|\n", false},
		{"marker in second column", "|x|d|\n|---|---|\n|a||\n", false},
		{"filled first column", "|d|x|\n|---|---|\n|1|a|\n", false},
		{"partially filled", "|d|x|\n|---|---|\n||a|\n|2|b|\n", false},
		{"styled first cell", "|d|x|\n|---|---|\n|*a*|b|\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRollTable(extractOne(t, tc.src)); got != tc.want {
				t.Errorf("IsRollTable(%q) = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}
