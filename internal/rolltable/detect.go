package rolltable

import "github.com/MichalGniadek/mdbook-rolltables/internal/markdown"

// IsRollTable reports whether the table asks to be filled with dice rolls:
// the first header cell is literally "d" and every body row leaves its first
// cell empty. Anything else in the first column, including styled text or an
// image, keeps the table as the author wrote it.
func IsRollTable(t *Table) bool {
	if len(t.Header) == 0 {
		return false
	}
	head, ok := plainText(t.Header[0])
	if !ok || head != "d" {
		return false
	}
	for _, row := range t.Rows {
		if len(row) > 0 && len(row[0]) != 0 {
			return false
		}
	}
	return true
}

// plainText returns the cell's text when the cell is exactly one plain text
// token.
func plainText(c Cell) (string, bool) {
	if len(c) != 1 || c[0].Kind != markdown.KindText {
		return "", false
	}
	return c[0].Text, true
}
