// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"testing"

	diff "github.com/shogoki/gotextdiff"
)

// RequireEqual fails the test when got differs from want, printing a unified
// diff. Multi-line markdown mismatches read much better as a diff than as
// two quoted strings.
func RequireEqual(t *testing.T, label, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	d := diff.Diff(label+"/want", []byte(want), label+"/got", []byte(got))
	t.Fatalf("%s differs from expected (-want +got):\n%s", label, d)
}
