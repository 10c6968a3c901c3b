package testutil

import (
	"strings"
	"testing"
)

func TestDiffMarksChangedLines(t *testing.T) {
	out := Diff("one\ntwo\n", "one\nthree\n")
	if !strings.Contains(out, "two") || !strings.Contains(out, "three") {
		t.Fatalf("expected both sides in diff, got %q", out)
	}
}

func TestAssertGoldenMatches(t *testing.T) {
	AssertGolden(t, "sample.golden", "sample\n")
}
