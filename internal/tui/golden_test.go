package tui

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var updateGolden = flag.Bool("update-golden", false, "update golden files")

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*[a-zA-Z]")

// stripANSI removes ANSI escape codes from a string for comparison.
// This allows golden tests to focus on content rather than styling.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// normalizeGolden strips styling, trailing whitespace on each line and
// trailing newlines. lipgloss pads joined blocks to a common width, which
// is layout noise for content comparisons.
func normalizeGolden(s string) string {
	lines := strings.Split(stripANSI(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// GoldenTest compares rendered output against a golden file.
// If updateGolden is true, writes the golden file instead.
func GoldenTest(t *testing.T, name string, got string) {
	t.Helper()

	normalized := normalizeGolden(got)
	goldenPath := filepath.Join("testdata", "golden", name+".golden")

	if *updateGolden {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("failed to create golden directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(normalized+"\n"), 0644); err != nil {
			t.Fatalf("failed to write golden file: %v", err)
		}
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v (run with -update-golden to create)", goldenPath, err)
	}

	wantStr := normalizeGolden(string(want))
	if wantStr != normalized {
		t.Errorf("golden output mismatch for %s", name)
		t.Logf("\n--- WANT (golden)\n+++ GOT (actual)\n%s", diffOutput(wantStr, normalized))
		t.Logf("To update golden file: go test -update-golden -run %s", t.Name())
	}
}

// diffOutput generates a unified diff-like output for comparing strings.
func diffOutput(want, got string) string {
	wantLines := strings.Split(want, "\n")
	gotLines := strings.Split(got, "\n")

	maxLines := len(wantLines)
	if len(gotLines) > maxLines {
		maxLines = len(gotLines)
	}

	var buf bytes.Buffer
	for i := 0; i < maxLines; i++ {
		wantLine := ""
		gotLine := ""
		if i < len(wantLines) {
			wantLine = wantLines[i]
		}
		if i < len(gotLines) {
			gotLine = gotLines[i]
		}

		if wantLine != gotLine {
			if i < len(wantLines) {
				buf.WriteString("--- ")
				buf.WriteString(wantLine)
				buf.WriteString("\n")
			}
			if i < len(gotLines) {
				buf.WriteString("+++ ")
				buf.WriteString(gotLine)
				buf.WriteString("\n")
			}
		}
	}

	return buf.String()
}
