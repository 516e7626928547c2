package contextfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantText string
		wantOK   bool
	}{
		{"plain text", writeFile(t, dir, "notes.txt", "hello"), "hello", true},
		{"markdown", writeFile(t, dir, "doc.md", "# title"), "# title", true},
		{"source", writeFile(t, dir, "script.r", "x <- 1"), "x <- 1", true},
		{"unsupported extension", writeFile(t, dir, "archive.zip", "junk"), "", false},
		{"missing file", filepath.Join(dir, "nope.txt"), "", false},
		{"invalid utf8", writeFile(t, dir, "bin.txt", string([]byte{0xff, 0xfe, 0x01})), "", false},
	}

	for _, test := range tests {
		text, ok := Load(test.path)

		if ok != test.wantOK || text != test.wantText {
			t.Errorf("%s: expected (%q, %v), got (%q, %v)",
				test.name, test.wantText, test.wantOK, text, ok)
		}
	}
}

func TestLoadTabularTruncation(t *testing.T) {
	dir := t.TempDir()

	var rows []string
	for i := 0; i < 25; i++ {
		rows = append(rows, fmt.Sprintf("col1,col2,%d", i))
	}
	path := writeFile(t, dir, "data.csv", strings.Join(rows, "\n"))

	text, ok := Load(path)
	if !ok {
		t.Fatal("expected csv to load")
	}

	got := strings.Split(text, "\n")
	if len(got) != tabularHeadLines {
		t.Errorf("expected %d lines, got %d", tabularHeadLines, len(got))
	}
	if got[0] != "col1,col2,0" || got[len(got)-1] != "col1,col2,9" {
		t.Errorf("unexpected head content: %v", got)
	}
}

func TestLoadShortTabular(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "small.csv", "a,b\n1,2")

	text, ok := Load(path)
	if !ok || text != "a,b\n1,2" {
		t.Errorf("short tabular files should pass through whole, got (%q, %v)", text, ok)
	}
}
