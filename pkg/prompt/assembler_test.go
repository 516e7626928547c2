package prompt

import (
	"strings"
	"testing"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
)

func fakeLoader(contents map[string]string) Loader {
	return func(path string) (string, bool) {
		text, ok := contents[path]
		return text, ok
	}
}

func TestAssembleNoFiles(t *testing.T) {
	a := NewAssembler(fakeLoader(nil))

	got := a.Assemble("base instruction", nil)
	if got != "base instruction" {
		t.Errorf("expected bare base instruction, got %q", got)
	}
}

func TestAssembleAllUnavailable(t *testing.T) {
	a := NewAssembler(fakeLoader(map[string]string{}))

	files := []domain.ContextFile{
		{DisplayName: "a.txt", SourcePath: "/tmp/a.txt"},
		{DisplayName: "b.csv", SourcePath: "/tmp/b.csv"},
	}

	got := a.Assemble("base instruction", files)
	if got != "base instruction" {
		t.Errorf("unavailable files must leave the base instruction untouched, got %q", got)
	}
}

func TestAssembleSkipsUnavailable(t *testing.T) {
	a := NewAssembler(fakeLoader(map[string]string{
		"/tmp/b.txt": "content b",
	}))

	files := []domain.ContextFile{
		{DisplayName: "a.txt", SourcePath: "/tmp/a.txt"},
		{DisplayName: "b.txt", SourcePath: "/tmp/b.txt"},
	}

	got := a.Assemble("base", files)

	if !strings.HasPrefix(got, "base\n\n") {
		t.Errorf("expected base instruction prefix, got %q", got)
	}
	if !strings.Contains(got, contextHeader) {
		t.Errorf("expected context header, got %q", got)
	}
	if !strings.Contains(got, "content b") {
		t.Errorf("expected surviving file content, got %q", got)
	}
	if strings.Contains(got, fileSeparator) {
		t.Errorf("single surviving file needs no separator, got %q", got)
	}
}

func TestAssemblePreservesTraversalOrder(t *testing.T) {
	a := NewAssembler(fakeLoader(map[string]string{
		"/tmp/first.txt":  "FIRST",
		"/tmp/second.txt": "SECOND",
		"/tmp/third.txt":  "THIRD",
	}))

	files := []domain.ContextFile{
		{DisplayName: "first.txt", SourcePath: "/tmp/first.txt"},
		{DisplayName: "second.txt", SourcePath: "/tmp/second.txt"},
		{DisplayName: "third.txt", SourcePath: "/tmp/third.txt"},
	}

	got := a.Assemble("base", files)

	iFirst := strings.Index(got, "FIRST")
	iSecond := strings.Index(got, "SECOND")
	iThird := strings.Index(got, "THIRD")
	if iFirst < 0 || iSecond < 0 || iThird < 0 {
		t.Fatalf("missing file content in %q", got)
	}
	if !(iFirst < iSecond && iSecond < iThird) {
		t.Errorf("file contents out of traversal order: %q", got)
	}
	if strings.Count(got, strings.TrimSpace(fileSeparator)) != 2 {
		t.Errorf("expected exactly two separators between three files, got %q", got)
	}
}

func TestAssembleSkipsEmptyContent(t *testing.T) {
	a := NewAssembler(fakeLoader(map[string]string{
		"/tmp/empty.txt": "",
	}))

	files := []domain.ContextFile{{DisplayName: "empty.txt", SourcePath: "/tmp/empty.txt"}}

	if got := a.Assemble("base", files); got != "base" {
		t.Errorf("empty content must not trigger the context section, got %q", got)
	}
}
