package prompt

import (
	"strings"

	"github.com/vchernov/ollama-dashboard/pkg/contextfile"
	"github.com/vchernov/ollama-dashboard/pkg/domain"
)

const (
	contextHeader = "The user attached the following files as context for this conversation:"

	// fileSeparator marks the boundary between two file contents. It is
	// distinct enough not to occur in ordinary file content, so the model
	// never has to guess where one file ends and the next begins.
	fileSeparator = "\n\n========================================\n\n"
)

// Loader reads a context file, reporting false when it is unavailable.
type Loader func(path string) (string, bool)

type Assembler struct {
	load Loader
}

// NewAssembler builds a prompt assembler. A nil loader falls back to
// contextfile.Load.
func NewAssembler(load Loader) *Assembler {
	if load == nil {
		load = contextfile.Load
	}
	return &Assembler{load: load}
}

// Assemble produces the system-role string for one turn: the base
// instruction, followed by a delimited context section only when at least one
// file yields non-empty content. Unavailable files are silently skipped; if
// every file is unavailable the base instruction is returned exactly.
//
// Traversal order contract: files are read in the order of the supplied
// slice, which the context-file repository fixes as insertion order. The
// transcript depends on this ordering staying stable.
func (a *Assembler) Assemble(base string, files []domain.ContextFile) string {
	var parts []string
	for _, f := range files {
		content, ok := a.load(f.SourcePath)
		if !ok || content == "" {
			continue
		}
		parts = append(parts, content)
	}

	if len(parts) == 0 {
		return base
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\n\n")
	sb.WriteString(contextHeader)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(parts, fileSeparator))
	return sb.String()
}
