package contextfile

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// tabularHeadLines caps how many leading lines of a tabular file reach the
// prompt, so large datasets do not flood the context window.
const tabularHeadLines = 10

var supportedExtensions = map[string]bool{
	".txt":      true,
	".log":      true,
	".md":       true,
	".markdown": true,
	".go":       true,
	".py":       true,
	".r":        true,
	".js":       true,
	".sh":       true,
	".sql":      true,
	".csv":      true,
	".tsv":      true,
}

var tabularExtensions = map[string]bool{
	".csv": true,
	".tsv": true,
}

// Load reads a context file for prompt assembly. The second return value is
// false ("unavailable") when the file does not exist, its extension is not
// supported, the read fails, or the bytes are not valid UTF-8. Unavailable
// files are silently excluded from the prompt, never reported as errors.
func Load(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(data) {
		return "", false
	}

	text := string(data)
	if tabularExtensions[ext] {
		text = headLines(text, tabularHeadLines)
	}
	return text, true
}

func headLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= n {
		return text
	}
	return strings.Join(lines[:n], "\n")
}
