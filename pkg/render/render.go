package render

import (
	"fmt"
	"regexp"
	"strings"
)

// fenceMarker delimits code segments inside a model reply.
const fenceMarker = "```"

// defaultLanguage is used when a code segment carries no language tag.
const defaultLanguage = "python"

type SegmentKind int

const (
	SegmentProse SegmentKind = iota
	SegmentCode
)

// Segment is a contiguous prose or code substring of a reply.
type Segment struct {
	Kind SegmentKind
	Text string
}

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
	codeRe   = regexp.MustCompile("`([^`]*)`")
	langRe   = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Split cuts a reply on the fence marker. Segments at even positions are
// prose, segments at odd positions are code. Fences are assumed to alternate
// strictly: an unterminated trailing fence means everything after it is one
// code segment, and a reply ending in a fence yields an empty trailing code
// segment. Joining the segment texts back with the marker reproduces the
// input exactly.
func Split(reply string) []Segment {
	parts := strings.Split(reply, fenceMarker)

	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		kind := SegmentProse
		if i%2 == 1 {
			kind = SegmentCode
		}
		segments = append(segments, Segment{Kind: kind, Text: part})
	}
	return segments
}

// ToHTML renders a raw model reply into an HTML fragment suitable for direct
// injection into the transcript: prose with inline markdown substitutions,
// code as self-contained blocks with a language tag and a copy control.
func ToHTML(reply string) string {
	var sb strings.Builder
	for _, seg := range Split(reply) {
		if seg.Kind == SegmentCode {
			sb.WriteString(renderCode(seg.Text))
		} else {
			sb.WriteString(renderProse(seg.Text))
		}
	}
	return sb.String()
}

// renderProse applies the inline substitutions in a fixed order: bold pairs
// first so that *** resolves as bold-then-italic, then italic, then inline
// code spans, then literal newlines. The segment stays one flowing block.
func renderProse(text string) string {
	text = boldRe.ReplaceAllString(text, "<b>$1</b>")
	text = italicRe.ReplaceAllString(text, "<i>$1</i>")
	text = codeRe.ReplaceAllString(text, "<code>$1</code>")
	text = strings.ReplaceAll(text, "\n", "<br>")
	return text
}

// renderCode wraps a code segment in a block with a language label and a copy
// button. The first line is the language tag when it is purely alphabetic;
// otherwise the language falls back to defaultLanguage and the whole segment
// is content.
func renderCode(text string) string {
	lang, content := splitLanguage(text)
	escaped := EscapeCode(content)

	return fmt.Sprintf(`<div class="code-block">`+
		`<div class="code-block-header"><span class="code-lang">%s</span>`+
		`<button class="copy-btn" type="button">Copy</button></div>`+
		`<pre><code class="language-%s">%s</code></pre></div>`,
		lang, lang, escaped)
}

func splitLanguage(text string) (lang, content string) {
	firstLine := text
	rest := ""
	if i := strings.Index(text, "\n"); i >= 0 {
		firstLine, rest = text[:i], text[i+1:]
	}

	if tag := strings.TrimSpace(firstLine); langRe.MatchString(tag) {
		return strings.ToLower(tag), rest
	}
	return defaultLanguage, text
}

// EscapeCode neutralizes HTML-reserved characters in code content, replacing
// "<" before ">" so no entity is escaped twice. Whitespace and newlines pass
// through verbatim.
func EscapeCode(content string) string {
	content = strings.ReplaceAll(content, "<", "&lt;")
	content = strings.ReplaceAll(content, ">", "&gt;")
	return content
}

// UnescapeCode is the inverse of EscapeCode, used by the copy control path.
func UnescapeCode(content string) string {
	content = strings.ReplaceAll(content, "&gt;", ">")
	content = strings.ReplaceAll(content, "&lt;", "<")
	return content
}
