package render

import (
	"strings"
	"testing"
)

func TestSplitParity(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantKinds []SegmentKind
	}{
		{"no fences", "plain text", []SegmentKind{SegmentProse}},
		{"one pair", "a```code```b", []SegmentKind{SegmentProse, SegmentCode, SegmentProse}},
		{"unterminated", "a```rest", []SegmentKind{SegmentProse, SegmentCode}},
		{"trailing fence", "a```", []SegmentKind{SegmentProse, SegmentCode}},
		{"leading fence", "```code```", []SegmentKind{SegmentProse, SegmentCode, SegmentProse}},
		{"two pairs", "a```b```c```d```e", []SegmentKind{SegmentProse, SegmentCode, SegmentProse, SegmentCode, SegmentProse}},
	}

	for _, test := range tests {
		segments := Split(test.reply)

		if len(segments) != len(test.wantKinds) {
			t.Errorf("%s: expected %d segments, got %d", test.name, len(test.wantKinds), len(segments))
			continue
		}
		for i, seg := range segments {
			if seg.Kind != test.wantKinds[i] {
				t.Errorf("%s: segment %d: expected kind %v, got %v", test.name, i, test.wantKinds[i], seg.Kind)
			}
		}
	}
}

// Joining the split segments back with the fence marker must reproduce the
// original reply exactly, whatever the input.
func TestSplitRoundTrip(t *testing.T) {
	replies := []string{
		"",
		"no fences at all",
		"``` lonely",
		"a```b```c",
		"```",
		"``````",
		"text ```r\nx <- 1\n``` more ```py\nprint(1)\n``` end",
	}

	for _, reply := range replies {
		segments := Split(reply)

		texts := make([]string, 0, len(segments))
		for _, seg := range segments {
			texts = append(texts, seg.Text)
		}

		if got := strings.Join(texts, "```"); got != reply {
			t.Errorf("round trip mismatch: expected %q, got %q", reply, got)
		}
	}
}

func TestRenderProseSubstitutionOrder(t *testing.T) {
	got := renderProse("**a** *b* `c`\nd")
	want := "<b>a</b> <i>b</i> <code>c</code><br>d"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderProseTripleMarkers(t *testing.T) {
	// Bold runs before italic, so the bold pair claims its markers first and
	// the leftovers resolve as an italic pair. The order of the two passes is
	// fixed; swapping them would produce a different (ambiguous) result.
	got := renderProse("***x***")
	want := "<b><i>x</b></i>"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEscapeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x <- 1", "x &lt;- 1"},
		{"a < b > c", "a &lt; b &gt; c"},
		{"<html>", "&lt;html&gt;"},
		{"no specials", "no specials"},
	}

	for _, test := range tests {
		got := EscapeCode(test.in)
		if got != test.want {
			t.Errorf("EscapeCode(%q): expected %q, got %q", test.in, test.want, got)
		}
		if strings.ContainsAny(got, "<>") {
			t.Errorf("EscapeCode(%q): literal angle bracket survived: %q", test.in, got)
		}
		if back := UnescapeCode(got); back != test.in {
			t.Errorf("UnescapeCode(EscapeCode(%q)): expected original, got %q", test.in, back)
		}
	}
}

func TestSplitLanguage(t *testing.T) {
	tests := []struct {
		in          string
		wantLang    string
		wantContent string
	}{
		{"r\nx <- 1", "r", "x <- 1"},
		{"Python\nprint(1)", "python", "print(1)"},
		{"x <- 1\nprint(x)", "python", "x <- 1\nprint(x)"},
		{"bash2\necho hi", "python", "bash2\necho hi"},
		{"sql", "sql", ""},
		{"", "python", ""},
	}

	for _, test := range tests {
		lang, content := splitLanguage(test.in)
		if lang != test.wantLang || content != test.wantContent {
			t.Errorf("splitLanguage(%q): expected (%q, %q), got (%q, %q)",
				test.in, test.wantLang, test.wantContent, lang, content)
		}
	}
}

func TestToHTMLEndToEnd(t *testing.T) {
	reply := "Use this:\n```r\nx <- 1\nprint(x)\n```\nDone."
	got := ToHTML(reply)

	wantParts := []string{
		"Use this:<br>",
		`<span class="code-lang">r</span>`,
		`<code class="language-r">x &lt;- 1` + "\n" + `print(x)` + "\n" + `</code>`,
		"<br>Done.",
		`<button class="copy-btn"`,
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("expected rendered output to contain %q, got %q", part, got)
		}
	}
}

func TestToHTMLUnterminatedFence(t *testing.T) {
	got := ToHTML("look:```py\nx = 1")

	if !strings.Contains(got, `<code class="language-py">x = 1</code>`) {
		t.Errorf("everything after an unterminated fence should render as code, got %q", got)
	}
}
