package mdhtml

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"heading", head(1, txt("Test")), "<h1>Test</h1>"},
		{"paragraph", para(txt("This is "), bold(txt("bold")), txt(".")), "<p>This is <strong>bold</strong>.</p>"},
		{"document", doc(head(1, txt("Title")), para(txt("Content."))), "<h1>Title</h1>\n<p>Content.</p>"},
		{"text", txt("Text Data"), "Text Data"},
		{"inline children", para(txt("a"), italic(txt("b")), bold(txt("c"))), "<p>a<em>b</em><strong>c</strong></p>"},
		{"link", link("github", "https://github.com/golang"), `<a href="https://github.com/golang">github</a>`},
		{"link text escaped", link("a<b>", "u"), `<a href="u">a&lt;b&gt;</a>`},
		{"link url verbatim", link("x", `a"b<c>&d`), `<a href="a"b<c>&d">x</a>`},
		{"list", doc(ul(li(txt("item one")), li(txt("item two")))), "<ul>\n<li>item one</li>\n<li>item two</li>\n</ul>"},
		{"code block escaped", code("if a < b && c > d {\n"), "<pre><code>if a &lt; b &amp;&amp; c &gt; d {\n</code></pre>"},
		{"text escaping", para(txt("<script>")), "<p>&lt;script&gt;</p>"},
		{"empty document", doc(), ""},
		{"heading level seven", head(7, txt("deep")), "<h7>deep</h7>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderHTML(tc.node); got != tc.want {
				t.Fatalf("RenderHTML mismatch\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}

func TestEscapeIsSinglePass(t *testing.T) {
	cases := map[string]string{
		"<":    "&lt;",
		"&":    "&amp;",
		">":    "&gt;",
		"&lt;": "&amp;lt;",
		"a&<b": "a&amp;&lt;b",
	}
	for in, want := range cases {
		if got := RenderHTML(txt(in)); got != want {
			t.Fatalf("RenderHTML(Text(%q)) = %q want %q", in, got, want)
		}
	}
}

func TestToHTMLHeadingLevels(t *testing.T) {
	for level := 1; level <= 8; level++ {
		marks := strings.Repeat("#", level)
		got := ToHTML(marks + " Title")
		want := "<h" + string(rune('0'+level)) + ">Title</h" + string(rune('0'+level)) + ">"
		if got != want {
			t.Fatalf("level %d: got %q want %q", level, got, want)
		}
	}
}

func TestToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold",
			input: "**bold**",
			want:  "<p><strong>bold</strong></p>",
		},
		{
			name:  "unmatched bold extends to line end",
			input: "**bold",
			want:  "<p><strong>bold</strong></p>",
		},
		{
			name:  "italic inside bold",
			input: "**bold and *italic***",
			want:  "<p><strong>bold and <em>italic</em></strong></p>",
		},
		{
			name:  "link",
			input: "[a](b)",
			want:  `<p><a href="b">a</a></p>`,
		},
		{
			name:  "unterminated link",
			input: "[a](b",
			want:  "<p>[a](b</p>",
		},
		{
			name:  "link text spans lines",
			input: "[see\nnext](url)",
			want:  "<p><a href=\"url\">see\nnext</a></p>",
		},
		{
			name:  "link target spans lines",
			input: "[a](b\nc)",
			want:  "<p><a href=\"b\nc\">a</a></p>",
		},
		{
			name:  "unclosed bracket keeps the rest literal",
			input: "[open **x**\nmore",
			want:  "<p>[open **x**\nmore</p>",
		},
		{
			name:  "list",
			input: "- first item\n- second item",
			want:  "<ul>\n<li>first item</li>\n<li>second item</li>\n</ul>",
		},
		{
			name:  "list then paragraph",
			input: "- a\n- b\nafter",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n<p>after</p>",
		},
		{
			name:  "list split by blank line",
			input: "- a\n\n- b",
			want:  "<ul>\n<li>a</li>\n</ul>\n<ul>\n<li>b</li>\n</ul>",
		},
		{
			name:  "code example",
			input: "# Code Example\n\nHere is a block:\n\n```rust\nfn example() -> bool {\n    true\n}\n```\n\nThat was it.",
			want:  "<h1>Code Example</h1>\n<p>Here is a block:</p>\n<pre><code>fn example() -&gt; bool {\n    true\n}\n</code></pre>\n<p>That was it.</p>",
		},
		{
			name:  "unterminated fence",
			input: "text\n```\n<raw>",
			want:  "<p>text</p>\n<pre><code>&lt;raw&gt;</code></pre>",
		},
		{
			name:  "escaping in paragraph",
			input: "1 < 2 & 3 > 2",
			want:  "<p>1 &lt; 2 &amp; 3 &gt; 2</p>",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only blank lines",
			input: "\n\n\n",
			want:  "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ToHTML(tc.input)); diff != "" {
				t.Errorf("ToHTML(%q) diff (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestRenderHTMLEscapedURLs(t *testing.T) {
	n := link("x", `a"b<c>&d`)
	got := renderHTML(n, renderConfig{escapeURLs: true})
	want := `<a href="a&quot;b&lt;c&gt;&amp;d">x</a>`
	if got != want {
		t.Fatalf("escaped href mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestStandaloneDocument(t *testing.T) {
	got := standaloneDocument("A & B", "<p>x</p>")
	want := "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>A &amp; B</title>\n</head>\n<body>\n<p>x</p>\n</body>\n</html>"
	if got != want {
		t.Fatalf("standalone mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestToHTMLConcurrent(t *testing.T) {
	inputs := []string{"**a** *b*", "- x\n- y", "# h\n```\nc\n```"}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = ToHTML(in)
	}
	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				idx := i % len(inputs)
				if got := ToHTML(inputs[idx]); got != want[idx] {
					t.Errorf("concurrent ToHTML(%q) = %q want %q", inputs[idx], got, want[idx])
					return
				}
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
