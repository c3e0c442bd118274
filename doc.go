// Package mdhtml converts a small subset of Markdown to HTML.
//
// The conversion is a three stage pipeline: Lex turns input text into
// tokens, Parse builds a document tree from the tokens and RenderHTML
// serializes the tree. ToHTML runs all three and is a pure function of its
// input.
//
// Supported syntax:
//   - ATX headings ("# Title", any number of '#')
//   - **bold** and *italic* emphasis
//   - inline links [text](url)
//   - unordered list items "- item" on consecutive lines
//   - fenced code blocks delimited by ```
//
// Every other line is a paragraph. Nothing is ever rejected: malformed
// constructs are kept as literal text, unmatched emphasis runs to the end of
// its line and an unterminated fence runs to the end of input. Emphasis
// markers alternate between open and close by position and are not matched
// structurally, so overlapping bold and italic produce surprising trees.
//
// Example:
//
//	html := mdhtml.ToHTML("# Hello\n\nMarkup in, **HTML** out.")
//	// <h1>Hello</h1>
//	// <p>Markup in, <strong>HTML</strong> out.</p>
//
// Convert and HTTPConvert wrap the pipeline with input validation and
// RenderOption settings, and RenderTerminal renders the same tree as ANSI
// text for previews.
package mdhtml
