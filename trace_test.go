package mdhtml

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDumpTokens(t *testing.T) {
	got := DumpTokens(Lex("# Hi\n- [a](b) **x**"))
	want := "Heading Level=1\n" +
		"Text \"Hi\"\n" +
		"NewLine\n" +
		"ListItemStart\n" +
		"Link Text=\"a\" URL=\"b\"\n" +
		"Text \" \"\n" +
		"BoldStart\n" +
		"Text \"x\"\n" +
		"BoldEnd"
	if got != want {
		t.Fatalf("DumpTokens mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
	if DumpTokens(nil) != "" {
		t.Fatalf("expected empty dump for no tokens")
	}
}

func TestDumpTree(t *testing.T) {
	got := DumpTree(Parse(Lex("# Hi\n- *a*\n```\nx\n```")))
	want := "Document\n" +
		"  Heading Level=1\n" +
		"    Text \"Hi\"\n" +
		"  UnorderedList\n" +
		"    ListItem\n" +
		"      Italic\n" +
		"        Text \"a\"\n" +
		"  CodeBlock \"x\\n\""
	if got != want {
		t.Fatalf("DumpTree mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestTrace(t *testing.T) {
	var out bytes.Buffer
	if err := Trace(TraceRequest{Reader: strings.NewReader("# Hi"), Writer: &out, Mode: TraceTokens}); err != nil {
		t.Fatalf("trace tokens: %v", err)
	}
	if want := "Heading Level=1\nText \"Hi\"\n"; out.String() != want {
		t.Fatalf("token trace\nwant: %q\n got: %q", want, out.String())
	}

	out.Reset()
	if err := Trace(TraceRequest{Reader: strings.NewReader("# Hi"), Writer: &out, Mode: TraceTree}); err != nil {
		t.Fatalf("trace tree: %v", err)
	}
	if want := "Document\n  Heading Level=1\n    Text \"Hi\"\n"; out.String() != want {
		t.Fatalf("tree trace\nwant: %q\n got: %q", want, out.String())
	}
}

func TestTraceMatchesConvertInput(t *testing.T) {
	src := "---\r\ntitle: Notes\r\n---\r\n# Hi\r\nthere"
	var out bytes.Buffer
	err := Trace(TraceRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Mode:    TraceTokens,
		Options: []RenderOption{WithFrontMatter(true)},
	})
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	want := "Heading Level=1\nText \"Hi\"\nNewLine\nText \"there\"\n"
	if out.String() != want {
		t.Fatalf("trace saw input Convert never processes\nwant: %q\n got: %q", want, out.String())
	}
}

func TestTraceErrors(t *testing.T) {
	if err := Trace(TraceRequest{Writer: &bytes.Buffer{}, Mode: TraceTokens}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Trace(TraceRequest{Reader: strings.NewReader("x"), Mode: TraceTokens}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if err := Trace(TraceRequest{Reader: strings.NewReader("x"), Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for missing mode")
	}
	err := Trace(TraceRequest{Reader: bytes.NewReader([]byte{0xff}), Writer: &bytes.Buffer{}, Mode: TraceTree})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}
