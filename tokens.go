package mdhtml

import (
	"fmt"
	"strings"
)

// Token is one lexical unit produced by Lex.
//
// Only the fields relevant to Kind are set: Level for TokenHeading, Text for
// TokenText, TokenCodeBlock and TokenLink, URL for TokenLink.
type Token struct {
	Kind  TokenKind
	Level int
	Text  string
	URL   string
}

// TokenKind identifies the variant of a Token.
type TokenKind uint8

const (
	// TokenText is a run of characters without markup meaning.
	TokenText TokenKind = iota
	// TokenHeading is a run of '#' characters; Level holds the count.
	TokenHeading
	// TokenBoldStart opens a "**" span.
	TokenBoldStart
	// TokenBoldEnd closes a "**" span.
	TokenBoldEnd
	// TokenItalicStart opens a "*" span.
	TokenItalicStart
	// TokenItalicEnd closes a "*" span.
	TokenItalicEnd
	// TokenNewLine is a line separator and the block boundary.
	TokenNewLine
	// TokenLink is a complete [text](url) form.
	TokenLink
	// TokenListItemStart is "- ".
	TokenListItemStart
	// TokenCodeBlock carries the verbatim body of a fenced code block.
	TokenCodeBlock
)

var tokenKindNames = [...]string{
	TokenText:          "Text",
	TokenHeading:       "Heading",
	TokenBoldStart:     "BoldStart",
	TokenBoldEnd:       "BoldEnd",
	TokenItalicStart:   "ItalicStart",
	TokenItalicEnd:     "ItalicEnd",
	TokenNewLine:       "NewLine",
	TokenLink:          "Link",
	TokenListItemStart: "ListItemStart",
	TokenCodeBlock:     "CodeBlock",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Kind.String())
	switch t.Kind {
	case TokenHeading:
		fmt.Fprintf(&b, " Level=%d", t.Level)
	case TokenText, TokenCodeBlock:
		fmt.Fprintf(&b, " %q", t.Text)
	case TokenLink:
		fmt.Fprintf(&b, " Text=%q URL=%q", t.Text, t.URL)
	}
	return b.String()
}

func textToken(s string) Token {
	return Token{Kind: TokenText, Text: s}
}
