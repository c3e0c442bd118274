package mdhtml

import "strings"

// Lex splits input into tokens in a single left-to-right scan.
//
// Lex never fails. Malformed links come back as literal Text tokens and an
// unterminated code fence captures everything up to the end of input.
func Lex(input string) []Token {
	l := lexer{src: input}
	l.run()
	return l.tokens
}

// lexer holds the state of one Lex call. The emphasis toggles flip on every
// marker regardless of whether the surrounding structure balances.
type lexer struct {
	src    string
	pos    int
	tokens []Token
	bold   bool
	italic bool
}

const codeFence = "```"

func isSpecial(c byte) bool {
	switch c {
	case '#', '*', '\n', '[', '-', '`':
		return true
	}
	return false
}

func (l *lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)
}

func (l *lexer) peek() (byte, bool) {
	if l.pos < len(l.src) {
		return l.src[l.pos], true
	}
	return 0, false
}

func (l *lexer) run() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '#':
			l.lexHeading()
		case '*':
			l.lexEmphasis()
		case '`':
			l.lexBacktick()
		case '\n':
			l.pos++
			l.emit(Token{Kind: TokenNewLine})
		case '[':
			l.lexBracket()
		case '-':
			l.lexDash()
		default:
			l.lexText()
		}
	}
}

func (l *lexer) lexHeading() {
	level := 0
	for c, ok := l.peek(); ok && c == '#'; c, ok = l.peek() {
		level++
		l.pos++
	}
	if c, ok := l.peek(); ok && c == ' ' {
		l.pos++
	}
	l.emit(Token{Kind: TokenHeading, Level: level})
}

func (l *lexer) lexEmphasis() {
	l.pos++
	if c, ok := l.peek(); ok && c == '*' {
		l.pos++
		if l.bold {
			l.emit(Token{Kind: TokenBoldEnd})
		} else {
			l.emit(Token{Kind: TokenBoldStart})
		}
		l.bold = !l.bold
		return
	}
	if l.italic {
		l.emit(Token{Kind: TokenItalicEnd})
	} else {
		l.emit(Token{Kind: TokenItalicStart})
	}
	l.italic = !l.italic
}

func (l *lexer) lexBacktick() {
	if !strings.HasPrefix(l.src[l.pos:], codeFence) {
		l.pos++
		l.emit(textToken("`"))
		return
	}
	l.pos += len(codeFence)
	// The info string is dropped along with the rest of the opening line.
	if i := strings.IndexByte(l.src[l.pos:], '\n'); i >= 0 {
		l.pos += i + 1
	} else {
		l.pos = len(l.src)
	}
	body := l.src[l.pos:]
	end := strings.Index(body, codeFence)
	if end < 0 {
		l.pos = len(l.src)
		l.emit(Token{Kind: TokenCodeBlock, Text: body})
		return
	}
	l.pos += end + len(codeFence)
	l.emit(Token{Kind: TokenCodeBlock, Text: body[:end]})
}

// scanUntil returns the text from pos up to the delimiter, crossing line
// breaks. found reports whether delim was reached before the end of input; the
// delimiter itself is not consumed.
func (l *lexer) scanUntil(delim byte) (text string, found bool) {
	start := l.pos
	if i := strings.IndexByte(l.src[start:], delim); i >= 0 {
		l.pos = start + i
		return l.src[start:l.pos], true
	}
	l.pos = len(l.src)
	return l.src[start:], false
}

func (l *lexer) lexBracket() {
	l.pos++
	text, closed := l.scanUntil(']')
	if !closed {
		l.emit(textToken("["))
		l.emit(textToken(text))
		return
	}
	l.pos++
	if c, ok := l.peek(); !ok || c != '(' {
		l.emit(textToken("["))
		l.emit(textToken(text))
		l.emit(textToken("]"))
		return
	}
	l.pos++
	url, closed := l.scanUntil(')')
	if !closed {
		l.emit(textToken("["))
		l.emit(textToken(text))
		l.emit(textToken("]"))
		l.emit(textToken("("))
		l.emit(textToken(url))
		return
	}
	l.pos++
	l.emit(Token{Kind: TokenLink, Text: text, URL: url})
}

func (l *lexer) lexDash() {
	l.pos++
	if c, ok := l.peek(); ok && c == ' ' {
		l.pos++
		l.emit(Token{Kind: TokenListItemStart})
		return
	}
	l.emit(textToken("-"))
}

func (l *lexer) lexText() {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && !isSpecial(l.src[l.pos]) {
		l.pos++
	}
	l.emit(textToken(l.src[start:l.pos]))
}
