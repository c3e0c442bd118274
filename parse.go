package mdhtml

// Parse builds a document tree from a token sequence produced by Lex.
//
// Blocks are split on TokenNewLine and classified by their first token only.
// Code blocks stand on their own regardless of the surrounding lines.
func Parse(tokens []Token) Node {
	var blocks []Node
	i := 0
	for i < len(tokens) {
		if tokens[i].Kind == TokenCodeBlock {
			blocks = append(blocks, Node{Kind: NodeCodeBlock, Text: tokens[i].Text})
			i++
			continue
		}
		end := lineEnd(tokens, i)
		line := tokens[i:end]
		switch {
		case len(line) == 0:
		case line[0].Kind == TokenHeading:
			blocks = append(blocks, Node{
				Kind:     NodeHeading,
				Level:    line[0].Level,
				Children: parseInlines(line[1:]),
			})
		case line[0].Kind == TokenListItemStart:
			var list Node
			list, i = parseList(tokens, i)
			blocks = append(blocks, list)
			continue
		default:
			blocks = append(blocks, Node{Kind: NodeParagraph, Children: parseInlines(line)})
		}
		i = end + 1
	}
	return Node{Kind: NodeDocument, Children: blocks}
}

// lineEnd returns the index of the next TokenNewLine at or after start, or
// len(tokens) when the line runs to the end.
func lineEnd(tokens []Token, start int) int {
	for i := start; i < len(tokens); i++ {
		if tokens[i].Kind == TokenNewLine {
			return i
		}
	}
	return len(tokens)
}

// parseList collects consecutive list item lines starting at i. A blank line
// ends the list and is consumed; any other line ends it and is left for the
// caller.
func parseList(tokens []Token, i int) (Node, int) {
	list := Node{Kind: NodeUnorderedList}
	for i < len(tokens) {
		end := lineEnd(tokens, i)
		line := tokens[i:end]
		if len(line) == 0 {
			i = end + 1
			break
		}
		if line[0].Kind != TokenListItemStart {
			break
		}
		list.Children = append(list.Children, Node{Kind: NodeListItem, Children: parseInlines(line[1:])})
		i = end + 1
	}
	return list, i
}

// parseInlines turns one line of tokens into inline nodes. Emphasis runs to
// the first matching end marker, or to the end of the slice when there is
// none; other start markers in between do not affect the search.
func parseInlines(tokens []Token) []Node {
	var nodes []Node
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case TokenText:
			nodes = append(nodes, Node{Kind: NodeText, Text: tok.Text})
			i++
		case TokenLink:
			nodes = append(nodes, Node{Kind: NodeLink, Text: tok.Text, URL: tok.URL})
			i++
		case TokenBoldStart:
			var n Node
			n, i = parseSpan(tokens, i+1, NodeBold, TokenBoldEnd)
			nodes = append(nodes, n)
		case TokenItalicStart:
			var n Node
			n, i = parseSpan(tokens, i+1, NodeItalic, TokenItalicEnd)
			nodes = append(nodes, n)
		default:
			// Stray structural tokens carry no inline meaning.
			i++
		}
	}
	return nodes
}

func parseSpan(tokens []Token, start int, kind NodeKind, closer TokenKind) (Node, int) {
	end := len(tokens)
	for j := start; j < len(tokens); j++ {
		if tokens[j].Kind == closer {
			end = j
			break
		}
	}
	n := Node{Kind: kind, Children: parseInlines(tokens[start:end])}
	if end < len(tokens) {
		end++
	}
	return n, end
}
