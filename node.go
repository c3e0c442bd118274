package mdhtml

import "fmt"

// Node is an element of the parsed document tree.
//
// Container kinds carry Children. NodeText and NodeCodeBlock keep their
// content in Text, NodeLink keeps its label in Text and its target in URL, and
// NodeHeading keeps its level in Level.
type Node struct {
	Kind     NodeKind
	Level    int
	Text     string
	URL      string
	Children []Node
}

// NodeKind identifies the variant of a Node.
type NodeKind uint8

const (
	NodeDocument NodeKind = iota
	NodeHeading
	NodeParagraph
	NodeBold
	NodeItalic
	NodeText
	NodeLink
	NodeUnorderedList
	NodeListItem
	NodeCodeBlock
)

var nodeKindNames = [...]string{
	NodeDocument:      "Document",
	NodeHeading:       "Heading",
	NodeParagraph:     "Paragraph",
	NodeBold:          "Bold",
	NodeItalic:        "Italic",
	NodeText:          "Text",
	NodeLink:          "Link",
	NodeUnorderedList: "UnorderedList",
	NodeListItem:      "ListItem",
	NodeCodeBlock:     "CodeBlock",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", uint8(k))
}

// IsInline reports whether nodes of this kind may appear inside headings,
// paragraphs, list items and emphasis.
func (k NodeKind) IsInline() bool {
	switch k {
	case NodeText, NodeLink, NodeBold, NodeItalic:
		return true
	}
	return false
}
