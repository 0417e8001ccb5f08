package export

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// BlockKind classifies a rendered block of item content.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
)

// Block is one flattened unit of markdown content. Inline styling is
// dropped; exports carry the text and the block structure only.
type Block struct {
	Kind  BlockKind
	Level int // heading level, or list nesting depth for bullets
	Text  string
}

// ParseBlocks flattens generated markdown into export blocks. Generated
// content is markdown by convention; plain text degrades to one paragraph
// per line group.
func ParseBlocks(markdown string) []Block {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var blocks []Block

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: node.Level,
				Text:  inlineText(node, source),
			})
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			// Keep walking: a nested list under this item emits its own
			// bullets one level deeper.
			blocks = append(blocks, Block{
				Kind:  BlockBullet,
				Level: listDepth(node),
				Text:  inlineText(node, source),
			})
			return ast.WalkContinue, nil

		case *ast.Paragraph:
			// Paragraphs inside list items are handled by the item itself.
			if insideListItem(node) {
				return ast.WalkSkipChildren, nil
			}
			blocks = append(blocks, Block{
				Kind: BlockParagraph,
				Text: inlineText(node, source),
			})
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return blocks
}

// inlineText collects the plain text under a node, joining soft breaks
// with spaces.
func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	collectText(n, source, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n ast.Node, source []byte, sb *strings.Builder) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.List:
			// A nested list belongs to its own items, not to this one.
		default:
			collectText(child, source, sb)
		}
	}
}

func listDepth(item *ast.ListItem) int {
	depth := 0
	for p := item.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.List); ok {
			depth++
		}
	}
	return depth
}

func insideListItem(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			return true
		}
	}
	return false
}
