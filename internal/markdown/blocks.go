package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-newsroom/internal/blocks"
)

// BlocksFromMarkdown converts a Markdown body into an ordered block list.
// Headings, fenced code, lists, quotes, and thematic breaks map to their
// dedicated block types; everything else becomes a paragraph carrying the
// raw Markdown of its segment.
func BlocksFromMarkdown(body []byte) []blocks.Block {
	parser := goldmark.New().Parser()
	doc := parser.Parse(text.NewReader(body))

	var out []blocks.Block
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if block, ok := convertNode(node, body); ok {
			block.Order = len(out)
			block.ID = blocks.NewTempID()
			out = append(out, block)
		}
	}
	return out
}

func convertNode(node ast.Node, source []byte) (blocks.Block, bool) {
	switch n := node.(type) {
	case *ast.Heading:
		return blocks.Block{
			Type: blocks.TypeHeading,
			Data: blocks.HeadingData{
				Content: nodeText(n, source),
				Level:   n.Level,
			},
		}, true

	case *ast.FencedCodeBlock:
		return blocks.Block{
			Type: blocks.TypeCode,
			Data: blocks.CodeData{
				Content:  linesText(n, source),
				Language: string(n.Language(source)),
			},
		}, true

	case *ast.CodeBlock:
		return blocks.Block{
			Type: blocks.TypeCode,
			Data: blocks.CodeData{Content: linesText(n, source)},
		}, true

	case *ast.List:
		style := "bullet"
		if n.IsOrdered() {
			style = "ordered"
		}
		var items []string
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			items = append(items, nodeText(item, source))
		}
		return blocks.Block{
			Type: blocks.TypeList,
			Data: blocks.ListData{Style: style, Items: items},
		}, true

	case *ast.Blockquote:
		return blocks.Block{
			Type: blocks.TypeQuote,
			Data: blocks.QuoteData{Content: nodeText(n, source)},
		}, true

	case *ast.ThematicBreak:
		return blocks.Block{
			Type: blocks.TypeDivider,
			Data: blocks.DividerData{},
		}, true

	case *ast.HTMLBlock:
		return blocks.Block{
			Type: blocks.TypeHTML,
			Data: blocks.HTMLData{Content: linesText(n, source)},
		}, true

	case *ast.Paragraph:
		// A paragraph that is just one image becomes an image block.
		if image, ok := soleImage(n); ok {
			return blocks.Block{
				Type: blocks.TypeImage,
				Data: blocks.ImageData{
					URL: string(image.Destination),
					Alt: nodeText(image, source),
				},
			}, true
		}
		content := strings.TrimSpace(linesText(n, source))
		if content == "" {
			return blocks.Block{}, false
		}
		return blocks.Block{
			Type: blocks.TypeParagraph,
			Data: blocks.ParagraphData{Content: content},
		}, true
	}

	return blocks.Block{}, false
}

func soleImage(paragraph *ast.Paragraph) (*ast.Image, bool) {
	if paragraph.ChildCount() != 1 {
		return nil, false
	}
	image, ok := paragraph.FirstChild().(*ast.Image)
	return image, ok
}

func linesText(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	collectText(node, source, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(node ast.Node, source []byte, sb *strings.Builder) {
	switch n := node.(type) {
	case *ast.Text:
		sb.Write(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			sb.WriteByte(' ')
		}
		return
	case *ast.String:
		sb.Write(n.Value)
		return
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		collectText(child, source, sb)
	}
}
