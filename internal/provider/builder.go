package provider

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docstruct/internal/structure"
)

// Synthetic font signatures for formats without real typography. Level-1
// headings sit above the chapter-title threshold, level-2 above the
// section-heading threshold, body text below both.
const (
	syntheticBodySize = 11.0
	syntheticBodyFont = "Synthetic-Body"

	pageMarginX     = 72.0
	lineHeight      = 1.4
	pageCharBudget  = 2000 // body characters before a synthetic page break
	approxCharWidth = 0.5  // width as a fraction of font size, per character
)

func headingFontSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 16
	case 3:
		return 13
	default:
		return syntheticBodySize
	}
}

// outlineNode is the mutable build-time form of structure.OutlineNode.
// Pointers keep parent links stable while children are appended.
type outlineNode struct {
	title string
	page  int
	items []*outlineNode
}

// docBuilder renders heading-structured content into synthetic pages plus a
// resolved outline. Level-1 and level-2 headings open a new page, so chapter
// and section heuristics see the same page-aligned signals a rendered
// document would give them.
type docBuilder struct {
	meta  structure.Metadata
	pages []structure.Page

	runs      []structure.TextRun
	y         float64
	bodyChars int

	roots []*outlineNode
	trail []*outlineNode
}

func newDocBuilder(title string) *docBuilder {
	return &docBuilder{meta: structure.Metadata{Title: title}}
}

// Heading appends a heading run at the synthetic size for level (1-based)
// and records it in the outline.
func (b *docBuilder) Heading(level int, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if level < 1 {
		level = 1
	}
	if level <= 2 {
		b.flushPage()
	}
	b.addRun(text, headingFontSize(level), fmt.Sprintf("Synthetic-Heading-%d", level))

	node := &outlineNode{title: text, page: len(b.pages) + 1}
	depth := level - 1
	if depth > len(b.trail) {
		depth = len(b.trail)
	}
	b.trail = b.trail[:depth]
	if len(b.trail) == 0 {
		b.roots = append(b.roots, node)
	} else {
		parent := b.trail[len(b.trail)-1]
		parent.items = append(parent.items, node)
	}
	b.trail = append(b.trail, node)
}

// Paragraph appends body text, breaking the page when the body budget is
// exhausted so heading-less documents still paginate.
func (b *docBuilder) Paragraph(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if b.bodyChars > 0 && b.bodyChars+len(text) > pageCharBudget {
		b.flushPage()
	}
	b.addRun(text, syntheticBodySize, syntheticBodyFont)
	b.bodyChars += len(text)
}

func (b *docBuilder) addRun(text string, size float64, font string) {
	b.runs = append(b.runs, structure.TextRun{
		Text:     text,
		X:        pageMarginX,
		Y:        b.y,
		Width:    float64(len(text)) * size * approxCharWidth,
		Height:   size,
		FontSize: size,
		FontName: font,
	})
	b.y += size * lineHeight
}

func (b *docBuilder) flushPage() {
	if len(b.runs) == 0 {
		return
	}
	b.pages = append(b.pages, structure.NewPage(len(b.pages)+1, b.runs))
	b.runs = nil
	b.y = 0
	b.bodyChars = 0
}

// Build seals the builder into a Document.
func (b *docBuilder) Build() Document {
	b.flushPage()
	return &memoryDocument{
		meta:    b.meta,
		outline: convertOutline(b.roots),
		pages:   b.pages,
	}
}

func convertOutline(nodes []*outlineNode) []structure.OutlineNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]structure.OutlineNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, structure.OutlineNode{
			Title:      n.title,
			PageNumber: n.page,
			Items:      convertOutline(n.items),
		})
	}
	return out
}
