package provider

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// OpenMarkdown renders Markdown into a synthetic document using goldmark.
// Heading levels map to synthetic font sizes and the heading hierarchy
// becomes the outline.
func OpenMarkdown(r io.Reader, filename string) (Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	title := strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown")
	b := newDocBuilder(title)

	titled := false
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			heading := string(node.Text(src))
			if !titled && node.Level == 1 {
				// The first top-level heading is a better title than the
				// filename.
				b.meta.Title = heading
				titled = true
			}
			b.Heading(node.Level, heading)
		default:
			if t := blockText(n, src); t != "" {
				b.Paragraph(t)
			}
		}
	}
	return b.Build(), nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	// Also handle inline children.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
