package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/dgallion1/docstruct/internal/structure"
)

// Gaps wider than this fraction of the font size split merged fragments into
// separate words.
const wordGapFactor = 0.3

// pdfDocument reads text runs through ledongthuc/pdf and the bookmark tree
// through pdfcpu, which resolves outline destinations to page numbers.
type pdfDocument struct {
	mu     sync.Mutex // the underlying reader is not safe for concurrent page access
	reader *pdflib.Reader
	data   []byte
	count  int
}

// OpenPDF reads all of r and opens it as a PDF document.
func OpenPDF(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &pdfDocument{reader: reader, data: data, count: reader.NumPage()}, nil
}

func (d *pdfDocument) Metadata(ctx context.Context) (structure.Metadata, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	info := d.reader.Trailer().Key("Info")
	if info.Kind() != pdflib.Dict {
		return structure.Metadata{}, nil
	}
	var meta structure.Metadata
	if v := info.Key("Title"); v.Kind() == pdflib.String {
		meta.Title = v.Text()
	}
	if v := info.Key("Author"); v.Kind() == pdflib.String {
		meta.Author = v.Text()
	}
	return meta, nil
}

// Outline returns the resolved bookmark tree. A document without bookmarks,
// or one whose outline pdfcpu cannot read, yields no outline rather than an
// error: the outline is an optional signal and the extractor has a fallback.
func (d *pdfDocument) Outline(ctx context.Context) ([]structure.OutlineNode, error) {
	bms, err := api.Bookmarks(bytes.NewReader(d.data), nil)
	if err != nil {
		return nil, nil
	}
	return bookmarkNodes(bms), nil
}

func bookmarkNodes(bms []pdfcpu.Bookmark) []structure.OutlineNode {
	if len(bms) == 0 {
		return nil
	}
	nodes := make([]structure.OutlineNode, 0, len(bms))
	for _, bm := range bms {
		nodes = append(nodes, structure.OutlineNode{
			Title:      bm.Title,
			PageNumber: bm.PageFrom,
			Items:      bookmarkNodes(bm.Kids),
		})
	}
	return nodes
}

func (d *pdfDocument) PageCount() int { return d.count }

func (d *pdfDocument) Page(ctx context.Context, pageNumber int) (page structure.Page, err error) {
	if err := ctx.Err(); err != nil {
		return structure.Page{}, err
	}
	if pageNumber < 1 || pageNumber > d.count {
		return structure.Page{}, fmt.Errorf("page %d out of range [1,%d]", pageNumber, d.count)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// The pdf library panics on some malformed content streams; surface that
	// as a provider failure instead of taking the process down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: malformed content: %v", pageNumber, r)
		}
	}()

	p := d.reader.Page(pageNumber)
	if p.V.IsNull() {
		return structure.NewPage(pageNumber, nil), nil
	}
	return structure.NewPage(pageNumber, mergeRuns(p.Content().Text)), nil
}

// mergeRuns joins the library's character/word fragments into line-level
// runs. Fragments merge while they share a font, size and baseline; a gap
// wider than wordGapFactor of the font size inserts a space.
func mergeRuns(texts []pdflib.Text) []structure.TextRun {
	var runs []structure.TextRun
	var cur *structure.TextRun
	var lastEnd float64

	flush := func() {
		if cur != nil && cur.Text != "" {
			runs = append(runs, *cur)
		}
		cur = nil
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		if cur != nil && t.Font == cur.FontName && t.FontSize == cur.FontSize && t.Y == cur.Y {
			if t.X-lastEnd > wordGapFactor*t.FontSize {
				cur.Text += " "
			}
			cur.Text += t.S
			cur.Width = t.X + t.W - cur.X
			lastEnd = t.X + t.W
			continue
		}
		flush()
		cur = &structure.TextRun{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			Height:   t.FontSize,
			FontSize: t.FontSize,
			FontName: t.Font,
		}
		lastEnd = t.X + t.W
	}
	flush()
	return runs
}
