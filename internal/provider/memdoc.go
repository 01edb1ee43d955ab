package provider

import (
	"context"
	"fmt"

	"github.com/dgallion1/docstruct/internal/structure"
)

// memoryDocument serves pre-rendered pages, metadata and outline wholly from
// memory. All the synthetic-format adapters build one of these.
type memoryDocument struct {
	meta    structure.Metadata
	outline []structure.OutlineNode
	pages   []structure.Page
}

func (d *memoryDocument) Metadata(ctx context.Context) (structure.Metadata, error) {
	return d.meta, nil
}

func (d *memoryDocument) Outline(ctx context.Context) ([]structure.OutlineNode, error) {
	return d.outline, nil
}

func (d *memoryDocument) PageCount() int { return len(d.pages) }

func (d *memoryDocument) Page(ctx context.Context, pageNumber int) (structure.Page, error) {
	if err := ctx.Err(); err != nil {
		return structure.Page{}, err
	}
	if pageNumber < 1 || pageNumber > len(d.pages) {
		return structure.Page{}, fmt.Errorf("page %d out of range [1,%d]", pageNumber, len(d.pages))
	}
	return d.pages[pageNumber-1], nil
}
