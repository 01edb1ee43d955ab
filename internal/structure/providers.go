package structure

import "context"

// Metadata holds the optional document-level title and author strings.
type Metadata struct {
	Title  string
	Author string
}

// MetadataProvider exposes document metadata.
type MetadataProvider interface {
	Metadata(ctx context.Context) (Metadata, error)
}

// OutlineNode is one entry in an author-supplied bookmark tree. PageNumber is
// the resolved 1-based destination page; 0 means the destination could not be
// resolved. Destination resolution is the adapter's job, so the core only
// ever sees resolved trees.
type OutlineNode struct {
	Title      string
	PageNumber int
	Items      []OutlineNode
}

// OutlineProvider exposes the optional bookmark tree. A nil slice means the
// document carries no outline.
type OutlineProvider interface {
	Outline(ctx context.Context) ([]OutlineNode, error)
}

// PageProvider yields pages by 1-based page number. Page is the only
// I/O-bound call in the pipeline and must honor ctx cancellation.
type PageProvider interface {
	PageCount() int
	Page(ctx context.Context, pageNumber int) (Page, error)
}

// Source bundles the three capabilities an extraction run consumes.
type Source interface {
	MetadataProvider
	OutlineProvider
	PageProvider
}
