// Package provider adapts concrete document formats to the capability
// interfaces consumed by the structure extractor. PDF is the native case —
// real glyph runs with font metadata. Markdown, HTML, DOCX and plain text are
// rendered into synthetic pages so the same extractor works unchanged.
package provider

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docstruct/internal/structure"
)

// Document is an open document exposing the three provider capabilities.
type Document interface {
	structure.MetadataProvider
	structure.OutlineProvider
	structure.PageProvider
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".txt":      true,
}

// Open reads r fully and returns the Document for filename's format.
func Open(r io.Reader, filename string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return OpenPDF(r)
	case ".md", ".markdown":
		return OpenMarkdown(r, filename)
	case ".html", ".htm":
		return OpenHTML(r, filename)
	case ".docx":
		return OpenDOCX(r, filename)
	case ".txt":
		return OpenText(r, filename)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
