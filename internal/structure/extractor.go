// Package structure infers a hierarchical outline (title → chapters →
// sections) from a rendered document's per-page text runs, reconciling font
// statistics with optional author bookmarks. The heuristics are
// order-sensitive, so pages are always reassembled in page order before any
// analysis runs.
package structure

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

const defaultTitle = "Untitled Document"

// Extractor runs the extraction pipeline. Each call to Extract owns its own
// accumulators, so a single Extractor is safe for concurrent use.
type Extractor struct {
	log      *slog.Logger
	prefetch int
}

// NewExtractor creates an Extractor. prefetch bounds concurrent page
// retrieval; 1 (or less) means strictly sequential loading.
func NewExtractor(log *slog.Logger, prefetch int) *Extractor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if prefetch < 1 {
		prefetch = 1
	}
	return &Extractor{log: log, prefetch: prefetch}
}

// Extract produces the DocumentStructure for src. Provider failures propagate
// unmodified apart from context wrapping; a cancelled run returns an error
// and never a partial structure. Given identical provider behavior the
// output is byte-for-byte deterministic.
func (e *Extractor) Extract(ctx context.Context, src Source) (*DocumentStructure, error) {
	pages, err := e.loadPages(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	meta, err := src.Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	outline, err := src.Outline(ctx)
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	toc := flattenOutline(outline)

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = defaultTitle
	}

	doc := &DocumentStructure{
		Title:           title,
		Author:          meta.Author,
		Chapters:        []Chapter{},
		TableOfContents: toc,
		TotalPages:      len(pages),
	}
	if len(pages) == 0 {
		return doc, nil
	}

	chapterPat, sectionPat := analyzeHeadingPatterns(pages)
	e.log.Debug("heading patterns",
		"chapter", patternString(chapterPat),
		"section", patternString(sectionPat))

	starts := detectChapterStarts(pages, toc, chapterPat)
	for i, start := range starts {
		end := len(pages)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		ch := buildChapter(pages[start:end], start+1, fmt.Sprintf("chapter-%d", i+1))
		doc.EstimatedTokens += ch.EstimatedTokens
		doc.Chapters = append(doc.Chapters, ch)
	}

	e.log.Info("structure extracted",
		"pages", doc.TotalPages,
		"chapters", len(doc.Chapters),
		"toc_entries", len(doc.TableOfContents),
		"estimated_tokens", doc.EstimatedTokens)
	return doc, nil
}

// loadPages retrieves every page and returns them in ascending page order.
// Retrieval may run concurrently up to the prefetch bound; the order-sensitive
// heuristics only ever see the reassembled slice.
func (e *Extractor) loadPages(ctx context.Context, src PageProvider) ([]Page, error) {
	n := src.PageCount()
	if n <= 0 {
		return nil, nil
	}

	pages := make([]Page, n)
	if e.prefetch <= 1 {
		for num := 1; num <= n; num++ {
			p, err := src.Page(ctx, num)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", num, err)
			}
			pages[num-1] = p
		}
		return pages, nil
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, e.prefetch)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for num := 1; num <= n; num++ {
		wg.Add(1)
		go func(pageNum int) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-fetchCtx.Done():
				return
			}
			defer func() { <-sem }()

			p, err := src.Page(fetchCtx, pageNum)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("page %d: %w", pageNum, err)
					cancel()
				}
				return
			}
			pages[pageNum-1] = p
		}(num)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

func patternString(p *HeadingPattern) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("%.1f/%s", p.FontSize, p.FontName)
}
