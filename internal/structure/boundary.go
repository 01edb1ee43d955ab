package structure

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// chapterKeywordRe matches conventional chapter openers like "Chapter 3" or
// "PART 2" at the start of a heading run.
var chapterKeywordRe = regexp.MustCompile(`(?i)^(chapter|section|part)\s+\d+`)

// Maximum font-size distance for a run to count as the chapter-heading
// signature.
const patternSizeTolerance = 1.0

// detectChapterStarts returns the ascending, duplicate-free zero-based page
// indices at which chapters begin. Index 0 is always present.
//
// Signal priority: top-level bookmark entries win outright; otherwise pages
// whose runs match the chapter-heading font signature and a chapter keyword;
// otherwise the whole document is one chapter.
func detectChapterStarts(pages []Page, toc []TOCEntry, chapterPat *HeadingPattern) []int {
	seen := map[int]bool{0: true}
	starts := []int{0}
	add := func(idx int) {
		if idx > 0 && idx < len(pages) && !seen[idx] {
			seen[idx] = true
			starts = append(starts, idx)
		}
	}

	hasTopLevel := false
	for _, entry := range toc {
		if entry.Level == 0 {
			hasTopLevel = true
			add(entry.PageNumber - 1)
		}
	}

	if !hasTopLevel && chapterPat != nil {
		for i, page := range pages {
			for _, run := range page.Runs {
				if math.Abs(run.FontSize-chapterPat.FontSize) < patternSizeTolerance &&
					run.FontName == chapterPat.FontName &&
					chapterKeywordRe.MatchString(strings.TrimSpace(run.Text)) {
					add(i)
					break
				}
			}
		}
	}

	sort.Ints(starts)
	return starts
}
