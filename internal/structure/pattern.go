package structure

import (
	"math"
	"sort"
)

// HeadingPattern is a (fontSize, fontName) signature assumed to mark
// structural headings.
type HeadingPattern struct {
	FontSize float64
	FontName string
}

// analyzeHeadingPatterns derives the dominant chapter- and section-heading
// font signatures from global font usage. The two largest distinct
// (size, font) keys are assumed to be the chapter and section headings
// respectively. This is a frequency heuristic, not a layout analysis, and it
// misfires on documents whose body text uses the largest font.
func analyzeHeadingPatterns(pages []Page) (chapter, section *HeadingPattern) {
	type fontKey struct {
		size float64
		name string
	}

	freq := make(map[fontKey]int)
	for _, page := range pages {
		for _, run := range page.Runs {
			k := fontKey{size: math.Round(run.FontSize*10) / 10, name: run.FontName}
			freq[k]++
		}
	}
	if len(freq) == 0 {
		return nil, nil
	}

	keys := make([]fontKey, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	// Largest size first; ties broken by font name so the result is stable.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].size != keys[j].size {
			return keys[i].size > keys[j].size
		}
		return keys[i].name < keys[j].name
	})

	chapter = &HeadingPattern{FontSize: keys[0].size, FontName: keys[0].name}
	if len(keys) > 1 {
		section = &HeadingPattern{FontSize: keys[1].size, FontName: keys[1].name}
	}
	return chapter, section
}
