package structure

import "regexp"

// Lexical patterns whose first capture group names a candidate domain term.
// Applied in order; first-seen wins on duplicates.
var conceptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\w+)\s+is\s+defined\s+as`),
	regexp.MustCompile(`(\w+)\s+refers\s+to`),
	regexp.MustCompile(`The\s+term\s+(\w+)`),
	regexp.MustCompile(`(\w+):\s+[A-Z]`),
}

const (
	maxConcepts       = 10
	minConceptTermLen = 3
)

// ExtractConcepts mines up to maxConcepts candidate terms from section
// content. The result preserves first-seen order and never contains
// duplicates; malformed content yields an empty list, never an error.
func ExtractConcepts(content string) []string {
	concepts := []string{}
	seen := make(map[string]bool)

	for _, re := range conceptPatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			term := m[1]
			if len(term) <= minConceptTermLen || seen[term] {
				continue
			}
			seen[term] = true
			concepts = append(concepts, term)
		}
	}

	if len(concepts) > maxConcepts {
		concepts = concepts[:maxConcepts]
	}
	return concepts
}
