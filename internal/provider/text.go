package provider

import (
	"bufio"
	"io"
	"strings"
)

// OpenText renders plain text into synthetic body-only pages. There are no
// headings and no outline, so the extractor degrades to a single chapter.
func OpenText(r io.Reader, filename string) (Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := newDocBuilder(strings.TrimSuffix(filename, ".txt"))

	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			b.Paragraph(current.String())
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Build(), nil
}
