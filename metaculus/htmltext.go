package metaculus

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankLines = regexp.MustCompile(`\n{3,}`)

// PlainText reduces HTML markup in a description field to displayable
// text. Fields without markup pass through untouched apart from
// whitespace trimming.
func PlainText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	text := doc.Text()
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
