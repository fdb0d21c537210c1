package parsing

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`[ \t]+`)

// LooksLikeHTML reports whether a pasted job description appears to be raw
// HTML rather than plain text.
func LooksLikeHTML(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "<div") ||
		strings.Contains(lower, "</p>")
}

// CleanJobPostingHTML extracts readable text from an HTML job posting.
// Script, style and navigation chrome are removed before text extraction.
// On parse failure the input is returned unchanged so analysis can still
// proceed on the raw text.
func CleanJobPostingHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner").Remove()

	content := doc.Find("body")
	if content.Length() == 0 {
		return html
	}

	text := content.Text()
	return cleanWhitespace(text)
}

// cleanWhitespace collapses runs of spaces and blank lines.
func cleanWhitespace(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
