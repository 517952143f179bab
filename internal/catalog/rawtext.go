package catalog

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"productdb/internal/model"
	"productdb/internal/textutil"
)

// MaxRawText bounds the text handed to the generation request.
const MaxRawText = 12000

var (
	reHTMLTag     = regexp.MustCompile(`<(?:[a-zA-Z][a-zA-Z0-9]*|/[a-zA-Z][a-zA-Z0-9]*)(?:\s[^<>]*)?/?>`)
	reManyNewline = regexp.MustCompile(`\n{3,}`)
	reManySpace   = regexp.MustCompile(` {2,}`)
)

// RawText joins the descriptive fields of a scraped row into one block of
// text for the generation request. Falls back to the title when empty.
func RawText(p *model.RawProduct) string {
	var parts []string
	for _, field := range []string{p.ProductDescription, p.AdditionalInfo, p.AboutProduct} {
		if text := markupToText(strings.TrimSpace(field)); text != "" {
			parts = append(parts, text)
		}
	}
	blob := strings.Join(parts, "\n\n")
	blob = reManyNewline.ReplaceAllString(blob, "\n\n")
	blob = reManySpace.ReplaceAllString(blob, " ")
	blob = strings.TrimSpace(textutil.Truncate(blob, MaxRawText))
	if blob == "" {
		return strings.TrimSpace(p.Title)
	}
	return blob
}

// markupToText reduces scraped HTML fragments to their text, one line per
// block element. Plain text is returned as is.
func markupToText(s string) string {
	if !reHTMLTag.MatchString(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div, h1, h2, h3, h4, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
