package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minParagraphChars drops nav crumbs, captions and other short fragments.
const minParagraphChars = 40

// contentSelectors are tried in order; the first with usable paragraphs wins.
var contentSelectors = []string{"article p", "main p", "[role=main] p", "p"}

// ParseHtmlParagraphs collects the paragraph text of the page's main content.
// It is the fallback when a scoring engine finds nothing.
func ParseHtmlParagraphs(htmlStr string) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}
	doc.Find("script, style, noscript, nav, header, footer, aside, form").Remove()

	article := &Article{Title: strings.TrimSpace(doc.Find("title").First().Text())}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		article.Title = strings.TrimSpace(og)
	}

	for _, sel := range contentSelectors {
		var paragraphs []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			text := strings.Join(strings.Fields(s.Text()), " ")
			if len(text) >= minParagraphChars {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) > 0 {
			article.TextContent = strings.Join(paragraphs, "\n\n")
			return article, nil
		}
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		article.TextContent = strings.TrimSpace(desc)
	}
	return article, nil
}
