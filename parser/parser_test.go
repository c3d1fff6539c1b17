package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rss-summarizer/parser"
)

var articleHTML = `<!DOCTYPE html>
<html>
<head><title>Ransomware gang hits hospital</title></head>
<body>
  <nav><a href="/">Home</a> | <a href="/news">News</a></nav>
  <article>
    <h1>Ransomware gang hits hospital</h1>
    <p>` + strings.Repeat("A ransomware group claimed responsibility for an attack on a regional hospital network this week. ", 6) + `</p>
    <p>` + strings.Repeat("Investigators said patient records may have been accessed before the systems were encrypted. ", 6) + `</p>
    <p>` + strings.Repeat("The hospital moved to paper records while its IT team restored services from backups. ", 6) + `</p>
  </article>
  <footer>Copyright 2024</footer>
</body>
</html>`

func TestExtractReadability(t *testing.T) {
	article, err := parser.Extract(parser.EngineReadability, articleHTML, "https://example.com/news/1")
	require.NoError(t, err)
	assert.Contains(t, article.TextContent, "ransomware group claimed responsibility")
	assert.Contains(t, article.TextContent, "restored services from backups")
	assert.NotContains(t, article.TextContent, "Copyright 2024")
}

func TestExtractTrafilatura(t *testing.T) {
	article, err := parser.Extract(parser.EngineTrafilatura, articleHTML, "https://example.com/news/1")
	require.NoError(t, err)
	assert.Contains(t, article.TextContent, "patient records may have been accessed")
	assert.NotContains(t, article.TextContent, "Copyright 2024")
}

func TestExtractGoose(t *testing.T) {
	article, err := parser.Extract(parser.EngineGoose, articleHTML, "https://example.com/news/1")
	require.NoError(t, err)
	assert.Contains(t, article.TextContent, "patient records may have been accessed")
}

func TestExtractFallsBackToParagraphs(t *testing.T) {
	page := `<html><head><meta name="description" content="Only a description here."></head><body></body></html>`

	for _, engine := range []string{parser.EngineReadability, parser.EngineTrafilatura, parser.EngineGoose} {
		t.Run(engine, func(t *testing.T) {
			article, err := parser.Extract(engine, page, "https://example.com/news/2")
			require.NoError(t, err)
			assert.Equal(t, "Only a description here.", article.TextContent)
		})
	}
}

func TestExtractDefaultsToReadability(t *testing.T) {
	article, err := parser.Extract("", articleHTML, "")
	require.NoError(t, err)
	assert.Contains(t, article.TextContent, "patient records")
}

func TestExtractUnknownEngine(t *testing.T) {
	_, err := parser.Extract("lynx", articleHTML, "")
	assert.ErrorIs(t, err, parser.ErrUnknownEngine)
}

func TestExtractEmptyPage(t *testing.T) {
	_, err := parser.Extract(parser.EngineReadability, "<html><body></body></html>", "")
	assert.Error(t, err)
}

func TestNormalizeText(t *testing.T) {
	in := "  first line  \r\n\n\n\t\nsecond line\n   \nthird\n\n"
	assert.Equal(t, "first line\n\nsecond line\n\nthird", parser.NormalizeText(in))
	assert.Equal(t, "", parser.NormalizeText(" \n\t\n"))
}

func TestParseHtmlParagraphs(t *testing.T) {
	page := `<html><head><title>Plain title</title><meta property="og:title" content="OG title"></head><body>
<nav><p>Home | News | About us and everything else in the menu</p></nav>
<main>
  <p>Short.</p>
  <p>The first real paragraph of the story has more than enough characters to count.</p>
  <p>The second real paragraph  of the story
     also has enough characters to be kept.</p>
</main>
<footer><p>Copyright notice that is long enough to pass the length filter.</p></footer>
</body></html>`

	article, err := parser.Extract(parser.EngineParagraphs, page, "")
	require.NoError(t, err)
	assert.Equal(t, "OG title", article.Title)
	assert.Equal(t,
		"The first real paragraph of the story has more than enough characters to count.\n\n"+
			"The second real paragraph of the story also has enough characters to be kept.",
		article.TextContent)
}

func TestParseHtmlParagraphsMetaDescription(t *testing.T) {
	page := `<html><head><meta name="description" content="Only a description here."></head><body><div>tiny</div></body></html>`
	article, err := parser.ParseHtmlParagraphs(page)
	require.NoError(t, err)
	assert.Equal(t, "Only a description here.", article.TextContent)
}
