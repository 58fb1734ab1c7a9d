package jobsource

import (
	"bytes"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// noiseSelectors are removed before the plain-text fallback.
var noiseSelectors = strings.Join([]string{
	"script", "style", "noscript", "iframe", "svg",
	"header", "footer", "nav", "aside",
	"[role=navigation]", "[role=banner]", "[role=contentinfo]",
}, ", ")

// extract returns the readable text of an HTML page and the method that
// produced it. Readability output is converted to Markdown; if readability
// finds nothing the page body is flattened to plain text.
func extract(body []byte, pageURL *url.URL) (string, string) {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		md, err := htmltomarkdown.ConvertString(article.Content)
		if err == nil && strings.TrimSpace(md) != "" {
			return strings.TrimSpace(md), "readability"
		}
		if text := collapseSpace(article.TextContent); text != "" {
			return text, "readability_text"
		}
	}
	return plainText(body), "plain"
}

func plainText(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	doc.Find(noiseSelectors).Remove()

	sel := doc.Find("article, main, #content").First()
	if sel.Length() == 0 {
		sel = doc.Find("body")
	}
	return collapseSpace(sel.Text())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
