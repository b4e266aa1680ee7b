package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vetwatch/internal/config"
)

// Page is the extracted form of one article page.
type Page struct {
	Title         string
	Content       string
	LangHint      string // html lang attribute, may be empty
	PublishedMeta string // article:published_time or similar, raw
}

// Fetcher downloads article pages and extracts title and body text.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(cfg config.FetchConfig) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
	}
}

// Fetch downloads pageURL and extracts its text. Network errors, non-2xx
// statuses and unparseable bodies are all returned as errors; the caller
// decides how a failed article is recorded.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Page{}, fmt.Errorf("page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("parse page: %w", err)
	}

	page := extractPage(doc)
	if page.Content == "" {
		return Page{}, fmt.Errorf("no readable content at %s", pageURL)
	}
	return page, nil
}

func extractPage(doc *goquery.Document) Page {
	var page Page

	page.Title = strings.TrimSpace(doc.Find("meta[property=\"og:title\"]").AttrOr("content", ""))
	if page.Title == "" {
		page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if page.Title == "" {
		page.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	page.LangHint = strings.TrimSpace(doc.Find("html").AttrOr("lang", ""))

	page.PublishedMeta = strings.TrimSpace(doc.Find("meta[property=\"article:published_time\"]").AttrOr("content", ""))
	if page.PublishedMeta == "" {
		page.PublishedMeta = strings.TrimSpace(doc.Find("meta[name=\"date\"]").AttrOr("content", ""))
	}
	if page.PublishedMeta == "" {
		page.PublishedMeta = strings.TrimSpace(doc.Find("time[datetime]").First().AttrOr("datetime", ""))
	}

	// Scripts and styles pollute Text(); drop them before extraction.
	doc.Find("script, style, noscript, nav, footer, header, aside, form").Remove()

	page.Content = CleanContent(collectParagraphs(doc))
	return page
}

// collectParagraphs prefers semantic article containers and falls back
// to all paragraphs, then to the whole body.
func collectParagraphs(doc *goquery.Document) string {
	for _, selector := range []string{"article p", "main p", "div[itemprop=\"articleBody\"] p", "p"} {
		var parts []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) >= 40 {
				parts = append(parts, text)
			}
		})
		if len(parts) > 0 {
			return strings.Join(parts, "\n")
		}
	}
	return strings.TrimSpace(doc.Find("body").Text())
}
