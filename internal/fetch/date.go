package fetch

import (
	"regexp"
	"time"
)

var (
	urlDateExpr  = regexp.MustCompile(`/(20\d{2})/(\d{1,2})/(\d{1,2})(?:/|$)`)
	textDateExpr = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](20\d{2})\b`)
	isoDateExpr  = regexp.MustCompile(`\b(20\d{2})-(\d{2})-(\d{2})\b`)
)

// ResolveDate finds a publication date without asking a model: page
// metadata first, then the URL path, then the first dated string in the
// content. Returns ISO yyyy-mm-dd or empty when nothing matched.
func ResolveDate(page Page, pageURL string) string {
	if page.PublishedMeta != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, page.PublishedMeta); err == nil {
				return t.Format("2006-01-02")
			}
		}
	}

	if m := urlDateExpr.FindStringSubmatch(pageURL); m != nil {
		if d := buildDate(m[1], m[2], m[3]); d != "" {
			return d
		}
	}

	if m := isoDateExpr.FindStringSubmatch(page.Content); m != nil {
		if d := buildDate(m[1], m[2], m[3]); d != "" {
			return d
		}
	}
	if m := textDateExpr.FindStringSubmatch(page.Content); m != nil {
		// dd-mm-yyyy order, the convention across the corpus.
		if d := buildDate(m[3], m[2], m[1]); d != "" {
			return d
		}
	}
	return ""
}

func buildDate(year, month, day string) string {
	t, err := time.Parse("2006-1-2", year+"-"+month+"-"+day)
	if err != nil {
		return ""
	}
	if t.After(time.Now().AddDate(0, 0, 1)) {
		return ""
	}
	return t.Format("2006-01-02")
}
