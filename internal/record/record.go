package record

import (
	"strings"
	"unicode/utf8"
)

// Language is the detected content language of an article.
type Language string

const (
	LangFrench  Language = "fr"
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
	LangUnknown Language = "unknown"
)

// ParseLanguage normalizes a raw language code to one of the supported values.
func ParseLanguage(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "fr", "fra", "fre":
		return LangFrench
	case "en", "eng":
		return LangEnglish
	case "ar", "ara", "arb":
		return LangArabic
	default:
		return LangUnknown
	}
}

const (
	// NotDetected is the sentinel written in place of missing or unknown data.
	NotDetected = "not_detected"

	// SiteInaccessible replaces fetch-failure markers in the final artifact.
	SiteInaccessible = "site inaccessible"

	// FetchErrorTitle marks articles whose content could not be retrieved.
	// The final cleaning pass rewrites it to SiteInaccessible.
	FetchErrorTitle = "extraction_error"
)

// ArticleRecord is one row of the surveillance dataset, one per input URL.
type ArticleRecord struct {
	Code            string
	URL             string
	Title           string
	Content         string
	Language        Language
	PublicationDate string
	Location        string
	Disease         string
	Animal          string
	Organization    string
	SourceType      string
	CharCount       int
	WordCount       int
	Error           string
}

// SummaryTriple holds the three generated summaries for one article.
// Each length is independent: a failed length is empty without
// affecting the other two.
type SummaryTriple struct {
	Code       string
	Summary50  string
	Summary100 string
	Summary150 string
}

// SetContent stores the article body and refreshes the derived counts.
func (r *ArticleRecord) SetContent(content string) {
	r.Content = content
	r.CharCount = utf8.RuneCountInString(content)
	r.WordCount = len(strings.Fields(content))
}

// MarkFailed records a fetch failure: content is cleared, every entity
// field is set to the sentinel and the error description is kept.
func (r *ArticleRecord) MarkFailed(reason string) {
	r.Title = FetchErrorTitle
	r.SetContent("")
	r.Language = LangUnknown
	r.PublicationDate = NotDetected
	r.Location = NotDetected
	r.Disease = NotDetected
	r.Animal = NotDetected
	r.Organization = NotDetected
	r.Error = reason
}

// Failed reports whether the record carries a fetch failure.
func (r *ArticleRecord) Failed() bool {
	return r.Error != ""
}
