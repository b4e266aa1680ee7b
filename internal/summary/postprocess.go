package summary

import (
	"strings"
	"unicode"

	"vetwatch/internal/record"
)

// Length tolerances relative to the word target. A summary far below
// the target is rejected; one moderately above is trimmed.
const (
	minRatio  = 0.10
	maxRatio  = 1.50
	trimRatio = 1.30
)

// labelMarkers are lead-ins models prepend despite instructions.
var labelMarkers = []string{
	"résumé:", "resume:", "résumé :", "summary:", "الملخص:", "ملخص:",
	"titre:", "title:", "العنوان:",
}

// PostProcess cleans a generated summary and checks it against the word
// target. ok is false when the text is unusable and the caller should
// fall back to an extractive summary.
func PostProcess(raw string, targetWords int, lang record.Language) (text string, ok bool) {
	text = strings.TrimSpace(raw)
	text = stripLabels(text)
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "", false
	}

	if lang == record.LangArabic && !hasArabicScript(text) {
		// The model ignored the language constraint.
		return "", false
	}

	words := strings.Fields(text)
	n := float64(len(words))
	target := float64(targetWords)

	if n < target*minRatio {
		return "", false
	}
	if n > target*maxRatio {
		return "", false
	}
	if n > target*trimRatio {
		cut := int(target * trimRatio)
		text = strings.Join(words[:cut], " ")
		text = strings.TrimRight(text, ",;: ") + "."
	}
	return text, true
}

// Fallback builds an extractive summary from the first targetWords
// words of the content.
func Fallback(content string, targetWords int) string {
	words := strings.Fields(content)
	if len(words) <= targetWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:targetWords], " ") + "…"
}

func stripLabels(s string) string {
	lower := strings.ToLower(s)
	for _, marker := range labelMarkers {
		if strings.HasPrefix(lower, marker) {
			s = strings.TrimSpace(s[len(marker):])
			lower = strings.ToLower(s)
		}
	}
	// Quoted wholesale answers lose their quotes.
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"') {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// hasArabicScript reports whether at least a third of the letters are
// Arabic, tolerating latin acronyms and numbers inside Arabic text.
func hasArabicScript(s string) bool {
	var letters, arabic int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Arabic, r) {
			arabic++
		}
	}
	return letters > 0 && arabic*3 >= letters
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
