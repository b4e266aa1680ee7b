package fetch

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"vetwatch/internal/record"
)

// minConfidence below which statistical detection is distrusted and the
// page's declared lang attribute wins.
const minConfidence = 0.5

// DetectLanguage classifies text among the dataset languages. The HTML
// lang hint breaks ties when detection is unsure.
func DetectLanguage(text, langHint string) record.Language {
	info := whatlanggo.Detect(text)

	detected := record.LangUnknown
	switch info.Lang {
	case whatlanggo.Fra:
		detected = record.LangFrench
	case whatlanggo.Eng:
		detected = record.LangEnglish
	case whatlanggo.Arb:
		detected = record.LangArabic
	}

	if detected != record.LangUnknown && info.Confidence >= minConfidence {
		return detected
	}

	if hinted := record.ParseLanguage(primarySubtag(langHint)); hinted != record.LangUnknown {
		return hinted
	}
	return detected
}

// primarySubtag reduces "fr-FR" or "ar_EG" to the bare language code.
func primarySubtag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, sep := range []string{"-", "_"} {
		if i := strings.Index(tag, sep); i > 0 {
			tag = tag[:i]
		}
	}
	return tag
}
