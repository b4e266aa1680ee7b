package fetch

import (
	"regexp"
	"strings"
)

var (
	urlExpr   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailExpr = regexp.MustCompile(`\S+@\S+\.\S+`)
	spaceExpr = regexp.MustCompile(`[ \t]+`)
)

// boilerplateMarkers flag navigation chrome, consent banners and share
// widgets in the three dataset languages. A line containing one is
// dropped wholesale.
var boilerplateMarkers = []string{
	"cookie", "cookies", "subscribe", "newsletter", "advertisement",
	"sign up", "log in", "read more", "related articles", "share this",
	"follow us", "all rights reserved", "terms of use", "privacy policy",
	"s'abonner", "abonnez-vous", "publicité", "lire aussi", "lire la suite",
	"partager", "tous droits réservés", "mentions légales",
	"اشترك", "إعلان", "اقرأ أيضا", "جميع الحقوق محفوظة", "تابعنا",
}

// CleanContent strips link noise and boilerplate lines and normalizes
// whitespace. Safe to apply twice.
func CleanContent(raw string) string {
	text := urlExpr.ReplaceAllString(raw, " ")
	text = emailExpr.ReplaceAllString(text, " ")

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(spaceExpr.ReplaceAllString(line, " "))
		if line == "" || isBoilerplate(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isBoilerplate(line string) bool {
	// Long lines are article text even when a marker word appears in
	// passing; only short chrome lines get dropped.
	if len([]rune(line)) > 120 {
		return false
	}
	lower := strings.ToLower(line)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
