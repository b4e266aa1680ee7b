package fetch

import (
	"net/url"
	"strings"
)

// Source type labels written to the dataset.
const (
	SourceOfficial = "site officiel"
	SourceMedia    = "médias"
	SourceSocial   = "réseaux sociaux"
	SourceUnknown  = "not_detected"
)

var officialHosts = []string{
	"woah.org", "oie.int", "fao.org", "who.int", "efsa.europa.eu",
	"cdc.gov", "usda.gov", "aphis.usda.gov", "anses.fr",
	"agriculture.gouv.fr", "sante.gouv.fr", "europa.eu",
}

var socialHosts = []string{
	"facebook.com", "twitter.com", "x.com", "youtube.com",
	"instagram.com", "tiktok.com", "linkedin.com", "t.me",
}

// ClassifySource labels the article's origin from its URL host.
func ClassifySource(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return SourceUnknown
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))

	for _, h := range socialHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return SourceSocial
		}
	}
	for _, h := range officialHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return SourceOfficial
		}
	}
	if strings.HasSuffix(host, ".gov") || strings.Contains(host, ".gov.") ||
		strings.HasSuffix(host, ".gouv.fr") || strings.Contains(host, ".gob.") {
		return SourceOfficial
	}
	return SourceMedia
}
