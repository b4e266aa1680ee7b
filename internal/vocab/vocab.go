package vocab

import (
	"sort"
	"strings"
	"time"

	"vetwatch/internal/record"
)

// Kind selects the controlled vocabulary a raw value is matched against.
type Kind string

const (
	KindDisease      Kind = "disease"
	KindAnimal       Kind = "animal"
	KindLocation     Kind = "location"
	KindOrganization Kind = "organization"
	KindDate         Kind = "date"
)

// Vocabulary holds the controlled vocabularies, loaded once at startup
// and read concurrently without synchronization afterwards.
type Vocabulary struct {
	aliases map[Kind]map[string]string
	// aliases per kind sorted longest-first, so the most specific
	// alias wins substring matches.
	ordered map[Kind][]string
}

// New builds a Vocabulary from alias tables (lowercase alias → canonical).
func New(tables map[Kind]map[string]string) *Vocabulary {
	v := &Vocabulary{
		aliases: make(map[Kind]map[string]string, len(tables)),
		ordered: make(map[Kind][]string, len(tables)),
	}
	for kind, table := range tables {
		lowered := make(map[string]string, len(table))
		keys := make([]string, 0, len(table))
		for alias, canonical := range table {
			alias = strings.ToLower(alias)
			lowered[alias] = canonical
			keys = append(keys, alias)
			// Canonical forms map to themselves so canonicalization
			// is idempotent.
			self := strings.ToLower(canonical)
			if _, ok := lowered[self]; !ok {
				lowered[self] = canonical
				keys = append(keys, self)
			}
		}
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) > len(keys[j])
			}
			return keys[i] < keys[j]
		})
		v.aliases[kind] = lowered
		v.ordered[kind] = keys
	}
	return v
}

// Default returns the built-in surveillance vocabularies.
func Default() *Vocabulary {
	return New(defaultTables())
}

// Canonicalize maps a raw model answer to a controlled value. Matching
// is case-insensitive: exact first, then substring with the longest
// alias winning. Unmatched non-empty text passes through trimmed so no
// information is discarded; empty or invalid answers yield the
// sentinel. Pure function of its inputs and the loaded tables.
func (v *Vocabulary) Canonicalize(raw string, kind Kind, lang record.Language) string {
	_ = lang // alias tables are multilingual; kept for contract symmetry

	cleaned := CleanAnswer(raw)
	if cleaned == "" || isInvalidAnswer(cleaned) {
		return record.NotDetected
	}

	if kind == KindDate {
		return canonicalDate(cleaned)
	}

	lower := strings.ToLower(cleaned)
	if canonical, ok := v.aliases[kind][lower]; ok {
		return canonical
	}

	for _, alias := range v.ordered[kind] {
		if strings.Contains(lower, alias) {
			return v.aliases[kind][alias]
		}
	}

	// Best effort: keep what the model said rather than dropping it.
	return cleaned
}

// CleanAnswer strips label prefixes, surrounding quotes and stray
// punctuation from a model answer.
func CleanAnswer(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'«»`)
	s = strings.TrimSpace(s)

	lower := strings.ToLower(s)
	for _, prefix := range labelPrefixes {
		if strings.HasPrefix(lower, prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			lower = strings.ToLower(s)
		}
	}

	s = strings.TrimSuffix(s, ".")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, `"'«» `)
}

func isInvalidAnswer(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range invalidAnswers {
		if lower == marker {
			return true
		}
	}
	for _, marker := range promptEchoMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// canonicalDate normalizes dd-mm-yyyy (the format the prompts request)
// to ISO yyyy-mm-dd. Already-ISO values are kept, future dates are
// rejected, anything unparseable passes through trimmed.
func canonicalDate(s string) string {
	for _, layout := range []string{"02-01-2006", "2-1-2006", "02/01/2006", "2006-01-02"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.After(time.Now().AddDate(0, 0, 1)) {
			return record.NotDetected
		}
		return t.Format("2006-01-02")
	}
	return s
}
