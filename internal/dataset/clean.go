package dataset

import (
	"strings"

	"vetwatch/internal/record"
)

// emptyEquivalents are cell values treated as "no data" by the final
// cleaning pass.
var emptyEquivalents = map[string]struct{}{
	"": {}, "unknown": {}, "none": {}, "null": {}, "nan": {}, "n/a": {},
	"non trouve": {}, "non trouvé": {}, "not found": {},
}

// CleanRecord normalizes one record in place for the final artifact.
// Every textual cell gets the same treatment: empty-equivalent values
// become the sentinel, so the artifact never carries empty cells.
// Fetch-failure titles become the inaccessible marker and derived
// counts are refreshed. Applying it twice changes nothing.
func CleanRecord(r *record.ArticleRecord) {
	if strings.Contains(r.Title, record.FetchErrorTitle) {
		r.Title = record.SiteInaccessible
	}
	r.Title = cleanCell(r.Title)

	r.URL = cleanCell(r.URL)
	r.PublicationDate = cleanCell(r.PublicationDate)
	r.Location = cleanCell(r.Location)
	r.Disease = cleanCell(r.Disease)
	r.Animal = cleanCell(r.Animal)
	r.Organization = cleanCell(r.Organization)
	r.SourceType = cleanCell(r.SourceType)
	r.Error = cleanCell(r.Error)

	if cleanCell(string(r.Language)) == record.NotDetected {
		r.Language = record.LangUnknown
	}

	// Missing content becomes sentinel text, not an empty cell; the
	// counts stay at zero so they keep describing real content.
	content := strings.TrimSpace(r.Content)
	if content == "" || content == record.NotDetected {
		r.Content = record.NotDetected
		r.CharCount, r.WordCount = 0, 0
	} else {
		r.SetContent(content)
	}
}

// CleanTriple applies the same cell treatment to the summary columns,
// so a failed article reads "not_detected" in all three.
func CleanTriple(t *record.SummaryTriple) {
	t.Summary50 = cleanCell(t.Summary50)
	t.Summary100 = cleanCell(t.Summary100)
	t.Summary150 = cleanCell(t.Summary150)
}

// CleanAll cleans every record and returns the same slice. Row count is
// never changed: cleaning rewrites cells, it does not filter.
func CleanAll(records []record.ArticleRecord) []record.ArticleRecord {
	for i := range records {
		CleanRecord(&records[i])
	}
	return records
}

// CleanFile reads an extraction artifact, cleans it and writes it to
// out. Summary columns, when present, are cleaned like every other
// cell; a plain artifact stays plain.
func CleanFile(in, out string) error {
	records, triples, err := ReadRecords(in)
	if err != nil {
		return err
	}
	CleanAll(records)

	if triples == nil {
		return WriteRecords(out, records)
	}
	for i := range triples {
		CleanTriple(&triples[i])
	}
	return WriteSummarized(out, records, triples)
}

func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if _, empty := emptyEquivalents[strings.ToLower(s)]; empty {
		return record.NotDetected
	}
	return s
}
