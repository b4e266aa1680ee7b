package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vetwatch/internal/record"
)

// InputRow is one line of the input artifact: a stable article code and
// the URL to fetch.
type InputRow struct {
	Code string
	URL  string
}

var recordHeader = []string{
	"code", "url", "title", "content", "language", "publication_date",
	"location", "disease", "animal", "organization", "source_type",
	"char_count", "word_count", "error",
}

var summaryColumns = []string{"resum_50", "resum_100", "resum_150"}

// ReadInput loads the input CSV (columns code,url; header optional).
// Codes must be unique and both fields non-empty.
func ReadInput(path string) ([]InputRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	lines, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	rows := make([]InputRow, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for i, line := range lines {
		code := strings.TrimSpace(line[0])
		url := strings.TrimSpace(line[1])
		if i == 0 && strings.EqualFold(code, "code") {
			continue
		}
		if code == "" || url == "" {
			return nil, fmt.Errorf("input line %d: empty code or url", i+1)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("input line %d: duplicate code %q", i+1, code)
		}
		seen[code] = struct{}{}
		rows = append(rows, InputRow{Code: code, URL: url})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input %s: no rows", path)
	}
	return rows, nil
}

// WriteRecords writes the extraction artifact, one row per record in
// slice order.
func WriteRecords(path string, records []record.ArticleRecord) error {
	return writeCSV(path, recordHeader, len(records), func(i int) []string {
		return recordFields(records[i])
	})
}

// WriteSummarized writes the extraction artifact extended with the
// three summary columns. records and triples are parallel slices.
func WriteSummarized(path string, records []record.ArticleRecord, triples []record.SummaryTriple) error {
	if len(records) != len(triples) {
		return fmt.Errorf("records and summaries out of step: %d vs %d", len(records), len(triples))
	}
	header := append(append([]string{}, recordHeader...), summaryColumns...)
	return writeCSV(path, header, len(records), func(i int) []string {
		t := triples[i]
		return append(recordFields(records[i]), t.Summary50, t.Summary100, t.Summary150)
	})
}

// ReadRecords loads an extraction artifact, with or without the summary
// columns. triples is nil when the artifact has no summary columns.
func ReadRecords(path string) ([]record.ArticleRecord, []record.SummaryTriple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	lines, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read records: %w", err)
	}
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("records %s: empty file", path)
	}

	withSummaries := len(lines[0]) == len(recordHeader)+len(summaryColumns)
	if !withSummaries && len(lines[0]) != len(recordHeader) {
		return nil, nil, fmt.Errorf("records %s: unexpected column count %d", path, len(lines[0]))
	}

	var records []record.ArticleRecord
	var triples []record.SummaryTriple
	for i, line := range lines {
		if i == 0 && strings.EqualFold(line[0], "code") {
			continue
		}
		rec := record.ArticleRecord{
			Code:            line[0],
			URL:             line[1],
			Title:           line[2],
			Content:         line[3],
			Language:        record.Language(line[4]),
			PublicationDate: line[5],
			Location:        line[6],
			Disease:         line[7],
			Animal:          line[8],
			Organization:    line[9],
			SourceType:      line[10],
			Error:           line[13],
		}
		rec.CharCount, _ = strconv.Atoi(line[11])
		rec.WordCount, _ = strconv.Atoi(line[12])
		records = append(records, rec)

		if withSummaries {
			triples = append(triples, record.SummaryTriple{
				Code:       rec.Code,
				Summary50:  line[14],
				Summary100: line[15],
				Summary150: line[16],
			})
		}
	}
	return records, triples, nil
}

func recordFields(r record.ArticleRecord) []string {
	return []string{
		r.Code, r.URL, r.Title, r.Content, string(r.Language),
		r.PublicationDate, r.Location, r.Disease, r.Animal,
		r.Organization, r.SourceType,
		strconv.Itoa(r.CharCount), strconv.Itoa(r.WordCount), r.Error,
	}
}

func writeCSV(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
