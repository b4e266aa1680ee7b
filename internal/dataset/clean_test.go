package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetwatch/internal/record"
)

func TestCleanRecord(t *testing.T) {
	r := record.ArticleRecord{
		Code:            "a1",
		URL:             "https://example.com/one",
		Title:           "extraction_error",
		Language:        "",
		PublicationDate: "unknown",
		Location:        "  ",
		Disease:         "grippe aviaire",
		Animal:          "NaN",
		Organization:    "Not found",
		SourceType:      "médias",
	}
	CleanRecord(&r)

	assert.Equal(t, record.SiteInaccessible, r.Title)
	assert.Equal(t, record.LangUnknown, r.Language)
	assert.Equal(t, record.NotDetected, r.PublicationDate)
	assert.Equal(t, record.NotDetected, r.Location)
	assert.Equal(t, "grippe aviaire", r.Disease)
	assert.Equal(t, record.NotDetected, r.Animal)
	assert.Equal(t, record.NotDetected, r.Organization)
	assert.Equal(t, "médias", r.SourceType)

	// No cell is left empty in the final artifact.
	assert.Equal(t, record.NotDetected, r.Content)
	assert.Equal(t, record.NotDetected, r.Error)
}

func TestCleanRecordIdempotent(t *testing.T) {
	records := sampleRecords()
	once := CleanAll(append([]record.ArticleRecord{}, records...))
	twice := CleanAll(append([]record.ArticleRecord{}, once...))
	assert.Equal(t, once, twice)
}

func TestCleanRecordRefreshesCounts(t *testing.T) {
	r := record.ArticleRecord{Code: "a1"}
	r.Content = "  three little words  " // counts not yet derived
	CleanRecord(&r)

	assert.Equal(t, "three little words", r.Content)
	assert.Equal(t, 3, r.WordCount)
	assert.Equal(t, 18, r.CharCount)
}

func TestCleanRecordSentinelContentKeepsZeroCounts(t *testing.T) {
	r := record.ArticleRecord{Code: "a1"}
	CleanRecord(&r)

	assert.Equal(t, record.NotDetected, r.Content)
	assert.Zero(t, r.WordCount)
	assert.Zero(t, r.CharCount)

	// The sentinel itself never gets counted as content.
	CleanRecord(&r)
	assert.Zero(t, r.WordCount)
	assert.Zero(t, r.CharCount)
}

func TestCleanTriple(t *testing.T) {
	kept := record.SummaryTriple{Code: "a1", Summary50: "s50", Summary100: "s100", Summary150: "s150"}
	CleanTriple(&kept)
	assert.Equal(t, "s50", kept.Summary50)

	empty := record.SummaryTriple{Code: "a2"}
	CleanTriple(&empty)
	assert.Equal(t, record.NotDetected, empty.Summary50)
	assert.Equal(t, record.NotDetected, empty.Summary100)
	assert.Equal(t, record.NotDetected, empty.Summary150)
}

func TestCleanFilePreservesRowsAndSummaries(t *testing.T) {
	records := sampleRecords()
	triples := []record.SummaryTriple{
		{Code: "a1", Summary50: "s50", Summary100: "s100", Summary150: "s150"},
		{Code: "a2"},
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, WriteSummarized(in, records, triples))

	require.NoError(t, CleanFile(in, out))

	gotRecs, gotTriples, err := ReadRecords(out)
	require.NoError(t, err)
	require.Len(t, gotRecs, len(records))
	require.Len(t, gotTriples, len(records))

	// Real summaries survive untouched.
	assert.Equal(t, "s50", gotTriples[0].Summary50)
	assert.Equal(t, "s150", gotTriples[0].Summary150)

	// The failed article's title is rewritten for the final artifact
	// and its empty cells, summaries included, read as the sentinel.
	assert.Equal(t, record.SiteInaccessible, gotRecs[1].Title)
	assert.Equal(t, record.NotDetected, gotRecs[1].Disease)
	assert.Equal(t, record.NotDetected, gotRecs[1].Content)
	assert.Equal(t, record.NotDetected, gotTriples[1].Summary50)
	assert.Equal(t, record.NotDetected, gotTriples[1].Summary100)
	assert.Equal(t, record.NotDetected, gotTriples[1].Summary150)

	// Running the cleaner on its own output changes nothing.
	out2 := filepath.Join(dir, "out2.csv")
	require.NoError(t, CleanFile(out, out2))
	again, againTriples, err := ReadRecords(out2)
	require.NoError(t, err)
	assert.Equal(t, gotRecs, again)
	assert.Equal(t, gotTriples, againTriples)
}

func TestCleanFileWithoutSummaryColumns(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, WriteRecords(in, sampleRecords()))

	require.NoError(t, CleanFile(in, out))

	recs, triples, err := ReadRecords(out)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Nil(t, triples) // a plain artifact stays plain
	assert.Equal(t, record.NotDetected, recs[1].Content)
}
