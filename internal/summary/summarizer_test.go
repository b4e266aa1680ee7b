package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetwatch/internal/llm"
	"vetwatch/internal/prompt"
	"vetwatch/internal/record"
)

func repeatWords(word string, n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = word
	}
	return strings.Join(words, " ")
}

// scriptedGenerator returns canned text per requested word target,
// recognized by the "{words} " rendered into the prompt.
type scriptedGenerator struct {
	byTarget map[int]string
	err      error
}

func (g *scriptedGenerator) Generate(_ context.Context, p string, _ llm.Options) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	for target, text := range g.byTarget {
		if strings.Contains(p, "("+itoa(target)+" ") || strings.Contains(p, "(exactly "+itoa(target)+" ") {
			return text, nil
		}
	}
	return "", errors.New("no script for prompt")
}

func itoa(n int) string {
	switch n {
	case 50:
		return "50"
	case 100:
		return "100"
	case 150:
		return "150"
	}
	return ""
}

func newSummarizerWith(gen llm.Generator) *Summarizer {
	return NewSummarizer(gen, prompt.NewCatalog(), 3)
}

func TestSummarizeAllLengths(t *testing.T) {
	content := repeatWords("outbreak", 400)
	gen := &scriptedGenerator{byTarget: map[int]string{
		50:  repeatWords("short", 50),
		100: repeatWords("medium", 100),
		150: repeatWords("long", 150),
	}}

	triple, err := newSummarizerWith(gen).Summarize(context.Background(), "a1", "Title", content, record.LangEnglish)
	require.NoError(t, err)

	assert.Equal(t, "a1", triple.Code)
	assert.Len(t, strings.Fields(triple.Summary50), 50)
	assert.Len(t, strings.Fields(triple.Summary100), 100)
	assert.Len(t, strings.Fields(triple.Summary150), 150)
}

func TestSummarizeFailureFallsBack(t *testing.T) {
	content := repeatWords("mot", 400)
	gen := &scriptedGenerator{err: errors.New("model down")}

	triple, err := newSummarizerWith(gen).Summarize(context.Background(), "a2", "Titre", content, record.LangFrench)
	require.NoError(t, err)

	// Fallback is extractive: the first N words of the content.
	assert.Len(t, strings.Fields(triple.Summary50), 50)
	assert.True(t, strings.HasPrefix(triple.Summary50, "mot mot"))
	assert.True(t, strings.HasSuffix(triple.Summary50, "…"))
}

func TestSummarizeShortContentShortcut(t *testing.T) {
	content := repeatWords("word", 30)
	gen := &scriptedGenerator{err: errors.New("must not be called")}

	triple, err := newSummarizerWith(gen).Summarize(context.Background(), "a3", "Title", content, record.LangEnglish)
	require.NoError(t, err)

	assert.Equal(t, content, triple.Summary50)
	assert.Equal(t, content, triple.Summary100)
	assert.Equal(t, content, triple.Summary150)
}

func TestSummarizeWithoutGenerator(t *testing.T) {
	content := repeatWords("word", 400)
	s := NewSummarizer(nil, prompt.NewCatalog(), 2)

	triple, err := s.Summarize(context.Background(), "a1", "Title", content, record.LangEnglish)
	require.NoError(t, err)

	// Every length is the extractive fallback, no model involved.
	assert.Len(t, strings.Fields(triple.Summary50), 50)
	assert.Len(t, strings.Fields(triple.Summary100), 100)
	assert.Len(t, strings.Fields(triple.Summary150), 150)
	assert.True(t, strings.HasSuffix(triple.Summary50, "…"))
}

func TestSummarizeEmptyContent(t *testing.T) {
	triple, err := newSummarizerWith(&scriptedGenerator{}).Summarize(context.Background(), "a4", "Title", "   ", record.LangEnglish)
	require.NoError(t, err)
	assert.Empty(t, triple.Summary50)
	assert.Empty(t, triple.Summary100)
	assert.Empty(t, triple.Summary150)
}

func TestPostProcess(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		target int
		lang   record.Language
		want   string
		ok     bool
	}{
		{
			name:   "label stripped",
			raw:    "Summary: " + repeatWords("w", 50),
			target: 50,
			lang:   record.LangEnglish,
			want:   repeatWords("w", 50),
			ok:     true,
		},
		{
			name:   "too short rejected",
			raw:    "w w w",
			target: 100,
			lang:   record.LangEnglish,
			ok:     false,
		},
		{
			name:   "slightly long trimmed",
			raw:    repeatWords("w", 70),
			target: 50,
			lang:   record.LangEnglish,
			want:   repeatWords("w", 65) + ".",
			ok:     true,
		},
		{
			name:   "far too long rejected",
			raw:    repeatWords("w", 200),
			target: 50,
			lang:   record.LangEnglish,
			ok:     false,
		},
		{
			name:   "arabic output required",
			raw:    repeatWords("english", 50),
			target: 50,
			lang:   record.LangArabic,
			ok:     false,
		},
		{
			name:   "arabic accepted",
			raw:    repeatWords("الحمى", 50),
			target: 50,
			lang:   record.LangArabic,
			want:   repeatWords("الحمى", 50),
			ok:     true,
		},
		{
			name:   "empty rejected",
			raw:    "   ",
			target: 50,
			lang:   record.LangEnglish,
			ok:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PostProcess(tt.raw, tt.target, tt.lang)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "a b c", Fallback("a b c", 50))
	long := Fallback(repeatWords("x", 80), 50)
	assert.Len(t, strings.Fields(long), 50)
	assert.True(t, strings.HasSuffix(long, "…"))
}
