package extract

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetwatch/internal/llm"
	"vetwatch/internal/prompt"
	"vetwatch/internal/record"
)

// fakeGenerator answers by matching a keyword in the prompt.
type fakeGenerator struct {
	mu      sync.Mutex
	calls   int
	answers map[string]string // substring of prompt → answer
	failOn  string            // substring of prompt that triggers an error
}

func (f *fakeGenerator) Generate(_ context.Context, p string, _ llm.Options) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.failOn != "" && strings.Contains(p, f.failOn) {
		return "", errors.New("model exploded")
	}
	for marker, answer := range f.answers {
		if strings.Contains(p, marker) {
			return answer, nil
		}
	}
	return "NOT FOUND", nil
}

func newExtractorWith(gen llm.Generator) *Extractor {
	return NewExtractor(gen, prompt.NewCatalog(), 5)
}

func TestExtractAllTasks(t *testing.T) {
	gen := &fakeGenerator{answers: map[string]string{
		"Disease name:":      "avian influenza",
		"Animal name:":       "poultry",
		"Country name:":      "United Kingdom",
		"Organization name:": "DEFRA",
		"publication date":   "15-11-2023",
	}}

	res, err := newExtractorWith(gen).Extract(context.Background(), "a1",
		"Bird flu at Kent farm", "Outbreak confirmed...", record.LangEnglish)
	require.NoError(t, err)

	assert.Equal(t, "avian influenza", res.Disease)
	assert.Equal(t, "poultry", res.Animal)
	assert.Equal(t, "United Kingdom", res.Location)
	assert.Equal(t, "DEFRA", res.Organization)
	assert.Equal(t, "15-11-2023", res.Date)
	assert.Equal(t, 5, gen.calls)
}

func TestExtractTaskFailureIsolated(t *testing.T) {
	gen := &fakeGenerator{
		answers: map[string]string{
			"Disease name:": "rabies",
			"Animal name:":  "dogs",
		},
		failOn: "Organization name:",
	}

	res, err := newExtractorWith(gen).Extract(context.Background(), "a2",
		"Rabies case", "A dog tested positive...", record.LangEnglish)
	require.NoError(t, err)

	assert.Equal(t, "rabies", res.Disease)
	assert.Equal(t, "dogs", res.Animal)
	assert.Empty(t, res.Organization)
}

func TestExtractNotFoundNormalized(t *testing.T) {
	gen := &fakeGenerator{answers: map[string]string{
		"Nom de la maladie:": "NON TROUVEE",
	}}

	res, err := newExtractorWith(gen).Extract(context.Background(), "a3",
		"Titre", "Contenu sans maladie.", record.LangFrench)
	require.NoError(t, err)
	assert.Empty(t, res.Disease)
}

func TestExtractCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newExtractorWith(&fakeGenerator{}).Extract(ctx, "a4",
		"title", "content", record.LangEnglish)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
