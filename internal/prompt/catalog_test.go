package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vetwatch/internal/record"
)

func TestEntityRendersPlaceholders(t *testing.T) {
	c := NewCatalog()

	p := c.Entity(TaskDisease, record.LangFrench, "Foyer de fièvre aphteuse", "Des bovins sont touchés.")
	assert.Contains(t, p, "Foyer de fièvre aphteuse")
	assert.Contains(t, p, "Des bovins sont touchés.")
	assert.NotContains(t, p, "{title}")
	assert.NotContains(t, p, "{content}")
}

func TestEveryTaskHasAllLanguages(t *testing.T) {
	c := NewCatalog()
	langs := []record.Language{record.LangFrench, record.LangEnglish, record.LangArabic}

	for _, task := range EntityTasks {
		for _, lang := range langs {
			p := c.Entity(task, lang, "t", "c")
			assert.NotEmpty(t, p, "task %s lang %s", task, lang)
		}
	}
	for _, lang := range langs {
		assert.NotEmpty(t, c.Summary(lang, "t", "c", 50))
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	c := NewCatalog()

	got := c.Entity(TaskDisease, record.LangUnknown, "title", "content")
	want := c.Entity(TaskDisease, record.LangEnglish, "title", "content")
	assert.Equal(t, want, got)
}

func TestSummaryRendersWordTarget(t *testing.T) {
	c := NewCatalog()

	p := c.Summary(record.LangEnglish, "t", "c", 100)
	assert.Contains(t, p, "100 words")
	assert.NotContains(t, p, "{words}")
}

func TestContentTruncatedAtRuneBoundary(t *testing.T) {
	c := NewCatalog()

	long := strings.Repeat("é", entityContentLimit+500)
	p := c.Entity(TaskDisease, record.LangEnglish, "t", long)
	assert.Contains(t, p, strings.Repeat("é", entityContentLimit))
	assert.NotContains(t, p, strings.Repeat("é", entityContentLimit+1))
}
