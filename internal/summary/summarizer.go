package summary

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"vetwatch/internal/llm"
	"vetwatch/internal/prompt"
	"vetwatch/internal/record"
)

// Targets are the three summary lengths of the dataset, in words.
var Targets = []int{50, 100, 150}

// Summarizer produces fixed-length summaries of article content.
type Summarizer struct {
	gen     llm.Generator
	catalog *prompt.Catalog
	sem     *semaphore.Weighted
}

// NewSummarizer bounds in-flight model calls to workers. The semaphore
// is shared across articles, so concurrency stays bounded no matter how
// many articles run at once. A nil generator disables model calls;
// every summary degrades to the extractive fallback.
func NewSummarizer(gen llm.Generator, catalog *prompt.Catalog, workers int) *Summarizer {
	if workers < 1 {
		workers = 1
	}
	return &Summarizer{
		gen:     gen,
		catalog: catalog,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

// Summarize generates the three summaries for one article. Lengths are
// independent: one failed length leaves its slot empty while the other
// two still count. Only context cancellation aborts.
func (s *Summarizer) Summarize(ctx context.Context, code, title, content string, lang record.Language) (record.SummaryTriple, error) {
	triple := record.SummaryTriple{Code: code}
	if strings.TrimSpace(content) == "" {
		return triple, nil
	}

	results := make(map[int]string, len(Targets))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, words := range Targets {
		// Already short enough: the content is its own summary.
		if wordCount(content) <= words {
			mu.Lock()
			results[words] = strings.TrimSpace(content)
			mu.Unlock()
			continue
		}

		if s.gen == nil {
			mu.Lock()
			results[words] = Fallback(content, words)
			mu.Unlock()
			continue
		}

		if err := s.sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return triple, err
		}
		wg.Add(1)
		go func(words int) {
			defer wg.Done()
			defer s.sem.Release(1)

			text, err := s.generate(ctx, title, content, lang, words)
			if err != nil {
				log.Warn().Err(err).
					Str("code", code).
					Int("words", words).
					Msg("summary generation failed, using fallback")
				text = Fallback(content, words)
			}
			mu.Lock()
			results[words] = text
			mu.Unlock()
		}(words)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return triple, err
	}
	triple.Summary50 = results[50]
	triple.Summary100 = results[100]
	triple.Summary150 = results[150]
	return triple, nil
}

func (s *Summarizer) generate(ctx context.Context, title, content string, lang record.Language, words int) (string, error) {
	p := s.catalog.Summary(lang, title, content, words)
	raw, err := s.gen.Generate(ctx, p, llm.Options{MaxTokens: maxTokensFor(words)})
	if err != nil {
		return "", err
	}

	text, ok := PostProcess(raw, words, lang)
	if !ok {
		return Fallback(content, words), nil
	}
	return text, nil
}

// maxTokensFor leaves headroom over the word target; multi-byte scripts
// and subword tokenizers need more than one token per word.
func maxTokensFor(words int) int {
	return words * 3
}
