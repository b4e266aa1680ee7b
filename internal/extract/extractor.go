package extract

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

// entityMaxTokens bounds single-value answers; entities are a few words.
const entityMaxTokens = 200

// Result carries the raw model answers for one article, one per task.
// Values are uncanonicalized; a failed or "nothing found" task is empty.
type Result struct {
	Date         string
	Disease      string
	Animal       string
	Location     string
	Organization string
}

// Extractor runs the five entity extraction tasks against a model.
type Extractor struct {
	gen     llm.Generator
	catalog *prompt.Catalog
	sem     *semaphore.Weighted
}

// NewExtractor bounds in-flight model calls to workers.
func NewExtractor(gen llm.Generator, catalog *prompt.Catalog, workers int) *Extractor {
	if workers < 1 {
		workers = 1
	}
	return &Extractor{
		gen:     gen,
		catalog: catalog,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

// Extract runs all entity tasks for one article concurrently. A single
// failing task logs and yields an empty value; the others still count.
// Only context cancellation aborts the batch.
func (e *Extractor) Extract(ctx context.Context, code, title, content string, lang record.Language) (Result, error) {
	answers := make(map[prompt.Task]string, len(prompt.EntityTasks))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, task := range prompt.EntityTasks {
		if err := e.sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return Result{}, err
		}
		wg.Add(1)
		go func(task prompt.Task) {
			defer wg.Done()
			defer e.sem.Release(1)

			answer, err := e.runTask(ctx, task, title, content, lang)
			if err != nil {
				log.Warn().Err(err).
					Str("code", code).
					Str("task", string(task)).
					Msg("entity extraction failed")
				return
			}
			mu.Lock()
			answers[task] = answer
			mu.Unlock()
		}(task)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{
		Date:         answers[prompt.TaskDate],
		Disease:      answers[prompt.TaskDisease],
		Animal:       answers[prompt.TaskAnimal],
		Location:     answers[prompt.TaskLocation],
		Organization: answers[prompt.TaskOrganization],
	}, nil
}

func (e *Extractor) runTask(ctx context.Context, task prompt.Task, title, content string, lang record.Language) (string, error) {
	p := e.catalog.Entity(task, lang, title, content)
	answer, err := e.gen.Generate(ctx, p, llm.Options{MaxTokens: entityMaxTokens})
	if err != nil {
		return "", err
	}
	return normalizeAnswer(answer), nil
}

// normalizeAnswer collapses the per-language "nothing found" markers to
// the empty string so canonicalization sees one shape of absence.
func normalizeAnswer(answer string) string {
	answer = strings.TrimSpace(answer)
	upper := strings.ToUpper(strings.Trim(answer, `"'.`))
	switch upper {
	case prompt.NotFoundMarkerFr, prompt.NotFoundMarkerFr + "E", prompt.NotFoundMarkerEn:
		return ""
	}
	return answer
}
