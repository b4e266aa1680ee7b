package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"vetwatch/internal/dataset"
	"vetwatch/internal/record"
	"vetwatch/internal/summary"
)

// Prober checks the model backend before any work starts.
type Prober interface {
	Probe(ctx context.Context) error
}

// Coordinator drives a batch of articles through the pipeline. A nil
// prober means the run uses no model and skips the startup probe; a
// nil stage is fine for summaries-only use.
type Coordinator struct {
	prober     Prober
	stage      *Stage
	summarizer *summary.Summarizer
}

func NewCoordinator(prober Prober, stage *Stage, summarizer *summary.Summarizer) *Coordinator {
	return &Coordinator{prober: prober, stage: stage, summarizer: summarizer}
}

// Run processes the input rows in order and returns one record per row,
// in input order. The model probe runs first: an unavailable model
// aborts the whole run before any article is touched.
func (c *Coordinator) Run(ctx context.Context, rows []dataset.InputRow) ([]record.ArticleRecord, error) {
	if err := c.probe(ctx); err != nil {
		return nil, err
	}

	records := make([]record.ArticleRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := c.stage.Process(ctx, row.Code, row.URL)
		if err != nil {
			return nil, fmt.Errorf("article %s: %w", row.Code, err)
		}
		records = append(records, rec)
		log.Info().
			Str("code", row.Code).
			Int("done", i+1).
			Int("total", len(rows)).
			Bool("failed", rec.Failed()).
			Msg("article processed")
	}
	return records, nil
}

// RunSummaries generates the three summaries for every record, in
// parallel across articles. Results come back indexed so order matches
// the input. Failure records are skipped: their summaries stay empty
// next to the sentinel fields.
func (c *Coordinator) RunSummaries(ctx context.Context, records []record.ArticleRecord) ([]record.SummaryTriple, error) {
	if err := c.probe(ctx); err != nil {
		return nil, err
	}

	triples := make([]record.SummaryTriple, len(records))
	g, gctx := errgroup.WithContext(ctx)

	for i, rec := range records {
		triples[i] = record.SummaryTriple{Code: rec.Code}
		if rec.Failed() || rec.Content == "" {
			continue
		}
		i, rec := i, rec
		g.Go(func() error {
			triple, err := c.summarizer.Summarize(gctx, rec.Code, rec.Title, rec.Content, rec.Language)
			if err != nil {
				return fmt.Errorf("article %s: %w", rec.Code, err)
			}
			triples[i] = triple
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return triples, nil
}

func (c *Coordinator) probe(ctx context.Context) error {
	if c.prober == nil {
		return nil
	}
	if err := c.prober.Probe(ctx); err != nil {
		return fmt.Errorf("model probe: %w", err)
	}
	return nil
}
