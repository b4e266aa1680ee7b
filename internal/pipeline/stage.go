package pipeline

import (
	"context"

	"github.com/rs/zerolog/log"

	"vetwatch/internal/extract"
	"vetwatch/internal/fetch"
	"vetwatch/internal/record"
	"vetwatch/internal/vocab"
)

// Stage turns one input URL into one dataset record. Failures never
// propagate as errors: an unreachable or unreadable article produces a
// failure record and the batch moves on.
type Stage struct {
	fetcher   *fetch.Fetcher
	extractor *extract.Extractor
	vocab     *vocab.Vocabulary
}

// NewStage wires the stage. A nil extractor runs the stage model-free:
// fetch, language, source type and structural dates still happen, the
// entity fields stay at the sentinel.
func NewStage(fetcher *fetch.Fetcher, extractor *extract.Extractor, v *vocab.Vocabulary) *Stage {
	return &Stage{fetcher: fetcher, extractor: extractor, vocab: v}
}

// Process fetches, classifies and extracts one article. The returned
// record is always complete: sentinel values fill whatever could not be
// determined. Returns an error only on context cancellation.
func (s *Stage) Process(ctx context.Context, code, url string) (record.ArticleRecord, error) {
	rec := record.ArticleRecord{Code: code, URL: url, SourceType: fetch.ClassifySource(url)}

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return rec, ctx.Err()
		}
		log.Warn().Err(err).Str("code", code).Str("url", url).Msg("article fetch failed")
		rec.MarkFailed(err.Error())
		return rec, nil
	}

	rec.Title = page.Title
	rec.SetContent(page.Content)
	rec.Language = fetch.DetectLanguage(page.Content, page.LangHint)

	if s.extractor == nil {
		rec.Disease = record.NotDetected
		rec.Animal = record.NotDetected
		rec.Location = record.NotDetected
		rec.Organization = record.NotDetected
		rec.PublicationDate = fetch.ResolveDate(page, url)
		if rec.PublicationDate == "" {
			rec.PublicationDate = record.NotDetected
		}
		return rec, nil
	}

	res, err := s.extractor.Extract(ctx, code, rec.Title, rec.Content, rec.Language)
	if err != nil {
		return rec, err
	}

	rec.Disease = s.vocab.Canonicalize(res.Disease, vocab.KindDisease, rec.Language)
	rec.Animal = s.vocab.Canonicalize(res.Animal, vocab.KindAnimal, rec.Language)
	rec.Location = s.vocab.Canonicalize(res.Location, vocab.KindLocation, rec.Language)
	rec.Organization = s.vocab.Canonicalize(res.Organization, vocab.KindOrganization, rec.Language)

	// Page metadata and URL beat the model on dates; the model answer
	// is the last resort.
	if date := fetch.ResolveDate(page, url); date != "" {
		rec.PublicationDate = date
	} else {
		rec.PublicationDate = s.vocab.Canonicalize(res.Date, vocab.KindDate, rec.Language)
	}
	return rec, nil
}
