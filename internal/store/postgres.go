package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetwatch/internal/record"
)

// Store persists dataset records in Postgres, keyed by article code so
// re-running a batch upserts instead of duplicating.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL and ensures the schema exists.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	s := &Store{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS articles (
    code             TEXT PRIMARY KEY,
    url              TEXT NOT NULL,
    title            TEXT NOT NULL DEFAULT '',
    content          TEXT NOT NULL DEFAULT '',
    language         TEXT NOT NULL DEFAULT 'unknown',
    publication_date TEXT NOT NULL DEFAULT '',
    location         TEXT NOT NULL DEFAULT '',
    disease          TEXT NOT NULL DEFAULT '',
    animal           TEXT NOT NULL DEFAULT '',
    organization     TEXT NOT NULL DEFAULT '',
    source_type      TEXT NOT NULL DEFAULT '',
    char_count       INTEGER NOT NULL DEFAULT 0,
    word_count       INTEGER NOT NULL DEFAULT 0,
    error            TEXT NOT NULL DEFAULT '',
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS summaries (
    code        TEXT PRIMARY KEY REFERENCES articles(code) ON DELETE CASCADE,
    summary_50  TEXT NOT NULL DEFAULT '',
    summary_100 TEXT NOT NULL DEFAULT '',
    summary_150 TEXT NOT NULL DEFAULT '',
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveRecords upserts a batch of records in one transaction.
func (s *Store) SaveRecords(ctx context.Context, records []record.ArticleRecord) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		const q = `
INSERT INTO articles (code, url, title, content, language, publication_date,
                      location, disease, animal, organization, source_type,
                      char_count, word_count, error, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
ON CONFLICT (code) DO UPDATE SET
    url = EXCLUDED.url, title = EXCLUDED.title, content = EXCLUDED.content,
    language = EXCLUDED.language, publication_date = EXCLUDED.publication_date,
    location = EXCLUDED.location, disease = EXCLUDED.disease,
    animal = EXCLUDED.animal, organization = EXCLUDED.organization,
    source_type = EXCLUDED.source_type, char_count = EXCLUDED.char_count,
    word_count = EXCLUDED.word_count, error = EXCLUDED.error,
    updated_at = now()`
		for _, r := range records {
			_, err := tx.Exec(ctx, q,
				r.Code, r.URL, r.Title, r.Content, string(r.Language),
				r.PublicationDate, r.Location, r.Disease, r.Animal,
				r.Organization, r.SourceType, r.CharCount, r.WordCount, r.Error)
			if err != nil {
				return fmt.Errorf("save article %s: %w", r.Code, err)
			}
		}
		return nil
	})
}

// SaveSummaries upserts the summary triples in one transaction.
func (s *Store) SaveSummaries(ctx context.Context, triples []record.SummaryTriple) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		const q = `
INSERT INTO summaries (code, summary_50, summary_100, summary_150, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (code) DO UPDATE SET
    summary_50 = EXCLUDED.summary_50, summary_100 = EXCLUDED.summary_100,
    summary_150 = EXCLUDED.summary_150, updated_at = now()`
		for _, t := range triples {
			if _, err := tx.Exec(ctx, q, t.Code, t.Summary50, t.Summary100, t.Summary150); err != nil {
				return fmt.Errorf("save summaries %s: %w", t.Code, err)
			}
		}
		return nil
	})
}

func (s *Store) Close() {
	s.pool.Close()
}
