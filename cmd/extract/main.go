package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vetwatch/internal/cache"
	"vetwatch/internal/config"
	"vetwatch/internal/dataset"
	"vetwatch/internal/extract"
	"vetwatch/internal/fetch"
	"vetwatch/internal/llm"
	"vetwatch/internal/pipeline"
	"vetwatch/internal/prompt"
	"vetwatch/internal/store"
	"vetwatch/internal/summary"
	"vetwatch/internal/vocab"
)

func main() {
	var (
		in  = flag.String("in", "input.csv", "input CSV with columns code,url")
		out = flag.String("out", "articles.csv", "output CSV for the extraction artifact")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rows, err := dataset.ReadInput(*in)
	if err != nil {
		log.Fatal().Err(err).Str("path", *in).Msg("failed to read input")
	}
	log.Info().Int("articles", len(rows)).Str("model", cfg.LLM.Model).Msg("starting extraction")

	var (
		gen    llm.Generator
		prober pipeline.Prober
	)
	if cfg.LLM.Enabled {
		client := llm.NewClient(cfg.LLM)
		prober = client
		gen = client
		if cfg.Redis.Addr != "" {
			redisCache, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to connect to Redis")
			}
			defer redisCache.Close()
			gen = llm.WithCache(client, redisCache, cfg.LLM.Model, cfg.Redis.TTL)
		}
	} else {
		log.Info().Msg("model-backed extraction disabled, entity fields stay at the sentinel")
	}

	catalog := prompt.NewCatalog()
	var extractor *extract.Extractor
	if gen != nil {
		extractor = extract.NewExtractor(gen, catalog, cfg.Pool.Workers)
	}
	stage := pipeline.NewStage(fetch.NewFetcher(cfg.Fetch), extractor, vocab.Default())
	summarizer := summary.NewSummarizer(gen, catalog, cfg.Pool.Workers)
	coord := pipeline.NewCoordinator(prober, stage, summarizer)

	records, err := coord.Run(ctx, rows)
	if err != nil {
		log.Fatal().Err(err).Msg("extraction run failed")
	}

	if err := dataset.WriteRecords(*out, records); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("failed to write artifact")
	}

	if cfg.Database.URL != "" {
		db, err := store.New(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		if err := db.SaveRecords(ctx, records); err != nil {
			log.Fatal().Err(err).Msg("failed to save records")
		}
	}

	var failed int
	for _, r := range records {
		if r.Failed() {
			failed++
		}
	}
	log.Info().
		Int("articles", len(records)).
		Int("failed", failed).
		Str("path", *out).
		Msg("extraction finished")
}
