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
	"vetwatch/internal/llm"
	"vetwatch/internal/pipeline"
	"vetwatch/internal/prompt"
	"vetwatch/internal/store"
	"vetwatch/internal/summary"
)

func main() {
	var (
		in  = flag.String("in", "articles.csv", "extraction artifact to summarize")
		out = flag.String("out", "articles_summarized.csv", "output CSV with summary columns")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, _, err := dataset.ReadRecords(*in)
	if err != nil {
		log.Fatal().Err(err).Str("path", *in).Msg("failed to read artifact")
	}
	log.Info().Int("articles", len(records)).Str("model", cfg.LLM.Model).Msg("starting summarization")

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
		log.Info().Msg("model disabled, summaries degrade to extractive fallbacks")
	}

	summarizer := summary.NewSummarizer(gen, prompt.NewCatalog(), cfg.Pool.Workers)
	coord := pipeline.NewCoordinator(prober, nil, summarizer)

	triples, err := coord.RunSummaries(ctx, records)
	if err != nil {
		log.Fatal().Err(err).Msg("summarization run failed")
	}

	if err := dataset.WriteSummarized(*out, records, triples); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("failed to write artifact")
	}

	if cfg.Database.URL != "" {
		db, err := store.New(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		if err := db.SaveSummaries(ctx, triples); err != nil {
			log.Fatal().Err(err).Msg("failed to save summaries")
		}
	}

	log.Info().Int("articles", len(records)).Str("path", *out).Msg("summarization finished")
}
