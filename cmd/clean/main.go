package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vetwatch/internal/dataset"
)

func main() {
	var (
		in  = flag.String("in", "articles_summarized.csv", "artifact to clean")
		out = flag.String("out", "articles_final.csv", "cleaned output CSV")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := dataset.CleanFile(*in, *out); err != nil {
		log.Fatal().Err(err).Str("path", *in).Msg("cleaning failed")
	}
	log.Info().Str("in", *in).Str("out", *out).Msg("artifact cleaned")
}
