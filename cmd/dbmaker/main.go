// The caller of the db creator.
package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/dbmaker"
)

type Config struct {
	dbs         string
	forceCreate bool
	outputDir   string
	dataPath    string
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("dbmaker", flag.ContinueOnError)

	fs.StringVar(&c.dbs, "dbs", "", "Pass in comma-separated list of dbs to make")
	fs.BoolVar(&c.forceCreate, "force", false, "Create DB even if it already exists (overwrite)")
	fs.StringVar(&c.outputDir, "outputdir", ".", "The output directory")
	fs.StringVar(&c.dataPath, "datapath", os.Getenv("LEXI_DATA_PATH"), "The data path")
	return fs.Parse(args)
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log.Info().Interface("config", cfg).Msg("dbmaker-started")

	if cfg.dbs == "" {
		log.Fatal().Msg("must provide a list of dbs to make")
	}
	// MkdirAll will make any intermediate dirs but fail gracefully if they exist.
	if err := os.MkdirAll(cfg.outputDir, os.ModePerm); err != nil {
		log.Fatal().Err(err).Msg("outputdir")
	}
	makeDbs(context.Background(), strings.Split(cfg.dbs, ","), dbmaker.LexiconMappings(cfg.dataPath),
		cfg.outputDir, cfg.forceCreate)
}

func makeDbs(ctx context.Context, dbs []string, lexiconMap dbmaker.LexiconMap,
	outputDir string, forceCreation bool) {

	for _, db := range dbs {
		info, err := lexiconMap.GetLexiconInfo(db)
		if err != nil {
			log.Err(err).Msgf("%v was not in list of dbs, skipping...", db)
			continue
		}
		_, err = dbmaker.CreateLexiconDatabase(ctx, info, outputDir, forceCreation)
		switch {
		case errors.Is(err, dbmaker.ErrDBExists):
			log.Info().Str("db", db).Msg("already exists, pass -force to overwrite")
		case err != nil:
			log.Err(err).Str("db", db).Msg("create-failed")
		}
	}
}
