package config

import (
	"time"

	"github.com/namsral/flag"
)

type Config struct {
	WordListPath     string
	PopularListPath  string
	LexiconDBPath    string
	PopularThreshold int

	ListenAddr   string
	AssetsDir    string
	QueryTimeout time.Duration
	SecretKey    string

	MaxResults          int
	PreviewLimit        int
	CountdownLimit      int
	MaxDecompositions   int
	MaxNonmemberResults int

	LogLevel string
}

// Load loads the configs from the given arguments. Every flag may also be
// set through its upper-cased environment variable, e.g. WORD_LIST_PATH.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("lexi", flag.ContinueOnError)

	fs.String(flag.DefaultConfigFlagname, "", "path to a config file")
	fs.StringVar(&c.WordListPath, "word-list-path", "twl06.txt", "newline-delimited list of every word")
	fs.StringVar(&c.PopularListPath, "popular-list-path", "tv2006.txt", "words ordered from most to least popular")
	fs.StringVar(&c.LexiconDBPath, "lexicon-db-path", "", "sqlite lexicon made by dbmaker; overrides the text lists")
	fs.IntVar(&c.PopularThreshold, "popular-threshold", 10000, "words ranked under this are rated high")

	fs.StringVar(&c.ListenAddr, "listen-addr", "127.0.0.1:3000", "address to listen on")
	fs.StringVar(&c.AssetsDir, "assets-dir", "./build", "directory with the static front end")
	fs.DurationVar(&c.QueryTimeout, "query-timeout", 5*time.Second, "how long a single query may run")
	fs.StringVar(&c.SecretKey, "secret-key", "", "HMAC secret for JWTs; empty disables auth")

	fs.IntVar(&c.MaxResults, "max-results", 100, "word searches with more hits than this are rejected as oversize")
	fs.IntVar(&c.PreviewLimit, "preview-limit", 10, "results shown in a preview")
	fs.IntVar(&c.CountdownLimit, "countdown-limit", 10, "words returned for a countdown query")
	fs.IntVar(&c.MaxDecompositions, "max-decompositions", 100000, "stop enumerating anagrams after this many results")
	fs.IntVar(&c.MaxNonmemberResults, "max-nonmember-results", 500, "result limit for callers that aren't members")

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	return fs.Parse(args)
}
