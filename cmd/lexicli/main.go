// lexicli queries a lexicon from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/config"
	"github.com/domino14/lexi_server/internal/lexi"
	"github.com/domino14/lexi_server/internal/searchserver"
	"github.com/domino14/lexi_server/internal/wordsource"
)

// Use more specific env var names here to avoid colliding with other
// env vars user might have on their system.
var LogLevel = os.Getenv("LEXICLI_LOG_LEVEL")

type Config struct {
	lexicon config.Config

	grep       string
	ignoreCase bool
	anagram    string
	countdown  string
	limit      int

	search searchserver.SearchParams
	// oneWord is "", "true" or "false".
	oneWord string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("lexicli", flag.ContinueOnError)

	fs.StringVar(&c.lexicon.WordListPath, "word-list-path", "twl06.txt", "newline-delimited list of every word")
	fs.StringVar(&c.lexicon.PopularListPath, "popular-list-path", "tv2006.txt", "words ordered from most to least popular")
	fs.StringVar(&c.lexicon.LexiconDBPath, "lexicon-db-path", "", "sqlite lexicon made by dbmaker")
	fs.IntVar(&c.lexicon.PopularThreshold, "popular-threshold", lexi.DefaultPopularThreshold, "words ranked under this are rated high")

	fs.StringVar(&c.grep, "grep", "", "print words matching this regular expression")
	fs.BoolVar(&c.ignoreCase, "i", false, "case-insensitive grep")
	fs.StringVar(&c.anagram, "anagram", "", "print the multi-word anagrams of these letters")
	fs.StringVar(&c.countdown, "countdown", "", "print the best countdown words for these letters")
	fs.IntVar(&c.limit, "limit", 50, "how many anagrams or countdown words to print")

	fs.StringVar(&c.search.Contains, "contains", "", "words containing all of these letters")
	fs.StringVar(&c.search.Contained, "contained", "", "words spelled only from these letters")
	fs.StringVar(&c.search.Excluded, "exclude", "", "words without any of these letters")
	fs.StringVar(&c.search.Included, "include", "", "words using every one of these letters at least once")
	fs.StringVar(&c.search.Length, "length", "", "word length, N or N-M")
	fs.StringVar(&c.oneWord, "one-word", "", "true for single words only, false for phrases only")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.oneWord != "" {
		b, err := strconv.ParseBool(c.oneWord)
		if err != nil {
			return fmt.Errorf("one-word: %w", err)
		}
		c.search.OneWord = &b
	}
	return nil
}

var (
	popularityStyles = map[lexi.Popularity]lipgloss.Style{
		lexi.High:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		lexi.Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		lexi.Low:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	qualityStyles = map[lexi.Quality]lipgloss.Style{
		lexi.VeryPopular: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		lexi.LessPopular: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		lexi.NotPopular:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		lexi.NotWord:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

func ratedString(words []searchserver.RatedWord) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = popularityStyles[w.Rating].Render(w.Word)
	}
	return strings.Join(parts, " ")
}

func run(ctx context.Context, cfg *Config, lex *lexi.Lexicon, out io.Writer) error {
	switch {
	case cfg.grep != "":
		re, err := lexi.CompileGrep(cfg.grep, cfg.ignoreCase)
		if err != nil {
			return err
		}
		for _, w := range lex.Grep(re) {
			fmt.Fprintln(out, w)
		}

	case cfg.anagram != "":
		res := searchserver.Decompositions(ctx, lex, cfg.anagram, cfg.limit, 0)
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d anagrams of %s", res.NumTotal, cfg.anagram)))
		for _, d := range res.Anagrams {
			fmt.Fprintln(out, ratedString(d.Words))
		}

	case cfg.countdown != "":
		res := searchserver.Countdown(lex, cfg.countdown, cfg.limit)
		for _, w := range res.Words {
			fmt.Fprintln(out, w)
		}

	default:
		if cfg.search.Filter().IsEmpty() {
			return errors.New("nothing to do; pass -grep, -anagram, -countdown or a search constraint")
		}
		res := searchserver.Search(lex, cfg.search, searchserver.NoLimit)
		if res.Type == searchserver.TypeAnagrams {
			for _, h := range res.Hits {
				fmt.Fprintf(out, "%s + %s = %s\n", h.Query,
					qualityStyles[h.Short.Quality].Render(h.Short.Word),
					qualityStyles[h.Long.Quality].Render(h.Long.Word))
			}
			return nil
		}
		ratings := make(map[string]lexi.Popularity, len(res.Words))
		for e := range lex.Matching(cfg.search.Filter()) {
			ratings[e.Word] = lex.Rate(e)
		}
		for _, w := range res.Words {
			fmt.Fprintln(out, popularityStyles[ratings[w]].Render(w))
		}
	}
	return nil
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if strings.ToLower(LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Interface("config", cfg).Msg("input")

	ctx := context.Background()
	lex, err := wordsource.Load(ctx, &cfg.lexicon)
	if err != nil {
		log.Fatal().Err(err).Msg("load-lexicon")
	}
	if err := run(ctx, cfg, lex, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
