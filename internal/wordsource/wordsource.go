// Package wordsource reads the word and popularity lists a lexicon is built
// from.
package wordsource

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// sqlite3 driver for lexicon databases built by dbmaker.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/lexi_server/config"
	"github.com/domino14/lexi_server/internal/lexi"
)

var ErrNoWords = errors.New("word list is empty")

// Lists holds the raw lexicon input: every word, and the words ordered from
// most to least popular.
type Lists struct {
	Words   []string
	Popular []string
}

// ReadLines reads one entry per line, trimming surrounding whitespace and
// skipping blank lines.
func ReadLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// LoadText reads the two newline-delimited lists concurrently. popularPath
// may be empty, in which case nothing is ranked.
func LoadText(ctx context.Context, wordsPath, popularPath string) (*Lists, error) {
	lists := &Lists{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		words, err := readFile(wordsPath)
		if err != nil {
			return err
		}
		lists.Words = words
		return nil
	})
	if popularPath != "" {
		g.Go(func() error {
			popular, err := readFile(popularPath)
			if err != nil {
				return err
			}
			lists.Popular = popular
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(lists.Words) == 0 {
		return nil, fmt.Errorf("%s: %w", wordsPath, ErrNoWords)
	}
	return lists, nil
}

// LoadSQLite reads lists out of a database made by dbmaker.
func LoadSQLite(ctx context.Context, dbPath string) (*Lists, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	lists := &Lists{}
	lists.Words, err = queryStrings(ctx, db, "SELECT word FROM words ORDER BY idx")
	if err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	lists.Popular, err = queryStrings(ctx, db, "SELECT word FROM popular ORDER BY rank")
	if err != nil {
		return nil, fmt.Errorf("reading popular words: %w", err)
	}
	if len(lists.Words) == 0 {
		return nil, fmt.Errorf("%s: %w", dbPath, ErrNoWords)
	}
	return lists, nil
}

func queryStrings(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	strs := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		strs = append(strs, s)
	}
	return strs, rows.Err()
}

// Load builds the lexicon named by the config, preferring the database when
// one is configured.
func Load(ctx context.Context, cfg *config.Config) (*lexi.Lexicon, error) {
	start := time.Now()
	var lists *Lists
	var err error
	if cfg.LexiconDBPath != "" {
		lists, err = LoadSQLite(ctx, cfg.LexiconDBPath)
	} else {
		lists, err = LoadText(ctx, cfg.WordListPath, cfg.PopularListPath)
	}
	if err != nil {
		return nil, err
	}
	lex := lexi.New(lists.Words, lists.Popular, cfg.PopularThreshold)
	log.Info().Int("words", lex.Len()).Int("popular", len(lists.Popular)).
		Dur("took", time.Since(start)).Msg("lexicon-loaded")
	return lex, nil
}
