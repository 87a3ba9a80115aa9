package dbmaker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	// sqlite3 driver is used to write the lexicon databases.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/internal/lexi"
	"github.com/domino14/lexi_server/internal/wordsource"
)

var ErrDBExists = errors.New("database already exists")

const schema = `
CREATE TABLE words (
	idx INTEGER PRIMARY KEY,
	word TEXT NOT NULL,
	alphagram TEXT NOT NULL,
	length INTEGER NOT NULL,
	one_word INTEGER NOT NULL,
	popularity_rank INTEGER
);
CREATE INDEX word_alphagram_index ON words(alphagram);
CREATE TABLE alphagrams (
	alphagram TEXT PRIMARY KEY,
	length INTEGER NOT NULL,
	num_anagrams INTEGER NOT NULL,
	best_rank INTEGER
);
CREATE TABLE popular (
	rank INTEGER PRIMARY KEY,
	word TEXT NOT NULL
);
CREATE TABLE lexicon_info (
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	popular_threshold INTEGER NOT NULL
);
`

// Alphagram groups the entries of one anagram class.
type Alphagram struct {
	alphagram string
	length    int
	words     []string
	bestRank  int
	ranked    bool
}

func (a *Alphagram) String() string {
	return fmt.Sprintf("Alphagram: %s (%d)", a.alphagram, len(a.words))
}

// AlphByLength sorts longest first, then alphabetically.
type AlphByLength []*Alphagram

func (a AlphByLength) Len() int      { return len(a) }
func (a AlphByLength) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a AlphByLength) Less(i, j int) bool {
	if a[i].length == a[j].length {
		return a[i].alphagram < a[j].alphagram
	}
	return a[i].length > a[j].length
}

func populateAlphagrams(lex *lexi.Lexicon) []*Alphagram {
	byAlph := map[string]*Alphagram{}
	for e := range lex.All() {
		key := MakeAlphagram(e.Word)
		alph, ok := byAlph[key]
		if !ok {
			alph = &Alphagram{alphagram: key, length: e.Len}
			byAlph[key] = alph
		}
		alph.words = append(alph.words, e.Word)
		if r, ok := e.Rank(); ok && (!alph.ranked || r < alph.bestRank) {
			alph.bestRank, alph.ranked = r, true
		}
	}
	alphs := make([]*Alphagram, 0, len(byAlph))
	for _, a := range byAlph {
		alphs = append(alphs, a)
	}
	sort.Sort(AlphByLength(alphs))
	return alphs
}

func nullableRank(r int, ok bool) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(r), Valid: ok}
}

// CreateLexiconDatabase writes <outputDir>/<name>.db from the lexicon's
// source files. An existing database is only replaced if force is set.
func CreateLexiconDatabase(ctx context.Context, info *LexiconInfo, outputDir string,
	force bool) (string, error) {

	dbName := filepath.Join(outputDir, info.LexiconName+".db")
	if _, err := os.Stat(dbName); err == nil {
		if !force {
			return "", fmt.Errorf("%s: %w", dbName, ErrDBExists)
		}
		log.Info().Str("db", dbName).Msg("removing-existing-db")
		if err := os.Remove(dbName); err != nil {
			return "", err
		}
	}

	lists, err := wordsource.LoadText(ctx, info.WordsFilename, info.PopularFilename)
	if err != nil {
		return "", err
	}
	lex := lexi.New(lists.Words, lists.Popular, info.PopularThreshold)
	alphs := populateAlphagrams(lex)

	db, err := sql.Open("sqlite3", dbName)
	if err != nil {
		return "", err
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return "", fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	if err := insertAll(ctx, tx, info, lex, lists.Popular, alphs); err != nil {
		tx.Rollback()
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	log.Info().Str("db", dbName).Int("words", lex.Len()).Int("alphagrams", len(alphs)).
		Msg("created-lexicon-db")
	return dbName, nil
}

func insertAll(ctx context.Context, tx *sql.Tx, info *LexiconInfo, lex *lexi.Lexicon,
	popular []string, alphs []*Alphagram) error {

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO lexicon_info(name, description, popular_threshold) VALUES(?, ?, ?)`,
		info.LexiconName, info.DescriptiveName, info.PopularThreshold); err != nil {
		return err
	}

	wordStmt, err := tx.PrepareContext(ctx, `INSERT INTO words(idx, word, alphagram, length,
		one_word, popularity_rank) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer wordStmt.Close()
	for i := 0; i < lex.Len(); i++ {
		e := lex.Entry(i)
		if _, err := wordStmt.ExecContext(ctx, i, e.Word, MakeAlphagram(e.Word), e.Len,
			e.SingleWord, nullableRank(e.Rank())); err != nil {
			return err
		}
	}

	alphStmt, err := tx.PrepareContext(ctx, `INSERT INTO alphagrams(alphagram, length,
		num_anagrams, best_rank) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer alphStmt.Close()
	for _, a := range alphs {
		if _, err := alphStmt.ExecContext(ctx, a.alphagram, a.length, len(a.words),
			nullableRank(a.bestRank, a.ranked)); err != nil {
			return err
		}
	}

	popStmt, err := tx.PrepareContext(ctx, `INSERT INTO popular(rank, word) VALUES(?, ?)`)
	if err != nil {
		return err
	}
	defer popStmt.Close()
	for i, w := range popular {
		if _, err := popStmt.ExecContext(ctx, i, w); err != nil {
			return err
		}
	}
	return nil
}
