package dbmaker

import (
	"errors"
	"path/filepath"

	"github.com/domino14/lexi_server/internal/lexi"
)

// LexiconInfo describes the source files for one lexicon database.
type LexiconInfo struct {
	LexiconName      string
	WordsFilename    string
	PopularFilename  string
	DescriptiveName  string
	PopularThreshold int
}

type LexiconMap map[string]*LexiconInfo

func (m LexiconMap) GetLexiconInfo(lexiconName string) (*LexiconInfo, error) {
	if info, ok := m[lexiconName]; ok {
		return info, nil
	}
	return nil, errors.New("lexicon not found")
}

// LexiconMappings lists the lexica we know how to build, with their files
// expected under dataPath.
func LexiconMappings(dataPath string) LexiconMap {
	return LexiconMap{
		"TWL06": {
			LexiconName:      "TWL06",
			WordsFilename:    filepath.Join(dataPath, "twl06.txt"),
			PopularFilename:  filepath.Join(dataPath, "tv2006.txt"),
			DescriptiveName:  "Tournament Word List 2006, ranked by TV and film subtitles",
			PopularThreshold: lexi.DefaultPopularThreshold,
		},
		"TWL06-UNRANKED": {
			LexiconName:      "TWL06-UNRANKED",
			WordsFilename:    filepath.Join(dataPath, "twl06.txt"),
			DescriptiveName:  "Tournament Word List 2006",
			PopularThreshold: lexi.DefaultPopularThreshold,
		},
	}
}
