package searchserver

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/config"
	"github.com/domino14/lexi_server/internal/lexi"
)

// Server answers lexicon queries over HTTP and connect RPC. The lexicon is
// shared read-only by all requests.
type Server struct {
	Config  *config.Config
	Lexicon *lexi.Lexicon
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	queryDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	log.Debug().Str("query", name).Dur("took", elapsed).Msg("query-done")
}

func observe(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	queriesTotal.WithLabelValues(kind, outcome).Inc()
}
