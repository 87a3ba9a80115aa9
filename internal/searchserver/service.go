package searchserver

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/internal/auth"
	"github.com/domino14/lexi_server/internal/countdown"
	"github.com/domino14/lexi_server/internal/lexi"
)

type ResultsRequest struct {
	Q       string `json:"q"`
	Goal    string `json:"goal"`
	Limit   int    `json:"limit"`
	Preview bool   `json:"preview"`
}

type CountdownRequest struct {
	Q string `json:"q"`
}

type ChallengeRequest struct {
	Vowels     int `json:"vowels"`
	Consonants int `json:"consonants"`
	// MinLength asks for a selection whose best word has at least this many
	// letters. Zero means any selection will do.
	MinLength int `json:"min_length"`
	// Letters, when set, is drawn from the piles as given instead of picking
	// at random. The counts above are then ignored.
	Letters string `json:"letters"`
}

// MaxTermLength bounds every query term. Letter multisets count each letter
// in a byte, so terms are kept far below where a count could saturate.
const MaxTermLength = 64

// checkTerms rejects any term longer than MaxTermLength.
func checkTerms(terms ...string) error {
	for _, t := range terms {
		if len(t) > MaxTermLength {
			return invalidArgError(fmt.Sprintf("query term longer than %d characters", MaxTermLength))
		}
	}
	return nil
}

func invalidArgError(msg string) error {
	return connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
}

func (s *Server) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Config.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Config.QueryTimeout)
}

// resultLimit works out how many results a caller gets to see.
func (s *Server) resultLimit(ctx context.Context, req *ResultsRequest) int {
	limit := NoLimit
	switch {
	case req.Preview:
		limit = s.Config.PreviewLimit
	case req.Limit > 0:
		limit = req.Limit
	}
	if maxn := s.Config.MaxNonmemberResults; maxn > 0 && !auth.IsMember(ctx) &&
		(limit == NoLimit || limit > maxn) {
		limit = maxn
	}
	return limit
}

func (s *Server) Results(ctx context.Context, req *connect.Request[ResultsRequest]) (
	*connect.Response[CountedResults], error) {
	defer timeTrack(time.Now(), "results")

	if err := checkTerms(req.Msg.Q); err != nil {
		observe("results", err)
		return nil, err
	}
	goal, err := ParseGoal(req.Msg.Goal)
	if err != nil {
		observe("results", err)
		return nil, invalidArgError(err.Error())
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	limit := s.resultLimit(ctx, req.Msg)
	log.Info().Str("q", req.Msg.Q).Str("goal", string(goal)).Int("limit", limit).
		Bool("preview", req.Msg.Preview).Msg("results-request")
	res := Results(ctx, s.Lexicon, req.Msg.Q, goal, limit, s.Config.MaxDecompositions)
	observe("results", nil)
	return connect.NewResponse(&res), nil
}

func (s *Server) Countdown(ctx context.Context, req *connect.Request[CountdownRequest]) (
	*connect.Response[CountdownResults], error) {
	defer timeTrack(time.Now(), "countdown")

	if err := checkTerms(req.Msg.Q); err != nil {
		observe("countdown", err)
		return nil, err
	}
	res := Countdown(s.Lexicon, req.Msg.Q, s.Config.CountdownLimit)
	observe("countdown", nil)
	return connect.NewResponse(&res), nil
}

func (s *Server) Search(ctx context.Context, req *connect.Request[SearchParams]) (
	*connect.Response[SearchResults], error) {
	defer timeTrack(time.Now(), "search")

	p := req.Msg
	if err := checkTerms(p.Contains, p.Contained, p.Excluded, p.Included, p.Length); err != nil {
		observe("search", err)
		return nil, err
	}
	if p.Length != "" {
		if _, err := lexi.ParseLengthRange(p.Length); err != nil {
			observe("search", err)
			return nil, invalidArgError(err.Error())
		}
	}
	f := p.Filter()
	if f.IsEmpty() {
		observe("search", errors.New("empty filter"))
		return nil, invalidArgError("no filter specified")
	}
	log.Info().Str("filter", f.String()).Msg("search-request")
	res := Search(s.Lexicon, *p, s.Config.MaxResults)
	observe("search", nil)
	return connect.NewResponse(&res), nil
}

func (s *Server) CountdownChallenge(ctx context.Context, req *connect.Request[ChallengeRequest]) (
	*connect.Response[CountdownLetters], error) {
	defer timeTrack(time.Now(), "countdown-challenge")

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if err := checkTerms(req.Msg.Letters); err != nil {
		observe("countdown-challenge", err)
		return nil, err
	}
	if req.Msg.Letters != "" {
		return s.setChallenge(rng, req.Msg.Letters)
	}
	v, c := req.Msg.Vowels, req.Msg.Consonants
	if req.Msg.MinLength <= 0 {
		p, err := countdown.Pick(rng, v, c)
		if err != nil {
			observe("countdown-challenge", err)
			return nil, invalidArgError(err.Error())
		}
		observe("countdown-challenge", nil)
		return connect.NewResponse(&CountdownLetters{Letters: p.Letters()}), nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ch, err := countdown.GenerateChallenge(ctx, s.Lexicon, rng, v, c, req.Msg.MinLength,
		s.Config.CountdownLimit)
	observe("countdown-challenge", err)
	switch {
	case errors.Is(err, countdown.ErrBadPick):
		return nil, invalidArgError(err.Error())
	case errors.Is(err, countdown.ErrNoSolution):
		return nil, connect.NewError(connect.CodeDeadlineExceeded, err)
	case err != nil:
		return nil, err
	}
	return connect.NewResponse(&CountdownLetters{Letters: ch.Letters, Best: ch.Best}), nil
}

// setChallenge answers a selection the caller chose themselves.
func (s *Server) setChallenge(rng *rand.Rand, letters string) (*connect.Response[CountdownLetters], error) {
	p := countdown.Set(rng, letters)
	if !p.CanSubmit() {
		observe("countdown-challenge", countdown.ErrBadPick)
		return nil, invalidArgError(fmt.Sprintf("%q: %v", letters, countdown.ErrBadPick))
	}
	v, c := p.Remaining()
	log.Debug().Str("letters", p.Letters()).Int("vowels-left", v).Int("consonants-left", c).
		Msg("countdown-set")
	res := Countdown(s.Lexicon, p.Letters(), s.Config.CountdownLimit)
	observe("countdown-challenge", nil)
	return connect.NewResponse(&CountdownLetters{Letters: p.Letters(), Best: res.Words}), nil
}
