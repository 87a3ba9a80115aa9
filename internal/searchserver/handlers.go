package searchserver

import (
	"net/http"

	"connectrpc.com/connect"
)

// RegisterRoutes adds the JSON endpoints used by the web front end.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/preview", s.handleResults(true))
	mux.HandleFunc("GET /api/results", s.handleResults(false))
	mux.HandleFunc("GET /api/countdown", s.handleCountdown)
	mux.HandleFunc("GET /api/countdown/letters", s.handleCountdownLetters)
	mux.HandleFunc("GET /api/search", s.handleSearch)
}

func (s *Server) handleResults(preview bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, err := intParam(q, "limit")
		if err != nil {
			writeError(w, err)
			return
		}
		resp, err := s.Results(r.Context(), connect.NewRequest(&ResultsRequest{
			Q:       q.Get("q"),
			Goal:    q.Get("goal"),
			Limit:   limit,
			Preview: preview,
		}))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, resp.Msg)
	}
}

func (s *Server) handleCountdown(w http.ResponseWriter, r *http.Request) {
	resp, err := s.Countdown(r.Context(), connect.NewRequest(&CountdownRequest{
		Q: r.URL.Query().Get("q"),
	}))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp.Msg)
}

func (s *Server) handleCountdownLetters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &ChallengeRequest{Letters: q.Get("letters")}
	var err error
	for name, dst := range map[string]*int{
		"vowels":     &req.Vowels,
		"consonants": &req.Consonants,
		"min_length": &req.MinLength,
	} {
		if *dst, err = intParam(q, name); err != nil {
			writeError(w, err)
			return
		}
	}
	resp, err := s.CountdownChallenge(r.Context(), connect.NewRequest(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp.Msg)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	params, err := searchParams(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.Search(r.Context(), connect.NewRequest(params))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp.Msg)
}
