package main

import (
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/domino14/lexi_server/internal/searchserver"
)

// Useful for chat bots

const (
	txtLimit = 375
)

func writeError(w http.ResponseWriter, err string) {
	w.WriteHeader(400)
	w.Write([]byte(err))
}

func plainTextHandler(s *searchserver.Server) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Query().Get("method")
		if method == "" {
			writeError(w, "method required")
			return
		}
		switch method {
		case "anagram":
			anagram(s, w, r)
		case "subwords":
			subwords(s, w, r)
		case "countdown":
			countdown(s, w, r)
		case "search":
			search(s, w, r)
		default:
			writeError(w, "method not found")
		}
	})
}

func writeWords(w http.ResponseWriter, words []string) {
	var s strings.Builder

	if len(words) == 0 {
		w.Write([]byte("no words found"))
		return
	}
	plural := ""
	if len(words) > 1 {
		plural = "s"
	}

	s.WriteString(fmt.Sprintf("%d word%s found: ", len(words), plural))
	for _, w := range words {
		s.WriteString(w)
		s.WriteString(" ")
		if s.Len() > txtLimit {
			s.WriteString(" (...truncated)")
			break
		}
	}
	w.Write([]byte(strings.TrimSpace(s.String())))
}

func letters(w http.ResponseWriter, r *http.Request) (string, bool) {
	l := r.URL.Query().Get("letters")
	if l == "" {
		writeError(w, "letters required")
		return "", false
	}
	return l, true
}

func anagram(s *searchserver.Server, w http.ResponseWriter, r *http.Request) {
	l, ok := letters(w, r)
	if !ok {
		return
	}
	res, err := s.Results(r.Context(), connect.NewRequest(&searchserver.ResultsRequest{
		Q: l, Goal: string(searchserver.GoalAnagram)}))
	if err != nil {
		writeError(w, err.Error())
		return
	}
	words := make([]string, 0, len(res.Msg.Anagrams))
	for _, d := range res.Msg.Anagrams {
		parts := make([]string, len(d.Words))
		for i, rw := range d.Words {
			parts[i] = rw.Word
		}
		words = append(words, strings.Join(parts, "+"))
	}
	writeWords(w, words)
}

func subwords(s *searchserver.Server, w http.ResponseWriter, r *http.Request) {
	l, ok := letters(w, r)
	if !ok {
		return
	}
	res, err := s.Results(r.Context(), connect.NewRequest(&searchserver.ResultsRequest{
		Q: l, Goal: string(searchserver.GoalConnect)}))
	if err != nil {
		writeError(w, err.Error())
		return
	}
	words := []string{}
	for _, g := range res.Msg.Groups {
		for _, rw := range g.Words {
			words = append(words, rw.Word)
		}
	}
	writeWords(w, words)
}

func countdown(s *searchserver.Server, w http.ResponseWriter, r *http.Request) {
	l, ok := letters(w, r)
	if !ok {
		return
	}
	res, err := s.Countdown(r.Context(), connect.NewRequest(&searchserver.CountdownRequest{Q: l}))
	if err != nil {
		writeError(w, err.Error())
		return
	}
	writeWords(w, res.Msg.Words)
}

func search(s *searchserver.Server, w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.Search(r.Context(), connect.NewRequest(&searchserver.SearchParams{
		Contains:  q.Get("contains"),
		Contained: q.Get("contained"),
		Excluded:  q.Get("excluded"),
		Included:  q.Get("included"),
		Length:    q.Get("length"),
	}))
	if err != nil {
		writeError(w, err.Error())
		return
	}
	switch res.Msg.Type {
	case searchserver.TypeOversize:
		w.Write([]byte(fmt.Sprintf("more than %d results, narrow your search.", res.Msg.MaxHits)))
	case searchserver.TypeAnagrams:
		words := make([]string, len(res.Msg.Hits))
		for i, h := range res.Msg.Hits {
			words[i] = h.Long.Word
		}
		writeWords(w, words)
	default:
		writeWords(w, res.Msg.Words)
	}
}
