package searchserver

import (
	"context"
	"encoding/json"
	"net/http"

	"connectrpc.com/connect"
)

const (
	ServiceName = "lexi.v1.LexiconService"

	ResultsProcedure            = "/" + ServiceName + "/Results"
	CountdownProcedure          = "/" + ServiceName + "/Countdown"
	SearchProcedure             = "/" + ServiceName + "/Search"
	CountdownChallengeProcedure = "/" + ServiceName + "/CountdownChallenge"
)

// JSONCodec lets connect carry plain Go structs as JSON. It replaces
// connect's built-in "json" codec, which only handles protobuf messages.
type JSONCodec struct{}

func (JSONCodec) Name() string                          { return "json" }
func (JSONCodec) Marshal(msg any) ([]byte, error)       { return json.Marshal(msg) }
func (JSONCodec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }

// NewHandler mounts the lexicon service. The returned path is the prefix to
// register on a mux.
func NewHandler(s *Server, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ResultsProcedure, connect.NewUnaryHandler(ResultsProcedure, s.Results, opts...))
	mux.Handle(CountdownProcedure, connect.NewUnaryHandler(CountdownProcedure, s.Countdown, opts...))
	mux.Handle(SearchProcedure, connect.NewUnaryHandler(SearchProcedure, s.Search, opts...))
	mux.Handle(CountdownChallengeProcedure,
		connect.NewUnaryHandler(CountdownChallengeProcedure, s.CountdownChallenge, opts...))
	return "/" + ServiceName + "/", mux
}

// Client calls the lexicon service. It is used by the TUI and in tests.
type Client struct {
	results   *connect.Client[ResultsRequest, CountedResults]
	countdown *connect.Client[CountdownRequest, CountdownResults]
	search    *connect.Client[SearchParams, SearchResults]
	challenge *connect.Client[ChallengeRequest, CountdownLetters]
}

func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &Client{
		results:   connect.NewClient[ResultsRequest, CountedResults](httpClient, baseURL+ResultsProcedure, opts...),
		countdown: connect.NewClient[CountdownRequest, CountdownResults](httpClient, baseURL+CountdownProcedure, opts...),
		search:    connect.NewClient[SearchParams, SearchResults](httpClient, baseURL+SearchProcedure, opts...),
		challenge: connect.NewClient[ChallengeRequest, CountdownLetters](httpClient, baseURL+CountdownChallengeProcedure, opts...),
	}
}

func (c *Client) Results(ctx context.Context, req *connect.Request[ResultsRequest]) (*connect.Response[CountedResults], error) {
	return c.results.CallUnary(ctx, req)
}

func (c *Client) Countdown(ctx context.Context, req *connect.Request[CountdownRequest]) (*connect.Response[CountdownResults], error) {
	return c.countdown.CallUnary(ctx, req)
}

func (c *Client) Search(ctx context.Context, req *connect.Request[SearchParams]) (*connect.Response[SearchResults], error) {
	return c.search.CallUnary(ctx, req)
}

func (c *Client) CountdownChallenge(ctx context.Context, req *connect.Request[ChallengeRequest]) (*connect.Response[CountdownLetters], error) {
	return c.challenge.CallUnary(ctx, req)
}
