package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexi_server/config"
	"github.com/domino14/lexi_server/internal/auth"
	"github.com/domino14/lexi_server/internal/lexi"
	"github.com/domino14/lexi_server/internal/searchserver"
)

var testKey = []byte("abcdef")

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + tok
}

func TestAuthenticateJWT(t *testing.T) {
	is := is.New(t)
	h := http.Header{}
	h.Set("Authorization", signedToken(t, jwt.MapClaims{"sub": "42", "usn": "cesar", "mbr": true}))
	ctx, err := authenticateJWT(context.Background(), h, testKey)
	is.NoErr(err)
	u := auth.UserFromContext(ctx)
	is.Equal(u.DBID, 42)
	is.Equal(u.Username, "cesar")
	is.True(auth.IsMember(ctx))

	h.Set("Authorization", signedToken(t, jwt.MapClaims{"sub": "43", "usn": "mina"}))
	ctx, err = authenticateJWT(context.Background(), h, testKey)
	is.NoErr(err)
	is.True(!auth.IsMember(ctx))

	h.Set("Authorization", signedToken(t, jwt.MapClaims{"sub": "abc", "usn": "cesar"}))
	_, err = authenticateJWT(context.Background(), h, testKey)
	is.True(err != nil)

	h.Set("Authorization", "Bearer garbage")
	_, err = authenticateJWT(context.Background(), h, testKey)
	is.True(err != nil)

	h.Set("Authorization", signedToken(t, jwt.MapClaims{"sub": "42", "usn": "cesar"}))
	_, err = authenticateJWT(context.Background(), h, []byte("wrong key"))
	is.True(err != nil)
}

func TestAuthInterceptor(t *testing.T) {
	is := is.New(t)
	var seen *auth.AuthedUser
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = auth.UserFromContext(ctx)
		return connect.NewResponse(&struct{}{}), nil
	})
	handler := NewAuthInterceptor(testKey)(next)

	req := connect.NewRequest(&struct{}{})
	_, err := handler(context.Background(), req)
	is.NoErr(err)
	is.True(seen == nil)

	req.Header().Set("Authorization", signedToken(t, jwt.MapClaims{"sub": "7", "usn": "x", "mbr": true}))
	_, err = handler(context.Background(), req)
	is.NoErr(err)
	is.Equal(seen.DBID, 7)

	req.Header().Set("Authorization", "Bearer nope")
	_, err = handler(context.Background(), req)
	is.Equal(connect.CodeOf(err), connect.CodeUnauthenticated)
}

func TestAuthMiddleware(t *testing.T) {
	var member bool
	h := authMiddleware(testKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		member = auth.IsMember(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/results", nil)
	r.Header.Set("Authorization", signedToken(t, jwt.MapClaims{"sub": "1", "usn": "m", "mbr": true}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, member)

	r.Header.Set("Authorization", "Bearer nope")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func textServer() *searchserver.Server {
	return &searchserver.Server{
		Config: &config.Config{
			QueryTimeout:      time.Second,
			MaxResults:        100,
			CountdownLimit:    10,
			MaxDecompositions: 100,
		},
		Lexicon: lexi.New([]string{"meat", "team", "me", "at", "ta", "steam"},
			[]string{"meat", "me"}, 10),
	}
}

func getText(h http.Handler, query string) (int, string) {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/txt?"+query, nil))
	return w.Code, w.Body.String()
}

func TestPlainTextHandler(t *testing.T) {
	h := plainTextHandler(textServer())

	code, body := getText(h, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "method required", body)

	code, body = getText(h, "method=define")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "method not found", body)

	code, body = getText(h, "method=anagram")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "letters required", body)

	code, body = getText(h, "method=countdown&letters=MEAT")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "5 words found: meat team me at ta", body)

	_, body = getText(h, "method=search&contained=meat&length=4")
	assert.Equal(t, "2 words found: meat team", body)

	code, body = getText(h, "method=search")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "no filter specified")

	_, body = getText(h, "method=countdown&letters=xyz")
	assert.Equal(t, "no words found", body)

	_, body = getText(h, "method=anagram&letters=meat")
	assert.Contains(t, body, "meat")
	assert.Contains(t, body, "me+at")
}

func TestWriteWordsTruncates(t *testing.T) {
	words := make([]string, 100)
	for i := range words {
		words[i] = "abcdefghij"
	}
	w := httptest.NewRecorder()
	writeWords(w, words)
	assert.Contains(t, w.Body.String(), "100 words found: ")
	assert.Contains(t, w.Body.String(), "(...truncated)")
	assert.Less(t, w.Body.Len(), txtLimit+30)
}

func TestAccessLogCarriesRequestID(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	h := requestLogging(zerolog.New(&buf)).Then(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/preview?q=meat", nil))
	is.Equal(rec.Code, http.StatusTeapot)
	id := rec.Header().Get("X-Request-Id")
	is.True(id != "")

	var line map[string]any
	is.NoErr(json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	is.Equal(line["message"], "request")
	is.Equal(line["req_id"], id)
	is.Equal(line["status"], float64(http.StatusTeapot))
	is.Equal(line["url"], "/api/preview?q=meat")
}
