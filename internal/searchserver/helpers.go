package searchserver

/* helpers for turning plain HTTP requests into service calls */
import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("write-json")
	}
}

// writeError maps a connect error code onto an HTTP status.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		switch cerr.Code() {
		case connect.CodeInvalidArgument:
			status = http.StatusBadRequest
		case connect.CodeUnauthenticated:
			status = http.StatusUnauthorized
		case connect.CodeDeadlineExceeded:
			status = http.StatusServiceUnavailable
		case connect.CodeResourceExhausted:
			status = http.StatusTooManyRequests
		}
		http.Error(w, cerr.Message(), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func intParam(q url.Values, name string) (int, error) {
	s := q.Get(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidArgError(name + " must be an integer")
	}
	return n, nil
}

func boolParam(q url.Values, name string) (*bool, error) {
	if !q.Has(name) {
		return nil, nil
	}
	b, err := strconv.ParseBool(q.Get(name))
	if err != nil {
		return nil, invalidArgError(name + " must be true or false")
	}
	return &b, nil
}

func searchParams(q url.Values) (*SearchParams, error) {
	oneWord, err := boolParam(q, "isOneWord")
	if err != nil {
		return nil, err
	}
	return &SearchParams{
		Contains:  q.Get("contains"),
		Contained: q.Get("contained"),
		Excluded:  q.Get("excluded"),
		Included:  q.Get("included"),
		Length:    q.Get("length"),
		OneWord:   oneWord,
	}, nil
}
