package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/config"
	"github.com/domino14/lexi_server/internal/searchserver"
	"github.com/domino14/lexi_server/internal/wordsource"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

// requestLogging attaches a request-scoped logger carrying a request id and
// writes one access line per request.
func requestLogging(logger zerolog.Logger) alice.Chain {
	return alice.New(
		hlog.NewHandler(logger),
		hlog.RequestIDHandler("req_id", "X-Request-Id"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().Str("method", r.Method).Stringer("url", r.URL).
				Int("status", status).Int("size", size).Dur("duration", duration).Msg("request")
		}),
	)
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Debug().Interface("config", cfg).Msg("starting")

	lex, err := wordsource.Load(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load-lexicon")
	}
	server := &searchserver.Server{Config: cfg, Lexicon: lex}

	apiMux := http.NewServeMux()
	server.RegisterRoutes(apiMux)
	apiChain := alice.New()

	var opts []connect.HandlerOption
	if cfg.SecretKey != "" {
		opts = append(opts, connect.WithInterceptors(NewAuthInterceptor([]byte(cfg.SecretKey))))
		apiChain = apiChain.Append(authMiddleware([]byte(cfg.SecretKey)))
	} else {
		log.Warn().Msg("no secret key; every caller is anonymous")
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", apiChain.Then(apiMux))
	rpcPath, rpcHandler := searchserver.NewHandler(server, opts...)
	mux.Handle(rpcPath, rpcHandler)
	mux.Handle("/txt", plainTextHandler(server))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", http.FileServer(http.Dir(cfg.AssetsDir)))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: requestLogging(log.Logger).Then(mux),
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)

		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", cfg.ListenAddr).Int("entries", lex.Len()).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}
