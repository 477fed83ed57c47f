// Command server exposes the sentence corrector as a JSON REST API.
//
// Endpoints:
//
//	POST /api/correct           body: {"text":"..."}  (paragraph)
//	POST /api/correct/sentence  body: {"text":"..."}
//	POST /api/check             body: {"text":"..."}
//	GET  /api/vocabulary
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cours-de-latin/corrector"
	"github.com/cours-de-latin/corrector/internal/config"
	"github.com/cours-de-latin/corrector/internal/logging"
	"github.com/cours-de-latin/corrector/internal/watch"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func loadCorrector(store corrector.Store, conf *config.LexiconConfig) (*corrector.Corrector, error) {
	lex, err := corrector.LoadLexicon(store)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("subjects", lex.Subjects.Len()).
		Int("verbs", lex.Verbs.Len()).
		Int("objects", lex.Objects.Len()).
		Msg("lexicon loaded")
	return corrector.New(lex, conf.CorrectorOptions()...), nil
}

// watchLexicon reloads the dictionary files of conf into h whenever
// one of them changes.
func watchLexicon(ctx context.Context, store corrector.Store, conf *config.LexiconConfig, h *holder, debounce time.Duration) (*watch.Watcher, error) {
	w, err := watch.New(
		conf.DictDir,
		[]string{corrector.SubjectsTable, corrector.VerbsTable, corrector.ObjectsTable},
		func(context.Context) error {
			c, err := loadCorrector(store, conf)
			if err != nil {
				return err
			}
			h.set(c)
			return nil
		},
		debounce,
	)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func run(ctx context.Context, conf *config.Config) error {
	store, closeStore, err := conf.Lexicon.OpenStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("failed to close lexicon store")
		}
	}()

	corr, err := loadCorrector(store, &conf.Lexicon)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	h := new(holder)
	h.set(corr)

	if conf.Server.Watch && conf.Lexicon.Store == config.StoreFile {
		w, err := watchLexicon(ctx, store, &conf.Lexicon, h, watch.DfltDebounce)
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: conf.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(withRequestLog(newMux(h)))

	srv := &http.Server{
		Addr:         conf.Server.Addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(conf.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(conf.Server.WriteTimeoutSecs) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func main() {
	confPath := flag.String("config", "corrector.yaml", "path to the YAML configuration")
	envPath := flag.String("env", ".env", "path to an optional .env file")
	addr := flag.String("addr", "", "listen address (overrides the configuration)")
	dictDir := flag.String("data", "", "path to the dictionary directory (overrides the configuration)")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	conf, err := config.Load(*confPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *addr != "" {
		conf.Server.Addr = *addr
	}
	if *dictDir != "" {
		conf.Lexicon.DictDir = *dictDir
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err)
		os.Exit(1)
	}
	if err := logging.Setup(conf.Logging.Path, conf.Logging.Level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, conf); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
