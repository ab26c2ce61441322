package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/pdf-phrase-search/api"
	"github.com/gcbaptista/pdf-phrase-search/config"
	"github.com/gcbaptista/pdf-phrase-search/internal/locator"
	"github.com/gcbaptista/pdf-phrase-search/internal/search"
	"github.com/gcbaptista/pdf-phrase-search/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP search API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		if servePort != 0 {
			settings.Server.Port = servePort
		}

		db, err := store.Open(settings.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Init(); err != nil {
			return err
		}

		searcher, err := newSearcher(db, settings)
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		router := api.NewRouter(searcher, api.Options{
			AllowOrigins: settings.Server.AllowOrigins,
			RateLimit:    settings.Server.RateLimit,
			RateBurst:    settings.Server.RateBurst,
			Metrics:      true,
		})

		srv := &http.Server{
			Addr:              settings.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", srv.Addr).Str("db", settings.DBPath).Msg("starting server")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (default 10000)")
}

// newSearcher builds the search service over db using the configured
// locator and result shaping.
func newSearcher(db *store.SQLiteStore, settings config.Settings) (*search.Service, error) {
	loc, err := locator.New(settings.Locator.Kind, settings.Locator.BaseURL)
	if err != nil {
		return nil, err
	}
	return search.NewService(db,
		search.WithSampleLimit(settings.Search.SampleLimit),
		search.WithWindow(settings.Search.Window),
		search.WithLocator(loc),
		search.WithMetrics(true),
	)
}
