package main

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/pdf-phrase-search/internal/ingest"
	"github.com/gcbaptista/pdf-phrase-search/store"
)

var ingestWorkers int

var ingestCmd = &cobra.Command{
	Use:   "ingest <dir>",
	Short: "Extract every PDF under dir into the page database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		db, err := store.Open(settings.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Init(); err != nil {
			return err
		}

		svc, err := ingest.NewService(db, nil, ingestWorkers)
		if err != nil {
			return err
		}
		report, err := svc.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		pages, files, err := db.Count(cmd.Context())
		if err != nil {
			return err
		}
		log.Info().
			Int("files", report.Files).
			Int("pages", report.Pages).
			Int("skipped", len(report.Skipped)).
			Int("total_files", files).
			Int("total_pages", pages).
			Msg("ingest complete")

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	ingestCmd.Flags().IntVar(&ingestWorkers, "workers", ingest.DefaultWorkers, "concurrent PDF extractions")
}
