package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/pdf-phrase-search/services"
	"github.com/gcbaptista/pdf-phrase-search/store"
)

var searchMode string

var searchCmd = &cobra.Command{
	Use:   "search <phrase>",
	Short: "Run one search against the page database and print JSON",
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

		searcher, err := newSearcher(db, settings)
		if err != nil {
			return err
		}
		resp, err := searcher.Search(cmd.Context(), args[0], services.ParseMode(searchMode))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchMode, "mode", "sample", "result mode: sample, all or count")
}
