package cmd

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"

	config "checklist.com/daily-checklist/internal/configs"
	"checklist.com/daily-checklist/internal/persistence"
)

var wipeConfirmed bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Erase all saved checklist data",
	Long:  "Deletes the persisted state. The next start of the server begins from the default admin and seed tasks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wipeConfirmed {
			return errors.New("refusing to wipe data without --yes")
		}

		cfg := config.Load()

		store, closeStore := config.NewBlobStore(cfg)
		defer closeStore()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := persistence.NewAdapter(store, cfg.StateKey).Clear(ctx); err != nil {
			return err
		}

		log.Println("app data wiped, restart the server to load defaults")
		return nil
	},
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeConfirmed, "yes", false, "confirm the wipe")
	rootCmd.AddCommand(wipeCmd)
}
