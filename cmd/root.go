// Package cmd defines the physiz command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/dataset"
	"github.com/abhisek/physiz/internal/identity"
	"github.com/abhisek/physiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "physiz",
	Short: "Physics revision confidence audit",
	Long:  "Physiz — terminal confidence audit for A-level Physics: rate every specification topic 1-5, track your progress over time, and get focused revision advice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PHYSIZ_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner name; selects whose saved audit is loaded")
	rootCmd.PersistentFlags().String("data", "", "Directory with specification CSV sheets (default: embedded data)")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PHYSIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// loadDataset loads the specification sheets, honoring --data.
func loadDataset(cmd *cobra.Command) (*dataset.Dataset, error) {
	dir, _ := cmd.Flags().GetString("data")
	ds, err := dataset.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load specification data: %w", err)
	}
	return ds, nil
}

// cliIdentity resolves the learner identity for non-interactive
// commands: --user when given, otherwise the legacy shared profile.
func cliIdentity(cmd *cobra.Command) identity.Identity {
	user, _ := cmd.Flags().GetString("user")
	return identity.ForUser(user)
}

// openLedger restores a learner's ledger from the store and attaches
// persistence and the rating event recorder.
func openLedger(ctx context.Context, st *store.Store, id identity.Identity) *confidence.Ledger {
	key := id.StorageKey()
	events := st.EventRepo()

	ledger := confidence.NewLedger(
		confidence.WithUser(id.User),
		confidence.WithPersister(store.NewLedgerPersister(st, key)),
		confidence.WithRecorder(func(c confidence.Change) {
			err := events.AppendRating(context.Background(), store.RatingEventData{
				Key:       key,
				TopicID:   c.TopicID,
				OldLevel:  c.OldLevel,
				NewLevel:  c.NewLevel,
				SessionID: c.SessionID,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to log rating event: %v\n", err)
			}
		}),
	)

	if state := store.LoadLedger(ctx, st, key); state != nil {
		ledger.Restore(*state)
	}
	return ledger
}
