package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/physiz/internal/advice"
	"github.com/abhisek/physiz/internal/app"
	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/identity"
	"github.com/abhisek/physiz/internal/llm"
	"github.com/abhisek/physiz/internal/selfupdate"
)

// auditCmd is an explicit alias for the default action.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Start the interactive confidence audit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{
		Store: ds.Store,
		Index: ds.Index,
		OpenLedger: func(id identity.Identity) *confidence.Ledger {
			return openLedger(ctx, st, id)
		},
		LatestVersion: checkForUpdate(ctx),
	}

	// --user skips the interactive identity prompt.
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		id := identity.ForUser(user)
		opts.Identity = &id
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Study advice will be unavailable.")
	} else {
		opts.Adviser = advice.NewService(provider, advice.DefaultConfig())
	}

	return app.Run(opts)
}

// checkForUpdate asks GitHub for a newer release, quickly and quietly.
// Failures and timeouts report no update.
func checkForUpdate(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(3 * time.Second))
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !result.UpdateAvailable {
		return ""
	}
	return result.LatestVersion
}
