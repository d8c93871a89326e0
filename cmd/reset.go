package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all ratings and history for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to clear without --force")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		id := cliIdentity(cmd)
		ledger := openLedger(cmd.Context(), st, id)

		rated := ledger.RatedCount()
		ledger.Clear()

		fmt.Printf("Cleared %d ratings for %s.\n", rated, id.StorageKey())
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually clear the data")
}
