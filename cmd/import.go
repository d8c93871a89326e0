package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the audit from a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		id := cliIdentity(cmd)
		ledger := openLedger(cmd.Context(), st, id)

		if err := ledger.ImportJSON(data); err != nil {
			return err
		}

		fmt.Printf("Imported %d ratings for %s.\n", ledger.RatedCount(), id.StorageKey())
		return nil
	},
}
