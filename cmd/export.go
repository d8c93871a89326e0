package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/physiz/internal/confidence"
	"github.com/abhisek/physiz/internal/dataset"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the audit as a JSON backup (or CSV results)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		id := cliIdentity(cmd)
		ledger := openLedger(cmd.Context(), st, id)

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
			ds, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			return writeResultsCSV(out, ds, ledger)
		}

		data, err := ledger.ExportJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	},
}

// writeResultsCSV emits one row per topic with its current rating,
// blank when unrated.
func writeResultsCSV(out *os.File, ds *dataset.Dataset, ledger *confidence.Ledger) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"section_id", "section_title", "paper", "topic_id", "topic_title", "confidence"}); err != nil {
		return err
	}

	for _, sec := range ds.Store.Sections() {
		for _, topic := range sec.Topics {
			level := ""
			if l, ok := ledger.Confidence(topic.ID); ok {
				level = strconv.Itoa(l)
			}
			row := []string{sec.ID, sec.Title, string(sec.Paper), topic.ID, topic.Title, level}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func init() {
	exportCmd.Flags().Bool("csv", false, "Export per-topic results as CSV instead of a JSON backup")
}
