package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/physiz/internal/analytics"
	"github.com/abhisek/physiz/internal/spec"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print audit statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ds, err := loadDataset(cmd)
		if err != nil {
			return err
		}

		id := cliIdentity(cmd)
		ledger := openLedger(cmd.Context(), st, id)
		snap := analytics.Compute(ds.Store, ledger, time.Now())

		o := snap.Overview
		fmt.Printf("Audit progress:   %d%% (%d of %d topics)\n", o.Progress, o.AssessedTopics, o.TotalTopics)
		fmt.Printf("Avg confidence:   %.1f / 5\n", o.AverageConfidence)
		fmt.Printf("Paper 1:          %d%% (avg %.1f)\n", o.Paper1.Progress, o.Paper1.AverageConfidence)
		fmt.Printf("Paper 2:          %d%% (avg %.1f)\n", o.Paper2.Progress, o.Paper2.AverageConfidence)

		m := snap.Mastery
		fmt.Println()
		fmt.Println("Mastery")
		fmt.Println(strings.Repeat("─", 40))
		for _, row := range []struct {
			label string
			count int
		}{
			{"Not started", m.NotStarted},
			{"Beginning", m.Beginning},
			{"Developing", m.Developing},
			{"Competent", m.Competent},
			{"Proficient", m.Proficient},
			{"Mastered", m.Mastered},
		} {
			fmt.Printf("%-12s  %4d\n", row.label, row.count)
		}

		if byGroup, _ := cmd.Flags().GetBool("groups"); byGroup {
			fmt.Println()
			fmt.Println("By topic group")
			fmt.Println(strings.Repeat("─", 40))
			for _, g := range analytics.GroupProgress(ds.Store, ledger.Levels(), spec.ModeSpec) {
				fmt.Printf("%-28s  %3d%%  avg %.1f\n", g.Title, g.Progress, g.AverageConfidence)
			}
		}

		p := snap.Patterns
		fmt.Println()
		fmt.Printf("Streak:           %d days\n", p.CurrentStreak)
		fmt.Printf("Sessions:         %d\n", p.TotalSessions)
		fmt.Printf("Study days:       %d this month\n", p.StudyDaysThisMonth)

		v := snap.Velocity
		fmt.Println()
		fmt.Printf("Last 30 days:     %d up, %d down (net %+d)\n", v.Improvements, v.Declines, v.Net)

		if len(snap.CriticalTopics) > 0 {
			fmt.Println()
			fmt.Println("Focus next")
			fmt.Println(strings.Repeat("─", 40))
			shown := snap.CriticalTopics
			if len(shown) > 5 {
				shown = shown[:5]
			}
			for _, t := range shown {
				fmt.Printf("[%d] %s — %s\n", t.Level, t.Topic.Title, t.SectionTitle)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("groups", false, "Include a per-group breakdown")
}
