package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const barLength = 20

func newStatsCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show streaks and accuracy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := rt.engine.Statistics.Get(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "📊 Statistics")
			fmt.Fprintln(out, "-------------")
			fmt.Fprintf(out, "Answered:        %d\n", len(stats.History))
			fmt.Fprintf(out, "Current streak:  %d\n", stats.CurrentStreak)
			fmt.Fprintf(out, "Highest streak:  %d\n", stats.HighestStreak)
			fmt.Fprintf(out, "Last 50:         %s %d%%\n", progressBar(stats.Last50Percent, 100, barLength), stats.Last50Percent)
			fmt.Fprintf(out, "Overall:         %s %d%%\n", progressBar(stats.OverallPercent, 100, barLength), stats.OverallPercent)
			return nil
		},
	}
}

func progressBar(current, total, length int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := min(current*length/total, length)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", length-filled) + "]"
}
