package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/quizzboi/internal/service"
)

func newResetCommand(rt *runtime) *cobra.Command {
	var (
		scope service.ResetScope
		all   bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear statistics, vocabulary or settings",
		Long: `Clears the selected state in one transaction.
Without flags only the statistics are cleared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				scope = service.ResetScope{Statistics: true, Vocabulary: true, Settings: true}
			}
			if scope == (service.ResetScope{}) {
				scope.Statistics = true
			}

			out := cmd.OutOrStdout()
			if !force {
				fmt.Fprintf(out, "⚠️  Reset %s? (y/N): ", describeScope(scope))
				input, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				input = strings.TrimSpace(strings.ToLower(input))
				if input != "y" && input != "yes" {
					fmt.Fprintln(out, "❌ Cancelled.")
					return nil
				}
			}

			if err := rt.engine.Reset.Reset(cmd.Context(), scope); err != nil {
				return err
			}
			fmt.Fprintln(out, "✅ Reset complete.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&scope.Statistics, "stats", false, "clear statistics")
	cmd.Flags().BoolVar(&scope.Vocabulary, "vocab", false, "clear vocabulary")
	cmd.Flags().BoolVar(&scope.Settings, "settings", false, "restore default settings")
	cmd.Flags().BoolVar(&all, "all", false, "clear everything")
	cmd.Flags().BoolVarP(&force, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func describeScope(s service.ResetScope) string {
	var parts []string
	if s.Statistics {
		parts = append(parts, "statistics")
	}
	if s.Vocabulary {
		parts = append(parts, "vocabulary")
	}
	if s.Settings {
		parts = append(parts, "settings")
	}
	return strings.Join(parts, " and ")
}
