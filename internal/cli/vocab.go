package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newVocabCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage stored vocabulary",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := rt.engine.Vocabulary.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "📭 No vocabulary stored")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Term\tReading\tMeaning\tContexts")
			fmt.Fprintln(w, "----\t-------\t-------\t--------")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", e.Primary, e.Secondary, e.Tertiary, len(e.Sources))
			}
			return w.Flush()
		},
	}

	del := &cobra.Command{
		Use:   "delete <term>",
		Short: "Delete every entry for a term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := rt.engine.Vocabulary.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Deleted %d entries\n", n)
			return nil
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}
