package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

var errUnknownSetting = errors.New("unknown setting, use one of: stages, hard, radius")

func newSettingsCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show quiz settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.engine.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), s)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <stages|hard|radius> <value>",
		Short: "Change a quiz setting",
		Example: `  quizzboi settings set stages 2
  quizzboi settings set hard on
  quizzboi settings set radius 40`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := rt.engine.Settings

			var (
				s   entities.Settings
				err error
			)
			switch args[0] {
			case "stages":
				n, convErr := strconv.Atoi(args[1])
				if convErr != nil {
					return fmt.Errorf("stages: %w", convErr)
				}
				s, err = svc.UpdateNumStages(ctx, n)
			case "radius":
				n, convErr := strconv.Atoi(args[1])
				if convErr != nil {
					return fmt.Errorf("radius: %w", convErr)
				}
				s, err = svc.UpdateContextRadius(ctx, n)
			case "hard":
				on, convErr := parseSwitch(args[1])
				if convErr != nil {
					return fmt.Errorf("hard: %w", convErr)
				}
				s, err = svc.SetHardPhoneticMode(ctx, on)
			default:
				return errUnknownSetting
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✅ Settings updated")
			printSettings(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}

func printSettings(w io.Writer, s entities.Settings) {
	fmt.Fprintln(w, "⚙️  Settings")
	fmt.Fprintf(w, "Stages:          %d\n", s.NumStages)
	fmt.Fprintf(w, "Hard phonetic:   %s\n", formatSwitch(s.HardPhoneticMode))
	fmt.Fprintf(w, "Context radius:  %d\n", s.ContextRadius)
}

func parseSwitch(v string) (bool, error) {
	switch v {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return strconv.ParseBool(v)
}

func formatSwitch(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
