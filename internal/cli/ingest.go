package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aliskhannn/quizzboi/internal/source"
)

var errSourceFlags = errors.New("exactly one of --source, --url or --text is required")

func newIngestCommand(rt *runtime) *cobra.Command {
	var vocabPath, sourcePath, sourceURL, sourceText string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Add vocabulary with context sentences from a source text",
		Long: `Reads "term - reading - meaning" lines and looks each term up in the
source text. Terms found in the source are stored together with the
surrounding context; terms that never occur are reported and skipped.`,
		Example: `  quizzboi ingest --vocab words.txt --source chapter1.txt
  quizzboi ingest --vocab words.txt --url https://example.com/article
  cat words.txt | quizzboi ingest --vocab - --text "我的猫很可爱"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := 0
			for _, v := range []string{sourcePath, sourceURL, sourceText} {
				if v != "" {
					set++
				}
			}
			if set != 1 {
				return errSourceFlags
			}

			vocab, err := source.ReadFile(vocabPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			text := sourceText
			switch {
			case sourcePath != "":
				if text, err = source.ReadFile(sourcePath, cmd.InOrStdin()); err != nil {
					return err
				}
			case sourceURL != "":
				article, err := rt.engine.Fetcher.FetchURL(cmd.Context(), sourceURL)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "📄 %s\n", article.Title)
				text = article.Text
			}

			report, err := rt.engine.Vocabulary.Ingest(cmd.Context(), vocab, text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "✅ Added %d entries\n", len(report.Added))
			if w := report.Warning(); w != "" {
				color.New(color.FgYellow).Fprintf(out, "⚠️  %s\n", w)
			}
			if report.Skipped > 0 {
				color.New(color.FgYellow).Fprintf(out, "⚠️  Skipped %d malformed lines\n", report.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "-", `vocabulary file, "-" for stdin`)
	cmd.Flags().StringVar(&sourcePath, "source", "", "source text file")
	cmd.Flags().StringVar(&sourceURL, "url", "", "web page to use as source text")
	cmd.Flags().StringVar(&sourceText, "text", "", "source text given inline")

	return cmd
}
