package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/service"
)

var errNoVocabulary = errors.New("no vocabulary yet, run `quizzboi ingest` first")

type quizSession interface {
	Generate(ctx context.Context) (*entities.QuestionData, error)
	Submit(ctx context.Context, answer string) (service.SubmitResult, error)
	Current() (*entities.QuestionData, entities.QuizProgress, bool)
	OnAdvance(fn func(service.AdvanceEvent))
}

// quizRunner drives a session from a line-based terminal.
type quizRunner struct {
	session  quizSession
	in       *bufio.Scanner
	out      io.Writer
	advanced chan service.AdvanceEvent
}

func newQuizCommand(rt *runtime) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Answer questions interactively",
		Long: `Shows a context sentence with the term blanked out and asks for
the term, its reading and its meaning. Answer with the option number
or type the answer itself. Enter q to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newQuizRunner(rt.engine.Quiz, cmd.InOrStdin(), cmd.OutOrStdout())
			return r.run(cmd.Context(), count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of questions, 0 to continue until q")

	return cmd
}

func newQuizRunner(session quizSession, in io.Reader, out io.Writer) *quizRunner {
	r := &quizRunner{
		session:  session,
		in:       bufio.NewScanner(in),
		out:      out,
		advanced: make(chan service.AdvanceEvent, 1),
	}
	session.OnAdvance(func(ev service.AdvanceEvent) { r.advanced <- ev })
	return r
}

func (r *quizRunner) run(ctx context.Context, count int) error {
	for n := 0; count == 0 || n < count; n++ {
		q, err := r.session.Generate(ctx)
		if errors.Is(err, service.ErrEmptyVocabulary) {
			return errNoVocabulary
		}
		if err != nil {
			return fmt.Errorf("generate question: %w", err)
		}

		quit, err := r.ask(ctx, q)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	fmt.Fprintln(r.out, "👋 See you next time!")
	return nil
}

// ask runs one question until it completes or the learner quits.
func (r *quizRunner) ask(ctx context.Context, q *entities.QuestionData) (bool, error) {
	fmt.Fprintf(r.out, "\n%s\n", q.QuestionText)
	for _, w := range q.Warnings {
		color.New(color.FgYellow).Fprintf(r.out, "⚠️  %s\n", w)
	}

	for {
		_, progress, ok := r.session.Current()
		if !ok {
			return false, service.ErrNoQuestion
		}
		stage := progress.CurrentStage
		options := q.Options(stage)

		fmt.Fprintf(r.out, "\n[%d/%d] %s?\n", stage, progress.TotalStages, stage)
		for i, opt := range options {
			fmt.Fprintf(r.out, "  %d) %s\n", i+1, opt)
		}
		fmt.Fprint(r.out, "> ")

		if !r.in.Scan() {
			return true, r.in.Err()
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "q" {
			return true, nil
		}

		res, err := r.session.Submit(ctx, resolveAnswer(line, options))
		if err != nil {
			return false, fmt.Errorf("submit answer: %w", err)
		}

		if !res.Correct {
			color.New(color.FgRed).Fprintf(r.out, "✘ %s\n", res.Feedback)
			continue
		}

		color.New(color.FgGreen).Fprintf(r.out, "✔ %s\n", res.Feedback)

		ev, err := r.waitAdvance(ctx, q.ID)
		if err != nil {
			return false, err
		}
		if ev.Completed {
			fmt.Fprintf(r.out, "🎯 %s - %s - %s\n", q.Target.Primary, q.Target.Secondary, q.Target.Tertiary)
			return false, nil
		}
	}
}

func (r *quizRunner) waitAdvance(ctx context.Context, questionID string) (service.AdvanceEvent, error) {
	for {
		select {
		case <-ctx.Done():
			return service.AdvanceEvent{}, ctx.Err()
		case ev := <-r.advanced:
			if ev.QuestionID == questionID {
				return ev, nil
			}
		}
	}
}

// resolveAnswer maps an option number to its text; anything else is taken literally.
func resolveAnswer(line string, options []string) string {
	if i, err := strconv.Atoi(line); err == nil && i >= 1 && i <= len(options) {
		return options[i-1]
	}
	return norm.NFC.String(line)
}
