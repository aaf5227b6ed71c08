package cli

import (
	"github.com/spf13/cobra"

	"github.com/aliskhannn/quizzboi/internal/app"
)

func newBotCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Serve the quiz over Telegram",
		Long: `Runs the Telegram bot for the chat set in TELEGRAM_CHAT_ID together
with the daily practice reminder.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunBot(cmd.Context(), rt.cfg, rt.engine, rt.logger)
		},
	}
}
