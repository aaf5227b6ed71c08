// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/service"
)

// Error and status messages.
const (
	msgInternalError       = "Something went wrong. Please try again later."
	msgUnknownCommand      = "Unknown command. Send /help to see what I can do."
	msgNoVocabulary        = "Your vocabulary is empty. Add some words with /add first."
	msgStatsUnavailable    = "Could not load statistics. Please try again later."
	msgSettingsUnavailable = "Could not load settings. Please try again later."
	msgQuizUnavailable     = "Could not create a question. Please try again later."
	msgStaleQuestion       = "This question has moved on."
	msgAdvancePending      = "⏳ One moment..."
	msgNoActiveQuestion    = "No question right now. Send /quiz to start."
	msgResetCancelled      = "Reset cancelled."
	msgResetDone           = "✅ Reset complete."
	msgUseAdd              = "Usage:\n/add\n猫 - māo - cat\n狗 - gǒu - dog\n---\nsource text or a link to it"
	msgVocabularyEmpty     = "📭 No vocabulary stored yet."
)

const (
	vocabPerPage = 10
	barLength    = 20
	addSeparator = "\n---\n"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMessage builds welcome message safely for MarkdownV2.
func welcomeMessage() string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		bold("👋 Welcome to QuizzBoi!"),
		md("Send me a vocabulary list together with a text you are reading. "+
			"I will blank each word out of its sentence and quiz you on the word, "+
			"its reading and its meaning."),
		helpMessage(),
	)
}

func helpMessage() string {
	lines := []string{
		"/quiz - next question",
		"/add - add vocabulary with a source text",
		"/vocab - list stored vocabulary",
		"/stats - streaks and accuracy",
		"/settings - quiz settings",
		"/reset - clear statistics (/reset all clears everything)",
		"/help - this message",
	}
	return md(strings.Join(lines, "\n"))
}

// formatQuestion renders the question text with the prompt for the current stage.
func formatQuestion(q *entities.QuestionData, p entities.QuizProgress, feedback string) string {
	var sb strings.Builder

	sb.WriteString(md(q.QuestionText))
	sb.WriteString("\n\n")

	for _, s := range entities.Stages(p.TotalStages) {
		if s >= p.CurrentStage && !p.Completed {
			break
		}
		sb.WriteString(md(fmt.Sprintf("✅ %s: %s\n", s, q.Target.Field(s))))
	}

	if !p.Completed {
		sb.WriteString(bold(fmt.Sprintf("[%d/%d] Pick the %s", p.CurrentStage, p.TotalStages, p.CurrentStage)))
	}

	for _, w := range q.Warnings {
		sb.WriteString("\n")
		sb.WriteString(italic("⚠️ " + w))
	}

	if feedback != "" {
		sb.WriteString("\n\n")
		sb.WriteString(md(feedback))
	}

	return sb.String()
}

// formatCompleted renders a finished question with the full answer.
func formatCompleted(q *entities.QuestionData, feedback string) string {
	return fmt.Sprintf(
		"%s\n\n%s %s\n\n%s",
		md(q.QuestionText),
		md("🎯"),
		bold(fmt.Sprintf("%s - %s - %s", q.Target.Primary, q.Target.Secondary, q.Target.Tertiary)),
		md(feedback),
	)
}

func formatStats(s *entities.StatisticsState) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n\n%s\n%s\n%s\n%s",
		bold("📊 Statistics"),
		md(fmt.Sprintf("🔥 Current streak: %d", s.CurrentStreak)),
		md(fmt.Sprintf("🏆 Highest streak: %d", s.HighestStreak)),
		md(fmt.Sprintf("📝 Answered: %d", len(s.History))),
		md("🎯 Last 50:"),
		md(fmt.Sprintf("%s %d%%", buildProgressBar(s.Last50Percent, 100, barLength), s.Last50Percent)),
		md("📈 Overall:"),
		md(fmt.Sprintf("%s %d%%", buildProgressBar(s.OverallPercent, 100, barLength), s.OverallPercent)),
	)
}

func formatSettings(s entities.Settings) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s",
		bold("⚙️ Settings"),
		md(fmt.Sprintf("🔢 Stages per question: %d", s.NumStages)),
		md(fmt.Sprintf("🎵 Hard phonetic mode: %s", formatBool(s.HardPhoneticMode))),
		md(fmt.Sprintf("📏 Context radius: %d", s.ContextRadius)),
	)
}

func formatBool(b bool) string {
	if b {
		return "on ✅"
	}
	return "off ❌"
}

func formatIngestReport(r *service.IngestReport) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("✅ Added %d entries", len(r.Added))))
	if w := r.Warning(); w != "" {
		sb.WriteString("\n")
		sb.WriteString(md("⚠️ " + w))
	}
	if r.Skipped > 0 {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("⚠️ Skipped %d malformed lines", r.Skipped)))
	}

	return sb.String()
}

// buildVocabPage renders one page of the vocabulary list.
func buildVocabPage(entries []entities.VocabularyEntry, page int) (text string, totalPages int) {
	totalPages = (len(entries) + vocabPerPage - 1) / vocabPerPage
	if page < 0 || page >= totalPages {
		return "", totalPages
	}

	start := page * vocabPerPage
	end := min(start+vocabPerPage, len(entries))

	var sb strings.Builder
	sb.WriteString(bold(fmt.Sprintf("📚 Vocabulary (%d/%d)", page+1, totalPages)))
	sb.WriteString("\n\n")
	for i, e := range entries[start:end] {
		sb.WriteString(md(fmt.Sprintf("%d. %s - %s - %s (%d)\n", start+i+1, e.Primary, e.Secondary, e.Tertiary, len(e.Sources))))
	}

	return sb.String(), totalPages
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("░", length))
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// buildReminderNotification builds reminder notification message.
func buildReminderNotification(payload entities.ReminderPayload) string {
	var sb strings.Builder

	sb.WriteString(bold("⏰ Time to practise!"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("📚 Words waiting: %d\n", payload.VocabularySize)))

	if payload.Stats.Answered > 0 {
		sb.WriteString(md(fmt.Sprintf("🔥 Current streak: %d\n", payload.Stats.CurrentStreak)))
		sb.WriteString(md(fmt.Sprintf("🏆 Highest streak: %d\n", payload.Stats.HighestStreak)))
		sb.WriteString(md(fmt.Sprintf("🎯 Last 50: %d%%", payload.Stats.Last50Percent)))
	} else {
		sb.WriteString(md("Answer your first question to start a streak."))
	}

	return sb.String()
}
