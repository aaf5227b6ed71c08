package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

// buildAnswerKeyboard builds one button per candidate of the given stage, two per row.
func buildAnswerKeyboard(q *entities.QuestionData, stage entities.Stage) tgbotapi.InlineKeyboardMarkup {
	var (
		rows [][]tgbotapi.InlineKeyboardButton
		row  []tgbotapi.InlineKeyboardButton
	)
	for i, option := range q.Options(stage) {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(option, buildAnswerCallback(q.ID, stage, i)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildNextQuestionKeyboard builds keyboard shown under a finished question.
func buildNextQuestionKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next question", buildQuizNextCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Statistics", buildStatsCallback()),
		),
	)
}

// buildStatsKeyboard builds keyboard for the statistics screen.
func buildStatsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", buildStatsCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildQuizNextCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard(s entities.Settings) tgbotapi.InlineKeyboardMarkup {
	stageRow := make([]tgbotapi.InlineKeyboardButton, 0, entities.MaxStages)
	for n := 1; n <= entities.MaxStages; n++ {
		label := strconv.Itoa(n)
		if n == s.NumStages {
			label = "• " + label + " •"
		}
		stageRow = append(stageRow, tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsCallback(settingsStages, strconv.Itoa(n))))
	}

	radiusRow := make([]tgbotapi.InlineKeyboardButton, 0, len(radiusChoices))
	for _, r := range radiusChoices {
		label := "↔️ " + strconv.Itoa(r)
		if r == s.ContextRadius {
			label = "• " + label + " •"
		}
		radiusRow = append(radiusRow, tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsCallback(settingsRadius, strconv.Itoa(r))))
	}

	hardLabel := "🎵 Hard phonetic mode: off"
	if s.HardPhoneticMode {
		hardLabel = "🎵 Hard phonetic mode: on"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		stageRow,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(hardLabel, buildSettingsCallback(settingsHard)),
		),
		radiusRow,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Statistics", buildStatsCallback()),
		),
	)
}

// radiusChoices are the context radius values offered in settings.
var radiusChoices = []int{15, 25, 40}

// buildPageKeyboard builds pagination keyboard for the vocabulary list.
func buildPageKeyboard(page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildVocabCallback(page-1)))
	}

	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildVocabCallback(page+1)))
	}

	kb := tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{row},
	}

	return &kb
}

// buildResetConfirmKeyboard asks to confirm a reset of the given scope.
func buildResetConfirmKeyboard(scope string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, reset", buildResetConfirmCallback(scope)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", buildResetCancelCallback()),
		),
	)
}

// buildReminderKeyboard builds keyboard attached to practice reminders.
func buildReminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildQuizNextCallback()),
		),
	)
}
