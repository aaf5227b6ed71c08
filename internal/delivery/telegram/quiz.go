package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/service"
)

const msgQuestionComplete = "🎉 Question complete!"

// sendNewQuestion generates a question and posts it with the first stage keyboard.
func (h *Handler) sendNewQuestion(ctx context.Context, chatID int64) error {
	h.clearReminder(chatID)

	q, err := h.quiz.Generate(ctx)
	if errors.Is(err, service.ErrEmptyVocabulary) {
		return h.send(newPlainMessage(chatID, msgNoVocabulary))
	}
	if err != nil {
		h.logger.Error("failed to generate question", zap.Error(err))
		return h.send(newPlainMessage(chatID, msgQuizUnavailable))
	}

	_, p, _ := h.quiz.Current()

	msg := newMessage(chatID, formatQuestion(q, p, ""))
	msg.ReplyMarkup = buildAnswerKeyboard(q, p.CurrentStage)

	sent, err := h.bot.Send(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	prev := h.current
	h.current = questionMessage{chatID: chatID, messageID: sent.MessageID, questionID: q.ID}
	h.mu.Unlock()

	// Buttons of a superseded question can no longer be answered.
	if prev.messageID != 0 && prev.questionID != q.ID {
		h.request(tgbotapi.NewEditMessageReplyMarkup(prev.chatID, prev.messageID, tgbotapi.InlineKeyboardMarkup{
			InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
		}))
	}

	h.logger.Debug("question sent",
		zap.String("question_id", q.ID),
		zap.Int("message_id", sent.MessageID),
		zap.Int("stages", p.TotalStages),
	)
	return nil
}

// showResult updates the question message after an answer.
// A correct answer hides the keyboard until the stage advance arrives.
func (h *Handler) showResult(res service.SubmitResult) {
	q, p, ok := h.quiz.Current()
	if !ok {
		return
	}

	h.mu.Lock()
	if h.current.questionID != q.ID {
		h.mu.Unlock()
		return
	}
	h.current.feedback = res.Feedback
	cur := h.current
	h.mu.Unlock()

	if res.Correct {
		_ = h.send(newEdit(cur.chatID, cur.messageID, formatQuestion(q, p, "✅ "+res.Feedback)))
		return
	}

	edit := newEdit(cur.chatID, cur.messageID, formatQuestion(q, p, res.Feedback))
	kb := buildAnswerKeyboard(q, p.CurrentStage)
	edit.ReplyMarkup = &kb
	_ = h.send(edit)
}

// onAdvance runs on the session's timer once a correct answer has been shown.
func (h *Handler) onAdvance(ev service.AdvanceEvent) {
	h.mu.Lock()
	cur := h.current
	h.mu.Unlock()

	if cur.questionID != ev.QuestionID {
		return
	}

	q, p, ok := h.quiz.Current()
	if !ok || q.ID != ev.QuestionID {
		return
	}

	var edit tgbotapi.EditMessageTextConfig
	if ev.Completed {
		edit = newEdit(cur.chatID, cur.messageID, formatCompleted(q, msgQuestionComplete+"\n"+cur.feedback))
		kb := buildNextQuestionKeyboard()
		edit.ReplyMarkup = &kb
	} else {
		edit = newEdit(cur.chatID, cur.messageID, formatQuestion(q, p, ""))
		kb := buildAnswerKeyboard(q, p.CurrentStage)
		edit.ReplyMarkup = &kb
	}

	_ = h.send(edit)
}
