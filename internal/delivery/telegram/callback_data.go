package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

var errInvalidCallback = errors.New("invalid callback data")

// Callback action constants.
const (
	actionAnswer   = "ans"
	actionQuiz     = "quiz"
	actionStats    = "stats"
	actionSettings = "settings"
	actionVocab    = "vocab"
	actionReset    = "reset"
)

// Quiz sub-actions.
const (
	quizNext = "next"
)

// Settings sub-actions.
const (
	settingsMenu   = "menu"
	settingsStages = "stages"
	settingsHard   = "hard"
	settingsRadius = "radius"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
	resetAll     = "all"
	resetStats   = "stats"
)

// questionIDPrefixLen keeps answer callbacks well below Telegram's 64 byte limit.
const questionIDPrefixLen = 8

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or "".
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// answerCallback identifies one answer button.
type answerCallback struct {
	QuestionID string // prefix of the question ID
	Stage      entities.Stage
	Slot       int
}

// buildAnswerCallback builds callback data for answering a stage of a question.
func buildAnswerCallback(questionID string, stage entities.Stage, slot int) string {
	if len(questionID) > questionIDPrefixLen {
		questionID = questionID[:questionIDPrefixLen]
	}
	return callbackData{
		Action: actionAnswer,
		Params: []string{questionID, strconv.Itoa(int(stage)), strconv.Itoa(slot)},
	}.encode()
}

// parseAnswerCallback validates an answer callback.
func parseAnswerCallback(cd callbackData) (answerCallback, error) {
	if cd.Action != actionAnswer || len(cd.Params) != 3 || cd.Params[0] == "" {
		return answerCallback{}, errInvalidCallback
	}

	stage, err := strconv.Atoi(cd.Params[1])
	if err != nil || !entities.Stage(stage).Valid() {
		return answerCallback{}, errInvalidCallback
	}

	slot, err := strconv.Atoi(cd.Params[2])
	if err != nil || slot < 0 || slot >= entities.AnswerSlots {
		return answerCallback{}, errInvalidCallback
	}

	return answerCallback{
		QuestionID: cd.Params[0],
		Stage:      entities.Stage(stage),
		Slot:       slot,
	}, nil
}

// matches reports whether the callback belongs to question q.
func (a answerCallback) matches(q *entities.QuestionData) bool {
	return q != nil && strings.HasPrefix(q.ID, a.QuestionID)
}

// buildQuizNextCallback builds callback data for generating a new question.
func buildQuizNextCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizNext}}.encode()
}

// buildStatsCallback builds callback data for opening the statistics view.
func buildStatsCallback() string {
	return actionStats
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

// buildVocabCallback builds callback data for opening a vocabulary page.
func buildVocabCallback(page int) string {
	return callbackData{
		Action: actionVocab,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

func buildResetConfirmCallback(scope string) string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm, scope}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}
