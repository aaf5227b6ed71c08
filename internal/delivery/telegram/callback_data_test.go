package telegram

import (
	"testing"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

func TestAnswerCallbackRoundTrip(t *testing.T) {
	id := "0f8c2a9e-4b1d-4c55-9a61-3f1c2d7e8b90"

	data := buildAnswerCallback(id, entities.StageTwo, 3)
	if data != "ans:0f8c2a9e:2:3" {
		t.Fatalf("buildAnswerCallback = %q", data)
	}
	if len(data) > 64 {
		t.Fatalf("callback data too long: %d bytes", len(data))
	}

	ans, err := parseAnswerCallback(decodeCallback(data))
	if err != nil {
		t.Fatalf("parseAnswerCallback: %v", err)
	}
	if ans.Stage != entities.StageTwo || ans.Slot != 3 {
		t.Errorf("parsed = %+v", ans)
	}
	if !ans.matches(&entities.QuestionData{ID: id}) {
		t.Error("callback does not match its question")
	}
	if ans.matches(&entities.QuestionData{ID: "11111111-0000"}) {
		t.Error("callback matches another question")
	}
}

func TestParseAnswerCallbackInvalid(t *testing.T) {
	tests := []string{
		"ans",
		"ans:abc:2",
		"ans::2:1",
		"ans:abc:0:1",
		"ans:abc:4:1",
		"ans:abc:x:1",
		"ans:abc:1:4",
		"ans:abc:1:-1",
		"quiz:abc:1:1",
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			if _, err := parseAnswerCallback(decodeCallback(data)); err == nil {
				t.Errorf("parseAnswerCallback(%q) returned nil error", data)
			}
		})
	}
}

func TestCallbackEncoding(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"quiz next", buildQuizNextCallback(), "quiz:next"},
		{"stats", buildStatsCallback(), "stats"},
		{"settings stages", buildSettingsCallback(settingsStages, "2"), "settings:stages:2"},
		{"settings menu", buildSettingsCallback(settingsMenu), "settings:menu"},
		{"vocab page", buildVocabCallback(3), "vocab:3"},
		{"reset confirm", buildResetConfirmCallback(resetAll), "reset:confirm:all"},
		{"reset cancel", buildResetCancelCallback(), "reset:cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	cd := decodeCallback("settings:radius:40")
	if cd.Action != actionSettings || cd.param(0) != settingsRadius || cd.param(1) != "40" || cd.param(2) != "" {
		t.Errorf("decodeCallback = %+v", cd)
	}
}
