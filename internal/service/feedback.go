package service

import (
	"fmt"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

// incorrectEmojis escalate with every wrong attempt on the same question.
var incorrectEmojis = []string{"😟", "😞", "😭"}

var milestoneMessages = map[int]string{
	5:    "🎉 Five in a row! Keep going!",
	10:   "🔥 Ten in a row! You're on fire!",
	20:   "🎈 Twenty in a row! Sky's the limit.",
	50:   "🚀 A perfect fifty! Off to the moon!",
	75:   "🐉 Seventy-five in a row!",
	100:  "🧙 One hundred in a row! Mythical status reached.",
	200:  "🎊 Two hundred in a row! Quiz master extraordinaire.",
	300:  "🏆 Three hundred in a row! Legends will be told.",
	500:  "🦋 Five hundred in a row! Are you even human?",
	1000: "🌈 One thousand in a row! Try making a mistake for once.",
	2000: "🦙 Two thousand in a row! Go make some friends.",
}

// IncorrectEmoji returns the reaction for the given number of wrong attempts.
func IncorrectEmoji(attempts int) string {
	idx := min(max(attempts-1, 0), len(incorrectEmojis)-1)
	return incorrectEmojis[idx]
}

// StreakMessage describes a streak change to the learner.
// Milestone messages are only used when the streak is also a new record.
func StreakMessage(c entities.StreakChange) string {
	if c.Outcome != entities.OutcomeCorrect {
		return "Streak Reset to ⭕!"
	}

	if c.NewHigh {
		if msg, ok := milestoneMessages[c.Streak]; ok {
			return msg
		}
		return fmt.Sprintf("🙏 New High Streak: %d!", c.Streak)
	}

	return fmt.Sprintf("Current Streak Extended to %d", c.Streak)
}
