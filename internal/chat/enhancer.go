package chat

import (
	"emily-backend/internal/models"
)

// EnhanceThreshold is the minimum emotion confidence before a reply gets an
// affect prefix.
const EnhanceThreshold = 0.3

const (
	happyPrefix      = "Yay! 😄 "
	frustratedPrefix = "It's okay, we'll figure it out together 💛 "
)

// Enhance prepends a short affect-matched phrase to the generated reply when
// the detected emotion is confident enough. The reply text itself is never
// altered.
func Enhance(text string, emotion models.EmotionResult) string {
	if emotion.Score < EnhanceThreshold {
		return text
	}

	switch emotion.Mood {
	case models.MoodHappy:
		return happyPrefix + text
	case models.MoodFrustrated:
		return frustratedPrefix + text
	}
	return text
}
