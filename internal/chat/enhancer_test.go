package chat

import (
	"testing"

	"emily-backend/internal/models"
)

func TestEnhance(t *testing.T) {
	tests := []struct {
		name     string
		emotion  models.EmotionResult
		expected string
	}{
		{"happy above threshold", models.EmotionResult{Mood: models.MoodHappy, Score: 0.8}, "Yay! 😄 sounds good"},
		{"happy at threshold", models.EmotionResult{Mood: models.MoodHappy, Score: 0.3}, "Yay! 😄 sounds good"},
		{"happy below threshold", models.EmotionResult{Mood: models.MoodHappy, Score: 0.2}, "sounds good"},
		{"frustrated above threshold", models.EmotionResult{Mood: models.MoodFrustrated, Score: 0.9}, "It's okay, we'll figure it out together 💛 sounds good"},
		{"frustrated below threshold", models.EmotionResult{Mood: models.MoodFrustrated, Score: 0.1}, "sounds good"},
		{"neutral never prefixed", models.EmotionResult{Mood: models.MoodNeutral, Score: 0.99}, "sounds good"},
		{"zero value", models.EmotionResult{}, "sounds good"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Enhance("sounds good", tc.emotion); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
