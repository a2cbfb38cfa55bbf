package models

import (
	"time"
)

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Mood is the coarse emotion classification returned by the emotion service.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodNeutral    Mood = "neutral"
	MoodFrustrated Mood = "frustrated"
)

// EmotionResult pairs a mood with the service's confidence score in [0,1].
type EmotionResult struct {
	Mood  Mood    `json:"mood"`
	Score float64 `json:"score"`
}

// Message is the atomic unit of a conversation. The log it lives in is
// append-only; Sender never changes after creation. Timestamp is for display,
// insertion order is authoritative.
type Message struct {
	ID              string         `json:"id"`
	Content         string         `json:"content"`
	Sender          Sender         `json:"sender"`
	Timestamp       time.Time      `json:"timestamp"`
	FollowUpPrompts []string       `json:"follow_up_prompts,omitempty"`
	Tone            string         `json:"tone,omitempty"`
	Emotion         *EmotionResult `json:"emotion,omitempty"`
}
