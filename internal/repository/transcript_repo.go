package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"emily-backend/internal/models"
)

// TranscriptRepo archives settled turn messages. The in-memory log stays the
// source of truth for a live session; this table is a durable side copy.
type TranscriptRepo struct {
	pool *pgxpool.Pool
}

func NewTranscriptRepo(pool *pgxpool.Pool) *TranscriptRepo {
	return &TranscriptRepo{pool: pool}
}

// EnsureSchema creates the archive table when missing.
func (r *TranscriptRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS transcript_messages (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL,
			sender TEXT NOT NULL,
			content TEXT NOT NULL,
			tone TEXT,
			mood TEXT,
			mood_score DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL,
			archived_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create transcript_messages table: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_transcript_messages_session
		ON transcript_messages (session_id, created_at)
	`)
	if err != nil {
		return fmt.Errorf("failed to create transcript index: %w", err)
	}
	return nil
}

// Append stores one message under its session.
func (r *TranscriptRepo) Append(ctx context.Context, sessionID string, msg models.Message) error {
	var mood *string
	var moodScore *float64
	if msg.Emotion != nil {
		m := string(msg.Emotion.Mood)
		mood = &m
		moodScore = &msg.Emotion.Score
	}

	var toneVal *string
	if msg.Tone != "" {
		toneVal = &msg.Tone
	}

	query := `INSERT INTO transcript_messages (id, session_id, sender, content, tone, mood, mood_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, sessionID, string(msg.Sender), msg.Content, toneVal, mood, moodScore, msg.Timestamp,
	)
	return err
}

// ListBySession returns archived messages in insertion order.
func (r *TranscriptRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 200
	}

	query := `SELECT id, sender, content, tone, mood, mood_score, created_at
		FROM transcript_messages
		WHERE session_id = $1
		ORDER BY created_at ASC, archived_at ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		var toneVal, mood *string
		var moodScore *float64

		if err := rows.Scan(&msg.ID, &msg.Sender, &msg.Content, &toneVal, &mood, &moodScore, &msg.Timestamp); err != nil {
			return nil, err
		}
		if toneVal != nil {
			msg.Tone = *toneVal
		}
		if mood != nil {
			score := 0.0
			if moodScore != nil {
				score = *moodScore
			}
			msg.Emotion = &models.EmotionResult{Mood: models.Mood(*mood), Score: score}
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
