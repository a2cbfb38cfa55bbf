package websocket

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"emily-backend/internal/models"
	"emily-backend/internal/worker"
)

// Publisher fans turn events out to redis pub/sub for the hub and, when an
// archiver is attached, onto the archive queue. It is the orchestrator's
// event sink.
type Publisher struct {
	redis    *redis.Client
	archiver *worker.Archiver
}

func NewPublisher(redisClient *redis.Client, archiver *worker.Archiver) *Publisher {
	return &Publisher{redis: redisClient, archiver: archiver}
}

func (p *Publisher) MessageAppended(sessionID string, msg models.Message) {
	ctx := context.Background()

	p.publish(ctx, sessionID, models.WSMessage{
		Type:    "message",
		Payload: models.MessageEvent{SessionID: sessionID, Message: msg},
	})

	if p.archiver != nil {
		p.archiver.Enqueue(ctx, sessionID, msg)
	}
}

func (p *Publisher) ComposingChanged(sessionID string, composing bool) {
	p.publish(context.Background(), sessionID, models.WSMessage{
		Type:    "composing",
		Payload: models.ComposingEvent{SessionID: sessionID, Composing: composing},
	})
}

func (p *Publisher) publish(ctx context.Context, sessionID string, msg models.WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	p.redis.Publish(ctx, sessionChannel(sessionID), string(data))
}
