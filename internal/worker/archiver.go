package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"emily-backend/internal/models"
	"emily-backend/internal/repository"
)

// ArchiveQueue is the redis list settled turn messages are pushed onto for
// durable archiving.
const ArchiveQueue = "queue:transcript-archive"

// ArchiveJob is one queued message to persist.
type ArchiveJob struct {
	SessionID string         `json:"session_id"`
	Message   models.Message `json:"message"`
}

// Archiver drains the archive queue into the transcript repository so the
// turn pipeline never blocks on the database.
type Archiver struct {
	redis       *redis.Client
	transcripts *repository.TranscriptRepo
	workerCount int
	stopChan    chan struct{}
}

func NewArchiver(redisClient *redis.Client, transcripts *repository.TranscriptRepo, workerCount int) *Archiver {
	return &Archiver{
		redis:       redisClient,
		transcripts: transcripts,
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
	}
}

func (a *Archiver) Start() {
	for i := 0; i < a.workerCount; i++ {
		go a.worker(i)
	}
	log.Printf("Started %d archiver goroutines", a.workerCount)
}

func (a *Archiver) Stop() {
	close(a.stopChan)
}

// Enqueue pushes a message onto the archive queue. Failures only log; the
// live conversation must not notice archive trouble.
func (a *Archiver) Enqueue(ctx context.Context, sessionID string, msg models.Message) {
	payload, err := json.Marshal(ArchiveJob{SessionID: sessionID, Message: msg})
	if err != nil {
		log.Printf("Archiver: failed to marshal job: %v", err)
		return
	}
	if err := a.redis.RPush(ctx, ArchiveQueue, payload).Err(); err != nil {
		log.Printf("Archiver: failed to enqueue message %s: %v", msg.ID, err)
	}
}

func (a *Archiver) worker(id int) {
	for {
		select {
		case <-a.stopChan:
			log.Printf("Archiver %d shutting down", id)
			return
		default:
		}

		ctx := context.Background()

		// BLPOP with 30s timeout
		result, err := a.redis.BLPop(ctx, 30*time.Second, ArchiveQueue).Result()
		if err != nil {
			continue // Timeout or error, retry
		}
		if len(result) < 2 {
			continue
		}

		var job ArchiveJob
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			log.Printf("Archiver %d: failed to parse job: %v", id, err)
			continue
		}

		writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := a.transcripts.Append(writeCtx, job.SessionID, job.Message); err != nil {
			log.Printf("Archiver %d: failed to persist message %s: %v", id, job.Message.ID, err)
		}
		cancel()
	}
}
