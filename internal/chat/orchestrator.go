package chat

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"emily-backend/internal/backend"
	"emily-backend/internal/knowledge"
	"emily-backend/internal/models"
	"emily-backend/internal/tone"
)

// Greeting is the canonical opening bot message, also the sole content of a
// cleared log.
const Greeting = "Hello! I'm Emily, your thoughtful AI companion. I'm here to explore ideas, solve problems, or just chat about what interests you. What would you like to discuss today? 💫"

// PauseMessage is appended when a submission lands inside the cooldown window.
const PauseMessage = "Let's take a brief pause between messages. It helps me process our conversation better! 😊"

const (
	DefaultCooldown      = 3 * time.Second
	DefaultTemplateDelay = time.Second

	// windowSize bounds the conversation slice sent to the backend.
	windowSize = 6
)

// User-safe apology strings, one per error kind. Never expose the raw error.
var apologies = map[backend.Kind]string{
	backend.KindRateLimited:        "I need a quick breather! Could you try again in a minute? 😅 This helps me stay within my conversation limits.",
	backend.KindNetworkUnreachable: "Looks like we're having trouble connecting. Could you check your internet and try again? 🌐",
	backend.KindUnauthorized:       "I'm having trouble accessing my knowledge. The team has been notified! Let's try again in a bit? 🔄",
	backend.KindTimeout:            "It's taking me a little longer than usual to think. Could we try that again? ⏳",
	backend.KindUnauthenticated:    "Please sign in so we can keep chatting! 💫",
}

const genericApology = "Emily's brain is recharging. Please try again in a few seconds. 🔄"

// EmotionAnalyzer is the fail-soft sentiment capability consumed per turn.
type EmotionAnalyzer interface {
	Analyze(ctx context.Context, text string) models.EmotionResult
}

// Sink receives turn events so the outer layer can fan them out (WebSocket,
// archive). Callbacks fire outside the state lock, in log order within a
// turn; they must not submit new turns.
type Sink interface {
	MessageAppended(sessionID string, msg models.Message)
	ComposingChanged(sessionID string, composing bool)
}

// Options tune a single orchestrator. The zero value picks the defaults; the
// Clock hook exists so tests can drive the rate gate deterministically.
type Options struct {
	Cooldown      time.Duration
	TemplateDelay time.Duration
	Clock         func() time.Time
	Sink          Sink
}

// Orchestrator owns one conversation: the append-only message log, the
// composing flag, and the cooldown gate. It sequences
// classifier → matcher → emotion → backend → enhancer for every turn. Only
// the orchestrator mutates the log.
//
// Two locks: turnMu serializes whole turns, mu guards the state fields. mu is
// never held across a network call or delay, so Messages and Composing stay
// responsive while a turn is in flight.
type Orchestrator struct {
	sessionID  string
	classifier *tone.Classifier
	kb         *knowledge.Base
	emotion    EmotionAnalyzer
	generator  backend.Generator

	cooldown      time.Duration
	templateDelay time.Duration
	clock         func() time.Time
	sink          Sink

	turnMu sync.Mutex

	mu          sync.Mutex
	messages    []models.Message
	composing   bool
	lastMessage time.Time
}

func NewOrchestrator(
	sessionID string,
	classifier *tone.Classifier,
	kb *knowledge.Base,
	emotion EmotionAnalyzer,
	generator backend.Generator,
	opts Options,
) *Orchestrator {
	if opts.Cooldown == 0 {
		opts.Cooldown = DefaultCooldown
	}
	if opts.TemplateDelay == 0 {
		opts.TemplateDelay = DefaultTemplateDelay
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	o := &Orchestrator{
		sessionID:     sessionID,
		classifier:    classifier,
		kb:            kb,
		emotion:       emotion,
		generator:     generator,
		cooldown:      opts.Cooldown,
		templateDelay: opts.TemplateDelay,
		clock:         opts.Clock,
		sink:          opts.Sink,
	}
	o.messages = []models.Message{o.greetingMessage()}
	return o
}

// Submit runs one full turn and returns the bot message it settled on, or nil
// when the input was empty after trimming. Overlapping calls serialize; each
// accepted submission produces exactly one user append and one bot append.
func (o *Orchestrator) Submit(ctx context.Context, text string) *models.Message {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	o.turnMu.Lock()
	defer o.turnMu.Unlock()

	// Cooldown gate: reject without touching the gate timestamp so rapid-fire
	// submissions stay rejected until a full interval has passed.
	o.mu.Lock()
	now := o.clock()
	if now.Sub(o.lastMessage) < o.cooldown {
		pause := o.append(models.Message{Content: PauseMessage, Sender: models.SenderBot})
		o.mu.Unlock()
		o.notifyAppended(pause)
		return &pause
	}
	o.lastMessage = now
	o.mu.Unlock()

	userTone := o.classifier.Classify(trimmed)

	// Emotion analysis is independent of the log append and may overlap with
	// the backend call.
	emotionCh := make(chan models.EmotionResult, 1)
	go func() {
		emotionCh <- o.emotion.Analyze(ctx, trimmed)
	}()

	// Window is the log before this turn's user message; the current message
	// travels separately so it never appears twice in the prompt. Appending
	// the user message here makes it readable before the reply settles.
	o.mu.Lock()
	window := o.window()
	userMsg := o.append(models.Message{Content: trimmed, Sender: models.SenderUser, Tone: userTone})
	userIdx := len(o.messages) - 1
	o.mu.Unlock()
	o.notifyAppended(userMsg)

	o.setComposing(true)
	defer o.setComposing(false)

	if entry, ok := o.kb.Match(trimmed); ok {
		// A canned reply lands after a short delay so it does not look
		// implausibly instant.
		select {
		case <-time.After(o.templateDelay):
		case <-ctx.Done():
		}

		reply := o.settle(userIdx, <-emotionCh, models.Message{
			Content:         entry.Answer,
			Sender:          models.SenderBot,
			FollowUpPrompts: entry.FollowUpPrompts,
		})
		return &reply
	}

	generated, err := o.generator.Generate(ctx, trimmed, window)
	emotionRes := <-emotionCh

	if err != nil {
		log.Printf("[chat] generation failed for session=%s: %v", o.sessionID, err)
		apology := o.settle(userIdx, emotionRes, models.Message{Content: apologyFor(err), Sender: models.SenderBot})
		return &apology
	}

	reply := o.settle(userIdx, emotionRes, models.Message{Content: Enhance(generated, emotionRes), Sender: models.SenderBot})
	return &reply
}

// Clear resets the log to the canonical greeting and reopens the rate gate.
func (o *Orchestrator) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.messages = []models.Message{o.greetingMessage()}
	o.lastMessage = time.Time{}
	o.composing = false
}

// Messages returns a copy of the log in insertion order.
func (o *Orchestrator) Messages() []models.Message {
	o.mu.Lock()
	defer o.mu.Unlock()

	copied := make([]models.Message, len(o.messages))
	copy(copied, o.messages)
	return copied
}

// Composing reports whether a bot reply is currently being produced.
func (o *Orchestrator) Composing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.composing
}

// append stamps and stores a message. Caller holds o.mu and fires
// notifyAppended after releasing it.
func (o *Orchestrator) append(msg models.Message) models.Message {
	msg.ID = uuid.NewString()
	msg.Timestamp = o.clock()
	o.messages = append(o.messages, msg)
	return msg
}

// settle annotates the turn's user message with the emotion result and
// appends the bot reply in one critical section.
func (o *Orchestrator) settle(userIdx int, res models.EmotionResult, reply models.Message) models.Message {
	o.mu.Lock()
	// The log may have been cleared while the backend call was in flight.
	if userIdx < len(o.messages) && o.messages[userIdx].Sender == models.SenderUser {
		o.messages[userIdx].Emotion = &res
	}
	appended := o.append(reply)
	o.mu.Unlock()

	o.notifyAppended(appended)
	return appended
}

func (o *Orchestrator) notifyAppended(msg models.Message) {
	if o.sink != nil {
		o.sink.MessageAppended(o.sessionID, msg)
	}
}

func (o *Orchestrator) setComposing(composing bool) {
	o.mu.Lock()
	o.composing = composing
	o.mu.Unlock()

	if o.sink != nil {
		o.sink.ComposingChanged(o.sessionID, composing)
	}
}

func (o *Orchestrator) window() []models.Message {
	start := 0
	if len(o.messages) > windowSize {
		start = len(o.messages) - windowSize
	}
	return append([]models.Message(nil), o.messages[start:]...)
}

func (o *Orchestrator) greetingMessage() models.Message {
	return models.Message{
		ID:        uuid.NewString(),
		Content:   Greeting,
		Sender:    models.SenderBot,
		Timestamp: o.clock(),
	}
}

func apologyFor(err error) string {
	if msg, ok := apologies[backend.KindOf(err)]; ok {
		return msg
	}
	return genericApology
}
