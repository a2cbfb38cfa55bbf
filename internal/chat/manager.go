package chat

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"emily-backend/internal/backend"
	"emily-backend/internal/knowledge"
	"emily-backend/internal/tone"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager hands out one orchestrator per session, all sharing the same
// classifier, knowledge table, and backend strategy.
type Manager struct {
	classifier *tone.Classifier
	kb         *knowledge.Base
	emotion    EmotionAnalyzer
	generator  backend.Generator
	opts       Options

	mu       sync.RWMutex
	sessions map[string]*Orchestrator
}

func NewManager(emotion EmotionAnalyzer, generator backend.Generator, opts Options) *Manager {
	return &Manager{
		classifier: tone.NewClassifier(),
		kb:         knowledge.NewBase(),
		emotion:    emotion,
		generator:  generator,
		opts:       opts,
		sessions:   make(map[string]*Orchestrator),
	}
}

// CreateSession provisions a new conversation seeded with the greeting.
func (m *Manager) CreateSession() (string, *Orchestrator) {
	id := uuid.NewString()
	orch := NewOrchestrator(id, m.classifier, m.kb, m.emotion, m.generator, m.opts)

	m.mu.Lock()
	m.sessions[id] = orch
	m.mu.Unlock()

	return id, orch
}

// Get retrieves the orchestrator for a session.
func (m *Manager) Get(sessionID string) (*Orchestrator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orch, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return orch, nil
}
