package chat

import (
	"errors"
	"testing"
)

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(&stubEmotion{}, &stubGenerator{reply: "ok"}, Options{})

	id, orch := m.CreateSession()
	if id == "" {
		t.Fatal("Expected a non-empty session ID")
	}
	if orch == nil {
		t.Fatal("Expected an orchestrator")
	}

	got, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != orch {
		t.Error("Expected Get to return the same orchestrator")
	}
}

func TestManager_GetUnknownSession(t *testing.T) {
	m := NewManager(&stubEmotion{}, &stubGenerator{}, Options{})

	if _, err := m.Get("no-such-session"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager(&stubEmotion{}, &stubGenerator{reply: "ok"}, Options{})

	idA, orchA := m.CreateSession()
	idB, orchB := m.CreateSession()

	if idA == idB {
		t.Fatal("Expected distinct session IDs")
	}
	if orchA == orchB {
		t.Fatal("Expected distinct orchestrators")
	}
}
