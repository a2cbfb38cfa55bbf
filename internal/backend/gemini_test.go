package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"emily-backend/internal/models"
)

func writeGeminiReply(w http.ResponseWriter, text string) {
	json.NewEncoder(w).Encode(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
}

func writeGeminiError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": message},
	})
}

func TestGemini_FallsThroughOn404(t *testing.T) {
	var primaryHits, fallbackHits int

	mux := http.NewServeMux()
	mux.HandleFunc("/primary", func(w http.ResponseWriter, r *http.Request) {
		primaryHits++
		writeGeminiError(w, http.StatusNotFound, "model not found")
	})
	mux.HandleFunc("/fallback", func(w http.ResponseWriter, r *http.Request) {
		fallbackHits++
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("Expected key query parameter, got %q", r.URL.RawQuery)
		}
		writeGeminiReply(w, "Hello from the fallback!")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	g := NewGemini("test-key", []string{server.URL + "/primary", server.URL + "/fallback"})

	reply, err := g.Generate(context.Background(), "hi", nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if reply != "Hello from the fallback!" {
		t.Errorf("Expected fallback reply, got %q", reply)
	}
	if primaryHits != 1 || fallbackHits != 1 {
		t.Errorf("Expected one hit per endpoint, got %d and %d", primaryHits, fallbackHits)
	}
}

func TestGemini_AllEndpointsExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeGeminiError(w, http.StatusNotFound, "model not found")
	}))
	defer server.Close()

	g := NewGemini("test-key", []string{server.URL + "/a", server.URL + "/b"})

	_, err := g.Generate(context.Background(), "hi", nil)
	if err == nil {
		t.Fatal("Expected an error when every endpoint 404s")
	}
	if KindOf(err) != KindAllEndpointsExhausted {
		t.Errorf("Expected KindAllEndpointsExhausted, got %v", KindOf(err))
	}
}

func TestGemini_NonFallthroughErrorsStopImmediately(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected Kind
	}{
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"unauthorized", http.StatusUnauthorized, KindUnauthorized},
		{"server error", http.StatusInternalServerError, KindGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var fallbackHits int
			mux := http.NewServeMux()
			mux.HandleFunc("/primary", func(w http.ResponseWriter, r *http.Request) {
				writeGeminiError(w, tc.status, "nope")
			})
			mux.HandleFunc("/fallback", func(w http.ResponseWriter, r *http.Request) {
				fallbackHits++
				writeGeminiReply(w, "should not be reached")
			})
			server := httptest.NewServer(mux)
			defer server.Close()

			g := NewGemini("test-key", []string{server.URL + "/primary", server.URL + "/fallback"})

			_, err := g.Generate(context.Background(), "hi", nil)
			if KindOf(err) != tc.expected {
				t.Errorf("Expected kind %v, got %v (err: %v)", tc.expected, KindOf(err), err)
			}
			if fallbackHits != 0 {
				t.Errorf("Expected no fallback call, got %d", fallbackHits)
			}
		})
	}
}

func TestGemini_MissingCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	g := NewGemini("test-key", []string{server.URL})

	_, err := g.Generate(context.Background(), "hi", nil)
	if KindOf(err) != KindInvalidResponseShape {
		t.Errorf("Expected KindInvalidResponseShape, got %v", KindOf(err))
	}
}

func TestGemini_BuildRequestOrdering(t *testing.T) {
	g := NewGemini("test-key", nil)

	history := []models.Message{
		{Content: "hi", Sender: models.SenderUser},
		{Content: "hello!", Sender: models.SenderBot},
	}

	req := g.buildRequest("how are you", history)

	if len(req.Contents) != 4 {
		t.Fatalf("Expected 4 contents, got %d", len(req.Contents))
	}
	if req.Contents[0].Role != "user" || req.Contents[0].Parts[0].Text != SystemPrompt {
		t.Error("Expected the persona prompt as the opening user turn")
	}
	if req.Contents[1].Role != "user" || req.Contents[1].Parts[0].Text != "hi" {
		t.Errorf("Expected history user turn second, got %+v", req.Contents[1])
	}
	if req.Contents[2].Role != "model" || req.Contents[2].Parts[0].Text != "hello!" {
		t.Errorf("Expected history model turn third, got %+v", req.Contents[2])
	}
	if req.Contents[3].Role != "user" || req.Contents[3].Parts[0].Text != "how are you" {
		t.Errorf("Expected the current message last, got %+v", req.Contents[3])
	}
}
