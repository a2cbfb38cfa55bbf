package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"emily-backend/internal/models"
)

func TestChatflow_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatflowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Question != "how are you" {
			t.Errorf("Expected question in payload, got %q", req.Question)
		}
		if len(req.History) != 2 {
			t.Fatalf("Expected 2 history items, got %d", len(req.History))
		}
		if req.History[0].Role != "userMessage" || req.History[1].Role != "apiMessage" {
			t.Errorf("Unexpected history roles: %+v", req.History)
		}
		if req.OverrideConfig["systemMessage"] != SystemPrompt {
			t.Error("Expected the persona prompt in overrideConfig.systemMessage")
		}

		json.NewEncoder(w).Encode(chatflowResponse{Text: "Feeling chatty today! ✨"})
	}))
	defer server.Close()

	history := []models.Message{
		{Content: "hi", Sender: models.SenderUser},
		{Content: "hello!", Sender: models.SenderBot},
	}

	reply, err := NewChatflow(server.URL).Generate(context.Background(), "how are you", history)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if reply != "Feeling chatty today! ✨" {
		t.Errorf("Expected chatflow reply, got %q", reply)
	}
}

func TestChatflow_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected Kind
	}{
		{"rate limited", http.StatusTooManyRequests, ``, KindRateLimited},
		{"not found", http.StatusNotFound, ``, KindEndpointNotFound},
		{"empty text", http.StatusOK, `{"text":""}`, KindInvalidResponseShape},
		{"not json", http.StatusOK, `oops`, KindInvalidResponseShape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := NewChatflow(server.URL).Generate(context.Background(), "hi", nil)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if KindOf(err) != tc.expected {
				t.Errorf("Expected kind %v, got %v (err: %v)", tc.expected, KindOf(err), err)
			}
		})
	}
}
