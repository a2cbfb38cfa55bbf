package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"emily-backend/internal/models"
)

// Chatflow posts the turn to a hosted chatflow (Flowise-style) prediction
// endpoint and answers {text}.
type Chatflow struct {
	url        string
	httpClient *http.Client
}

func NewChatflow(url string) *Chatflow {
	return &Chatflow{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient overrides the transport, used by tests.
func (c *Chatflow) WithHTTPClient(hc *http.Client) *Chatflow {
	c.httpClient = hc
	return c
}

type chatflowHistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatflowRequest struct {
	Question       string                `json:"question"`
	History        []chatflowHistoryItem `json:"history,omitempty"`
	OverrideConfig map[string]any        `json:"overrideConfig,omitempty"`
}

type chatflowResponse struct {
	Text string `json:"text"`
}

func (c *Chatflow) Generate(ctx context.Context, message string, history []models.Message) (string, error) {
	items := make([]chatflowHistoryItem, 0, len(history))
	for _, msg := range history {
		role := "apiMessage"
		if msg.Sender == models.SenderUser {
			role = "userMessage"
		}
		items = append(items, chatflowHistoryItem{Role: role, Content: msg.Content})
	}

	payload, err := json.Marshal(chatflowRequest{
		Question: message,
		History:  items,
		OverrideConfig: map[string]any{
			"systemMessage": SystemPrompt,
		},
	})
	if err != nil {
		return "", newError(KindGeneric, "marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", newError(KindGeneric, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newError(kindFromStatus(resp.StatusCode), fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	var parsed chatflowResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", newError(KindInvalidResponseShape, "parse response body", err)
	}

	if parsed.Text == "" {
		return "", newError(KindInvalidResponseShape, "missing text field", nil)
	}

	return parsed.Text, nil
}
