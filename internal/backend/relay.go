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

// Relay posts the turn to a first-party relay endpoint that performs the
// provider call server-side and answers {reply}.
type Relay struct {
	url        string
	token      string
	httpClient *http.Client
}

func NewRelay(url, token string) *Relay {
	return &Relay{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient overrides the transport, used by tests.
func (r *Relay) WithHTTPClient(hc *http.Client) *Relay {
	r.httpClient = hc
	return r
}

type relayHistoryItem struct {
	Content string `json:"content"`
	Sender  string `json:"sender"`
}

type relayRequest struct {
	Message             string             `json:"message"`
	ConversationHistory []relayHistoryItem `json:"conversationHistory"`
}

type relayResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error"`
}

func (r *Relay) Generate(ctx context.Context, message string, history []models.Message) (string, error) {
	items := make([]relayHistoryItem, 0, len(history))
	for _, msg := range history {
		items = append(items, relayHistoryItem{
			Content: msg.Content,
			Sender:  string(msg.Sender),
		})
	}

	payload, err := json.Marshal(relayRequest{
		Message:             message,
		ConversationHistory: items,
	})
	if err != nil {
		return "", newError(KindGeneric, "marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return "", newError(KindGeneric, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	var parsed relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", newError(KindInvalidResponseShape, "parse response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if parsed.Error != "" {
			msg = parsed.Error
		}
		return "", newError(kindFromStatus(resp.StatusCode), msg, nil)
	}

	if parsed.Reply == "" {
		return "", newError(KindInvalidResponseShape, "missing reply field", nil)
	}

	return parsed.Reply, nil
}
