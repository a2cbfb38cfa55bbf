package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"emily-backend/internal/models"
)

// DefaultGeminiURLs is the ordered endpoint list for the direct strategy. A
// 404 from one endpoint means "model not served here" and falls through to
// the next.
var DefaultGeminiURLs = []string{
	"https://generativelanguage.googleapis.com/v1/models/gemini-1.5-pro:generateContent",
	"https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent",
}

// Gemini is the direct multi-endpoint strategy: raw generateContent calls with
// the API key as a query parameter.
type Gemini struct {
	apiKey     string
	urls       []string
	httpClient *http.Client
}

func NewGemini(apiKey string, urls []string) *Gemini {
	if len(urls) == 0 {
		urls = DefaultGeminiURLs
	}
	return &Gemini{
		apiKey:     apiKey,
		urls:       urls,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient overrides the transport, used by tests.
func (g *Gemini) WithHTTPClient(hc *http.Client) *Gemini {
	g.httpClient = hc
	return g
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate tries each configured endpoint in order. 404 advances to the next
// endpoint; any other failure is raised immediately with its typed kind.
func (g *Gemini) Generate(ctx context.Context, message string, history []models.Message) (string, error) {
	payload, err := json.Marshal(g.buildRequest(message, history))
	if err != nil {
		return "", newError(KindGeneric, "marshal request", err)
	}

	var lastErr error
	for _, url := range g.urls {
		reply, err := g.call(ctx, url, payload)
		if err == nil {
			return reply, nil
		}
		if KindOf(err) == KindEndpointNotFound {
			log.Printf("[gemini] endpoint %s returned 404, trying next", url)
			lastErr = err
			continue
		}
		return "", err
	}

	return "", newError(KindAllEndpointsExhausted, "all endpoints failed", lastErr)
}

func (g *Gemini) call(ctx context.Context, url string, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"?key="+g.apiKey, bytes.NewReader(payload))
	if err != nil {
		return "", newError(KindGeneric, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", newError(KindInvalidResponseShape, "parse response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", newError(kindFromStatus(resp.StatusCode), msg, nil)
	}

	if len(parsed.Candidates) == 0 ||
		len(parsed.Candidates[0].Content.Parts) == 0 ||
		parsed.Candidates[0].Content.Parts[0].Text == "" {
		return "", newError(KindInvalidResponseShape, "missing candidates[0].content.parts[0].text", nil)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// buildRequest places the persona prompt first, then the window in
// chronological order, then the current message. Gemini has no system role in
// this API version, so the persona rides as the opening user turn.
func (g *Gemini) buildRequest(message string, history []models.Message) geminiRequest {
	contents := make([]geminiContent, 0, len(history)+2)
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: SystemPrompt}},
	})

	for _, msg := range history {
		role := "model"
		if msg.Sender == models.SenderUser {
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	return geminiRequest{Contents: contents}
}
