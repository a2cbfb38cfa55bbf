package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"emily-backend/internal/models"
)

// neutralFallback is returned for every failure mode. Analyze never surfaces
// an error to its caller.
var neutralFallback = models.EmotionResult{Mood: models.MoodNeutral, Score: 0}

// Client calls the remote sentiment endpoint and normalizes its reply into the
// fixed mood set.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

func NewClient(apiURL string) *Client {
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithHTTPClient overrides the transport, used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Mood  string  `json:"mood"`
	Score float64 `json:"score"`
}

// Analyze posts the text for sentiment analysis. One attempt, fail-soft: any
// transport error, non-2xx status, or malformed payload yields {neutral, 0}.
func (c *Client) Analyze(ctx context.Context, text string) models.EmotionResult {
	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return neutralFallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return neutralFallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[emotion] request failed, falling back to neutral: %v", err)
		return neutralFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[emotion] unexpected status %d, falling back to neutral", resp.StatusCode)
		return neutralFallback
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[emotion] malformed response, falling back to neutral: %v", err)
		return neutralFallback
	}

	return models.EmotionResult{
		Mood:  normalizeMood(parsed.Mood),
		Score: parsed.Score,
	}
}

func normalizeMood(mood string) models.Mood {
	lower := strings.ToLower(mood)

	switch {
	case strings.Contains(lower, "happy"),
		strings.Contains(lower, "positive"),
		strings.Contains(lower, "joy"):
		return models.MoodHappy
	case strings.Contains(lower, "frustrated"),
		strings.Contains(lower, "negative"),
		strings.Contains(lower, "sad"),
		strings.Contains(lower, "angry"):
		return models.MoodFrustrated
	}
	return models.MoodNeutral
}
