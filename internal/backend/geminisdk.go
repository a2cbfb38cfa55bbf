package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"emily-backend/internal/models"
)

// GeminiSDK is the single-endpoint strategy built on the official genai
// client. It trades the 404 fallback of the direct strategy for the SDK's
// session handling.
type GeminiSDK struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiSDK(ctx context.Context, apiKey, modelName string) (*GeminiSDK, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)

	return &GeminiSDK{client: client, model: model}, nil
}

func (g *GeminiSDK) Close() {
	g.client.Close()
}

func (g *GeminiSDK) Generate(ctx context.Context, message string, history []models.Message) (string, error) {
	session := g.model.StartChat()

	session.History = append(session.History, &genai.Content{
		Role:  "user",
		Parts: []genai.Part{genai.Text(SystemPrompt)},
	})
	for _, msg := range history {
		role := "model"
		if msg.Sender == models.SenderUser {
			role = "user"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", transportError(err)
	}

	text := extractText(resp)
	if text == "" {
		return "", newError(KindInvalidResponseShape, "empty candidate text", nil)
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
