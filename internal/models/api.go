package models

// SendMessageRequest is the payload posted to the message endpoint.
type SendMessageRequest struct {
	Message string `json:"message"`
}

// SendMessageResponse returns the bot reply appended for this turn. Reply is
// nil when the turn was silently dropped (empty input).
type SendMessageResponse struct {
	Reply *Message `json:"reply"`
}

// SessionResponse describes a freshly created conversation session.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
}

// MessagesResponse carries the full message log plus the composing flag the
// presentation layer uses to render the typing indicator.
type MessagesResponse struct {
	Messages  []Message `json:"messages"`
	Composing bool      `json:"composing"`
}

// WebSocket turn event types
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type MessageEvent struct {
	SessionID string  `json:"session_id"`
	Message   Message `json:"message"`
}

type ComposingEvent struct {
	SessionID string `json:"session_id"`
	Composing bool   `json:"composing"`
}

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
