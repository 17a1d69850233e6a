package anthropic

import "encoding/json"

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error *apiError `json:"error"`
}

// fightVerdict is the JSON object the model is asked to return.
type fightVerdict struct {
	Winner         string      `json:"winner"`
	WinProbability json.Number `json:"win_probability"`
	Narrative      string      `json:"narrative"`
}
