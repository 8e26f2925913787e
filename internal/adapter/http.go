package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pocketdiary/diary-server/internal/config"
	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/utils"
)

// chatMessage is one turn of a chat-completions conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type httpChatAdapter struct {
	client *utils.HTTPClient
	model  string

	logger *logger.Logger
}

// NewHTTPChatAdapter constructs an HTTP implementation of [ChatCompleter]
// speaking the chat-completions wire format. It normalises and validates the
// base URL from adapterCfg.ChatAPIURL and configures the underlying HTTP
// client with the resolved base URL, the bearer API key and the request
// timeout.
//
// Returns an error if adapterCfg.ChatAPIURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPChatAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ChatCompleter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ChatAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid chat api url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.Timeout)
	if adapterCfg.ChatAPIKey != "" {
		client.SetAuthToken(adapterCfg.ChatAPIKey)
	}

	return &httpChatAdapter{client: client, model: adapterCfg.ChatModel, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Complete implements [ChatCompleter]. It POSTs a single-turn conversation to
// POST /chat/completions and returns the content of the first choice.
func (h *httpChatAdapter) Complete(ctx context.Context, message string) (string, error) {
	body := chatCompletionRequest{
		Model:    h.model,
		Messages: []chatMessage{{Role: "user", Content: message}},
	}

	var result chatCompletionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		detail := strings.TrimSpace(string(resp.Body()))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode())
		}
		return "", fmt.Errorf("%w: http %d: %s", ErrUpstream, resp.StatusCode(), detail)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: response carries no choices", ErrUpstream)
	}

	return result.Choices[0].Message.Content, nil
}
