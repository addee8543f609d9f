package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/docbotdev/docbot/internal/chatlog"
	"github.com/docbotdev/docbot/internal/common"
	"github.com/docbotdev/docbot/internal/logging"
	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are DocBot, a careful health-information assistant. " +
	"Provide general health information only. You are not a replacement for " +
	"professional medical advice; for any diagnosis or treatment question, " +
	"advise the user to consult a licensed doctor."

const defaultModel = openai.GPT4oMini

// Config holds settings for the OpenAI-compatible chat backend. BaseURL is
// overridable so tests can point the client at a local server.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	RequestTimeout time.Duration
}

// Client is the Orchestrator implementation backed by an OpenAI-compatible
// chat-completions API.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	log     logging.Logger
}

func NewClient(cfg Config, log logging.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   model,
		timeout: cfg.RequestTimeout,
		log:     log,
	}
}

// Reply sends the conversation history and the new prompt to the chat API
// and returns the assistant's reply text.
func (c *Client) Reply(ctx context.Context, history []chatlog.Message, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == chatlog.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	})
	if err != nil {
		c.log.Error(ctx, "chat completion request failed", "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrorExternalService, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion response", common.ErrorExternalService)
	}

	return resp.Choices[0].Message.Content, nil
}
