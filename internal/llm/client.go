package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type client struct {
	openai openai.Client
	model  string
}

// New creates a streaming chat client. A missing API key is not an error
// here: the provider rejects the first call with an auth failure instead,
// so the server can start without credentials.
func New(cfg Config) Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	return &client{
		openai: openai.NewClient(opts...),
		model:  model,
	}
}

func (c *client) StreamChat(ctx context.Context, messages []Message) (Stream, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: convertMessages(messages),
	}

	slog.DebugContext(ctx, "opening completion stream",
		"model", c.model,
		"messages", len(messages))

	return &chatStream{stream: c.openai.Chat.Completions.NewStreaming(ctx, params)}, nil
}

func (c *client) Model() string {
	return c.model
}

func convertMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))

	for _, msg := range msgs {
		switch msg.Role {
		case RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			// Unknown roles are forwarded as user turns rather than dropped
			result = append(result, openai.UserMessage(msg.Content))
		}
	}

	return result
}

type chatStream struct {
	stream *ssestream.Stream[openai.ChatCompletionChunk]
	text   string
}

func (s *chatStream) Next() bool {
	for s.stream.Next() {
		chunk := s.stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			s.text = delta
			return true
		}
	}
	return false
}

func (s *chatStream) Text() string {
	return s.text
}

func (s *chatStream) Err() error {
	if err := s.stream.Err(); err != nil {
		return fmt.Errorf("openai completion stream: %w", err)
	}
	return nil
}

func (s *chatStream) Close() error {
	return s.stream.Close()
}
