package generator

import (
	"context"
	"io"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (chat completions).
// Groq and other OpenAI-compatible gateways are reached through BaseURL.
type OpenAILLM struct {
	Provider string
	BaseURL  string
	client   openai.Client
}

// NewOpenAILLM builds a reusable client handle. The API key is passed in by the caller.
func NewOpenAILLM(cfg LLMSettings) (*OpenAILLM, error) {
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Msg: "api key missing; set GROQ_API_KEY or OPENAI_API_KEY"}
	}
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderGroq
	}
	baseURL := cfg.BaseURL
	if baseURL == "" && provider == ProviderGroq {
		baseURL = GroqBaseURL
	}

	// retries are left to the caller; a failed call surfaces immediately
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAILLM{
		Provider: provider,
		BaseURL:  baseURL,
		client:   openai.NewClient(opts...),
	}, nil
}

func (o *OpenAILLM) params(model string, prompt Prompt) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(prompt.Temperature),
	}
}

func (o *OpenAILLM) Complete(ctx context.Context, model string, prompt Prompt) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, o.params(model, prompt))
	if err != nil {
		return "", upstream(o.Provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAILLM) CompleteStream(ctx context.Context, model string, prompt Prompt) (FragmentStream, error) {
	stream := o.client.Chat.Completions.NewStreaming(ctx, o.params(model, prompt))
	return &openAIStream{provider: o.Provider, stream: stream}, nil
}

// openAIStream adapts the SDK's SSE iterator to FragmentStream.
type openAIStream struct {
	provider string
	stream   *ssestream.Stream[openai.ChatCompletionChunk]
	closed   bool
}

func (s *openAIStream) Recv() (string, error) {
	if s.closed {
		return "", errStreamClosed
	}
	for s.stream.Next() {
		chunk := s.stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if text := chunk.Choices[0].Delta.Content; text != "" {
			return text, nil
		}
	}
	if err := s.stream.Err(); err != nil {
		return "", upstream(s.provider, err)
	}
	return "", io.EOF
}

func (s *openAIStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.stream.Close()
}
