package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Agent 按固定顺序调用模型，为一个 topic 生成完整博客。
type Agent struct {
	llm    LLMClient
	model  string
	logger zerolog.Logger
}

// NewAgent wires the model client. An empty model falls back to DefaultModel and a
// nil logger disables logging.
func NewAgent(llm LLMClient, model string, logger *zerolog.Logger) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if model == "" {
		model = DefaultModel
	}
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Agent{llm: llm, model: model, logger: l}, nil
}

// Model returns the model id sent with every request.
func (a *Agent) Model() string { return a.model }

// ValidateTopic trims the topic and rejects it when nothing is left.
func ValidateTopic(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", &ValidationError{Msg: "Topic is required"}
	}
	return topic, nil
}

// Run executes every step in order and returns the fully populated state. The first
// failing step aborts the run and no partial state is returned.
func (a *Agent) Run(ctx context.Context, topic string) (GenerationState, error) {
	topic, err := ValidateTopic(topic)
	if err != nil {
		return GenerationState{}, err
	}

	state := GenerationState{Topic: topic}
	start := time.Now()
	for _, step := range Steps {
		stepStart := time.Now()
		a.logger.Debug().Str("step", step.Name).Str("topic", topic).Msg("step start")
		next, err := step.Run(ctx, a, state)
		if err != nil {
			a.logger.Error().Err(err).Str("step", step.Name).Dur("elapsed", time.Since(stepStart)).Msg("step failed")
			return GenerationState{}, err
		}
		a.logger.Info().Str("step", step.Name).Dur("elapsed", time.Since(stepStart)).Msg("step done")
		state = next
	}
	a.logger.Info().Str("topic", topic).Dur("elapsed", time.Since(start)).Msg("blog generated")
	return state, nil
}
