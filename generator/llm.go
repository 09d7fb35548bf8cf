package generator

import (
	"context"
	"errors"
	"io"
)

// LLMClient 抽象大模型客户端，便于替换/Mock。
type LLMClient interface {
	// Complete issues one chat completion and returns the first choice's text, trimmed.
	// A response without content yields "" and no error.
	Complete(ctx context.Context, model string, prompt Prompt) (string, error)
	// CompleteStream starts a streaming completion. The caller must Close the stream.
	CompleteStream(ctx context.Context, model string, prompt Prompt) (FragmentStream, error)
}

// FragmentStream yields generated text fragments in arrival order.
// Recv returns io.EOF once the remote stream has ended. A stream cannot be restarted.
type FragmentStream interface {
	Recv() (string, error)
	Close() error
}

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"

	DefaultModel = "llama-3.1-8b-instant"
	GroqBaseURL  = "https://api.groq.com/openai/v1/"
)

var errStreamClosed = errors.New("stream closed")

// sliceStream serves pre-split fragments; used by MockLLM and tests.
type sliceStream struct {
	fragments []string
	pos       int
	err       error
	closed    bool
}

// NewSliceStream returns a FragmentStream over fixed fragments. If err is non-nil it is
// returned after the fragments are exhausted instead of io.EOF.
func NewSliceStream(fragments []string, err error) FragmentStream {
	return &sliceStream{fragments: fragments, err: err}
}

func (s *sliceStream) Recv() (string, error) {
	if s.closed {
		return "", errStreamClosed
	}
	if s.pos < len(s.fragments) {
		f := s.fragments[s.pos]
		s.pos++
		return f, nil
	}
	if s.err != nil {
		return "", s.err
	}
	return "", io.EOF
}

func (s *sliceStream) Close() error {
	s.closed = true
	return nil
}
