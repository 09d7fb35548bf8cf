package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgentRequiresClient(t *testing.T) {
	_, err := NewAgent(nil, "", nil)
	require.Error(t, err)
}

func TestNewAgentDefaultsModel(t *testing.T) {
	a, err := NewAgent(newFakeLLM(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, a.Model())
}

func TestRunPopulatesEveryField(t *testing.T) {
	fake := newFakeLLM()
	a, err := NewAgent(fake, "test-model", nil)
	require.NoError(t, err)

	state, err := a.Run(context.Background(), "  go concurrency ")
	require.NoError(t, err)

	assert.Equal(t, "go concurrency", state.Topic)
	require.NotNil(t, state.Blog)
	require.NotNil(t, state.SEO)
	assert.Equal(t, "Go Concurrency, Demystified", state.Blog.Title)
	assert.Equal(t, []string{"- Intro", "- Goroutines", "- Channels", "- Wrap-up"}, state.Blog.Outline)
	assert.Equal(t, "# Go Concurrency\n\nGoroutines are cheap.", state.Blog.Content)
	assert.Equal(t, "Learn Go concurrency basics.", state.SEO.Summary)
	assert.Equal(t, []string{"go", "concurrency", "goroutines", "channels"}, state.SEO.Tags)
}

func TestRunCallsStepsInOrder(t *testing.T) {
	fake := newFakeLLM()
	a, err := NewAgent(fake, "", nil)
	require.NoError(t, err)

	_, err = a.Run(context.Background(), "topic")
	require.NoError(t, err)

	assert.Equal(t, []string{
		TitlePrompt("").System,
		OutlinePrompt("", "").System,
		ContentPrompt("", "").System,
		SEOSummaryPrompt("").System,
		TagsPrompt("").System,
	}, fake.systems())
}

func TestRunThreadsStateBetweenSteps(t *testing.T) {
	fake := newFakeLLM()
	a, err := NewAgent(fake, "", nil)
	require.NoError(t, err)

	_, err = a.Run(context.Background(), "topic")
	require.NoError(t, err)

	require.Len(t, fake.calls, 5)
	assert.Contains(t, fake.calls[1].User, `titled "Go Concurrency, Demystified"`)
	assert.Contains(t, fake.calls[2].User, "Title: Go Concurrency, Demystified.")
	assert.Contains(t, fake.calls[3].User, "Goroutines are cheap.")
	assert.Contains(t, fake.calls[4].User, "Goroutines are cheap.")
	assert.Equal(t, 0.5, fake.calls[1].Temperature)
	assert.Equal(t, 0.6, fake.calls[3].Temperature)
}

func TestRunRejectsBlankTopicBeforeAnyCall(t *testing.T) {
	for _, topic := range []string{"", "   ", "\n\t"} {
		fake := newFakeLLM()
		a, err := NewAgent(fake, "", nil)
		require.NoError(t, err)

		_, err = a.Run(context.Background(), topic)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Equal(t, "Topic is required", err.Error())
		assert.Empty(t, fake.calls)
	}
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	fake := newFakeLLM()
	fake.errs[ContentPrompt("", "").System] = errBoom
	a, err := NewAgent(fake, "", nil)
	require.NoError(t, err)

	state, err := a.Run(context.Background(), "topic")
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, GenerationState{}, state)
	// title, outline, content; nothing after the failing step
	assert.Len(t, fake.calls, 3)
}

func TestRunTreatsEmptyAnswerAsUpstreamError(t *testing.T) {
	tests := []struct {
		name   string
		system string
		calls  int
	}{
		{name: "title", system: TitlePrompt("").System, calls: 1},
		{name: "outline", system: OutlinePrompt("", "").System, calls: 2},
		{name: "content", system: ContentPrompt("", "").System, calls: 3},
		{name: "summary", system: SEOSummaryPrompt("").System, calls: 4},
		{name: "tags", system: TagsPrompt("").System, calls: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeLLM()
			fake.responses[tt.system] = ""
			a, err := NewAgent(fake, "", nil)
			require.NoError(t, err)

			_, err = a.Run(context.Background(), "topic")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUpstream)
			assert.Contains(t, err.Error(), "model returned empty")
			assert.Len(t, fake.calls, tt.calls)
		})
	}
}

func TestStepsLeaveOtherFieldsUntouched(t *testing.T) {
	fake := newFakeLLM()
	a, err := NewAgent(fake, "", nil)
	require.NoError(t, err)

	before := GenerationState{
		Topic: "topic",
		Blog:  &Blog{Title: "T", Content: "body"},
		SEO:   &SEO{Tags: []string{"x"}},
	}
	after, err := seoSummary(context.Background(), a, before)
	require.NoError(t, err)

	assert.Equal(t, "T", after.Blog.Title)
	assert.Equal(t, "body", after.Blog.Content)
	assert.Equal(t, []string{"x"}, after.SEO.Tags)
	assert.Equal(t, "Learn Go concurrency basics.", after.SEO.Summary)
	// the input state is not mutated
	assert.Empty(t, before.SEO.Summary)
}

func TestStepsRequirePredecessors(t *testing.T) {
	a, err := NewAgent(newFakeLLM(), "", nil)
	require.NoError(t, err)

	_, err = outlineGeneration(context.Background(), a, GenerationState{Topic: "t"})
	assert.Error(t, err)
	_, err = tagsExtraction(context.Background(), a, GenerationState{Topic: "t", Blog: &Blog{Title: "T"}})
	assert.Error(t, err)
}

func TestMockLLMRunsWholePipeline(t *testing.T) {
	a, err := NewAgent(MockLLM{}, "", nil)
	require.NoError(t, err)

	state, err := a.Run(context.Background(), "offline")
	require.NoError(t, err)
	assert.NotEmpty(t, state.Blog.Title)
	assert.NotEmpty(t, state.Blog.Outline)
	assert.LessOrEqual(t, len(state.Blog.Outline), MaxOutlineBullets)
	assert.NotEmpty(t, state.Blog.Content)
	assert.NotEmpty(t, state.SEO.Summary)
	assert.NotEmpty(t, state.SEO.Tags)
}
