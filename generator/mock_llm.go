package generator

import (
	"context"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
// It answers each prompt kind with fixed text derived from the user prompt.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, _ string, prompt Prompt) (string, error) {
	switch prompt.System {
	case TitlePrompt("").System:
		return "A Practical Guide", nil
	case OutlinePrompt("", "").System:
		return "- Introduction\n- Background\n- Key ideas\n- Examples\n- Conclusion", nil
	case ContentPrompt("", "").System:
		return mockContent(prompt.User), nil
	case SEOSummaryPrompt("").System:
		return "A short, practical overview generated offline.", nil
	case TagsPrompt("").System:
		return "guide, overview, offline, example, draft", nil
	}
	return strings.TrimSpace(prompt.User), nil
}

func (m MockLLM) CompleteStream(_ context.Context, _ string, prompt Prompt) (FragmentStream, error) {
	content := mockContent(prompt.User)
	var fragments []string
	for _, word := range strings.SplitAfter(content, " ") {
		if word != "" {
			fragments = append(fragments, word)
		}
	}
	return NewSliceStream(fragments, nil), nil
}

func mockContent(user string) string {
	var sb strings.Builder
	sb.WriteString("# Offline draft\n\n")
	sb.WriteString("This post was produced without calling a model.\n\n")
	sb.WriteString("## Prompt\n\n")
	sb.WriteString("```\n")
	sb.WriteString(user)
	sb.WriteString("\n```\n")
	return sb.String()
}
