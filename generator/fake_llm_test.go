package generator

import (
	"context"
	"errors"
	"sync"
)

// fakeLLM answers by system prompt and records every call.
type fakeLLM struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	fragments []string
	streamErr error
	calls     []Prompt
	streams   []*recordingStream
}

func newFakeLLM() *fakeLLM {
	return &fakeLLM{
		responses: map[string]string{
			TitlePrompt("").System:      "  Go Concurrency, Demystified  ",
			OutlinePrompt("", "").System: "- Intro\n\n- Goroutines\n- Channels\n- Wrap-up",
			ContentPrompt("", "").System: "# Go Concurrency\n\nGoroutines are cheap.",
			SEOSummaryPrompt("").System:  "Learn Go concurrency basics.",
			TagsPrompt("").System:        "go, concurrency,\ngoroutines , channels",
		},
		errs:      map[string]error{},
		fragments: []string{"Hel", "lo"},
	}
}

func (f *fakeLLM) Complete(_ context.Context, _ string, prompt Prompt) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, prompt)
	if err := f.errs[prompt.System]; err != nil {
		return "", err
	}
	return f.responses[prompt.System], nil
}

func (f *fakeLLM) CompleteStream(_ context.Context, _ string, prompt Prompt) (FragmentStream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, prompt)
	if err := f.errs[prompt.System]; err != nil {
		return nil, err
	}
	s := &recordingStream{FragmentStream: NewSliceStream(f.fragments, f.streamErr)}
	f.streams = append(f.streams, s)
	return s, nil
}

func (f *fakeLLM) systems() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.System)
	}
	return out
}

type recordingStream struct {
	FragmentStream
	closed bool
}

func (r *recordingStream) Close() error {
	r.closed = true
	return r.FragmentStream.Close()
}

var errBoom = errors.New("boom: upstream unavailable")
