package generator

import (
	"context"
	"fmt"
)

// Step is one pipeline node: it reads the accumulated state and returns it with
// exactly one more field set.
type Step struct {
	Name string
	Run  func(ctx context.Context, a *Agent, s GenerationState) (GenerationState, error)
}

// Steps 固定顺序：title → outline → content → seo_summary → tags。
var Steps = []Step{
	{Name: "title_creation", Run: titleCreation},
	{Name: "outline_generation", Run: outlineGeneration},
	{Name: "content_generation", Run: contentGeneration},
	{Name: "seo_summary", Run: seoSummary},
	{Name: "tags_extraction", Run: tagsExtraction},
}

func emptyResult(step, field string) error {
	return &UpstreamError{Op: step, Err: fmt.Errorf("model returned empty %s", field)}
}

func missingInput(step, field string) error {
	return fmt.Errorf("%s: %s not generated yet", step, field)
}

func (a *Agent) title(ctx context.Context, topic string) (string, error) {
	title, err := a.llm.Complete(ctx, a.model, TitlePrompt(topic))
	if err != nil {
		return "", err
	}
	if title == "" {
		return "", emptyResult("title_creation", "title")
	}
	return title, nil
}

func titleCreation(ctx context.Context, a *Agent, s GenerationState) (GenerationState, error) {
	title, err := a.title(ctx, s.Topic)
	if err != nil {
		return s, err
	}
	b := s.blog()
	b.Title = title
	s.Blog = &b
	return s, nil
}

func outlineGeneration(ctx context.Context, a *Agent, s GenerationState) (GenerationState, error) {
	title := s.Title()
	if title == "" {
		return s, missingInput("outline_generation", "title")
	}
	raw, err := a.llm.Complete(ctx, a.model, OutlinePrompt(s.Topic, title))
	if err != nil {
		return s, err
	}
	bullets := ParseOutline(raw)
	if len(bullets) == 0 {
		return s, emptyResult("outline_generation", "outline")
	}
	b := s.blog()
	b.Outline = bullets
	s.Blog = &b
	return s, nil
}

func contentGeneration(ctx context.Context, a *Agent, s GenerationState) (GenerationState, error) {
	title := s.Title()
	if title == "" {
		return s, missingInput("content_generation", "title")
	}
	content, err := a.llm.Complete(ctx, a.model, ContentPrompt(s.Topic, title))
	if err != nil {
		return s, err
	}
	if content == "" {
		return s, emptyResult("content_generation", "content")
	}
	b := s.blog()
	b.Content = content
	s.Blog = &b
	return s, nil
}

func seoSummary(ctx context.Context, a *Agent, s GenerationState) (GenerationState, error) {
	content := s.Content()
	if content == "" {
		return s, missingInput("seo_summary", "content")
	}
	summary, err := a.llm.Complete(ctx, a.model, SEOSummaryPrompt(content))
	if err != nil {
		return s, err
	}
	if summary == "" {
		return s, emptyResult("seo_summary", "summary")
	}
	v := s.seo()
	v.Summary = summary
	s.SEO = &v
	return s, nil
}

func tagsExtraction(ctx context.Context, a *Agent, s GenerationState) (GenerationState, error) {
	content := s.Content()
	if content == "" {
		return s, missingInput("tags_extraction", "content")
	}
	raw, err := a.llm.Complete(ctx, a.model, TagsPrompt(content))
	if err != nil {
		return s, err
	}
	tags := ParseTags(raw)
	if len(tags) == 0 {
		return s, emptyResult("tags_extraction", "tags")
	}
	v := s.seo()
	v.Tags = tags
	s.SEO = &v
	return s, nil
}
