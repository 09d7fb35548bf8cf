// Package render turns a finished GenerationState into documents for the CLI.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"auto_blog_generator/generator"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown returns the post with a front-matter header carrying title, description and tags.
func Markdown(state generator.GenerationState) string {
	blog, seo := sections(state)

	var b strings.Builder
	b.WriteString("---\n")
	writeField(&b, "title", blog.Title)
	writeField(&b, "topic", state.Topic)
	writeField(&b, "description", description(state))
	if len(seo.Tags) > 0 {
		writeField(&b, "tags", seo.Tags)
	}
	b.WriteString("---\n\n")
	if len(blog.Outline) > 0 {
		b.WriteString("<!-- outline\n")
		for _, item := range blog.Outline {
			b.WriteString(item)
			b.WriteString("\n")
		}
		b.WriteString("-->\n\n")
	}
	b.WriteString(strings.TrimSpace(blog.Content))
	b.WriteString("\n")
	return b.String()
}

// HTML converts the Markdown content with goldmark and wraps it in a standalone page.
func HTML(state generator.GenerationState) (string, error) {
	blog, seo := sections(state)

	body, err := mdToHTML(blog.Content)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(blog.Title))
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(description(state)))
	if len(seo.Tags) > 0 {
		fmt.Fprintf(&b, "<meta name=\"keywords\" content=\"%s\">\n", html.EscapeString(strings.Join(seo.Tags, ", ")))
	}
	b.WriteString("</head>\n<body>\n<article>\n")
	b.WriteString(body)
	b.WriteString("</article>\n</body>\n</html>\n")
	return b.String(), nil
}

func mdToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func sections(state generator.GenerationState) (generator.Blog, generator.SEO) {
	var blog generator.Blog
	var seo generator.SEO
	if state.Blog != nil {
		blog = *state.Blog
	}
	if state.SEO != nil {
		seo = *state.SEO
	}
	return blog, seo
}

// description prefers the SEO summary and falls back to the start of the content.
func description(state generator.GenerationState) string {
	if state.SEO != nil && state.SEO.Summary != "" {
		return state.SEO.Summary
	}
	return Digest(state.Content(), 160)
}

// Digest flattens whitespace and cuts the text to at most limit runes.
func Digest(text string, limit int) string {
	joined := strings.Join(strings.Fields(text), " ")
	runes := []rune(joined)
	if len(runes) <= limit {
		return joined
	}
	return string(runes[:limit])
}

// values are written as JSON, which front-matter parsers read as YAML
func writeField(b *strings.Builder, key string, v any) {
	raw, _ := json.Marshal(v)
	fmt.Fprintf(b, "%s: %s\n", key, raw)
}
