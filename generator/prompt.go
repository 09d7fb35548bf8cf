package generator

import "fmt"

// Prompt 表示发送给 LLM 的一次请求。
type Prompt struct {
	System      string
	User        string
	Temperature float64
}

// TitlePrompt asks for a creative, SEO-friendly title.
func TitlePrompt(topic string) Prompt {
	return Prompt{
		System: "You generate concise, catchy titles.",
		User: fmt.Sprintf("You are an expert blog content writer. Use Markdown formatting. "+
			"Generate a creative, SEO-friendly blog title for the topic: \"%s\".", topic),
		Temperature: 0.7,
	}
}

// OutlinePrompt asks for a 5-7 bullet outline.
func OutlinePrompt(topic, title string) Prompt {
	return Prompt{
		System: "You write concise outlines as bullet points.",
		User: fmt.Sprintf("Create a short outline (5-7 bullets) for a blog about \"%s\" titled \"%s\". "+
			"Only return bullets, no extra text.", topic, title),
		Temperature: 0.5,
	}
}

// ContentPrompt asks for the full Markdown post.
func ContentPrompt(topic, title string) Prompt {
	return Prompt{
		System: "You write detailed, well-structured Markdown content.",
		User: fmt.Sprintf("You are an expert blog writer. Use Markdown formatting. "+
			"Generate a detailed blog post with clear sections and subheadings for the topic: \"%s\". Title: %s.", topic, title),
		Temperature: 0.7,
	}
}

// SEOSummaryPrompt asks for a 1-2 sentence meta description.
func SEOSummaryPrompt(content string) Prompt {
	return Prompt{
		System:      "You write short, catchy SEO descriptions.",
		User:        "Summarize this blog in 1-2 sentences for SEO meta description:\n\n" + content,
		Temperature: 0.6,
	}
}

// TagsPrompt asks for 5-8 comma-separated tags.
func TagsPrompt(content string) Prompt {
	return Prompt{
		System:      "You create concise, relevant tags only.",
		User:        "Propose 5-8 short SEO tags (comma-separated) for this blog content:\n\n" + content,
		Temperature: 0.7,
	}
}
