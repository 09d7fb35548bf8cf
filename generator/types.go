package generator

// GenerationState accumulates pipeline output for one topic. Each field is written by
// exactly one step; nothing is removed once set.
type GenerationState struct {
	Topic string `json:"topic"`
	Blog  *Blog  `json:"blog,omitempty"`
	SEO   *SEO   `json:"seo,omitempty"`
}

// Blog 为正文部分：标题、大纲、Markdown 内容。
type Blog struct {
	Title   string   `json:"title"`
	Outline []string `json:"outline,omitempty"`
	Content string   `json:"content,omitempty"`
}

// SEO holds the search metadata derived from the content.
type SEO struct {
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// blog returns a copy of the blog section, never nil.
func (s GenerationState) blog() Blog {
	if s.Blog == nil {
		return Blog{}
	}
	b := *s.Blog
	return b
}

func (s GenerationState) seo() SEO {
	if s.SEO == nil {
		return SEO{}
	}
	v := *s.SEO
	return v
}

// Title returns the generated title or "" when the title step has not run.
func (s GenerationState) Title() string { return s.blog().Title }

// Content returns the generated Markdown content or "".
func (s GenerationState) Content() string { return s.blog().Content }

// Event is one unit of the streaming feed. Name is empty for plain data fragments.
type Event struct {
	Name string
	Data string
}

const (
	EventTitle = "title"
	EventData  = ""
	EventEnd   = "end"
	EventError = "error"
)

// Terminal reports whether no event can follow e.
func (e Event) Terminal() bool {
	return e.Name == EventEnd || e.Name == EventError
}
