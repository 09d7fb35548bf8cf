package generator

import "strings"

// MaxOutlineBullets caps the outline; the prompt asks for 5-7 bullets.
const MaxOutlineBullets = 7

// ParseOutline 把模型返回的大纲按行拆分，去掉空行。
func ParseOutline(raw string) []string {
	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
		if len(bullets) == MaxOutlineBullets {
			break
		}
	}
	return bullets
}

// ParseTags splits a comma-separated tag list. Newlines count as spaces.
func ParseTags(raw string) []string {
	raw = strings.ReplaceAll(raw, "\n", " ")
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}
