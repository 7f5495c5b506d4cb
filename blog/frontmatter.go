package blog

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the optional YAML header of a post file:
//
//	---
//	title: Automação com IA
//	date: 2024-05-02
//	---
type FrontMatter struct {
	Title      string `yaml:"title"`
	Date       string `yaml:"date"`
	Author     string `yaml:"author"`
	CoverImage string `yaml:"cover_image"`
	Excerpt    string `yaml:"excerpt"`
}

// ParseFrontMatter splits a leading "---" fenced block off content and decodes
// it. Content without a block is returned unchanged with an empty FrontMatter.
func ParseFrontMatter(content string) (FrontMatter, string, error) {
	raw, body := splitFrontMatter(content)
	var fm FrontMatter
	if strings.TrimSpace(raw) == "" {
		return fm, body, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return FrontMatter{}, content, fmt.Errorf("blog: parse front matter: %w", err)
	}
	fm.Title = strings.TrimSpace(fm.Title)
	fm.Author = strings.TrimSpace(fm.Author)
	fm.CoverImage = strings.TrimSpace(fm.CoverImage)
	fm.Excerpt = strings.TrimSpace(fm.Excerpt)
	fm.Date = normalizeDate(fm.Date)
	return fm, body, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

// normalizeDate renders known layouts as YYYY-MM-DD and leaves anything else
// untouched.
func normalizeDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	layouts := []string{
		time.RFC3339,
		DateLayout,
		"2006/01/02",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(DateLayout)
		}
	}
	return v
}
