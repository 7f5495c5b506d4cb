package blog

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// ExcerptLimit is the maximum excerpt length in runes, ellipsis included.
	ExcerptLimit = 150
	ellipsis     = "..."
)

var (
	markdown       = goldmark.New()
	markerStripper = strings.NewReplacer("*", "", "_", "", "`", "")
)

// ExtractTitle returns the first line of content without its heading marker.
// When that line is empty the title is derived from the slug.
func ExtractTitle(content, slug string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	first, _, _ := strings.Cut(content, "\n")
	first = strings.TrimSpace(first)
	if strings.HasPrefix(first, "#") {
		first = strings.TrimSpace(strings.TrimLeft(first, "#"))
	}
	if first == "" {
		return TitleFromSlug(slug)
	}
	return first
}

// TitleFromSlug turns "my-first-post" into "My First Post".
func TitleFromSlug(slug string) string {
	// cases.Caser keeps state, so one per call.
	return cases.Title(language.Und).String(strings.ReplaceAll(slug, "-", " "))
}

// ExtractExcerpt picks the first paragraph that is not a heading and returns
// it as plain text of at most ExcerptLimit runes. Paragraphs with no visible
// text (HTML blocks, link reference definitions, rules) are passed over.
func ExtractExcerpt(content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	for _, para := range splitParagraphs(content) {
		if strings.HasPrefix(para, "#") {
			continue
		}
		plain := markerStripper.Replace(markdownToText(para))
		plain = strings.Join(strings.Fields(plain), " ")
		if plain == "" {
			continue
		}
		return TruncateExcerpt(plain)
	}
	return ""
}

// TruncateExcerpt cuts s to ExcerptLimit runes, ending with "..." when cut.
func TruncateExcerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= ExcerptLimit {
		return s
	}
	return string(runes[:ExcerptLimit-len(ellipsis)]) + ellipsis
}

func splitParagraphs(content string) []string {
	var (
		paras   []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			paras = append(paras, strings.TrimSpace(strings.Join(current, "\n")))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paras
}

// markdownToText walks the goldmark AST and keeps only the text, so emphasis,
// code spans and link syntax do not leak into the excerpt.
func markdownToText(src string) string {
	source := []byte(src)
	doc := markdown.Parser().Parse(gmtext.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(unescapeText(node.Segment.Value(source)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(source))
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// unescapeText resolves backslash escapes and character references the way
// the HTML renderer would.
func unescapeText(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}
