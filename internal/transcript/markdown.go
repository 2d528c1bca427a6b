package transcript

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser parses markdown transcripts. Only prose is kept: headings
// become the title, code and raw HTML are dropped.
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFormat(path) == FormatMarkdown
}

// Parse parses a markdown file into spoken text
func (p *MarkdownParser) Parse(path string, content []byte) (*Transcript, error) {
	meta, _, body := ParseFrontmatter(content)

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(body))

	spoken, heading := p.extractText(doc, body)

	title := meta.Title
	if title == "" {
		title = heading
	}

	return &Transcript{
		Path:            path,
		Format:          FormatMarkdown,
		Text:            spoken,
		Title:           title,
		DurationSeconds: meta.seconds(),
	}, nil
}

// extractText walks the AST collecting paragraph text.
// It also returns the first heading, if any.
func (p *MarkdownParser) extractText(doc ast.Node, source []byte) (string, string) {
	var sb strings.Builder
	var firstHeading string

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML, *ast.CodeSpan:
			return ast.WalkSkipChildren, nil

		case *ast.Heading:
			if entering && firstHeading == "" {
				firstHeading = string(node.Text(source))
			}
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			if !entering {
				break
			}
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte('\n')
			}

		case *ast.Paragraph, *ast.TextBlock:
			if !entering && sb.Len() > 0 {
				sb.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	return trimText(sb.String()), firstHeading
}
