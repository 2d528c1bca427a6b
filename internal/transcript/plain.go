package transcript

// PlainParser parses plain text transcripts, honouring optional frontmatter
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse parses a plain text file
func (p *PlainParser) Parse(path string, content []byte) (*Transcript, error) {
	meta, _, body := ParseFrontmatter(content)

	return &Transcript{
		Path:            path,
		Format:          FormatPlain,
		Text:            trimText(string(body)),
		Title:           meta.Title,
		DurationSeconds: meta.seconds(),
	}, nil
}
