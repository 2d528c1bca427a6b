package transcript

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Transcript is a loaded speech transcript plus whatever metadata the
// source file carried
type Transcript struct {
	Path   string
	Format Format
	Text   string
	Title  string

	// DurationSeconds is the recording length declared by the source, or 0
	DurationSeconds float64
}

// HasDuration reports whether the source declared a duration
func (t *Transcript) HasDuration() bool {
	return t.DurationSeconds > 0
}

// Format represents the type of transcript file
type Format int

const (
	FormatPlain Format = iota
	FormatMarkdown
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "plain"
	}
}

// Metadata holds the optional keys a transcript can declare, either in
// frontmatter or as fields of a structured file
type Metadata struct {
	Title           string  `yaml:"title" json:"title"`
	DurationSeconds float64 `yaml:"duration_seconds" json:"duration_seconds"`
	Duration        float64 `yaml:"duration" json:"duration"`
}

// seconds prefers the explicit duration_seconds key
func (m Metadata) seconds() float64 {
	if m.DurationSeconds > 0 {
		return m.DurationSeconds
	}
	return m.Duration
}

// Parser defines the interface for parsing transcript files
type Parser interface {
	Parse(path string, content []byte) (*Transcript, error)
	CanParse(path string) bool
}

// StdinPath selects standard input
const StdinPath = "-"

// Load reads and parses a transcript file. StdinPath reads standard input
// as plain text.
func Load(path string) (*Transcript, error) {
	if path == StdinPath {
		return LoadReader(path, os.Stdin)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, content)
}

// LoadReader parses a transcript read from r; name selects the parser
func LoadReader(name string, r io.Reader) (*Transcript, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return Parse(name, content)
}

// Parse parses content using the parser selected by the name's extension
func Parse(path string, content []byte) (*Transcript, error) {
	parsed, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return parsed, nil
}

// FromText wraps literal text, e.g. from a command-line flag
func FromText(text string) *Transcript {
	return &Transcript{
		Format: FormatPlain,
		Text:   text,
	}
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFormat(path) {
	case FormatMarkdown:
		return &MarkdownParser{}
	case FormatJSON:
		return &JSONParser{}
	case FormatYAML:
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetFormat returns the Format for a given path
func GetFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatPlain
	}
}

// trimText drops trailing line breaks left by editors so they are not
// counted as spoken characters
func trimText(s string) string {
	return strings.TrimRight(s, "\r\n")
}
