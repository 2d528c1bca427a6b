package transcript

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters
// Returns the parsed metadata, whether frontmatter was found, and the remaining
// content without frontmatter
func ParseFrontmatter(content []byte) (Metadata, bool, []byte) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return Metadata{}, false, content
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return Metadata{}, false, content
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var meta Metadata
	if err := yaml.Unmarshal([]byte(frontmatterStr), &meta); err != nil {
		return Metadata{}, false, content
	}

	// Return remaining content after frontmatter
	remaining := rest[endIdx+4:] // +4 for "\n---"
	remaining = strings.TrimPrefix(remaining, "\r")
	remaining = strings.TrimPrefix(remaining, "\n")

	return meta, true, []byte(remaining)
}
