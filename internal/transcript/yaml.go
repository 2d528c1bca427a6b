package transcript

import (
	"gopkg.in/yaml.v3"
)

// YAMLParser parses transcripts stored as YAML documents
type YAMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	return GetFormat(path) == FormatYAML
}

type yamlTranscript struct {
	Metadata `yaml:",inline"`
	Text     string `yaml:"text"`
}

// Parse parses a YAML transcript
func (p *YAMLParser) Parse(path string, content []byte) (*Transcript, error) {
	var doc yamlTranscript
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	return &Transcript{
		Path:            path,
		Format:          FormatYAML,
		Text:            trimText(doc.Text),
		Title:           doc.Title,
		DurationSeconds: doc.seconds(),
	}, nil
}
