package transcript

import (
	"encoding/json"
)

// JSONParser parses transcripts stored as {"text": ..., "duration_seconds": ...}
type JSONParser struct{}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFormat(path) == FormatJSON
}

type jsonTranscript struct {
	Metadata
	Text string `json:"text"`
}

// Parse parses a JSON transcript
func (p *JSONParser) Parse(path string, content []byte) (*Transcript, error) {
	var doc jsonTranscript
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	return &Transcript{
		Path:            path,
		Format:          FormatJSON,
		Text:            trimText(doc.Text),
		Title:           doc.Title,
		DurationSeconds: doc.seconds(),
	}, nil
}
