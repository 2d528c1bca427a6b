package tokenizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"
)

// Kagome tokenizes Japanese text with the kagome analyzer and the IPA dictionary
type Kagome struct {
	t *kagome.Tokenizer
}

// NewKagome builds a tokenizer backed by the IPA dictionary.
// Loading the dictionary is the expensive part, so construct one at startup
// and pass it to whatever needs it.
func NewKagome() (*Kagome, error) {
	t, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create kagome tokenizer: %w", err)
	}
	return &Kagome{t: t}, nil
}

// Tokenize segments text into tokens tagged with their IPA part-of-speech
func (k *Kagome) Tokenize(text string) ([]Token, error) {
	if !utf8.ValidString(text) {
		return nil, ErrMalformedInput
	}

	morphs := k.t.Tokenize(text)
	tokens := make([]Token, 0, len(morphs))
	for _, m := range morphs {
		if m.Class == kagome.DUMMY {
			continue
		}
		tokens = append(tokens, Token{
			Surface:      m.Surface,
			PartOfSpeech: strings.Join(m.POS(), ","),
		})
	}
	return tokens, nil
}
