package tokenizer

import (
	"errors"
)

// ErrMalformedInput is returned when the input is not valid UTF-8
var ErrMalformedInput = errors.New("malformed input: text is not valid UTF-8")

// Token is a single morpheme produced by morphological analysis
type Token struct {
	// Surface is the text of the token as it appears in the input
	Surface string `json:"surface"`

	// PartOfSpeech is the comma-delimited hierarchical tag,
	// e.g. "名詞,固有名詞,地域,一般". The first segment is the coarse category.
	PartOfSpeech string `json:"pos"`
}

// Tokenizer segments text into tagged tokens.
// Implementations must be safe to reuse across analyses.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// Func adapts a plain function to the Tokenizer interface
type Func func(text string) ([]Token, error)

// Tokenize calls f(text)
func (f Func) Tokenize(text string) ([]Token, error) {
	return f(text)
}
