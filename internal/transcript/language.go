package transcript

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// candidateLanguages are the languages a transcript is likely to be
// confused with
var candidateLanguages = []lingua.Language{
	lingua.Japanese,
	lingua.Chinese,
	lingua.Korean,
	lingua.English,
}

// DetectLanguage guesses the language of text. It returns false when the
// detector cannot decide.
func DetectLanguage(text string) (lingua.Language, bool) {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidateLanguages...).
			Build()
	})
	return detector.DetectLanguageOf(text)
}

// IsJapanese reports whether text was detected as Japanese.
// Undecidable text is given the benefit of the doubt.
func IsJapanese(text string) bool {
	lang, ok := DetectLanguage(text)
	return !ok || lang == lingua.Japanese
}
