package analyzer

import "strings"

// PartOfSpeech is a coarse grammatical category tracked for density scoring
type PartOfSpeech int

const (
	// Untracked covers every category that does not count toward density
	Untracked PartOfSpeech = iota
	Noun
	Verb
	Adjective
)

// Coarse tags as emitted by the IPA dictionary
const (
	TagNoun      = "名詞"
	TagVerb      = "動詞"
	TagAdjective = "形容詞"
)

func (p PartOfSpeech) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	default:
		return "untracked"
	}
}

// BucketOf maps a hierarchical part-of-speech tag to its coarse bucket.
// Only the segment before the first comma is considered.
func BucketOf(tag string) PartOfSpeech {
	coarse, _, _ := strings.Cut(tag, ",")
	switch coarse {
	case TagNoun:
		return Noun
	case TagVerb:
		return Verb
	case TagAdjective:
		return Adjective
	default:
		return Untracked
	}
}
