package parlance

import (
	"fmt"
	"strings"
)

// tokenizer performs locale-parameterized boundary segmentation. Boundary
// finding is delegated to the Segmenter; the tokenizer owns language support
// checks and segment cleanup. Identical (text, unit, language) inputs always
// produce identical output sequences.
type tokenizer struct {
	segmenter Segmenter
	supported map[Language]bool
}

func newTokenizer(segmenter Segmenter, supported []Language) *tokenizer {
	set := make(map[Language]bool, len(supported))
	for _, lang := range supported {
		set[lang] = true
	}
	return &tokenizer{segmenter: segmenter, supported: set}
}

// tokenize splits text into the requested units. It returns
// ErrLanguageNotSupported when no tokenizer is configured for lang.
func (t *tokenizer) tokenize(text string, unit TokenUnit, lang Language) ([]string, error) {
	if !t.supported[lang] {
		return nil, fmt.Errorf("%w: %q", ErrLanguageNotSupported, lang)
	}
	switch unit {
	case UnitWord:
		return t.segmenter.Words(text, lang), nil
	case UnitSentence:
		return t.segmenter.Sentences(text, lang), nil
	case UnitParagraph:
		return t.segmenter.Paragraphs(text), nil
	default:
		return nil, fmt.Errorf("parlance: unknown token unit %d", unit)
	}
}

// lowerWords tokenizes into lowercase words, the shared front end of the
// scoring algorithms.
func (t *tokenizer) lowerWords(text string, lang Language) []string {
	words := t.segmenter.Words(text, lang)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
