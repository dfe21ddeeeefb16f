package parlance

import (
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Segmenter is the boundary-finding primitive consumed by the tokenizer.
// Implementations split text into word, sentence, and paragraph units for a
// given language. The engine treats it as an external collaborator; the
// default implementation is backed by a trained Punkt sentence tokenizer.
type Segmenter interface {
	Words(text string, lang Language) []string
	Sentences(text string, lang Language) []string
	Paragraphs(text string) []string
}

// punktSegmenter is the default Segmenter. Sentence boundaries come from the
// Punkt model; word boundaries are Unicode letter/number runs; paragraphs are
// blank-line separated blocks.
type punktSegmenter struct {
	punkt     *sentences.DefaultSentenceTokenizer
	sanitizer *strings.Replacer
	paraRE    *regexp.Regexp
	cjkRE     *regexp.Regexp
}

var segmentSanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

func newPunktSegmenter() *punktSegmenter {
	seg := &punktSegmenter{
		sanitizer: segmentSanitizer,
		paraRE:    regexp.MustCompile(`\n\s*\n`),
		cjkRE:     regexp.MustCompile(`[。！？]`),
	}
	// The trained English Punkt model handles Latin-script sentence
	// boundaries well enough across the base language set. A load failure
	// leaves seg.punkt nil and the regex fallback takes over.
	if tokenizer, err := english.NewSentenceTokenizer(nil); err == nil {
		seg.punkt = tokenizer
	}
	return seg
}

// Words splits text into letter/number runs. Punctuation is dropped, so
// "Hello world, how are you?" yields five tokens.
func (s *punktSegmenter) Words(text string, lang Language) []string {
	clean := s.sanitizer.Replace(text)
	return strings.FieldsFunc(clean, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Sentences splits text at sentence boundaries. Japanese input is split on
// CJK terminators since the Punkt model covers Latin scripts only.
func (s *punktSegmenter) Sentences(text string, lang Language) []string {
	if lang == Japanese {
		return splitKeepingDelimiter(text, s.cjkRE)
	}
	if s.punkt == nil {
		return regexSentences(text)
	}
	var out []string
	for _, sent := range s.punkt.Tokenize(text) {
		trimmed := strings.TrimSpace(sent.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Paragraphs splits text on blank lines.
func (s *punktSegmenter) Paragraphs(text string) []string {
	var out []string
	for _, block := range s.paraRE.Split(text, -1) {
		trimmed := strings.TrimSpace(block)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var sentenceFallbackRE = regexp.MustCompile(`[.!?]+`)

// regexSentences is the fallback boundary finder used when no Punkt model is
// available.
func regexSentences(text string) []string {
	return splitKeepingDelimiter(text, sentenceFallbackRE)
}

func splitKeepingDelimiter(text string, re *regexp.Regexp) []string {
	var out []string
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		piece := strings.TrimSpace(text[last:loc[1]])
		if piece != "" {
			out = append(out, piece)
		}
		last = loc[1]
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		out = append(out, tail)
	}
	return out
}
