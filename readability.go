package parlance

import (
	"math"
	"strings"
)

// readabilityAnalyzer computes Flesch Reading Ease and Flesch-Kincaid grade
// level from sentence, word, and syllable counts. Syllables come from a
// vowel-group heuristic, which is adequate for the formulas' granularity.
type readabilityAnalyzer struct {
	tok *tokenizer
}

func (ra *readabilityAnalyzer) analyze(text string, lang Language) *ReadabilityResult {
	sentences := ra.tok.segmenter.Sentences(text, lang)
	words := ra.tok.lowerWords(text, lang)
	if len(sentences) == 0 || len(words) == 0 {
		return &ReadabilityResult{Confidence: 0}
	}

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))

	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	grade := 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59

	return &ReadabilityResult{
		Score:         score,
		Grade:         math.Max(grade, 0),
		SentenceCount: len(sentences),
		WordCount:     len(words),
		SyllableCount: syllables,
		Confidence:    math.Min(float64(len(words))/100.0, 1.0),
	}
}

// countSyllables approximates syllables as vowel groups, discounting a
// trailing silent e. Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouyàáâäèéêëìíîïòóôöùúûü", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
