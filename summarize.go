package parlance

import (
	"sort"
	"strings"
)

const (
	// summaryKeywordPool is the keyword set size sentences are scored
	// against.
	summaryKeywordPool = 20

	// leadWeight boosts sentences in the first third of the document.
	leadWeight = 1.5

	defaultMaxSentences = 3
)

// summarizer produces extractive summaries: sentences are scored by keyword
// density with a lead boost, the top scorers are selected, and the selection
// is put back into original document order.
type summarizer struct {
	tok      *tokenizer
	keywords *keywordExtractor
}

// summarize selects up to maxSentences sentences. For sentence i of N,
// score = (keyword hits / word count) * w, where w is leadWeight when
// i < N/3 and 1 otherwise. CompressionRatio is len(summary)/len(text).
func (s *summarizer) summarize(text string, lang Language, maxSentences int) *SummaryResult {
	if maxSentences <= 0 {
		maxSentences = defaultMaxSentences
	}

	sentences := s.tok.segmenter.Sentences(text, lang)
	if len(sentences) == 0 {
		return &SummaryResult{Sentences: []SummarySentence{}}
	}

	keywords := s.keywords.keywordSet(text, lang, summaryKeywordPool)

	scored := make([]SummarySentence, len(sentences))
	for i, sentence := range sentences {
		words := s.tok.lowerWords(sentence, lang)
		hits := 0
		for _, word := range words {
			if _, ok := keywords[word]; ok {
				hits++
			}
		}
		score := 0.0
		if len(words) > 0 {
			score = float64(hits) / float64(len(words))
		}
		if i < len(sentences)/3 {
			score *= leadWeight
		}
		scored[i] = SummarySentence{Text: sentence, Position: i, Score: score}
	}

	// Select by score, then restore document order for output.
	selected := make([]SummarySentence, len(scored))
	copy(selected, scored)
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Score > selected[j].Score
	})
	if len(selected) > maxSentences {
		selected = selected[:maxSentences]
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Position < selected[j].Position
	})

	parts := make([]string, len(selected))
	for i, sentence := range selected {
		parts[i] = sentence.Text
	}
	summary := strings.Join(parts, " ")

	ratio := 0.0
	if len(text) > 0 {
		ratio = float64(len(summary)) / float64(len(text))
	}
	return &SummaryResult{
		Summary:          summary,
		CompressionRatio: ratio,
		Sentences:        selected,
	}
}
