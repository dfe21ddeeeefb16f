package parlance

import (
	"sort"
	"strings"
)

// UnknownCategory is the sentinel returned by classification when the
// supplied category list is empty.
const UnknownCategory = "unknown"

// textClassifier assigns a text to the best-matching category by keyword
// overlap: each category name is tokenized and scored against the text's
// keyword set plus its full token set.
type textClassifier struct {
	tok      *tokenizer
	keywords *keywordExtractor
}

// classify always returns a category from the supplied list, falling back to
// the first category when nothing overlaps, or UnknownCategory when the list
// is empty. Confidence is the winning score's share of the total.
func (tc *textClassifier) classify(text string, categories []string, lang Language) *TextClassificationResult {
	if len(categories) == 0 {
		return &TextClassificationResult{
			Category:   UnknownCategory,
			Confidence: 0,
		}
	}

	tokens := toSet(tc.tok.lowerWords(text, lang))
	keywords := tc.keywords.keywordSet(text, lang, topicCandidatePool)

	scores := make(map[string]float64, len(categories))
	total := 0.0
	for _, category := range categories {
		catWords := strings.FieldsFunc(strings.ToLower(category), func(r rune) bool {
			return r == ' ' || r == '-' || r == '_' || r == '/'
		})
		if len(catWords) == 0 {
			scores[category] = 0
			continue
		}
		hits := 0.0
		for _, word := range catWords {
			if _, ok := keywords[word]; ok {
				hits += 2 // keyword matches outweigh plain occurrences
				continue
			}
			if _, ok := tokens[word]; ok {
				hits++
			}
		}
		score := hits / float64(len(catWords))
		scores[category] = score
		total += score
	}

	// Deterministic winner: highest score, first in input order on ties.
	ordered := make([]string, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})
	best := ordered[0]

	confidence := 0.0
	if total > 0 {
		confidence = scores[best] / total
	}
	return &TextClassificationResult{
		Category:   best,
		Confidence: clamp01(confidence),
		Scores:     scores,
	}
}
