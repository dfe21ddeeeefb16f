package parlance

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// similarityCalculator computes Jaccard and cosine similarity over word
// tokens. Jaccard works on token sets; cosine on per-token frequency vectors
// over the union vocabulary.
type similarityCalculator struct {
	tok *tokenizer
}

// calculate returns both measures and their average. Two empty texts have
// Jaccard 0; a zero-magnitude frequency vector yields cosine 0. The Jaccard
// similarity of any non-empty text with itself is 1.
func (sc *similarityCalculator) calculate(textA, textB string, lang Language) *TextSimilarityResult {
	wordsA := sc.tok.lowerWords(textA, lang)
	wordsB := sc.tok.lowerWords(textB, lang)

	jaccard := jaccardSimilarity(wordsA, wordsB)
	cosine := cosineSimilarity(wordsA, wordsB)
	return &TextSimilarityResult{
		Jaccard: jaccard,
		Cosine:  cosine,
		Average: (jaccard + cosine) / 2,
	}
}

func jaccardSimilarity(wordsA, wordsB []string) float64 {
	setA := toSet(wordsA)
	setB := toSet(wordsB)
	union := len(setA)
	intersection := 0
	for word := range setB {
		if _, ok := setA[word]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func cosineSimilarity(wordsA, wordsB []string) float64 {
	freqA := countWords(wordsA)
	freqB := countWords(wordsB)

	// A sorted union vocabulary keeps the vectors deterministic.
	vocab := make([]string, 0, len(freqA)+len(freqB))
	for word := range freqA {
		vocab = append(vocab, word)
	}
	for word := range freqB {
		if _, ok := freqA[word]; !ok {
			vocab = append(vocab, word)
		}
	}
	sort.Strings(vocab)

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, word := range vocab {
		vecA[i] = float64(freqA[word])
		vecB[i] = float64(freqB[word])
	}

	magA := floats.Norm(vecA, 2)
	magB := floats.Norm(vecB, 2)
	if magA == 0 || magB == 0 {
		return 0
	}
	return floats.Dot(vecA, vecB) / (magA * magB)
}

func countWords(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, word := range words {
		counts[word]++
	}
	return counts
}
