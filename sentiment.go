package parlance

import (
	"context"
	"log/slog"
	"math"
)

// A SentimentModel is a trained classifier backend for one language. Predict
// may suspend (a model may call into platform ML); it is the only analysis
// step that does. A model may be absent for a language, in which case the
// lexicon scorer is used instead.
type SentimentModel interface {
	Predict(ctx context.Context, text string) (*SentimentResult, error)
}

const (
	// maxEvidenceWords caps each evidence list in a SentimentResult.
	maxEvidenceWords = 10

	// lexiconNeutralConfidence is reported when no lexicon word matches.
	lexiconNeutralConfidence = 0.1

	positiveRatioThreshold = 0.6
	negativeRatioThreshold = 0.4
)

// sentimentAnalyzer implements two-tier sentiment scoring: a registered
// per-language classifier when available, else the lexicon method. Classifier
// failures are never surfaced; the lexicon tier always produces a result.
type sentimentAnalyzer struct {
	vocab              *vocabulary
	tok                *tokenizer
	models             map[Language]SentimentModel
	minModelConfidence float64
	log                *slog.Logger
}

func newSentimentAnalyzer(vocab *vocabulary, tok *tokenizer, threshold float64, log *slog.Logger) *sentimentAnalyzer {
	return &sentimentAnalyzer{
		vocab:              vocab,
		tok:                tok,
		models:             make(map[Language]SentimentModel),
		minModelConfidence: threshold,
		log:                log,
	}
}

// analyze scores text. Tier one consults the registered classifier for lang;
// any failure or low-confidence prediction falls through to the lexicon tier.
func (sa *sentimentAnalyzer) analyze(ctx context.Context, text string, lang Language) *SentimentResult {
	if model, ok := sa.models[lang]; ok {
		result, err := model.Predict(ctx, text)
		switch {
		case err != nil:
			sa.log.Debug("sentiment model failed, using lexicon",
				"language", lang, "error", err)
		case result == nil:
			sa.log.Debug("sentiment model returned no result, using lexicon",
				"language", lang)
		case result.Confidence < sa.minModelConfidence:
			sa.log.Debug("sentiment model below confidence threshold, using lexicon",
				"language", lang, "confidence", result.Confidence)
		default:
			return &SentimentResult{
				Sentiment:     result.Sentiment,
				Score:         clampScore(result.Score),
				Confidence:    clamp01(result.Confidence),
				PositiveWords: capWords(result.PositiveWords),
				NegativeWords: capWords(result.NegativeWords),
			}
		}
	}
	return sa.lexicon(text, lang)
}

// lexicon counts matches against the language's positive and negative word
// sets. With total = positiveCount + negativeCount and
// ratio = positiveCount/total:
//
//	ratio > 0.6            -> positive
//	ratio < 0.4            -> negative
//	otherwise              -> neutral
//
// The score offsets 0.5 by the distance of ratio from 0.5, signed by
// direction, clamped to [-1, 1]. Confidence is min(total/10, 1).
func (sa *sentimentAnalyzer) lexicon(text string, lang Language) *SentimentResult {
	posSet, negSet := sa.vocab.sentimentSets(lang)

	var positives, negatives []string
	posCount, negCount := 0, 0
	for _, word := range sa.tok.lowerWords(text, lang) {
		if _, ok := posSet[word]; ok {
			posCount++
			if len(positives) < maxEvidenceWords {
				positives = append(positives, word)
			}
			continue
		}
		if _, ok := negSet[word]; ok {
			negCount++
			if len(negatives) < maxEvidenceWords {
				negatives = append(negatives, word)
			}
		}
	}

	total := posCount + negCount
	if total == 0 {
		return &SentimentResult{
			Sentiment:  SentimentNeutral,
			Score:      0,
			Confidence: lexiconNeutralConfidence,
		}
	}

	ratio := float64(posCount) / float64(total)
	sentiment := SentimentNeutral
	switch {
	case ratio > positiveRatioThreshold:
		sentiment = SentimentPositive
	case ratio < negativeRatioThreshold:
		sentiment = SentimentNegative
	}

	distance := math.Abs(ratio - 0.5)
	var score float64
	switch {
	case ratio > 0.5:
		score = 0.5 + distance
	case ratio < 0.5:
		score = -(0.5 + distance)
	}

	return &SentimentResult{
		Sentiment:     sentiment,
		Score:         clampScore(score),
		Confidence:    math.Min(float64(total)/10.0, 1.0),
		PositiveWords: positives,
		NegativeWords: negatives,
	}
}

func clampScore(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func capWords(words []string) []string {
	if len(words) > maxEvidenceWords {
		return words[:maxEvidenceWords]
	}
	return words
}
