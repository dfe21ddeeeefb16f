package parlance

import (
	"context"
	"errors"
	"math"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// SentimentExample is one labeled text used to train a sentiment model.
type SentimentExample struct {
	Text      string
	Sentiment Sentiment
}

// bayesModel is a multinomial naive-Bayes sentiment classifier over word
// counts with Laplace smoothing. It implements SentimentModel and serves as
// the in-process stand-in for a platform-trained classifier backend.
type bayesModel struct {
	classes       []Sentiment
	logPrior      map[Sentiment]float64
	logLikelihood map[Sentiment]map[string]float64
	unseenLog     map[Sentiment]float64
}

// TrainSentimentModel builds a naive-Bayes SentimentModel from labeled
// examples. The returned model is read-only and safe to register on an
// engine. At least one example per distinct class is required.
func TrainSentimentModel(examples []SentimentExample) (SentimentModel, error) {
	if len(examples) == 0 {
		return nil, errors.New("parlance: no training examples")
	}

	classDocs := make(map[Sentiment]int)
	classTokens := make(map[Sentiment]int)
	wordCounts := make(map[Sentiment]map[string]int)
	vocab := make(map[string]struct{})

	for _, ex := range examples {
		words := modelWords(ex.Text)
		if len(words) == 0 {
			continue
		}
		classDocs[ex.Sentiment]++
		if wordCounts[ex.Sentiment] == nil {
			wordCounts[ex.Sentiment] = make(map[string]int)
		}
		for _, w := range words {
			wordCounts[ex.Sentiment][w]++
			classTokens[ex.Sentiment]++
			vocab[w] = struct{}{}
		}
	}
	if len(classDocs) == 0 {
		return nil, errors.New("parlance: training examples contain no words")
	}

	model := &bayesModel{
		logPrior:      make(map[Sentiment]float64, len(classDocs)),
		logLikelihood: make(map[Sentiment]map[string]float64, len(classDocs)),
		unseenLog:     make(map[Sentiment]float64, len(classDocs)),
	}
	totalDocs := 0
	for _, n := range classDocs {
		totalDocs += n
	}
	vocabSize := float64(len(vocab))
	for class, docs := range classDocs {
		model.classes = append(model.classes, class)
		model.logPrior[class] = math.Log(float64(docs) / float64(totalDocs))
		denom := float64(classTokens[class]) + vocabSize
		model.unseenLog[class] = math.Log(1 / denom)
		likes := make(map[string]float64, len(wordCounts[class]))
		for word, count := range wordCounts[class] {
			likes[word] = math.Log((float64(count) + 1) / denom)
		}
		model.logLikelihood[class] = likes
	}
	return model, nil
}

// Predict classifies text and reports class posteriors. Score is the
// positive posterior minus the negative posterior; Confidence is the winning
// posterior.
func (m *bayesModel) Predict(ctx context.Context, text string) (*SentimentResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	words := modelWords(text)
	if len(words) == 0 {
		return nil, ErrModelPredictionFailed
	}

	logPost := make([]float64, len(m.classes))
	for i, class := range m.classes {
		score := m.logPrior[class]
		likes := m.logLikelihood[class]
		for _, w := range words {
			if lp, ok := likes[w]; ok {
				score += lp
			} else {
				score += m.unseenLog[class]
			}
		}
		logPost[i] = score
	}

	norm := floats.LogSumExp(logPost)
	best := 0
	posterior := make(map[Sentiment]float64, len(m.classes))
	for i, class := range m.classes {
		posterior[class] = math.Exp(logPost[i] - norm)
		if logPost[i] > logPost[best] {
			best = i
		}
	}

	return &SentimentResult{
		Sentiment:  m.classes[best],
		Score:      clampScore(posterior[SentimentPositive] - posterior[SentimentNegative]),
		Confidence: clamp01(posterior[m.classes[best]]),
	}, nil
}

// modelWords is the model's own tokenizer so trained models remain usable
// without an engine.
func modelWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
