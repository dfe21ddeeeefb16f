package parlance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
)

func testSentimentAnalyzer(threshold float64) *sentimentAnalyzer {
	vocab := newVocabulary()
	vocab.load(English)
	vocab.load(Spanish)
	tok := newTokenizer(newPunktSegmenter(), supportedLanguages(true))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newSentimentAnalyzer(vocab, tok, threshold, log)
}

func TestLexiconSentiment(t *testing.T) {
	tests := []struct {
		text       string
		sentiment  Sentiment
		score      float64
		delta      float64
		confidence float64
		desc       string
	}{
		{"This is absolutely amazing! I love it!", SentimentPositive, 1.0, 0.01, 0.2, "All positive evidence"},
		{"This is terrible and awful.", SentimentNegative, -1.0, 0.01, 0.2, "All negative evidence"},
		{"The table is brown and square.", SentimentNeutral, 0.0, 0.01, 0.1, "No lexicon matches"},
		{"It was good but also bad.", SentimentNeutral, 0.0, 0.01, 0.2, "Balanced evidence"},
		{"good great nice but bad", SentimentPositive, 0.75, 0.01, 0.4, "Three to one positive"},
	}

	sa := testSentimentAnalyzer(0.8)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := sa.analyze(context.Background(), tt.text, English)
			if got.Sentiment != tt.sentiment {
				t.Errorf("Text: %q\nExpected sentiment: %s\nGot: %s", tt.text, tt.sentiment, got.Sentiment)
			}
			if math.Abs(got.Score-tt.score) > tt.delta {
				t.Errorf("Text: %q\nExpected score: %.2f ± %.2f\nGot: %.2f",
					tt.text, tt.score, tt.delta, got.Score)
			}
			if math.Abs(got.Confidence-tt.confidence) > 0.01 {
				t.Errorf("Text: %q\nExpected confidence: %.2f\nGot: %.2f",
					tt.text, tt.confidence, got.Confidence)
			}
		})
	}
}

func TestLexiconEvidenceWords(t *testing.T) {
	sa := testSentimentAnalyzer(0.8)

	got := sa.analyze(context.Background(), "A great and beautiful day, but a broken door.", English)
	if len(got.PositiveWords) != 2 {
		t.Errorf("positive evidence = %v, want [great beautiful]", got.PositiveWords)
	}
	if len(got.NegativeWords) != 1 || got.NegativeWords[0] != "broken" {
		t.Errorf("negative evidence = %v, want [broken]", got.NegativeWords)
	}
}

func TestLexiconSpanish(t *testing.T) {
	sa := testSentimentAnalyzer(0.8)

	got := sa.analyze(context.Background(), "La comida es excelente y el servicio maravilloso.", Spanish)
	if got.Sentiment != SentimentPositive {
		t.Errorf("sentiment = %s, want positive", got.Sentiment)
	}
}

// stubModel is a canned SentimentModel for exercising the classifier tier.
type stubModel struct {
	result *SentimentResult
	err    error
}

func (m *stubModel) Predict(ctx context.Context, text string) (*SentimentResult, error) {
	return m.result, m.err
}

func TestModelTierPreferred(t *testing.T) {
	sa := testSentimentAnalyzer(0.5)
	sa.models[English] = &stubModel{result: &SentimentResult{
		Sentiment:  SentimentNegative,
		Score:      -0.9,
		Confidence: 0.95,
	}}

	// Lexicon would call this positive; the confident model wins.
	got := sa.analyze(context.Background(), "This is amazing!", English)
	if got.Sentiment != SentimentNegative {
		t.Errorf("sentiment = %s, want model's negative", got.Sentiment)
	}
	if got.Confidence != 0.95 {
		t.Errorf("confidence = %.2f, want 0.95", got.Confidence)
	}
}

func TestModelTierFallsBack(t *testing.T) {
	tests := []struct {
		model SentimentModel
		desc  string
	}{
		{&stubModel{err: errors.New("backend unavailable")}, "Model error"},
		{&stubModel{result: nil}, "Nil prediction"},
		{&stubModel{result: &SentimentResult{Sentiment: SentimentNegative, Confidence: 0.2}}, "Low confidence prediction"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			sa := testSentimentAnalyzer(0.5)
			sa.models[English] = tt.model

			got := sa.analyze(context.Background(), "This is amazing!", English)
			if got.Sentiment != SentimentPositive {
				t.Errorf("sentiment = %s, want lexicon's positive", got.Sentiment)
			}
		})
	}
}
