package parlance

import (
	"testing"
)

func testReadabilityAnalyzer() *readabilityAnalyzer {
	return &readabilityAnalyzer{tok: newTokenizer(newPunktSegmenter(), supportedLanguages(true))}
}

func TestReadabilitySimpleText(t *testing.T) {
	ra := testReadabilityAnalyzer()

	result := ra.analyze("The cat sat. The dog ran.", English)
	if result.SentenceCount != 2 {
		t.Errorf("sentences = %d, want 2", result.SentenceCount)
	}
	if result.WordCount != 6 {
		t.Errorf("words = %d, want 6", result.WordCount)
	}
	// Short monosyllabic sentences read very easily.
	if result.Score < 100 {
		t.Errorf("score = %.1f, want >= 100 for trivial text", result.Score)
	}
	if result.Grade != 0 {
		t.Errorf("grade = %.1f, want floor of 0", result.Grade)
	}
}

func TestReadabilityComplexText(t *testing.T) {
	ra := testReadabilityAnalyzer()

	simple := ra.analyze("The cat sat on the mat. The dog ran to the park.", English)
	complex := ra.analyze(
		"Notwithstanding considerable organizational internationalization, "+
			"interdisciplinary collaboration necessitates comprehensive "+
			"institutional infrastructure and methodological sophistication.",
		English)
	if complex.Score >= simple.Score {
		t.Errorf("complex score %.1f not below simple score %.1f",
			complex.Score, simple.Score)
	}
	if complex.Grade <= simple.Grade {
		t.Errorf("complex grade %.1f not above simple grade %.1f",
			complex.Grade, simple.Grade)
	}
}

func TestReadabilityEmptyText(t *testing.T) {
	ra := testReadabilityAnalyzer()

	result := ra.analyze("", English)
	if result.Confidence != 0 {
		t.Errorf("confidence = %.2f, want 0 for empty text", result.Confidence)
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"hello", 2},
		{"beautiful", 3},
		{"code", 1},
		{"idea", 2},
		{"rhythm", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := countSyllables(tt.word); got != tt.expected {
				t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.expected)
			}
		})
	}
}
