package parlance

import (
	"math"
	"testing"
)

func testSimilarityCalculator() *similarityCalculator {
	return &similarityCalculator{tok: newTokenizer(newPunktSegmenter(), supportedLanguages(true))}
}

func TestSimilarityIdenticalTexts(t *testing.T) {
	sc := testSimilarityCalculator()

	result := sc.calculate("The cat sat on the mat", "The cat sat on the mat", English)
	if result.Jaccard != 1.0 {
		t.Errorf("Jaccard = %.3f, want 1.0", result.Jaccard)
	}
	if math.Abs(result.Cosine-1.0) > 1e-9 {
		t.Errorf("Cosine = %.3f, want 1.0", result.Cosine)
	}
}

func TestSimilarityDisjointTexts(t *testing.T) {
	sc := testSimilarityCalculator()

	result := sc.calculate("apples oranges bananas", "cars trains planes", English)
	if result.Jaccard != 0 || result.Cosine != 0 || result.Average != 0 {
		t.Errorf("expected all-zero similarity, got %+v", result)
	}
}

func TestSimilarityOrdering(t *testing.T) {
	sc := testSimilarityCalculator()

	related := sc.calculate("The cat sat on the mat", "The dog sat on the rug", English)
	unrelated := sc.calculate("The cat sat on the mat", "Programming is fun", English)
	if related.Average <= unrelated.Average {
		t.Errorf("related average %.3f not above unrelated %.3f",
			related.Average, unrelated.Average)
	}
}

func TestSimilarityPartialOverlap(t *testing.T) {
	sc := testSimilarityCalculator()

	// Sets {a,b,c} and {b,c,d}: intersection 2, union 4.
	result := sc.calculate("alpha beta gamma", "beta gamma delta", English)
	if math.Abs(result.Jaccard-0.5) > 1e-9 {
		t.Errorf("Jaccard = %.3f, want 0.5", result.Jaccard)
	}
	expectedAvg := (result.Jaccard + result.Cosine) / 2
	if math.Abs(result.Average-expectedAvg) > 1e-9 {
		t.Errorf("Average = %.3f, want %.3f", result.Average, expectedAvg)
	}
}

func TestSimilarityEmptyTexts(t *testing.T) {
	sc := testSimilarityCalculator()

	result := sc.calculate("", "", English)
	if result.Jaccard != 0 || result.Cosine != 0 {
		t.Errorf("expected zero similarity for empty texts, got %+v", result)
	}
}
