package parlance

import (
	"strings"
	"testing"
)

func testKeywordExtractor(method KeywordMethod, stem bool) *keywordExtractor {
	vocab := newVocabulary()
	vocab.load(English)
	return &keywordExtractor{
		vocab:  vocab,
		tok:    newTokenizer(newPunktSegmenter(), supportedLanguages(true)),
		method: method,
		stem:   stem,
	}
}

func TestKeywordExtraction(t *testing.T) {
	ke := testKeywordExtractor(KeywordTFIDF, false)
	text := "Apple Inc. is an American technology company headquartered in Cupertino. " +
		"Apple is the world's largest technology company by revenue."

	keywords := ke.extract(text, English, 5)
	if len(keywords) == 0 || len(keywords) > 5 {
		t.Fatalf("got %d keywords, want 1..5", len(keywords))
	}

	found := false
	for _, kw := range keywords {
		if kw.Word == "apple" || kw.Word == "technology" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected apple or technology in keywords, got %v", keywords)
	}
}

func TestKeywordOrdering(t *testing.T) {
	ke := testKeywordExtractor(KeywordTFIDF, false)

	keywords := ke.extract("network network network latency latency throughput", English, 10)
	for i := 1; i < len(keywords); i++ {
		if keywords[i].Score > keywords[i-1].Score {
			t.Fatalf("keywords not sorted by score: %v", keywords)
		}
	}
	if len(keywords) == 0 || keywords[0].Word != "network" {
		t.Errorf("expected network first, got %v", keywords)
	}
}

func TestKeywordFiltering(t *testing.T) {
	ke := testKeywordExtractor(KeywordTFIDF, false)

	keywords := ke.extract("the and with cats cats running", English, 10)
	for _, kw := range keywords {
		if len(kw.Word) <= 3 {
			t.Errorf("short word %q survived the filter", kw.Word)
		}
		if ke.vocab.isStopword(English, kw.Word) {
			t.Errorf("stopword %q survived the filter", kw.Word)
		}
	}
	if len(keywords) != 2 {
		t.Errorf("expected [cats running], got %v", keywords)
	}
}

func TestKeywordFrequencyMethod(t *testing.T) {
	ke := testKeywordExtractor(KeywordFrequency, false)

	keywords := ke.extract("coffee coffee espresso", English, 10)
	if len(keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %v", keywords)
	}
	// Plain term frequency: 2/3 and 1/3.
	if keywords[0].Word != "coffee" || keywords[0].Frequency != 2 {
		t.Errorf("top keyword = %+v, want coffee with frequency 2", keywords[0])
	}
}

func TestKeywordStemming(t *testing.T) {
	ke := testKeywordExtractor(KeywordTFIDF, true)

	keywords := ke.extract("jumping jumped jumps", English, 10)
	if len(keywords) != 1 {
		t.Fatalf("expected stemming to collapse to one keyword, got %v", keywords)
	}
	if !strings.HasPrefix(keywords[0].Word, "jump") || keywords[0].Frequency != 3 {
		t.Errorf("stemmed keyword = %+v", keywords[0])
	}
}

func TestKeywordEmptyInput(t *testing.T) {
	ke := testKeywordExtractor(KeywordTFIDF, false)

	if keywords := ke.extract("the a an", English, 10); len(keywords) != 0 {
		t.Errorf("expected empty keyword list, got %v", keywords)
	}
}
