package parlance

import (
	"errors"
	"reflect"
	"testing"
)

func testTokenizer() *tokenizer {
	return newTokenizer(newPunktSegmenter(), supportedLanguages(true))
}

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"Hello world, how are you?", []string{"Hello", "world", "how", "are", "you"}, "Punctuation dropped"},
		{"one  two\tthree", []string{"one", "two", "three"}, "Whitespace runs collapsed"},
		{"It's a test", []string{"It", "s", "a", "test"}, "Apostrophe splits"},
		{"version 2 released", []string{"version", "2", "released"}, "Digits kept"},
	}

	tok := testTokenizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := tok.tokenize(tt.text, UnitWord, English)
			if err != nil {
				t.Fatalf("tokenize failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Text: %q\nExpected: %v\nGot: %v", tt.text, tt.expected, got)
			}
		})
	}
}

func TestTokenizeSentences(t *testing.T) {
	tok := testTokenizer()

	got, err := tok.tokenize("First sentence. Second one! A third?", UnitSentence, English)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "First sentence." {
		t.Errorf("first sentence = %q", got[0])
	}
}

func TestTokenizeJapaneseSentences(t *testing.T) {
	tok := testTokenizer()

	got, err := tok.tokenize("これはペンです。それは本です。", UnitSentence, Japanese)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
}

func TestTokenizeParagraphs(t *testing.T) {
	tok := testTokenizer()

	got, err := tok.tokenize("First paragraph here.\n\nSecond paragraph here.", UnitParagraph, English)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(got), got)
	}
}

func TestTokenizeUnsupportedLanguage(t *testing.T) {
	tok := testTokenizer()

	_, err := tok.tokenize("some text", UnitWord, Language("xx"))
	if !errors.Is(err, ErrLanguageNotSupported) {
		t.Errorf("expected ErrLanguageNotSupported, got %v", err)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	tok := testTokenizer()

	first, _ := tok.tokenize("Same input every time.", UnitWord, English)
	second, _ := tok.tokenize("Same input every time.", UnitWord, English)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different tokens: %v vs %v", first, second)
	}
}
