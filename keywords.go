package parlance

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
)

const (
	// tfidfCorpusConstant is the simplified inverse-document-frequency
	// proxy: score = tf * ln(tfidfCorpusConstant / f). It is a fixed
	// constant, not a learned IDF.
	tfidfCorpusConstant = 1000

	// minKeywordRunes is the exclusive length floor for candidate words.
	minKeywordRunes = 3

	defaultMaxKeywords = 10
)

// snowballLanguages maps engine languages to snowball stemmer names.
// Languages outside the map skip stemming.
var snowballLanguages = map[Language]string{
	English: "english",
	Spanish: "spanish",
	French:  "french",
	Russian: "russian",
}

// keywordExtractor scores candidate words by term frequency, optionally
// weighted by the fixed-constant IDF proxy. Candidates are lowercase words
// longer than three runes that are not stopwords for the language.
type keywordExtractor struct {
	vocab  *vocabulary
	tok    *tokenizer
	method KeywordMethod
	stem   bool
}

// extract returns at most maxCount keywords sorted non-increasing by score,
// ties broken lexicographically. An empty candidate set yields an empty
// list, not an error.
func (k *keywordExtractor) extract(text string, lang Language, maxCount int) []Keyword {
	if maxCount <= 0 {
		maxCount = defaultMaxKeywords
	}

	candidates := k.candidates(text, lang)
	if len(candidates) == 0 {
		return []Keyword{}
	}

	freq := make(map[string]int, len(candidates))
	for _, word := range candidates {
		freq[word]++
	}

	total := float64(len(candidates))
	keywords := make([]Keyword, 0, len(freq))
	for word, count := range freq {
		tf := float64(count) / total
		score := tf
		if k.method == KeywordTFIDF {
			score = tf * math.Log(tfidfCorpusConstant/float64(count))
		}
		keywords = append(keywords, Keyword{
			Word:      word,
			Score:     score,
			Frequency: count,
		})
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Word < keywords[j].Word
	})
	if len(keywords) > maxCount {
		keywords = keywords[:maxCount]
	}
	return keywords
}

// candidates runs the filter pipeline: lowercase words, drop short and
// stopword tokens, then stem when morphology is enabled.
func (k *keywordExtractor) candidates(text string, lang Language) []string {
	words := k.tok.lowerWords(text, lang)
	out := make([]string, 0, len(words))
	stemmerLang, canStem := snowballLanguages[lang]
	for _, word := range words {
		if utf8.RuneCountInString(word) <= minKeywordRunes {
			continue
		}
		if k.vocab.isStopword(lang, word) {
			continue
		}
		if k.stem && canStem {
			if stemmed, err := snowball.Stem(word, stemmerLang, false); err == nil {
				word = stemmed
			}
		}
		out = append(out, word)
	}
	return out
}

// keywordSet returns the top-n keyword words as a lookup set, the shared
// front end for summarization and classification.
func (k *keywordExtractor) keywordSet(text string, lang Language, n int) map[string]struct{} {
	set := make(map[string]struct{}, n)
	for _, kw := range k.extract(text, lang, n) {
		set[strings.ToLower(kw.Word)] = struct{}{}
	}
	return set
}
