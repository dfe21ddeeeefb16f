package parlance

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// A LanguageIdentifier ranks language hypotheses for a text. The engine
// consumes it as an external collaborator; the default implementation scores
// function-word patterns, trigram frequencies, and script/character cues.
type LanguageIdentifier interface {
	Identify(text string) []LanguageHypothesis
}

// maxHypotheses caps the ranked list returned by detection.
const maxHypotheses = 5

// ngramIdentifier is the default LanguageIdentifier.
type ngramIdentifier struct {
	langs    []Language
	patterns map[Language]*regexp.Regexp
	trigrams map[Language]map[string]float64
}

func newNgramIdentifier(langs []Language) *ngramIdentifier {
	id := &ngramIdentifier{
		langs:    langs,
		patterns: make(map[Language]*regexp.Regexp),
		trigrams: make(map[Language]map[string]float64),
	}
	id.initPatterns()
	id.initTrigrams()
	return id
}

// initPatterns compiles per-language function-word patterns. A match on one
// of these words is the strongest single signal the identifier has.
func (id *ngramIdentifier) initPatterns() {
	all := map[Language]string{
		English:    `\b(the|and|that|have|for|not|with|you|this|but|his|from|they|how|are|was)\b`,
		Spanish:    `\b(que|de|no|la|el|es|en|un|por|con|como|para|todo|pero|más)\b`,
		French:     `\b(le|et|à|un|il|être|en|avoir|que|pour|dans|ce|son|une|les|vous)\b`,
		German:     `\b(der|die|und|den|von|zu|das|mit|sich|des|auf|für|ist|im|dem|nicht)\b`,
		Japanese:   `(です|ます|これ|それ|さん|した|して|ください)`,
		Italian:    `\b(il|lo|la|gli|che|di|per|con|non|una|sono|questo)\b`,
		Portuguese: `\b(que|não|uma|com|para|por|mais|como|mas|isso|ele|você)\b`,
		Russian:    `(это|как|что|его|быть|был|она|так|они|мне)`,
		Dutch:      `\b(het|de|een|van|ik|je|dat|niet|zijn|maar|voor)\b`,
	}
	for _, lang := range id.langs {
		if pat, ok := all[lang]; ok {
			id.patterns[lang] = regexp.MustCompile(pat)
		}
	}
}

// initTrigrams loads per-language trigram frequency tables.
func (id *ngramIdentifier) initTrigrams() {
	all := map[Language]map[string]float64{
		English: {
			"the": 0.15, "and": 0.08, "ing": 0.06, "ion": 0.05, "tio": 0.04,
			"ent": 0.03, "ati": 0.03, "for": 0.03, "her": 0.03, "ter": 0.03,
		},
		Spanish: {
			"que": 0.12, "ión": 0.08, "ado": 0.06, "con": 0.05, "ent": 0.04,
			"par": 0.04, "est": 0.04, "ara": 0.03, "del": 0.03, "los": 0.03,
		},
		French: {
			"les": 0.10, "ent": 0.08, "ion": 0.07, "des": 0.06, "que": 0.05,
			"ait": 0.04, "lle": 0.04, "eur": 0.04, "our": 0.03, "ant": 0.03,
		},
		German: {
			"der": 0.12, "und": 0.08, "die": 0.07, "ung": 0.06, "ich": 0.05,
			"ein": 0.04, "sch": 0.04, "den": 0.04, "cht": 0.03, "das": 0.03,
		},
		Italian: {
			"che": 0.10, "ent": 0.06, "one": 0.06, "are": 0.05, "del": 0.05,
			"lla": 0.04, "ion": 0.04, "per": 0.04, "ell": 0.03, "con": 0.03,
		},
		Portuguese: {
			"que": 0.11, "ção": 0.07, "ent": 0.05, "ado": 0.05, "com": 0.05,
			"par": 0.04, "est": 0.04, "ara": 0.03, "dos": 0.03, "não": 0.03,
		},
		Dutch: {
			"een": 0.09, "van": 0.07, "het": 0.07, "den": 0.05, "ver": 0.04,
			"gen": 0.04, "aar": 0.03, "ijk": 0.03, "sch": 0.03, "oor": 0.03,
		},
	}
	for _, lang := range id.langs {
		if table, ok := all[lang]; ok {
			id.trigrams[lang] = table
		}
	}
}

// Identify returns ranked hypotheses, confidence-descending, capped at
// maxHypotheses. Confidences are each score's share of the total and sum to
// at most 1. An unscorable text yields an empty list.
func (id *ngramIdentifier) Identify(text string) []LanguageHypothesis {
	lower := strings.ToLower(text)
	scores := make(map[Language]float64, len(id.langs))

	for lang, pattern := range id.patterns {
		matches := pattern.FindAllString(lower, -1)
		scores[lang] += float64(len(matches)) * 0.3
	}

	trigrams := extractTrigrams(lower)
	for lang, table := range id.trigrams {
		for trigram, freq := range trigrams {
			if expected, ok := table[trigram]; ok {
				scores[lang] += freq * expected
			}
		}
	}

	id.scoreScripts(lower, scores)

	total := 0.0
	for _, score := range scores {
		total += score
	}
	if total == 0 {
		return nil
	}

	hyps := make([]LanguageHypothesis, 0, len(scores))
	for lang, score := range scores {
		if score <= 0 {
			continue
		}
		hyps = append(hyps, LanguageHypothesis{
			Language:   lang,
			Confidence: clamp01(score / total),
		})
	}
	sort.Slice(hyps, func(i, j int) bool {
		if hyps[i].Confidence != hyps[j].Confidence {
			return hyps[i].Confidence > hyps[j].Confidence
		}
		return hyps[i].Language < hyps[j].Language
	})
	if len(hyps) > maxHypotheses {
		hyps = hyps[:maxHypotheses]
	}
	return hyps
}

// scoreScripts adds character-level cues: diacritics tied to one language and
// whole scripts (Cyrillic, kana) that decide the question outright.
func (id *ngramIdentifier) scoreScripts(text string, scores map[Language]float64) {
	counts := make(map[rune]int)
	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			counts[r]++
			letters++
		}
	}
	if letters == 0 {
		return
	}
	has := func(lang Language) bool {
		_, ok := id.patterns[lang]
		return ok
	}
	for r, n := range counts {
		freq := float64(n) / float64(letters)
		switch {
		case r == 'ñ' && has(Spanish):
			scores[Spanish] += freq * 10
		case r == 'ç':
			if has(French) {
				scores[French] += freq * 6
			}
			if has(Portuguese) {
				scores[Portuguese] += freq * 6
			}
		case (r == 'ü' || r == 'ö' || r == 'ä' || r == 'ß') && has(German):
			scores[German] += freq * 8
		case r == 'ã' || r == 'õ':
			if has(Portuguese) {
				scores[Portuguese] += freq * 10
			}
		case unicode.Is(unicode.Cyrillic, r) && has(Russian):
			scores[Russian] += freq * 5
		case (unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r)) && has(Japanese):
			scores[Japanese] += freq * 5
		case r == 'w':
			if has(English) {
				scores[English] += freq * 3
			}
			if has(German) {
				scores[German] += freq * 2
			}
			if has(Dutch) {
				scores[Dutch] += freq * 2
			}
		case r == 'k':
			if has(German) {
				scores[German] += freq * 2
			}
			if has(Dutch) {
				scores[Dutch] += freq * 2
			}
			if has(English) {
				scores[English] += freq
			}
		}
	}
}

// extractTrigrams returns normalized letter-trigram frequencies.
func extractTrigrams(text string) map[string]float64 {
	trigrams := make(map[string]float64)
	total := 0
	runes := []rune(text)
	for i := 0; i+3 <= len(runes); i++ {
		window := runes[i : i+3]
		if !lettersOnly(window) {
			continue
		}
		trigrams[string(window)]++
		total++
	}
	for trigram := range trigrams {
		trigrams[trigram] /= float64(total)
	}
	return trigrams
}

func lettersOnly(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
