package parlance

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// vocabulary holds the per-language stopword and sentiment-word resources.
// Tables are loaded under the engine's serialization domain and are read-only
// once the engine reaches the ready state (lazy loading faults tables in
// under the same domain).
type vocabulary struct {
	stopwords map[Language]map[string]struct{}
	positive  map[Language]map[string]struct{}
	negative  map[Language]map[string]struct{}
}

func newVocabulary() *vocabulary {
	return &vocabulary{
		stopwords: make(map[Language]map[string]struct{}),
		positive:  make(map[Language]map[string]struct{}),
		negative:  make(map[Language]map[string]struct{}),
	}
}

// load builds the stopword and sentiment tables for one language. Loading is
// idempotent.
func (v *vocabulary) load(lang Language) {
	if _, ok := v.stopwords[lang]; ok {
		return
	}
	v.stopwords[lang] = probeStopwords(lang)
	pos, neg := sentimentWords(lang)
	v.positive[lang] = pos
	v.negative[lang] = neg
}

func (v *vocabulary) loaded(lang Language) bool {
	_, ok := v.stopwords[lang]
	return ok
}

func (v *vocabulary) isStopword(lang Language, word string) bool {
	set, ok := v.stopwords[lang]
	if !ok {
		return false
	}
	_, found := set[word]
	return found
}

// sentimentSets returns the positive and negative word sets for a language.
// Either may be empty for languages without lexicon coverage.
func (v *vocabulary) sentimentSets(lang Language) (map[string]struct{}, map[string]struct{}) {
	return v.positive[lang], v.negative[lang]
}

// release drops every loaded table.
func (v *vocabulary) release() {
	v.stopwords = make(map[Language]map[string]struct{})
	v.positive = make(map[Language]map[string]struct{})
	v.negative = make(map[Language]map[string]struct{})
}

// probeStopwords builds a stopword set by testing candidate words against the
// stopwords library, which filters but does not export its lists. A word the
// library removes is a stopword.
func probeStopwords(lang Language) map[string]struct{} {
	code := string(lang)
	set := make(map[string]struct{})
	for _, word := range stopwordCandidates(lang) {
		cleaned := strings.TrimSpace(stopwords.CleanString(word, code, false))
		if cleaned == "" || cleaned != word {
			set[word] = struct{}{}
		}
	}
	return set
}

// stopwordCandidates returns the probe list for a language: a shared base of
// frequent English function words plus language-specific additions.
func stopwordCandidates(lang Language) []string {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "by", "for",
		"from", "has", "had", "have", "he", "her", "his", "how", "i", "in",
		"is", "it", "its", "of", "on", "or", "she", "that", "the", "their",
		"them", "they", "this", "to", "was", "we", "were", "what", "when",
		"where", "which", "who", "will", "with", "would", "you", "your",
		"about", "after", "all", "also", "because", "before", "between",
		"both", "but", "can", "could", "did", "do", "does", "down", "each",
		"even", "first", "get", "give", "go", "into", "just", "like", "made",
		"make", "many", "may", "me", "might", "more", "most", "much", "must",
		"my", "never", "new", "no", "not", "now", "off", "only", "other",
		"our", "out", "over", "own", "said", "same", "see", "should",
		"since", "so", "some", "still", "such", "take", "than", "then",
		"there", "these", "those", "through", "too", "under", "up", "upon",
		"us", "use", "used", "very", "want", "way", "well", "while", "why",
		"work", "yet",
	}
	switch lang {
	case Spanish:
		words = append(words,
			"el", "la", "los", "las", "un", "una", "y", "o", "pero", "que",
			"de", "en", "por", "para", "con", "sin", "sobre", "entre", "es",
			"está", "son", "ser", "estar", "hay", "fue", "era", "yo", "tú",
			"él", "ella", "nosotros", "ellos", "mi", "tu", "su", "este",
			"esta", "ese", "esa", "lo", "le", "les", "se", "como", "cuando",
			"donde", "porque", "si", "sí", "más", "menos", "muy", "mucho",
			"poco", "todo", "nada", "algo", "cada", "otro", "mismo",
		)
	case French:
		words = append(words,
			"le", "la", "les", "un", "une", "des", "de", "du", "et", "à",
			"au", "aux", "en", "pour", "par", "avec", "sans", "sous", "sur",
			"dans", "vers", "chez", "entre", "est", "sont", "être", "avoir",
			"fait", "faire", "je", "tu", "il", "elle", "on", "nous", "vous",
			"ils", "elles", "mon", "ton", "son", "ce", "cette", "ces", "que",
			"qui", "quoi", "dont", "où", "si", "ne", "pas", "plus", "moins",
			"très", "bien", "peu", "beaucoup", "trop", "tout", "tous",
		)
	case German:
		words = append(words,
			"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen",
			"einem", "einer", "und", "oder", "aber", "denn", "weil", "wenn",
			"als", "dass", "zu", "im", "an", "auf", "aus", "bei", "mit",
			"nach", "von", "vor", "für", "über", "unter", "zwischen",
			"durch", "gegen", "ohne", "um", "bis", "seit", "ist", "sind",
			"war", "waren", "sein", "haben", "werden", "können", "ich", "du",
			"er", "sie", "es", "wir", "ihr", "man", "sich", "nicht", "kein",
			"keine", "sehr", "schon", "noch", "nur", "auch", "alle", "viel",
		)
	case Japanese:
		words = append(words,
			"の", "は", "を", "に", "が", "と", "で", "て", "も", "から",
			"まで", "へ", "や", "か", "など", "これ", "それ", "あれ", "この",
			"その", "あの", "いる", "ある", "する", "なる", "ない", "ます",
			"です", "だ", "である", "でも", "しかし", "また",
		)
	case Italian:
		words = append(words,
			"il", "lo", "la", "gli", "le", "un", "una", "che", "di", "per",
			"con", "non", "sono", "è", "questo", "questa", "come", "ma",
			"anche", "più", "molto", "tutto", "suo", "sua", "nel", "della",
		)
	case Portuguese:
		words = append(words,
			"o", "os", "um", "uma", "que", "não", "com", "para", "por",
			"mais", "como", "mas", "isso", "ele", "ela", "você", "nós",
			"seu", "sua", "em", "da", "do", "das", "dos", "é", "são", "foi",
		)
	case Russian:
		words = append(words,
			"и", "в", "не", "на", "я", "быть", "он", "с", "что", "это",
			"она", "по", "как", "к", "у", "мы", "за", "из", "так", "же",
			"от", "его", "но", "они", "то", "всё", "был", "была", "или",
		)
	case Dutch:
		words = append(words,
			"de", "het", "een", "van", "ik", "je", "dat", "niet", "zijn",
			"maar", "voor", "met", "op", "te", "aan", "er", "om", "ook",
			"als", "dan", "naar", "bij", "uit", "nog", "wel", "geen",
		)
	}
	return words
}

// sentimentWords returns the positive and negative lexicon sets for a
// language. The sets back the tier-two lexicon scorer; languages without
// coverage return empty sets and score neutral.
func sentimentWords(lang Language) (map[string]struct{}, map[string]struct{}) {
	var pos, neg []string
	switch lang {
	case English:
		pos = []string{
			"good", "great", "excellent", "amazing", "wonderful",
			"fantastic", "love", "loved", "best", "happy", "awesome",
			"perfect", "brilliant", "beautiful", "enjoy", "enjoyed",
			"nice", "superb", "delightful", "impressive", "outstanding",
			"positive", "recommend", "pleasant", "favorite", "glad",
			"helpful", "incredible", "remarkable", "satisfying",
		}
		neg = []string{
			"bad", "terrible", "awful", "horrible", "hate", "hated",
			"worst", "poor", "disappointing", "disappointed", "sad",
			"angry", "ugly", "boring", "annoying", "broken", "useless",
			"wrong", "problem", "fail", "failed", "failure", "disgusting",
			"dreadful", "mediocre", "negative", "unpleasant", "waste",
			"frustrating", "pathetic",
		}
	case Spanish:
		pos = []string{
			"bueno", "buena", "excelente", "increíble", "maravilloso",
			"fantástico", "amor", "encanta", "mejor", "feliz", "perfecto",
			"genial", "hermoso", "agradable", "estupendo", "magnífico",
		}
		neg = []string{
			"malo", "mala", "terrible", "horrible", "odio", "peor",
			"pobre", "decepcionante", "triste", "enojado", "feo",
			"aburrido", "molesto", "roto", "inútil", "problema",
		}
	case French:
		pos = []string{
			"bon", "bonne", "excellent", "incroyable", "merveilleux",
			"fantastique", "amour", "adore", "meilleur", "heureux",
			"parfait", "génial", "beau", "agréable", "magnifique",
			"superbe",
		}
		neg = []string{
			"mauvais", "mauvaise", "terrible", "horrible", "déteste",
			"pire", "pauvre", "décevant", "triste", "fâché", "laid",
			"ennuyeux", "agaçant", "cassé", "inutile", "problème",
		}
	case German:
		pos = []string{
			"gut", "gute", "ausgezeichnet", "unglaublich", "wunderbar",
			"fantastisch", "liebe", "beste", "glücklich", "perfekt",
			"genial", "schön", "angenehm", "großartig", "herrlich",
			"toll",
		}
		neg = []string{
			"schlecht", "schlechte", "schrecklich", "furchtbar", "hasse",
			"schlimmste", "arm", "enttäuschend", "traurig", "wütend",
			"hässlich", "langweilig", "nervig", "kaputt", "nutzlos",
			"problem",
		}
	case Japanese:
		pos = []string{
			"良い", "素晴らしい", "最高", "好き", "大好き", "楽しい",
			"嬉しい", "美しい", "完璧", "便利",
		}
		neg = []string{
			"悪い", "ひどい", "最悪", "嫌い", "大嫌い", "つまらない",
			"悲しい", "醜い", "壊れた", "問題",
		}
	}
	return toSet(pos), toSet(neg)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
