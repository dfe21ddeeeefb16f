package parlance

import (
	"time"
)

// Language identifies a supported natural language by its ISO 639-1 code.
type Language string

const (
	English  Language = "en"
	Spanish  Language = "es"
	French   Language = "fr"
	German   Language = "de"
	Japanese Language = "ja"

	// Available only when extended language support is enabled.
	Italian    Language = "it"
	Portuguese Language = "pt"
	Russian    Language = "ru"
	Dutch      Language = "nl"
)

// TokenUnit selects the boundary granularity used by Tokenize.
type TokenUnit int

const (
	UnitWord TokenUnit = iota
	UnitSentence
	UnitParagraph
)

// String returns the name of the unit.
func (u TokenUnit) String() string {
	switch u {
	case UnitWord:
		return "word"
	case UnitSentence:
		return "sentence"
	case UnitParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Sentiment is the coarse polarity class of a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentResult holds the outcome of sentiment analysis. Score ranges over
// [-1, 1] and Confidence over [0, 1]. PositiveWords and NegativeWords list up
// to ten matched evidence words each. A result is never mutated after
// construction.
type SentimentResult struct {
	Sentiment     Sentiment `json:"sentiment"`
	Score         float64   `json:"score"`
	Confidence    float64   `json:"confidence"`
	PositiveWords []string  `json:"positive_words,omitempty"`
	NegativeWords []string  `json:"negative_words,omitempty"`
}

// EntityType classifies a named entity into the internal taxonomy.
type EntityType string

const (
	EntityPerson       EntityType = "person"
	EntityLocation     EntityType = "location"
	EntityOrganization EntityType = "organization"
	EntityDate         EntityType = "date"
	EntityMoney        EntityType = "money"
	EntityPhoneNumber  EntityType = "phoneNumber"
	EntityEmail        EntityType = "email"
	EntityURL          EntityType = "url"
	EntityOther        EntityType = "other"
)

// NamedEntity is a typed span of the source text. Start and End are byte
// offsets into the original input.
type NamedEntity struct {
	Text       string     `json:"text"`
	Type       EntityType `json:"type"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Confidence float64    `json:"confidence"`
}

// EntityExtractionResult holds entities in left-to-right text order.
// Overlapping spans are not merged.
type EntityExtractionResult struct {
	Entities []NamedEntity `json:"entities"`
	Language Language      `json:"language"`
}

// Keyword is a scored candidate term. A keyword list is always sorted
// non-increasing by score.
type Keyword struct {
	Word      string  `json:"word"`
	Score     float64 `json:"score"`
	Frequency int     `json:"frequency"`
}

// Topic is a labeled group of keywords. The label is the group's top three
// keywords joined by ", "; Confidence is the mean member score.
type Topic struct {
	ID         int       `json:"id"`
	Label      string    `json:"label"`
	Keywords   []Keyword `json:"keywords"`
	Confidence float64   `json:"confidence"`
}

// LanguageHypothesis is one ranked guess for a text's language.
type LanguageHypothesis struct {
	Language   Language `json:"language"`
	Confidence float64  `json:"confidence"`
}

// LanguageDetectionResult holds up to five hypotheses in confidence-descending
// order. Dominant is the head of the list, or the engine's fallback language
// when the list is empty.
type LanguageDetectionResult struct {
	Hypotheses []LanguageHypothesis `json:"hypotheses"`
	Dominant   Language             `json:"dominant"`
}

// TokenizationResult holds the token sequence produced for one unit/language
// pair.
type TokenizationResult struct {
	Tokens   []string  `json:"tokens"`
	Unit     TokenUnit `json:"unit"`
	Language Language  `json:"language"`
}

// SummarySentence is a sentence selected for the summary, tagged with its
// position in the source text.
type SummarySentence struct {
	Text     string  `json:"text"`
	Position int     `json:"position"`
	Score    float64 `json:"score"`
}

// SummaryResult is an extractive summary. Sentences appear in original
// document order regardless of selection order.
type SummaryResult struct {
	Summary          string            `json:"summary"`
	CompressionRatio float64           `json:"compression_ratio"`
	Sentences        []SummarySentence `json:"sentences"`
}

// TextSimilarityResult reports pairwise similarity of two texts.
type TextSimilarityResult struct {
	Jaccard float64 `json:"jaccard"`
	Cosine  float64 `json:"cosine"`
	Average float64 `json:"average"`
}

// TextClassificationResult assigns a text to one of the supplied categories.
// When the category list is empty, Category holds the "unknown" sentinel.
type TextClassificationResult struct {
	Category   string             `json:"category"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores,omitempty"`
}

// ReadabilityResult reports Flesch Reading Ease and Flesch-Kincaid grade
// level for a text.
type ReadabilityResult struct {
	Score         float64 `json:"score"`
	Grade         float64 `json:"grade"`
	SentenceCount int     `json:"sentence_count"`
	WordCount     int     `json:"word_count"`
	SyllableCount int     `json:"syllable_count"`
	Confidence    float64 `json:"confidence"`
}

// AnalysisResult aggregates the sub-results of one Analyze call. Confidence
// is the mean of the confidences produced by the sub-analyses that ran,
// clamped to [0, 1]. Sub-result fields are zero when the corresponding option
// was disabled.
type AnalysisResult struct {
	Text           string                   `json:"text"`
	Language       Language                 `json:"language"`
	Tokens         []string                 `json:"tokens"`
	Sentences      []string                 `json:"sentences"`
	Detection      *LanguageDetectionResult `json:"detection,omitempty"`
	Sentiment      *SentimentResult         `json:"sentiment,omitempty"`
	Entities       []NamedEntity            `json:"entities,omitempty"`
	Keywords       []Keyword                `json:"keywords,omitempty"`
	Topics         []Topic                  `json:"topics,omitempty"`
	Readability    *ReadabilityResult       `json:"readability,omitempty"`
	Confidence     float64                  `json:"confidence"`
	ProcessingTime time.Duration            `json:"processing_time"`
	FromCache      bool                     `json:"from_cache"`
}

// ValidationResult reports whether the engine and its configuration are in a
// usable state, with one message per detected issue.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

// CacheStats reports result-cache occupancy and hit/miss counters.
type CacheStats struct {
	Entries int64 `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// HealthStatus is a point-in-time snapshot of engine health.
type HealthStatus struct {
	State     EngineState   `json:"state"`
	Uptime    time.Duration `json:"uptime"`
	Languages []Language    `json:"languages"`
	Cache     CacheStats    `json:"cache"`
}

// EngineState is the lifecycle state of an Engine.
type EngineState int

const (
	StateUninitialized EngineState = iota
	StateInitializing
	StateReady
	StateError
	StateShutdown
)

// String returns the name of the state.
func (s EngineState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	case StateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// OperationMetrics holds the call counter and running average latency for one
// operation kind.
type OperationMetrics struct {
	Calls      int64         `json:"calls"`
	AvgLatency time.Duration `json:"avg_latency"`
}

// PerformanceMetrics is a snapshot of the engine's per-operation counters.
//
// AvgLatency deliberately follows newAvg = (oldAvg + latestSample) / 2, which
// weights recent samples more heavily than a cumulative mean. The rule is
// part of the observable contract and is preserved as-is.
type PerformanceMetrics struct {
	Operations  map[string]OperationMetrics `json:"operations"`
	CacheHits   int64                       `json:"cache_hits"`
	CacheMisses int64                       `json:"cache_misses"`
}
