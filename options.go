package parlance

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"
)

// KeywordMethod selects the keyword scoring algorithm.
type KeywordMethod string

const (
	KeywordFrequency KeywordMethod = "frequency"
	KeywordTFIDF     KeywordMethod = "tfidf"

	// Recognized but not implemented; Validate reports them and the
	// engine falls back to TF-IDF.
	KeywordRAKE     KeywordMethod = "rake"
	KeywordTextRank KeywordMethod = "textrank"
)

// TopicAlgorithm selects the topic modeling algorithm.
type TopicAlgorithm string

const (
	TopicSimple TopicAlgorithm = "simple"

	// Recognized but not implemented; Validate reports them and the
	// engine falls back to the simple partition.
	TopicLDA  TopicAlgorithm = "lda"
	TopicNMF  TopicAlgorithm = "nmf"
	TopicBERT TopicAlgorithm = "bert"
)

// LoadingStrategy controls which per-language resources Initialize loads.
type LoadingStrategy string

const (
	// LoadPreload loads every supported language at Initialize.
	LoadPreload LoadingStrategy = "preload"
	// LoadSelective loads the fallback and preferred languages only.
	LoadSelective LoadingStrategy = "selective"
	// LoadLazy loads the fallback language at Initialize and faults the
	// rest in on first use, under the engine's serialization domain.
	LoadLazy LoadingStrategy = "lazy"
)

// Config holds every option recognized at engine construction. Fields are
// read once during Initialize and never mutated afterwards.
type Config struct {
	EnableExtendedLanguageSupport bool
	MaxCacheSize                  int
	MaxTextLength                 int
	PreferredLanguages            []string
	ProcessingTimeout             time.Duration // recognized; not enforced on the analysis path
	ModelLoadingStrategy          LoadingStrategy
	MaxConcurrentOperations       int
	SentimentThreshold            float64 // minimum classifier confidence before the lexicon fallback takes over
	EntityThreshold               float64 // minimum entity confidence to report
	KeywordExtractionMethod       KeywordMethod
	TopicModelingAlgorithm        TopicAlgorithm
	MorphologyEnabled             bool
	MultilanguageDetection        bool
	BatchProcessingEnabled        bool
	StreamingProcessing           bool
	ResultCaching                 bool
	SanitizeHTML                  bool

	Logger *slog.Logger

	// External collaborators. Nil selects the built-in implementation.
	Segmenter  Segmenter
	Identifier LanguageIdentifier
	Tagger     EntityTagger
}

// DefaultConfig returns the configuration used when no options are supplied.
func DefaultConfig() Config {
	return Config{
		MaxCacheSize:            100,
		MaxTextLength:           100000,
		ProcessingTimeout:       30 * time.Second,
		ModelLoadingStrategy:    LoadPreload,
		MaxConcurrentOperations: 1,
		KeywordExtractionMethod: KeywordTFIDF,
		TopicModelingAlgorithm:  TopicSimple,
		MultilanguageDetection:  true,
		BatchProcessingEnabled:  true,
		ResultCaching:           true,
		Logger:                  slog.Default(),
	}
}

// An Option adjusts the engine configuration at construction time.
//
// For example:
//
//	engine := parlance.NewEngine(parlance.WithMaxCacheSize(500))
type Option func(*Config)

// WithExtendedLanguageSupport enables the extended language set (Italian,
// Portuguese, Russian, Dutch) in addition to the base languages.
func WithExtendedLanguageSupport(enable bool) Option {
	return func(c *Config) { c.EnableExtendedLanguageSupport = enable }
}

// WithMaxCacheSize bounds the result cache to n entries.
func WithMaxCacheSize(n int) Option {
	return func(c *Config) { c.MaxCacheSize = n }
}

// WithMaxTextLength bounds accepted input length in bytes.
func WithMaxTextLength(n int) Option {
	return func(c *Config) { c.MaxTextLength = n }
}

// WithPreferredLanguages sets the BCP 47 tags used for fallback-language
// resolution and selective resource loading.
func WithPreferredLanguages(tags ...string) Option {
	return func(c *Config) { c.PreferredLanguages = tags }
}

// WithProcessingTimeout records the configured timeout. The base design does
// not enforce it on the analysis path.
func WithProcessingTimeout(d time.Duration) Option {
	return func(c *Config) { c.ProcessingTimeout = d }
}

// WithModelLoadingStrategy selects how per-language resources are loaded.
func WithModelLoadingStrategy(s LoadingStrategy) Option {
	return func(c *Config) { c.ModelLoadingStrategy = s }
}

// WithMaxConcurrentOperations records the configured concurrency bound. The
// engine itself is a single serialization domain; run independent engines for
// parallel throughput.
func WithMaxConcurrentOperations(n int) Option {
	return func(c *Config) { c.MaxConcurrentOperations = n }
}

// WithSentimentThreshold sets the minimum classifier confidence below which
// sentiment analysis falls back to the lexicon method.
func WithSentimentThreshold(t float64) Option {
	return func(c *Config) { c.SentimentThreshold = t }
}

// WithEntityThreshold sets the minimum confidence for reported entities.
func WithEntityThreshold(t float64) Option {
	return func(c *Config) { c.EntityThreshold = t }
}

// WithKeywordMethod selects the keyword scoring algorithm.
func WithKeywordMethod(m KeywordMethod) Option {
	return func(c *Config) { c.KeywordExtractionMethod = m }
}

// WithTopicAlgorithm selects the topic modeling algorithm.
func WithTopicAlgorithm(a TopicAlgorithm) Option {
	return func(c *Config) { c.TopicModelingAlgorithm = a }
}

// WithMorphology enables stemming of keyword candidates.
func WithMorphology(enable bool) Option {
	return func(c *Config) { c.MorphologyEnabled = enable }
}

// WithMultilanguageDetection toggles multi-hypothesis language detection.
func WithMultilanguageDetection(enable bool) Option {
	return func(c *Config) { c.MultilanguageDetection = enable }
}

// WithBatchProcessing toggles AnalyzeBatch support.
func WithBatchProcessing(enable bool) Option {
	return func(c *Config) { c.BatchProcessingEnabled = enable }
}

// WithStreamingProcessing records the streaming flag. Streaming is not part
// of the base analysis path.
func WithStreamingProcessing(enable bool) Option {
	return func(c *Config) { c.StreamingProcessing = enable }
}

// WithResultCaching toggles the result cache.
func WithResultCaching(enable bool) Option {
	return func(c *Config) { c.ResultCaching = enable }
}

// WithSanitizeHTML strips markup from inputs before analysis.
func WithSanitizeHTML(enable bool) Option {
	return func(c *Config) { c.SanitizeHTML = enable }
}

// WithLogger sets the engine's structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithSegmenter replaces the built-in boundary-segmentation primitive.
func WithSegmenter(s Segmenter) Option {
	return func(c *Config) { c.Segmenter = s }
}

// WithLanguageIdentifier replaces the built-in language-identification
// primitive.
func WithLanguageIdentifier(id LanguageIdentifier) Option {
	return func(c *Config) { c.Identifier = id }
}

// WithEntityTagger replaces the built-in entity-tagging primitive.
func WithEntityTagger(t EntityTagger) Option {
	return func(c *Config) { c.Tagger = t }
}

// AnalysisOptions selects which sub-analyses an Analyze call runs. Options
// are immutable per call.
type AnalysisOptions struct {
	Sentiment      bool
	Entities       bool
	Keywords       bool
	Topics         bool
	DetectLanguage bool
	Readability    bool
	MaxKeywords    int
	MaxTopics      int
}

// DefaultAnalysisOptions enables every sub-analysis with ten keywords and
// three topics.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Sentiment:      true,
		Entities:       true,
		Keywords:       true,
		Topics:         true,
		DetectLanguage: true,
		Readability:    true,
		MaxKeywords:    10,
		MaxTopics:      3,
	}
}

// fallbackLanguage resolves the engine's fallback language from the
// preferred-language tags, matched against the supported set. English is the
// last resort.
func (c Config) fallbackLanguage(supported []Language) Language {
	if len(c.PreferredLanguages) == 0 {
		return English
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tags = append(tags, language.Make(string(lang)))
	}
	matcher := language.NewMatcher(tags)
	for _, pref := range c.PreferredLanguages {
		tag, err := language.Parse(pref)
		if err != nil {
			continue
		}
		if _, index, conf := matcher.Match(tag); conf >= language.High {
			return supported[index]
		}
	}
	return English
}
