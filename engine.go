package parlance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Engine composes the analyzers into a single orchestration surface. It owns
// the result cache, the performance counters, and the loaded per-language
// resources. All engine-owned state is mutated under one mutex, making the
// engine a single serialization domain; run independent Engine instances for
// parallel throughput.
//
// An Engine starts uninitialized. Initialize moves it to ready; every
// analysis operation requires the ready state and fails with ErrNotReady
// otherwise. Shutdown is terminal.
type Engine struct {
	mu  sync.Mutex
	cfg Config
	log *slog.Logger

	state     EngineState
	readyAt   time.Time
	fallback  Language
	supported []Language

	segmenter  Segmenter
	identifier LanguageIdentifier

	vocab       *vocabulary
	tok         *tokenizer
	sentiment   *sentimentAnalyzer
	entities    *entityExtractor
	keywords    *keywordExtractor
	topics      *topicModeler
	summarizer  *summarizer
	similarity  *similarityCalculator
	classifier  *textClassifier
	readability *readabilityAnalyzer

	cache   *resultCache
	metrics *performanceTracker
}

// NewEngine constructs an engine in the uninitialized state. Call Initialize
// before any analysis operation.
func NewEngine(opts ...Option) *Engine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Engine{
		cfg:   cfg,
		log:   cfg.Logger,
		state: StateUninitialized,
	}
}

// supportedLanguages returns the language set implied by the configuration.
func supportedLanguages(extended bool) []Language {
	langs := []Language{English, Spanish, French, German, Japanese}
	if extended {
		langs = append(langs, Italian, Portuguese, Russian, Dutch)
	}
	return langs
}

// Initialize loads the per-language resources and moves the engine to ready.
// It may be called exactly once, from the uninitialized state; any other
// transition into initializing is rejected.
func (e *Engine) Initialize(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateUninitialized {
		return fmt.Errorf("parlance: cannot initialize from state %s", e.state)
	}
	e.state = StateInitializing

	select {
	case <-ctx.Done():
		e.state = StateUninitialized
		return ctx.Err()
	default:
	}

	e.supported = supportedLanguages(e.cfg.EnableExtendedLanguageSupport)
	e.fallback = e.cfg.fallbackLanguage(e.supported)

	e.segmenter = e.cfg.Segmenter
	if e.segmenter == nil {
		e.segmenter = newPunktSegmenter()
	}
	e.identifier = e.cfg.Identifier
	if e.identifier == nil {
		e.identifier = newNgramIdentifier(e.supported)
	}
	tagger := e.cfg.Tagger
	if tagger == nil {
		tagger = &ruleTagger{}
	}

	e.vocab = newVocabulary()
	for _, lang := range e.initialLanguages() {
		e.vocab.load(lang)
	}

	e.tok = newTokenizer(e.segmenter, e.supported)
	if e.sentiment == nil {
		e.sentiment = newSentimentAnalyzer(e.vocab, nil, e.cfg.SentimentThreshold, e.log)
	}
	e.sentiment.vocab = e.vocab
	e.sentiment.tok = e.tok
	e.entities = &entityExtractor{tagger: tagger, threshold: e.cfg.EntityThreshold}
	e.keywords = &keywordExtractor{
		vocab:  e.vocab,
		tok:    e.tok,
		method: e.effectiveKeywordMethod(),
		stem:   e.cfg.MorphologyEnabled,
	}
	e.topics = &topicModeler{keywords: e.keywords}
	e.summarizer = &summarizer{tok: e.tok, keywords: e.keywords}
	e.similarity = &similarityCalculator{tok: e.tok}
	e.classifier = &textClassifier{tok: e.tok, keywords: e.keywords}
	e.readability = &readabilityAnalyzer{tok: e.tok}

	e.cache = newResultCache(e.cfg.MaxCacheSize)
	e.metrics = newPerformanceTracker()

	e.state = StateReady
	e.readyAt = time.Now()
	e.log.Info("engine ready",
		"languages", len(e.supported),
		"fallback", e.fallback,
		"loading", e.cfg.ModelLoadingStrategy)
	return nil
}

// initialLanguages selects which languages load at Initialize, per the
// configured loading strategy.
func (e *Engine) initialLanguages() []Language {
	switch e.cfg.ModelLoadingStrategy {
	case LoadLazy:
		return []Language{e.fallback}
	case LoadSelective:
		langs := []Language{e.fallback}
		for _, pref := range e.cfg.PreferredLanguages {
			for _, lang := range e.supported {
				if string(lang) == pref && lang != e.fallback {
					langs = append(langs, lang)
				}
			}
		}
		return langs
	default:
		return e.supported
	}
}

// effectiveKeywordMethod coerces unimplemented methods to TF-IDF.
func (e *Engine) effectiveKeywordMethod() KeywordMethod {
	switch e.cfg.KeywordExtractionMethod {
	case KeywordFrequency, KeywordTFIDF:
		return e.cfg.KeywordExtractionMethod
	default:
		e.log.Warn("keyword method not implemented, using tfidf",
			"method", e.cfg.KeywordExtractionMethod)
		return KeywordTFIDF
	}
}

// Shutdown releases all loaded resources, clears the cache and metrics, and
// moves the engine to the terminal shutdown state. Shutting down an already
// shut-down engine is a no-op.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateShutdown {
		return nil
	}
	if e.state != StateReady {
		return fmt.Errorf("parlance: cannot shut down from state %s", e.state)
	}
	e.vocab.release()
	e.sentiment.models = make(map[Language]SentimentModel)
	e.cache.clear()
	e.metrics.reset()
	e.state = StateShutdown
	e.log.Info("engine shut down")
	return nil
}

// RegisterSentimentModel registers a trained classifier for a language.
// Models must be registered before the engine reaches ready; afterwards the
// loaded-resource tables are read-only.
func (e *Engine) RegisterSentimentModel(lang Language, model SentimentModel) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if model == nil {
		return fmt.Errorf("%w: nil model for %q", ErrModelNotAvailable, lang)
	}
	if e.state == StateReady || e.state == StateShutdown {
		return fmt.Errorf("parlance: models must be registered before initialization completes (state %s)", e.state)
	}
	if e.sentiment == nil {
		e.sentiment = newSentimentAnalyzer(nil, nil, e.cfg.SentimentThreshold, e.log)
	}
	e.sentiment.models[lang] = model
	return nil
}

// Validate reports configuration and state issues without side effects.
func (e *Engine) Validate() ValidationResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	var issues []string
	if e.state != StateReady {
		issues = append(issues, fmt.Sprintf("engine state is %s, not ready", e.state))
	}
	if e.cfg.MaxCacheSize <= 0 {
		issues = append(issues, "maxCacheSize must be positive")
	}
	if e.cfg.MaxTextLength <= 0 {
		issues = append(issues, "maxTextLength must be positive")
	}
	if e.cfg.MaxConcurrentOperations < 1 {
		issues = append(issues, "maxConcurrentOperations must be at least 1")
	}
	if e.cfg.SentimentThreshold < 0 || e.cfg.SentimentThreshold > 1 {
		issues = append(issues, "sentimentThreshold must be in [0,1]")
	}
	if e.cfg.EntityThreshold < 0 || e.cfg.EntityThreshold > 1 {
		issues = append(issues, "entityThreshold must be in [0,1]")
	}
	switch e.cfg.KeywordExtractionMethod {
	case KeywordFrequency, KeywordTFIDF:
	default:
		issues = append(issues, fmt.Sprintf("keyword method %q not implemented, tfidf is used", e.cfg.KeywordExtractionMethod))
	}
	switch e.cfg.TopicModelingAlgorithm {
	case TopicSimple:
	default:
		issues = append(issues, fmt.Sprintf("topic algorithm %q not implemented, simple partition is used", e.cfg.TopicModelingAlgorithm))
	}
	return ValidationResult{Valid: len(issues) == 0, Issues: issues}
}

// HealthCheck returns a snapshot of engine state, uptime, loaded languages,
// and cache occupancy.
func (e *Engine) HealthCheck() HealthStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	status := HealthStatus{State: e.state}
	if e.state == StateReady {
		status.Uptime = time.Since(e.readyAt)
		status.Cache = e.cache.stats()
		for _, lang := range e.supported {
			if e.vocab.loaded(lang) {
				status.Languages = append(status.Languages, lang)
			}
		}
		sort.Slice(status.Languages, func(i, j int) bool {
			return status.Languages[i] < status.Languages[j]
		})
	}
	return status
}

// GetSupportedLanguages lists the languages the engine accepts.
func (e *Engine) GetSupportedLanguages() []Language {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Language, len(e.supported))
	copy(out, e.supported)
	return out
}

// GetPerformanceMetrics returns a snapshot of the per-operation counters.
func (e *Engine) GetPerformanceMetrics() PerformanceMetrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.metrics == nil {
		return PerformanceMetrics{Operations: map[string]OperationMetrics{}}
	}
	return e.metrics.snapshot()
}

// ClearCaches drops every cached result.
func (e *Engine) ClearCaches() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cache != nil {
		e.cache.clear()
	}
}

// Analyze runs the multi-stage pipeline: input validation, language
// detection, tokenization, then the sub-analyses enabled by opts. The result
// is cached by content+options hash; a cache hit short-circuits all
// sub-analysis and metric updates other than the hit counter.
func (e *Engine) Analyze(ctx context.Context, text string, opts AnalysisOptions) (*AnalysisResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.analyze(ctx, text, opts)
}

// AnalyzeBatch analyzes texts strictly sequentially: each request completes
// fully before the next starts, keeping cache and metrics coherent. Use
// independent engines for parallel throughput.
func (e *Engine) AnalyzeBatch(ctx context.Context, texts []string, opts AnalysisOptions) ([]*AnalysisResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cfg.BatchProcessingEnabled {
		return nil, fmt.Errorf("parlance: batch processing disabled")
	}
	results := make([]*AnalysisResult, 0, len(texts))
	for i, text := range texts {
		result, err := e.analyze(ctx, text, opts)
		if err != nil {
			return nil, fmt.Errorf("parlance: batch item %d: %w", i, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// analyze is the pipeline body; callers hold e.mu.
func (e *Engine) analyze(ctx context.Context, text string, opts AnalysisOptions) (*AnalysisResult, error) {
	if err := e.requireReady(); err != nil {
		return nil, err
	}
	start := time.Now()

	text = e.preprocess(text)
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var key uint64
	if e.cfg.ResultCaching {
		key = cacheKey(text, opts)
		if cached, ok := e.cache.get(key); ok {
			e.metrics.recordCacheHit()
			hit := *cached
			hit.FromCache = true
			return &hit, nil
		}
		e.metrics.recordCacheMiss()
	}

	detection := e.detect(text)
	lang := detection.Dominant
	e.ensureLanguage(lang)

	tokens, err := e.tok.tokenize(text, UnitWord, lang)
	if err != nil {
		return nil, processingError("tokenize", err)
	}
	sentences, err := e.tok.tokenize(text, UnitSentence, lang)
	if err != nil {
		return nil, processingError("tokenize", err)
	}

	result := &AnalysisResult{
		Text:      text,
		Language:  lang,
		Tokens:    tokens,
		Sentences: sentences,
	}
	var confidences []float64

	if opts.DetectLanguage {
		stage := time.Now()
		result.Detection = detection
		if len(detection.Hypotheses) > 0 {
			confidences = append(confidences, detection.Hypotheses[0].Confidence)
		}
		e.metrics.record(opDetect, time.Since(stage))
	}

	if opts.Sentiment {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		stage := time.Now()
		result.Sentiment = e.sentiment.analyze(ctx, text, lang)
		confidences = append(confidences, result.Sentiment.Confidence)
		e.metrics.record(opSentiment, time.Since(stage))
	}

	if opts.Entities {
		stage := time.Now()
		entities, err := e.entities.extract(text, lang)
		if err != nil {
			return nil, processingError("entities", err)
		}
		result.Entities = entities
		confidences = append(confidences, entityConfidence)
		e.metrics.record(opEntities, time.Since(stage))
	}

	if opts.Keywords {
		stage := time.Now()
		result.Keywords = e.keywords.extract(text, lang, opts.MaxKeywords)
		e.metrics.record(opKeywords, time.Since(stage))
	}

	if opts.Topics {
		stage := time.Now()
		result.Topics = e.topics.extract(text, lang, opts.MaxTopics)
		if len(result.Topics) > 0 {
			topicConf := make([]float64, len(result.Topics))
			for i, topic := range result.Topics {
				topicConf[i] = clamp01(topic.Confidence)
			}
			confidences = append(confidences, stat.Mean(topicConf, nil))
		}
		e.metrics.record(opTopics, time.Since(stage))
	}

	if opts.Readability {
		result.Readability = e.readability.analyze(text, lang)
		confidences = append(confidences, result.Readability.Confidence)
	}

	if len(confidences) > 0 {
		result.Confidence = clamp01(stat.Mean(confidences, nil))
	}
	result.ProcessingTime = time.Since(start)

	if e.cfg.ResultCaching {
		e.cache.put(key, result)
	}
	e.metrics.record(opAnalyze, result.ProcessingTime)
	return result, nil
}

// DetectLanguage ranks language hypotheses for a text.
func (e *Engine) DetectLanguage(text string) (*LanguageDetectionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	start := time.Now()
	detection := e.detect(text)
	e.metrics.record(opDetect, time.Since(start))
	return detection, nil
}

// Tokenize splits text into the requested units for a language.
func (e *Engine) Tokenize(text string, unit TokenUnit, lang Language) (*TokenizationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	start := time.Now()
	tokens, err := e.tok.tokenize(text, unit, lang)
	if err != nil {
		return nil, err
	}
	e.metrics.record(opTokenize, time.Since(start))
	return &TokenizationResult{Tokens: tokens, Unit: unit, Language: lang}, nil
}

// AnalyzeSentiment scores a text's sentiment for a language, using the
// registered classifier when available and the lexicon method otherwise.
func (e *Engine) AnalyzeSentiment(ctx context.Context, text string, lang Language) (*SentimentResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	if !e.tok.supported[lang] {
		return nil, fmt.Errorf("%w: %q", ErrLanguageNotSupported, lang)
	}
	e.ensureLanguage(lang)
	start := time.Now()
	result := e.sentiment.analyze(ctx, text, lang)
	e.metrics.record(opSentiment, time.Since(start))
	return result, nil
}

// ExtractEntities extracts named entities in text order.
func (e *Engine) ExtractEntities(text string) (*EntityExtractionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	start := time.Now()
	lang := e.detect(text).Dominant
	entities, err := e.entities.extract(text, lang)
	if err != nil {
		return nil, processingError("entities", err)
	}
	e.metrics.record(opEntities, time.Since(start))
	return &EntityExtractionResult{Entities: entities, Language: lang}, nil
}

// ExtractKeywords returns at most maxCount keywords, highest score first.
func (e *Engine) ExtractKeywords(text string, maxCount int) ([]Keyword, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	start := time.Now()
	lang := e.detect(text).Dominant
	e.ensureLanguage(lang)
	keywords := e.keywords.extract(text, lang, maxCount)
	e.metrics.record(opKeywords, time.Since(start))
	return keywords, nil
}

// ExtractTopics partitions the text's keywords into topicCount labeled
// groups.
func (e *Engine) ExtractTopics(text string, topicCount int) ([]Topic, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	start := time.Now()
	lang := e.detect(text).Dominant
	e.ensureLanguage(lang)
	topics := e.topics.extract(text, lang, topicCount)
	e.metrics.record(opTopics, time.Since(start))
	return topics, nil
}

// SummarizeText produces an extractive summary of at most maxSentences
// sentences, in original document order.
func (e *Engine) SummarizeText(text string, maxSentences int) (*SummaryResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	start := time.Now()
	lang := e.detect(text).Dominant
	e.ensureLanguage(lang)
	summary := e.summarizer.summarize(text, lang, maxSentences)
	e.metrics.record(opSummarize, time.Since(start))
	return summary, nil
}

// CalculateSimilarity computes Jaccard and cosine similarity of two texts.
func (e *Engine) CalculateSimilarity(textA, textB string) (*TextSimilarityResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(textA); err != nil {
		return nil, err
	}
	if err := e.validateInput(textB); err != nil {
		return nil, err
	}
	start := time.Now()
	lang := e.detect(textA).Dominant
	result := e.similarity.calculate(textA, textB, lang)
	e.metrics.record(opSimilarity, time.Since(start))
	return result, nil
}

// ClassifyText assigns text to one of the supplied categories.
func (e *Engine) ClassifyText(text string, categories []string) (*TextClassificationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireReady(); err != nil {
		return nil, err
	}
	if err := e.validateInput(text); err != nil {
		return nil, err
	}
	start := time.Now()
	lang := e.detect(text).Dominant
	e.ensureLanguage(lang)
	result := e.classifier.classify(text, categories, lang)
	e.metrics.record(opClassify, time.Since(start))
	return result, nil
}

// requireReady gates every analysis operation on the ready state.
func (e *Engine) requireReady() error {
	if e.state != StateReady {
		return fmt.Errorf("%w: state is %s", ErrNotReady, e.state)
	}
	return nil
}

// validateInput raises input errors before any sub-analysis runs.
func (e *Engine) validateInput(text string) error {
	if isBlank(text) {
		return ErrEmptyInput
	}
	if len(text) > e.cfg.MaxTextLength {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTextTooLong, len(text), e.cfg.MaxTextLength)
	}
	return nil
}

// preprocess strips markup when configured to.
func (e *Engine) preprocess(text string) string {
	if e.cfg.SanitizeHTML && looksLikeMarkup(text) {
		return StripMarkup(text)
	}
	return text
}

// detect runs the language identifier. An empty hypothesis list falls back
// to the configured fallback language.
func (e *Engine) detect(text string) *LanguageDetectionResult {
	hyps := e.identifier.Identify(text)
	if !e.cfg.MultilanguageDetection && len(hyps) > 1 {
		hyps = hyps[:1]
	}
	dominant := e.fallback
	if len(hyps) > 0 {
		dominant = hyps[0].Language
	}
	return &LanguageDetectionResult{Hypotheses: hyps, Dominant: dominant}
}

// ensureLanguage faults a language's vocabulary in on demand when the lazy
// or selective loading strategy left it unloaded. This happens under e.mu,
// so the loaded tables stay within the engine's serialization domain.
func (e *Engine) ensureLanguage(lang Language) {
	if e.vocab.loaded(lang) {
		return
	}
	e.log.Debug("loading language resources on demand", "language", lang)
	e.vocab.load(lang)
}

func isBlank(text string) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
