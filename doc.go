// Package parlance is an on-device natural language analysis engine. It
// provides language identification, boundary tokenization, sentiment scoring,
// named entity extraction, keyword and topic extraction, extractive
// summarization, pairwise similarity, and category classification behind a
// single Engine type.
//
// An Engine is created with functional options, initialized once, and then
// queried:
//
//	engine := parlance.NewEngine(parlance.WithMaxCacheSize(500))
//	if err := engine.Initialize(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//	result, err := engine.Analyze(ctx, text, parlance.DefaultAnalysisOptions())
//
// The engine serializes all operations internally; create independent engines
// for parallel throughput. Results for identical (text, options) pairs are
// served from a bounded cache.
package parlance
