package parlance

import (
	"time"
)

// Operation kinds tracked by the performance counters.
const (
	opAnalyze    = "analyze"
	opTokenize   = "tokenize"
	opDetect     = "detectLanguage"
	opSentiment  = "sentiment"
	opEntities   = "entities"
	opKeywords   = "keywords"
	opTopics     = "topics"
	opSummarize  = "summarize"
	opSimilarity = "similarity"
	opClassify   = "classify"
)

// performanceTracker accumulates per-operation call counts and latencies.
// Like the cache, it relies on the engine's serialization domain instead of
// internal locking.
//
// The running average uses newAvg = (oldAvg + sample) / 2. This is not a
// cumulative mean — recent samples dominate — but the rule is an observable,
// tested contract and is kept verbatim.
type performanceTracker struct {
	calls       map[string]int64
	averages    map[string]time.Duration
	cacheHits   int64
	cacheMisses int64
}

func newPerformanceTracker() *performanceTracker {
	return &performanceTracker{
		calls:    make(map[string]int64),
		averages: make(map[string]time.Duration),
	}
}

// record counts one call of the operation kind and folds its latency into
// the running average.
func (pt *performanceTracker) record(op string, elapsed time.Duration) {
	pt.calls[op]++
	if pt.calls[op] == 1 {
		pt.averages[op] = elapsed
		return
	}
	pt.averages[op] = (pt.averages[op] + elapsed) / 2
}

func (pt *performanceTracker) recordCacheHit()  { pt.cacheHits++ }
func (pt *performanceTracker) recordCacheMiss() { pt.cacheMisses++ }

// snapshot copies the counters into an exported view.
func (pt *performanceTracker) snapshot() PerformanceMetrics {
	operations := make(map[string]OperationMetrics, len(pt.calls))
	for op, count := range pt.calls {
		operations[op] = OperationMetrics{
			Calls:      count,
			AvgLatency: pt.averages[op],
		}
	}
	return PerformanceMetrics{
		Operations:  operations,
		CacheHits:   pt.cacheHits,
		CacheMisses: pt.cacheMisses,
	}
}

// reset drops all counters.
func (pt *performanceTracker) reset() {
	pt.calls = make(map[string]int64)
	pt.averages = make(map[string]time.Duration)
	pt.cacheHits = 0
	pt.cacheMisses = 0
}
