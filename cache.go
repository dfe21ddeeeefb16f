package parlance

import (
	"container/list"
	"hash/fnv"
	"strings"
	"time"
)

// cacheEntry is one stored analysis result. Entries are created on first
// computation of a key and never updated in place; eviction removes the
// oldest entry when the cache exceeds its entry limit.
type cacheEntry struct {
	key       uint64
	result    *AnalysisResult
	createdAt time.Time
	size      int
}

// resultCache is a bounded cache keyed by content+options hash. Insertion
// order doubles as age order, so evicting the oldest entry is O(1) instead
// of a linear timestamp scan. The cache has no internal locking: all access
// is funneled through the engine's serialization domain.
type resultCache struct {
	maxEntries int
	order      *list.List // front = oldest
	items      map[uint64]*list.Element
	hits       int64
	misses     int64
}

func newResultCache(maxEntries int) *resultCache {
	return &resultCache{
		maxEntries: maxEntries,
		order:      list.New(),
		items:      make(map[uint64]*list.Element),
	}
}

// get returns the cached result for key, if any, and counts the lookup.
func (c *resultCache) get(key uint64) (*AnalysisResult, bool) {
	element, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return element.Value.(*cacheEntry).result, true
}

// put stores a result under key. An existing entry is left untouched. When
// the cache grows past its limit the oldest entry is evicted.
func (c *resultCache) put(key uint64, result *AnalysisResult) {
	if c.maxEntries <= 0 {
		return
	}
	if _, exists := c.items[key]; exists {
		return
	}
	entry := &cacheEntry{
		key:       key,
		result:    result,
		createdAt: time.Now(),
		size:      len(result.Text),
	}
	c.items[key] = c.order.PushBack(entry)
	for c.order.Len() > c.maxEntries {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

// clear removes every entry. Hit/miss counters survive a clear.
func (c *resultCache) clear() {
	c.order.Init()
	c.items = make(map[uint64]*list.Element)
}

func (c *resultCache) len() int { return c.order.Len() }

func (c *resultCache) stats() CacheStats {
	return CacheStats{
		Entries: int64(c.order.Len()),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// cacheKey combines the hash of the normalized text with the hash of the
// options that shape the result.
func cacheKey(text string, opts AnalysisOptions) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.TrimSpace(text)))
	textHash := h.Sum64()
	return textHash ^ optionsHash(opts)
}

func optionsHash(opts AnalysisOptions) uint64 {
	h := fnv.New64a()
	flags := []bool{
		opts.Sentiment, opts.Entities, opts.Keywords,
		opts.Topics, opts.DetectLanguage, opts.Readability,
	}
	buf := make([]byte, 0, len(flags)+8)
	for _, flag := range flags {
		if flag {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	buf = append(buf,
		byte(opts.MaxKeywords), byte(opts.MaxKeywords>>8),
		byte(opts.MaxKeywords>>16), byte(opts.MaxKeywords>>24),
		byte(opts.MaxTopics), byte(opts.MaxTopics>>8),
		byte(opts.MaxTopics>>16), byte(opts.MaxTopics>>24))
	h.Write(buf)
	return h.Sum64()
}
