package parlance

import (
	"strings"

	"gonum.org/v1/gonum/stat"
)

const (
	// topicCandidatePool is the keyword set size topics are carved from.
	topicCandidatePool = 50

	// topicLabelWords is how many leading keywords form a topic label.
	topicLabelWords = 3

	defaultTopicCount = 3
)

// topicModeler partitions a ranked keyword list into contiguous, equal-sized
// groups. This is a deliberate naive partition, not semantic clustering:
// group membership follows score rank only.
type topicModeler struct {
	keywords *keywordExtractor
}

// extract pulls up to topicCandidatePool keywords and splits them into
// topicCount groups. Group size is keywordCount / topicCount with the last
// group absorbing the remainder. Each topic's label is its top three
// keywords joined by ", "; its confidence is the mean member score.
func (tm *topicModeler) extract(text string, lang Language, topicCount int) []Topic {
	if topicCount <= 0 {
		topicCount = defaultTopicCount
	}

	keywords := tm.keywords.extract(text, lang, topicCandidatePool)
	if len(keywords) == 0 {
		return []Topic{}
	}
	if topicCount > len(keywords) {
		topicCount = len(keywords)
	}

	groupSize := len(keywords) / topicCount
	topics := make([]Topic, 0, topicCount)
	for i := 0; i < topicCount; i++ {
		start := i * groupSize
		end := start + groupSize
		if i == topicCount-1 {
			end = len(keywords)
		}
		group := keywords[start:end]

		scores := make([]float64, len(group))
		labelWords := make([]string, 0, topicLabelWords)
		for j, kw := range group {
			scores[j] = kw.Score
			if j < topicLabelWords {
				labelWords = append(labelWords, kw.Word)
			}
		}

		topics = append(topics, Topic{
			ID:         i,
			Label:      strings.Join(labelWords, ", "),
			Keywords:   group,
			Confidence: stat.Mean(scores, nil),
		})
	}
	return topics
}
