package parlance

import (
	"strings"
	"testing"
)

func testTopicModeler() *topicModeler {
	return &topicModeler{keywords: testKeywordExtractor(KeywordTFIDF, false)}
}

const topicTestText = "Kernels schedule threads across processors while compilers " +
	"translate programs into instructions. Databases index records and " +
	"caches accelerate lookups. Networks route packets between machines and " +
	"firewalls filter unwanted traffic. Editors highlight syntax while " +
	"debuggers inspect running processes."

func TestTopicPartition(t *testing.T) {
	tm := testTopicModeler()

	topics := tm.extract(topicTestText, English, 3)
	if len(topics) != 3 {
		t.Fatalf("got %d topics, want 3", len(topics))
	}

	total := 0
	for i, topic := range topics {
		if topic.ID != i {
			t.Errorf("topic %d has ID %d", i, topic.ID)
		}
		if topic.Label == "" {
			t.Errorf("topic %d has empty label", i)
		}
		if len(topic.Keywords) == 0 {
			t.Errorf("topic %d has no keywords", i)
		}
		total += len(topic.Keywords)
	}

	// The partition covers every extracted keyword exactly once.
	keywords := tm.keywords.extract(topicTestText, English, topicCandidatePool)
	if total != len(keywords) {
		t.Errorf("partition covers %d keywords, extracted %d", total, len(keywords))
	}

	// The last group absorbs the remainder, so it is never smaller than the
	// others.
	if len(topics[2].Keywords) < len(topics[0].Keywords) {
		t.Errorf("last group (%d) smaller than first (%d)",
			len(topics[2].Keywords), len(topics[0].Keywords))
	}
}

func TestTopicLabel(t *testing.T) {
	tm := testTopicModeler()

	topics := tm.extract(topicTestText, English, 2)
	if len(topics) == 0 {
		t.Fatal("expected topics")
	}
	parts := strings.Split(topics[0].Label, ", ")
	if len(parts) > topicLabelWords {
		t.Errorf("label %q has %d words, cap is %d", topics[0].Label, len(parts), topicLabelWords)
	}
	if parts[0] != topics[0].Keywords[0].Word {
		t.Errorf("label %q does not start with top keyword %q", topics[0].Label, topics[0].Keywords[0].Word)
	}
}

func TestTopicCountClamped(t *testing.T) {
	tm := testTopicModeler()

	topics := tm.extract("database database indexing", English, 10)
	if len(topics) > 2 {
		t.Errorf("got %d topics from 2 keywords", len(topics))
	}
}

func TestTopicEmptyInput(t *testing.T) {
	tm := testTopicModeler()

	if topics := tm.extract("the and or", English, 3); len(topics) != 0 {
		t.Errorf("expected no topics, got %v", topics)
	}
}
