package parlance

import (
	"regexp"
	"sort"
	"strings"
)

// A TaggedSpan is one span returned by the external tagging primitive,
// carrying the primitive's own tag vocabulary.
type TaggedSpan struct {
	Text  string
	Tag   string
	Start int
	End   int
}

// An EntityTagger is the external tagging primitive consumed by entity
// extraction. It may be unavailable for a language; the default
// implementation is a rule-based tagger.
type EntityTagger interface {
	Tag(text string) ([]TaggedSpan, error)
}

// entityConfidence is assigned to every extracted entity. The tagging
// primitive exposes no per-tag confidence; the constant is a documented
// placeholder, not a computed value.
const entityConfidence = 0.75

// entityTaxonomy maps external tags to the internal taxonomy. Unmapped tags
// become EntityOther.
var entityTaxonomy = map[string]EntityType{
	"PERSON":   EntityPerson,
	"PER":      EntityPerson,
	"LOCATION": EntityLocation,
	"LOC":      EntityLocation,
	"GPE":      EntityLocation,
	"ORG":      EntityOrganization,
	"DATE":     EntityDate,
	"MONEY":    EntityMoney,
	"PHONE":    EntityPhoneNumber,
	"EMAIL":    EntityEmail,
	"URL":      EntityURL,
}

// entityExtractor wraps the tagging primitive and maps its output into the
// internal taxonomy. Entities preserve left-to-right text order; overlapping
// spans are not merged.
type entityExtractor struct {
	tagger    EntityTagger
	threshold float64
}

func (e *entityExtractor) extract(text string, lang Language) ([]NamedEntity, error) {
	spans, err := e.tagger.Tag(text)
	if err != nil {
		return nil, err
	}
	entities := make([]NamedEntity, 0, len(spans))
	for _, span := range spans {
		if entityConfidence < e.threshold {
			continue
		}
		entityType, ok := entityTaxonomy[span.Tag]
		if !ok {
			entityType = EntityOther
		}
		entities = append(entities, NamedEntity{
			Text:       span.Text,
			Type:       entityType,
			Start:      span.Start,
			End:        span.End,
			Confidence: entityConfidence,
		})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Start < entities[j].Start
	})
	return entities, nil
}

// ruleTagger is the default EntityTagger: regular-expression patterns for
// structured entities and a capitalization heuristic for names.
type ruleTagger struct{}

var (
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	urlRE   = regexp.MustCompile(`https?://[^\s]+|www\.[^\s)]+`)
	phoneRE = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	moneyRE = regexp.MustCompile(`[$€£¥]\s?\d[\d,.]*|\b\d[\d,.]*\s?(?:dollars|euros|pounds|yen|USD|EUR|GBP|JPY)\b`)
	dateRE  = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}[/.]\d{1,2}[/.]\d{2,4}\b|\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:,\s*\d{4})?\b`)
	nameRE  = regexp.MustCompile(`\b[A-Z][a-zà-þ]+(?:\s+[A-Z][a-zà-þ]+)*\.?`)
)

// orgSuffixes flag a capitalized sequence as an organization.
var orgSuffixes = []string{
	"Inc", "Inc.", "Corp", "Corp.", "Ltd", "Ltd.", "LLC", "GmbH",
	"Company", "Corporation", "University", "Institute", "Foundation",
	"Bank", "Group",
}

// sentenceLeads are capitalized function words that start sentences and are
// never names on their own.
var sentenceLeads = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "it": {}, "he": {}, "she": {}, "we": {}, "they": {},
	"i": {}, "in": {}, "on": {}, "at": {}, "my": {}, "our": {},
	"his": {}, "her": {}, "their": {}, "there": {}, "when": {},
	"what": {}, "how": {}, "why": {}, "who": {}, "if": {}, "but": {},
	"and": {}, "or": {}, "as": {}, "is": {}, "was": {}, "after": {},
	"before": {}, "during": {}, "while": {}, "some": {}, "many": {},
	"however": {}, "although": {}, "because": {}, "since": {}, "not": {},
	"no": {}, "yes": {}, "for": {}, "with": {}, "from": {}, "to": {},
	"by": {}, "of": {}, "all": {}, "each": {}, "every": {}, "both": {},
}

// Tag runs every pattern over the text. Overlaps between pattern classes are
// reported as-is.
func (rt *ruleTagger) Tag(text string) ([]TaggedSpan, error) {
	var spans []TaggedSpan
	collect := func(re *regexp.Regexp, tag string) {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, TaggedSpan{
				Text:  text[loc[0]:loc[1]],
				Tag:   tag,
				Start: loc[0],
				End:   loc[1],
			})
		}
	}
	collect(emailRE, "EMAIL")
	collect(urlRE, "URL")
	collect(moneyRE, "MONEY")
	collect(dateRE, "DATE")
	collect(phoneRE, "PHONE")
	spans = append(spans, rt.tagNames(text)...)
	return spans, nil
}

// tagNames finds capitalized word sequences and classifies them by suffix
// cues: an organization marker wins, multi-word sequences default to person,
// standalone capitalized words are left to the unmapped bucket.
func (rt *ruleTagger) tagNames(text string) []TaggedSpan {
	var spans []TaggedSpan
	for _, loc := range nameRE.FindAllStringIndex(text, -1) {
		raw := strings.TrimSuffix(text[loc[0]:loc[1]], ".")
		words := strings.Fields(raw)
		if len(words) == 0 {
			continue
		}
		// Drop leading sentence-initial function words.
		for len(words) > 0 {
			if _, lead := sentenceLeads[strings.ToLower(words[0])]; !lead {
				break
			}
			words = words[1:]
		}
		if len(words) == 0 {
			continue
		}
		phrase := strings.Join(words, " ")
		start := loc[0] + strings.Index(text[loc[0]:loc[1]], words[0])
		end := start + len(phrase)

		tag := "MISC"
		if hasOrgSuffix(words) {
			tag = "ORG"
		} else if len(words) >= 2 {
			tag = "PERSON"
		}
		spans = append(spans, TaggedSpan{
			Text:  phrase,
			Tag:   tag,
			Start: start,
			End:   end,
		})
	}
	return spans
}

func hasOrgSuffix(words []string) bool {
	for _, w := range words {
		for _, suffix := range orgSuffixes {
			if w == suffix {
				return true
			}
		}
	}
	return false
}
