package parlance

import (
	"testing"
)

func testEntityExtractor(threshold float64) *entityExtractor {
	return &entityExtractor{tagger: &ruleTagger{}, threshold: threshold}
}

func findEntity(entities []NamedEntity, entityType EntityType) *NamedEntity {
	for i := range entities {
		if entities[i].Type == entityType {
			return &entities[i]
		}
	}
	return nil
}

func TestExtractStructuredEntities(t *testing.T) {
	tests := []struct {
		text     string
		expected EntityType
		match    string
		desc     string
	}{
		{"Contact us at support@example.com for help.", EntityEmail, "support@example.com", "Email address"},
		{"Read more at https://example.com/docs today.", EntityURL, "https://example.com/docs", "URL"},
		{"The invoice totals $1,299.99 this month.", EntityMoney, "$1,299.99", "Money amount"},
		{"The launch happened on 2024-03-15 as planned.", EntityDate, "2024-03-15", "ISO date"},
		{"They met on January 5, 2023 in person.", EntityDate, "January 5, 2023", "Written date"},
	}

	ex := testEntityExtractor(0.5)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			entities, err := ex.extract(tt.text, English)
			if err != nil {
				t.Fatalf("extract failed: %v", err)
			}
			found := findEntity(entities, tt.expected)
			if found == nil {
				t.Fatalf("no %s entity in %v", tt.expected, entities)
			}
			if found.Text != tt.match {
				t.Errorf("entity text = %q, want %q", found.Text, tt.match)
			}
			if tt.text[found.Start:found.End] != found.Text {
				t.Errorf("span [%d,%d) does not cover %q", found.Start, found.End, found.Text)
			}
		})
	}
}

func TestExtractNames(t *testing.T) {
	ex := testEntityExtractor(0.5)

	entities, err := ex.extract("He met John Smith at the office of Acme Corp.", English)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	person := findEntity(entities, EntityPerson)
	if person == nil || person.Text != "John Smith" {
		t.Errorf("person = %+v, want John Smith", person)
	}
	org := findEntity(entities, EntityOrganization)
	if org == nil || org.Text != "Acme Corp" {
		t.Errorf("organization = %+v, want Acme Corp", org)
	}
}

func TestExtractOrderedByPosition(t *testing.T) {
	ex := testEntityExtractor(0.5)

	entities, err := ex.extract(
		"Email bob@example.com or visit https://example.org before 2024-01-01.", English)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	for i := 1; i < len(entities); i++ {
		if entities[i].Start < entities[i-1].Start {
			t.Fatalf("entities not in text order: %v", entities)
		}
	}
}

func TestExtractThresholdFilters(t *testing.T) {
	ex := testEntityExtractor(0.9)

	entities, err := ex.extract("Contact support@example.com now.", English)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(entities) != 0 {
		t.Errorf("threshold above the assigned confidence let %v through", entities)
	}
}

func TestExtractNoEntities(t *testing.T) {
	ex := testEntityExtractor(0.5)

	entities, err := ex.extract("nothing interesting lives in this lowercase text", English)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(entities) != 0 {
		t.Errorf("expected no entities, got %v", entities)
	}
}
