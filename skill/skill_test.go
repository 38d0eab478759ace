package skill

import (
	"math"
	"strings"
	"testing"
)

func newTestExtractor() *Extractor {
	return NewExtractor(DefaultConfig(), DefaultDictionary())
}

func findRecord(skills map[string][]Record, category, name string) (Record, bool) {
	for _, r := range skills[category] {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

func closeTo(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// ---------------------------------------------------------------------------
// Detection tests
// ---------------------------------------------------------------------------

func TestExtractVariants(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category string
		skill    string
	}{
		{"canonical", "Wrote services in Go", CategoryLanguages, "Go"},
		{"alias", "Five years of golang development", CategoryLanguages, "Go"},
		{"symbol edges", "Performance work in C/C++", CategoryLanguages, "C++"},
		{"leading dot", "Maintains a .NET service", CategoryFrameworks, ".NET"},
		{"slash variant", "Owns the CI/CD pipelines", CategoryTools, "CI/CD"},
		{"multiword", "Deployed on amazon web services", CategoryCloud, "AWS"},
		{"case insensitive", "REACT and REDUX experience", CategoryFrameworks, "React"},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := e.Extract(tt.text)
			if _, ok := findRecord(skills, tt.category, tt.skill); !ok {
				t.Errorf("Extract(%q) did not detect %s/%s: %v",
					tt.text, tt.category, tt.skill, skills)
			}
		})
	}
}

func TestExtractWholeWordOnly(t *testing.T) {
	// Substrings inside larger words must not match.
	tests := []struct {
		text     string
		category string
		skill    string
	}{
		{"cargo shipping and outgoing mail", CategoryLanguages, "Go"},
		{"djangonaut community member", CategoryFrameworks, "Django"},
		{"arrested development", CategoryTools, "REST"},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			skills := e.Extract(tt.text)
			if _, ok := findRecord(skills, tt.category, tt.skill); ok {
				t.Errorf("Extract(%q) falsely detected %s", tt.text, tt.skill)
			}
		})
	}
}

func TestExtractCountsMatchesAcrossVariants(t *testing.T) {
	e := newTestExtractor()
	skills := e.Extract("Go services. More golang tooling. Go everywhere.")

	rec, ok := findRecord(skills, CategoryLanguages, "Go")
	if !ok {
		t.Fatal("Go not detected")
	}
	if rec.Matches != 3 {
		t.Errorf("Matches = %d, want 3", rec.Matches)
	}
	if len(rec.Contexts) != 3 {
		t.Errorf("Contexts kept = %d, want 3", len(rec.Contexts))
	}
}

func TestExtractCapsStoredContexts(t *testing.T) {
	e := newTestExtractor()
	text := strings.Repeat("Using Go daily. ", 10)
	skills := e.Extract(text)

	rec, ok := findRecord(skills, CategoryLanguages, "Go")
	if !ok {
		t.Fatal("Go not detected")
	}
	if rec.Matches != 10 {
		t.Errorf("Matches = %d, want 10", rec.Matches)
	}
	if len(rec.Contexts) != 3 {
		t.Errorf("Contexts kept = %d, want capped at 3", len(rec.Contexts))
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := newTestExtractor()
	if skills := e.Extract("   \n  "); len(skills) != 0 {
		t.Errorf("expected no skills for blank text, got %v", skills)
	}
}

func TestExtractRecordsSortedByName(t *testing.T) {
	e := newTestExtractor()
	skills := e.Extract("TypeScript, Python, Go, Java, Rust")

	recs := skills[CategoryLanguages]
	if len(recs) < 5 {
		t.Fatalf("expected at least 5 language records, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Name > recs[i].Name {
			t.Fatalf("records not sorted by name: %q before %q", recs[i-1].Name, recs[i].Name)
		}
	}
}

// ---------------------------------------------------------------------------
// Confidence scoring tests
// ---------------------------------------------------------------------------

func TestConfidenceScoring(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"neutral mention", "The stack includes Go.", 0.5},
		{"positive phrase", "Proficient in Go and distributed systems.", 0.7},
		{"negative phrase", "I am not familiar with Go.", 0.2},
		{"strong positive capped", "Expert in Go with years of experience, proficient in Go, built with Go.", 1.0},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := e.Extract(tt.text)
			rec, ok := findRecord(skills, CategoryLanguages, "Go")
			if !ok {
				t.Fatalf("Go not detected in %q", tt.text)
			}
			if !closeTo(rec.Confidence, tt.want) {
				t.Errorf("Confidence = %v, want %v", rec.Confidence, tt.want)
			}
		})
	}
}

func TestConfidenceClampedAtFloor(t *testing.T) {
	e := newTestExtractor()
	skills := e.Extract("not familiar with Go and no experience in Go at all")

	rec, ok := findRecord(skills, CategoryLanguages, "Go")
	if !ok {
		t.Fatal("Go not detected")
	}
	if !closeTo(rec.Confidence, 0.1) {
		t.Errorf("Confidence = %v, want floor 0.1", rec.Confidence)
	}
}

func TestNegativeContextNeverReadsAsProficiency(t *testing.T) {
	e := newTestExtractor()
	skills := e.Extract("I am not familiar with Go.")

	rec, ok := findRecord(skills, CategoryLanguages, "Go")
	if !ok {
		t.Fatal("Go not detected")
	}
	if rec.Level == LevelExpert || rec.Level == LevelProficient {
		t.Errorf("Level = %q for a hedged mention, want beginner or intermediate", rec.Level)
	}
	if rec.Level != LevelBeginner {
		t.Errorf("Level = %q, want beginner from 'familiar'", rec.Level)
	}
}

// ---------------------------------------------------------------------------
// Level inference tests
// ---------------------------------------------------------------------------

func TestInferLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Level
	}{
		{"expert language", "Expert in Kubernetes cluster operations", LevelExpert},
		{"seniority title", "Lead engineer owning the Kubernetes platform", LevelExpert},
		{"proficient language", "Experienced with Kubernetes", LevelProficient},
		{"beginner language", "Basic Kubernetes knowledge", LevelBeginner},
		{"plain mention", "Deployed to Kubernetes", LevelIntermediate},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := e.Extract(tt.text)
			rec, ok := findRecord(skills, CategoryCloud, "Kubernetes")
			if !ok {
				t.Fatalf("Kubernetes not detected in %q", tt.text)
			}
			if rec.Level != tt.want {
				t.Errorf("Level = %q, want %q", rec.Level, tt.want)
			}
		})
	}
}
