package segment

import (
	"testing"

	"github.com/dnovais/cvlens/layout"
)

func toLines(texts ...string) []layout.Line {
	lines := make([]layout.Line, len(texts))
	y := float64(len(texts)+1) * 12
	for i, t := range texts {
		y -= 12
		lines[i] = layout.Line{Y: y, Text: t}
	}
	return lines
}

// ---------------------------------------------------------------------------
// Header matching tests
// ---------------------------------------------------------------------------

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		line     string
		wantType SectionType
		wantOK   bool
	}{
		{"EXPERIENCE", TypeExperience, true},
		{"Work Experience", TypeExperience, true},
		{"PROFESSIONAL EXPERIENCE:", TypeExperience, true},
		{"Employment History", TypeExperience, true},
		{"Education", TypeEducation, true},
		{"TECHNICAL SKILLS", TypeSkills, true},
		{"Skills", TypeSkills, true},
		{"Summary", TypeSummary, true},
		{"About Me", TypeSummary, true},
		{"Projects", TypeProjects, true},
		{"Certifications", TypeCertifications, true},
		{"Awards", TypeAwards, true},
		{"Contact Information", TypeContact, true},

		// Non-headers.
		{"Software Engineer at Acme Corp (2019 - 2022)", "", false},
		{"I have experience building web services", "", false},
		{"", "", false},
		{"This line is much too long to plausibly be a section header in any resume", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			typ, ok := matchHeader(tt.line)
			if ok != tt.wantOK || typ != tt.wantType {
				t.Errorf("matchHeader(%q) = (%q, %v), want (%q, %v)",
					tt.line, typ, ok, tt.wantType, tt.wantOK)
			}
		})
	}
}

func TestIsContactSignal(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"jane.doe@example.com", true},
		{"(555) 111-2222", true},
		{"linkedin.com/in/janedoe", true},
		{"https://janedoe.dev", true},
		{"Jane Doe", true},
		{"123 Main Street, Springfield", true},

		{"Built dashboards with React", false},
		{"summary of my career", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := isContactSignal(tt.line); got != tt.want {
				t.Errorf("isContactSignal(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Segmentation tests
// ---------------------------------------------------------------------------

func TestSegmentTypicalResume(t *testing.T) {
	s := New(DefaultConfig())
	lines := toLines(
		"Jane Doe",
		"jane.doe@example.com",
		"(555) 111-2222",
		"EXPERIENCE",
		"Software Engineer at Acme Corp (2019 - 2022)",
		"Built dashboards with React and TypeScript",
		"SKILLS",
		"React, JavaScript, CSS, Go",
	)

	sections := s.Segment(lines)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d: %+v", len(sections), sections)
	}

	if sections[0].Type != TypeContact {
		t.Errorf("section 0 type = %q, want contact", sections[0].Type)
	}
	if len(sections[0].Content) != 3 {
		t.Errorf("contact content = %v, want 3 lines", sections[0].Content)
	}
	if sections[0].Confidence != 0.85 {
		t.Errorf("contact confidence = %v, want 0.85", sections[0].Confidence)
	}

	if sections[1].Type != TypeExperience || sections[1].Header != "EXPERIENCE" {
		t.Errorf("section 1 = %+v, want experience with header", sections[1])
	}
	if sections[1].Confidence != 0.9 {
		t.Errorf("experience confidence = %v, want 0.9", sections[1].Confidence)
	}

	if sections[2].Type != TypeSkills {
		t.Errorf("section 2 type = %q, want skills", sections[2].Type)
	}
	if len(sections[2].Content) != 1 || sections[2].Content[0] != "React, JavaScript, CSS, Go" {
		t.Errorf("skills content = %v", sections[2].Content)
	}
}

func TestSegmentHeaderClosesContactZone(t *testing.T) {
	// A real header inside the contact zone must end the contact section even
	// though the zone is still active.
	s := New(DefaultConfig())
	lines := toLines(
		"Jane Doe",
		"jane.doe@example.com",
		"SUMMARY",
		"Seasoned engineer with a decade of backend work.",
	)

	sections := s.Segment(lines)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(sections), sections)
	}
	if sections[0].Type != TypeContact {
		t.Errorf("section 0 type = %q, want contact", sections[0].Type)
	}
	if sections[1].Type != TypeSummary {
		t.Errorf("section 1 type = %q, want summary", sections[1].Type)
	}
	if len(sections[1].Content) != 1 {
		t.Errorf("summary content = %v", sections[1].Content)
	}
}

func TestSegmentFallbackHeaderSection(t *testing.T) {
	// Leading prose with no header and no contact shape opens a fallback
	// header section at reduced confidence.
	s := New(DefaultConfig())
	lines := toLines(
		"experienced developer and open source contributor",
		"focused on distributed systems",
	)

	sections := s.Segment(lines)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(sections), sections)
	}
	if sections[0].Type != TypeHeader {
		t.Errorf("type = %q, want header fallback", sections[0].Type)
	}
	if sections[0].Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", sections[0].Confidence)
	}
	if len(sections[0].Content) != 2 {
		t.Errorf("content = %v, want both lines", sections[0].Content)
	}
}

func TestSegmentPreservesLineOrder(t *testing.T) {
	s := New(DefaultConfig())
	lines := toLines(
		"EXPERIENCE",
		"first entry line",
		"second entry line",
		"third entry line",
	)

	sections := s.Segment(lines)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	want := []string{"first entry line", "second entry line", "third entry line"}
	got := sections[0].Content
	if len(got) != len(want) {
		t.Fatalf("content = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("content order = %v, want %v", got, want)
		}
	}
}

func TestSegmentDropsShortContentLines(t *testing.T) {
	s := New(Config{ContactZoneLines: 0, MinContentLength: 3})
	lines := toLines(
		"SKILLS",
		"ab", // at or below the minimum, dropped
		"Kubernetes",
	)

	sections := s.Segment(lines)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if len(sections[0].Content) != 1 || sections[0].Content[0] != "Kubernetes" {
		t.Errorf("content = %v, want only %q", sections[0].Content, "Kubernetes")
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	s := New(DefaultConfig())
	if sections := s.Segment(nil); len(sections) != 0 {
		t.Errorf("expected no sections for empty input, got %+v", sections)
	}
}

// ---------------------------------------------------------------------------
// Helper tests
// ---------------------------------------------------------------------------

func TestFindAndContent(t *testing.T) {
	sections := []Section{
		{Type: TypeExperience, Content: []string{"job one"}},
		{Type: TypeSkills, Content: []string{"Go, Rust"}},
		{Type: TypeExperience, Content: []string{"job two"}},
	}

	if sec := Find(sections, TypeSkills); sec == nil || sec.Content[0] != "Go, Rust" {
		t.Errorf("Find(skills) = %+v", sec)
	}
	if sec := Find(sections, TypeAwards); sec != nil {
		t.Errorf("Find(awards) = %+v, want nil", sec)
	}

	content := Content(sections, TypeExperience)
	if len(content) != 2 || content[0] != "job one" || content[1] != "job two" {
		t.Errorf("Content(experience) = %v", content)
	}
}
