// Package segment partitions ordered resume lines into typed sections.
package segment

import (
	"github.com/dnovais/cvlens/layout"
)

// SectionType identifies the kind of resume section. The set is closed.
type SectionType string

const (
	TypeContact        SectionType = "contact"
	TypeHeader         SectionType = "header"
	TypeSummary        SectionType = "summary"
	TypeExperience     SectionType = "experience"
	TypeEducation      SectionType = "education"
	TypeSkills         SectionType = "skills"
	TypeProjects       SectionType = "projects"
	TypeCertifications SectionType = "certifications"
	TypeAwards         SectionType = "awards"
)

// Section is a contiguous typed region of the document.
type Section struct {
	Type       SectionType `json:"type"`
	Header     string      `json:"header,omitempty"`
	Content    []string    `json:"content"`
	Confidence float64     `json:"confidence"`
}

// Confidence assigned per section origin.
const (
	headerConfidence   = 0.9
	contactConfidence  = 0.85
	fallbackConfidence = 0.7
)

// Config controls segmentation heuristics.
type Config struct {
	// ContactZoneLines is the size of the top-of-document zone scanned for
	// contact signals.
	ContactZoneLines int

	// MinContentLength is the minimum line length appended as content to an
	// open section.
	MinContentLength int
}

func DefaultConfig() Config {
	return Config{ContactZoneLines: 8, MinContentLength: 3}
}

// Segmenter walks ordered lines and produces typed sections.
type Segmenter struct {
	cfg Config
}

func New(cfg Config) *Segmenter {
	if cfg.ContactZoneLines == 0 && cfg.MinContentLength == 0 {
		cfg = DefaultConfig()
	}
	return &Segmenter{cfg: cfg}
}

// state is the single-open-section accumulator threaded through the scan.
// Exactly one section is open at a time; closing pushes it to out.
type state struct {
	open   *Section
	out    []Section
	opened bool // whether any section has ever been opened
}

func (st *state) close() {
	if st.open == nil {
		return
	}
	if len(st.open.Content) > 0 || st.open.Header != "" {
		st.out = append(st.out, *st.open)
	}
	st.open = nil
}

func (st *state) openSection(s Section) {
	st.close()
	st.open = &s
	st.opened = true
}

func (st *state) appendLine(text string) {
	st.open.Content = append(st.open.Content, text)
}

// Segment partitions the document's ordered lines into sections, preserving
// line order. Inside the top-of-document zone, contact-shaped lines open (or
// extend) a contact section; a real header line always closes the current
// section, including an open contact one.
func (s *Segmenter) Segment(lines []layout.Line) []Section {
	st := &state{}

	for i, line := range lines {
		text := line.Text

		typ, isHeader := matchHeader(text)

		if i < s.cfg.ContactZoneLines && !isHeader && isContactSignal(text) {
			if st.open == nil || st.open.Type != TypeContact {
				st.openSection(Section{Type: TypeContact, Confidence: contactConfidence})
			}
			st.appendLine(text)
			continue
		}

		if isHeader {
			st.openSection(Section{Type: typ, Header: text, Confidence: headerConfidence})
			continue
		}

		if st.open != nil && len(text) > s.cfg.MinContentLength {
			st.appendLine(text)
			continue
		}

		if !st.opened {
			st.openSection(Section{Type: TypeHeader, Confidence: fallbackConfidence})
			st.appendLine(text)
		}
	}

	st.close()
	return st.out
}

// Find returns the first section of the given type, or nil.
func Find(sections []Section, typ SectionType) *Section {
	for i := range sections {
		if sections[i].Type == typ {
			return &sections[i]
		}
	}
	return nil
}

// Content returns the concatenated content lines of all sections of the
// given types, in document order.
func Content(sections []Section, types ...SectionType) []string {
	want := make(map[SectionType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var content []string
	for _, sec := range sections {
		if want[sec.Type] {
			content = append(content, sec.Content...)
		}
	}
	return content
}
