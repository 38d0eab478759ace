package cvlens

import (
	"github.com/dnovais/cvlens/contact"
	"github.com/dnovais/cvlens/history"
	"github.com/dnovais/cvlens/quality"
	"github.com/dnovais/cvlens/segment"
	"github.com/dnovais/cvlens/skill"
)

// ParsedDocument is the complete analysis of one resume. It is assembled
// once per input file and never mutated afterwards; the JSON field names are
// the stable contract consumed by storage and UI code.
type ParsedDocument struct {
	Contact          contact.Contact           `json:"contact"`
	Skills           map[string][]skill.Record `json:"skills"`
	Experience       []history.Experience      `json:"experience"`
	Education        []history.Education       `json:"education"`
	Sections         []segment.Section         `json:"sections"`
	SkillAnalysis    skill.Analysis            `json:"skill_analysis"`
	QualityMetrics   quality.Metrics           `json:"quality_metrics"`
	KeywordDensity   map[string]int            `json:"keyword_density"`
	ReadabilityScore float64                   `json:"readability_score"`
	PageCount        int                       `json:"page_count"`
	SectionCount     int                       `json:"section_count"`
	CharacterCount   int                       `json:"character_count"`
	Confidence       float64                   `json:"confidence"`
}

// DocumentInfo summarizes a stored analysis without the full result payload.
type DocumentInfo struct {
	ID           int64   `json:"id"`
	Filename     string  `json:"filename"`
	ContentHash  string  `json:"content_hash"`
	PageCount    int     `json:"page_count"`
	OverallScore int     `json:"overall_score"`
	Confidence   float64 `json:"confidence"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
