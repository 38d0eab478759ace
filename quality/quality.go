// Package quality computes the composite document-quality score. Everything
// here is a pure function of already-extracted data, so it is directly unit
// testable without any PDF input.
package quality

import (
	"fmt"
	"math"
	"strings"

	"github.com/dnovais/cvlens/contact"
	"github.com/dnovais/cvlens/segment"
	"github.com/dnovais/cvlens/skill"
)

// Weights controls the contribution of each sub-metric to the overall score
// and the normalization targets for the ratio metrics. The defaults are the
// production values; they are fields rather than constants so they can be
// tuned without touching the scoring algorithm.
type Weights struct {
	Sections float64 `json:"sections" yaml:"sections"`
	Contact  float64 `json:"contact" yaml:"contact"`
	Skills   float64 `json:"skills" yaml:"skills"`
	Depth    float64 `json:"depth" yaml:"depth"`

	// SkillTarget is the skill count granting full diversity credit.
	SkillTarget int `json:"skill_target" yaml:"skill_target"`

	// DepthTarget is the content character count granting full depth credit.
	DepthTarget int `json:"depth_target" yaml:"depth_target"`
}

func DefaultWeights() Weights {
	return Weights{
		Sections:    0.35,
		Contact:     0.15,
		Skills:      0.25,
		Depth:       0.25,
		SkillTarget: 15,
		DepthTarget: 2000,
	}
}

// Metrics is the quality report for one document.
type Metrics struct {
	OverallScore        int      `json:"overall_score"`
	OverallConfidence   float64  `json:"overall_confidence"`
	SectionCompleteness int      `json:"section_completeness"`
	ContactCompleteness int      `json:"contact_completeness"`
	SkillDiversity      int      `json:"skill_diversity"`
	ContentDepth        int      `json:"content_depth"`
	Recommendations     []string `json:"recommendations,omitempty"`
}

// Recommendation thresholds on the 0-100 sub-metrics.
const (
	sectionAdviceBelow = 75
	contactAdviceBelow = 80
	skillAdviceBelow   = 70
	depthAdviceBelow   = 60
)

// coreSections are the section types counted toward completeness.
var coreSections = []segment.SectionType{
	segment.TypeContact,
	segment.TypeExperience,
	segment.TypeSkills,
	segment.TypeEducation,
}

// Score computes the quality metrics from segmented sections, detected
// skills, and the contact block. It is deterministic and side-effect free.
func Score(sections []segment.Section, skills map[string][]skill.Record, c contact.Contact, w Weights) Metrics {
	m := Metrics{
		SectionCompleteness: sectionCompleteness(sections),
		ContactCompleteness: contactCompleteness(c),
		SkillDiversity:      skillDiversity(skills, w.SkillTarget),
		ContentDepth:        contentDepth(sections, w.DepthTarget),
	}

	weighted := w.Sections*float64(m.SectionCompleteness) +
		w.Contact*float64(m.ContactCompleteness) +
		w.Skills*float64(m.SkillDiversity) +
		w.Depth*float64(m.ContentDepth)
	m.OverallScore = int(math.Round(weighted))

	m.OverallConfidence = overallConfidence(m.OverallScore, sections)
	m.Recommendations = recommendations(m, c)
	return m
}

func sectionCompleteness(sections []segment.Section) int {
	found := 0
	for _, typ := range coreSections {
		if segment.Find(sections, typ) != nil {
			found++
		}
	}
	return found * 100 / len(coreSections)
}

func contactCompleteness(c contact.Contact) int {
	found := 0
	for _, f := range []string{c.Name, c.Email, c.Phone} {
		if f != "" {
			found++
		}
	}
	return found * 100 / 3
}

func skillDiversity(skills map[string][]skill.Record, target int) int {
	if target <= 0 {
		target = DefaultWeights().SkillTarget
	}
	total := 0
	for _, recs := range skills {
		total += len(recs)
	}
	ratio := float64(total) / float64(target)
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

func contentDepth(sections []segment.Section, target int) int {
	if target <= 0 {
		target = DefaultWeights().DepthTarget
	}
	chars := 0
	for _, sec := range sections {
		for _, line := range sec.Content {
			chars += len(line)
		}
	}
	ratio := float64(chars) / float64(target)
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

// overallConfidence blends the score ratio with the mean section confidence,
// so sparse or heuristically segmented documents read as less trustworthy.
func overallConfidence(score int, sections []segment.Section) float64 {
	if len(sections) == 0 {
		return float64(score) / 200
	}
	var sum float64
	for _, sec := range sections {
		sum += sec.Confidence
	}
	mean := sum / float64(len(sections))
	return math.Round((float64(score)/100+mean)/2*100) / 100
}

// recommendations emits fixed advisory strings for each threshold breach, in
// a stable order. Missing contact fields are named explicitly.
func recommendations(m Metrics, c contact.Contact) []string {
	var recs []string

	if m.SectionCompleteness < sectionAdviceBelow {
		recs = append(recs, "Add more core sections: a complete resume includes contact details, experience, skills, and education.")
	}
	if m.ContactCompleteness < contactAdviceBelow {
		var missing []string
		if c.Name == "" {
			missing = append(missing, "name")
		}
		if c.Email == "" {
			missing = append(missing, "email")
		}
		if c.Phone == "" {
			missing = append(missing, "phone")
		}
		recs = append(recs, fmt.Sprintf("Add missing contact information: %s.", strings.Join(missing, ", ")))
	}
	if m.SkillDiversity < skillAdviceBelow {
		recs = append(recs, "List more skills across categories to show breadth.")
	}
	if m.ContentDepth < depthAdviceBelow {
		recs = append(recs, "Expand section content with more detail about your work and achievements.")
	}
	return recs
}
