package skill

import (
	"fmt"
	"sort"
	"strings"
)

// RankedSkill is one entry of the top-skill ranking.
type RankedSkill struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Score    float64 `json:"score"` // confidence × matches
}

// Analysis is the document-level skill aggregate.
type Analysis struct {
	TotalSkills     int            `json:"total_skills"`
	HighConfidence  int            `json:"high_confidence"` // confidence > 0.7
	ExpertLevel     int            `json:"expert_level"`
	ByCategory      map[string]int `json:"by_category"`
	TopSkills       []RankedSkill  `json:"top_skills,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
}

// Aggregate thresholds and caps.
const (
	highConfidenceFloor = 0.7
	maxTopSkills        = 10
	maxRecommendations  = 5
)

// Analyze summarizes detected skills: totals, per-category counts, a ranking
// by confidence × matches, and stack-completion recommendations.
func Analyze(skills map[string][]Record) Analysis {
	a := Analysis{ByCategory: make(map[string]int)}

	var ranked []RankedSkill
	present := make(map[string]bool)

	for category, recs := range skills {
		a.ByCategory[category] = len(recs)
		for _, r := range recs {
			a.TotalSkills++
			if r.Confidence > highConfidenceFloor {
				a.HighConfidence++
			}
			if r.Level == LevelExpert {
				a.ExpertLevel++
			}
			present[r.Name] = true
			ranked = append(ranked, RankedSkill{
				Name:     r.Name,
				Category: category,
				Score:    r.Confidence * float64(r.Matches),
			})
		}
	}

	// Name is the tiebreak so the ranking is deterministic.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > maxTopSkills {
		ranked = ranked[:maxTopSkills]
	}
	a.TopSkills = ranked

	a.Recommendations = stackRecommendations(present)
	return a
}

// stackRecommendations suggests completing predefined technology bundles
// where most members are present but some are missing.
func stackRecommendations(present map[string]bool) []string {
	var recs []string
	for _, b := range stackBundles {
		var missing []string
		have := 0
		for _, m := range b.members {
			if present[m] {
				have++
			} else {
				missing = append(missing, m)
			}
		}
		if have >= 2 && len(missing) > 0 {
			recs = append(recs, fmt.Sprintf("Complete your %s: add %s",
				b.name, strings.Join(missing, ", ")))
		}
		if len(recs) >= maxRecommendations {
			break
		}
	}
	return recs
}
