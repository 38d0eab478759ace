// Package history extracts structured work and education entries from the
// corresponding resume sections. Extraction is best-effort: unparseable
// lines degrade to partially filled entries rather than errors.
package history

import (
	"regexp"
	"strings"
)

// Experience is one work-history entry.
type Experience struct {
	Role      string   `json:"role,omitempty"`
	Company   string   `json:"company,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
}

// Education is one education entry.
type Education struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

var (
	dateRe = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s,.]*\d{4}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}\s*[-–—]\s*(\d{4}|present|current)|\b(19|20)\d{2}\b|present|current`)

	bulletPrefixRe = regexp.MustCompile(`^[\s]*[•\-*▪◦‣]\s*`)
	spaceRunsRe    = regexp.MustCompile(`\s+`)
	parenRe        = regexp.MustCompile(`[()]`)
)

var roleSeparators = []string{" at ", " @ ", " | ", " – ", " — ", " - ", ", "}

var degreeKeywords = []string{
	"bachelor", "master", "phd", "ph.d", "doctorate", "associate", "diploma",
	"b.s.", "b.a.", "bsc", "ba ", "bs ", "m.s.", "m.a.", "msc", "mba", "b.tech", "m.tech",
}

// Experiences parses the experience section content into entries. A line
// that looks like a job header (role/company separators or date patterns)
// starts a new entry; following lines become its bullets.
func Experiences(content []string) []Experience {
	var entries []Experience
	var cur *Experience

	for _, line := range content {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if looksLikeJobHeader(line) {
			if cur != nil {
				entries = append(entries, *cur)
			}
			entry := parseJobHeader(line)
			cur = &entry
			continue
		}

		if cur != nil {
			cur.Bullets = append(cur.Bullets, bulletPrefixRe.ReplaceAllString(line, ""))
		}
	}

	if cur != nil {
		entries = append(entries, *cur)
	}
	return entries
}

// looksLikeJobHeader reports whether a line reads like "Role at Company" or
// carries a date range.
func looksLikeJobHeader(line string) bool {
	if bulletPrefixRe.MatchString(line) {
		return false
	}
	for _, sep := range roleSeparators {
		if strings.Contains(line, sep) {
			return true
		}
	}
	if dateRe.MatchString(line) {
		return true
	}
	// Short title-like line.
	return len(strings.Fields(line)) <= 6 && len(line) > 10
}

func parseJobHeader(line string) Experience {
	var exp Experience
	line, exp.StartDate, exp.EndDate = stripDates(line)

	for _, sep := range roleSeparators {
		if idx := strings.Index(line, sep); idx > 0 {
			exp.Role = strings.TrimSpace(line[:idx])
			exp.Company = strings.TrimSpace(line[idx+len(sep):])
			return exp
		}
	}
	exp.Role = strings.TrimSpace(line)
	return exp
}

// Educations parses the education section content into entries. Degree
// keywords or date patterns start a new entry; an adjacent plain line fills
// in the school name.
func Educations(content []string) []Education {
	var entries []Education
	var cur *Education

	for _, line := range content {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if hasDegreeKeyword(line) || dateRe.MatchString(line) {
			if cur != nil {
				entries = append(entries, *cur)
			}
			entry := parseEducationLine(line)
			cur = &entry
			continue
		}

		if cur != nil && cur.School == "" {
			cur.School = line
		}
	}

	if cur != nil {
		entries = append(entries, *cur)
	}
	return entries
}

func hasDegreeKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func parseEducationLine(line string) Education {
	var edu Education
	line, edu.StartDate, edu.EndDate = stripDates(line)

	parts := strings.SplitN(line, ",", 2)
	if len(parts) == 2 {
		edu.Degree = strings.TrimSpace(parts[0])
		edu.Field = strings.TrimSpace(parts[1])
		return edu
	}

	// "Degree in Field" without a comma separator.
	if idx := strings.Index(strings.ToLower(line), " in "); idx > 0 {
		edu.Degree = strings.TrimSpace(line[:idx])
		edu.Field = strings.TrimSpace(line[idx+4:])
		return edu
	}

	edu.Degree = strings.TrimSpace(line)
	return edu
}

// stripDates removes date patterns from a line and returns the cleaned line
// plus start/end dates. A single date with present/current language becomes
// the end date.
func stripDates(line string) (cleaned, start, end string) {
	dates := dateRe.FindAllString(line, -1)
	for _, d := range dates {
		line = strings.Replace(line, d, "", 1)
	}

	switch {
	case len(dates) >= 2:
		start, end = dates[0], dates[len(dates)-1]
	case len(dates) == 1:
		d := strings.ToLower(dates[0])
		switch {
		case strings.Contains(d, "present") || strings.Contains(d, "current"):
			end = "Present"
			if i := strings.IndexAny(d, "–—-"); i > 0 {
				start = strings.TrimSpace(dates[0][:i])
			}
		default:
			if i := strings.IndexAny(d, "–—-"); i > 0 && len(d) > i+1 {
				// A captured range like "2019-2022" arrives as one match.
				start = strings.TrimSpace(dates[0][:i])
				end = strings.TrimSpace(dates[0][i+1:])
			} else {
				start = dates[0]
			}
		}
	}

	cleaned = parenRe.ReplaceAllString(line, " ")
	cleaned = strings.Trim(cleaned, " ,;-–—")
	cleaned = spaceRunsRe.ReplaceAllString(cleaned, " ")
	return cleaned, start, end
}
