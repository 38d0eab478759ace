package segment

import (
	"regexp"
	"strings"
)

// Section header patterns, tested against normalized (lowercased,
// punctuation-stripped) line text. Order matters: the first match wins.
var headerPatterns = []struct {
	typ SectionType
	re  *regexp.Regexp
}{
	{TypeContact, regexp.MustCompile(`^(contact|personal)( (info|information|details))?$|^contact me$`)},
	{TypeSummary, regexp.MustCompile(`^((professional|career|executive) )?(summary|objective|profile)$|^about( me)?$`)},
	{TypeExperience, regexp.MustCompile(`^((work|professional|relevant) )?(experience|history)$|^employment( history)?$|^career history$`)},
	{TypeEducation, regexp.MustCompile(`^education(al)?( background)?$|^academic (background|history)$|^qualifications$|^degrees$`)},
	{TypeSkills, regexp.MustCompile(`^((technical|core|key) )?skills$|^competencies$|^technologies$|^expertise$|^tech(nical)? stack$`)},
	{TypeProjects, regexp.MustCompile(`^((personal|selected|key|side) )?projects$|^portfolio$`)},
	{TypeCertifications, regexp.MustCompile(`^certifications?$|^certificates$|^licenses( and certifications)?$`)},
	{TypeAwards, regexp.MustCompile(`^awards$|^honors$|^achievements$|^accomplishments$|^recognition$`)},
}

// Contact indicator patterns for the top-of-document zone.
var (
	emailIndicator   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneIndicator   = regexp.MustCompile(`(\+?\d{1,3}[\s().-]*)?(\d[\s().-]*){10}`)
	profileIndicator = regexp.MustCompile(`(?i)(linkedin\.com|github\.com)/`)
	urlIndicator     = regexp.MustCompile(`https?://\S+`)
	addressIndicator = regexp.MustCompile(`(?i)\d+\s+\w+.*\b(street|st|avenue|ave|road|rd|drive|dr|lane|ln|blvd|boulevard|suite|apt)\b`)

	// A short capitalized phrase near the top of the page is most likely the
	// candidate's name.
	nameIndicator = regexp.MustCompile(`^[A-Z][A-Za-z'.-]+( [A-Z][A-Za-z'.-]+){1,2}$`)

	contactWordIndicator = regexp.MustCompile(`(?i)^(contact|personal)\b.*(info|details)?`)

	nonHeaderChars = regexp.MustCompile(`[^a-z0-9\s]`)
	spaceRuns      = regexp.MustCompile(`\s+`)
)

// isContactSignal reports whether a top-zone line carries a contact field or
// looks like the candidate's name.
func isContactSignal(text string) bool {
	switch {
	case emailIndicator.MatchString(text):
		return true
	case phoneIndicator.MatchString(text):
		return true
	case profileIndicator.MatchString(text):
		return true
	case urlIndicator.MatchString(text):
		return true
	case addressIndicator.MatchString(text):
		return true
	case nameIndicator.MatchString(text):
		return true
	case contactWordIndicator.MatchString(text) && len(text) < 40:
		return true
	}
	return false
}

// matchHeader tests a line against the section header table after
// normalization. Long lines are never headers.
func matchHeader(text string) (SectionType, bool) {
	if len(text) > 60 {
		return "", false
	}
	norm := normalizeHeader(text)
	if norm == "" {
		return "", false
	}
	for _, hp := range headerPatterns {
		if hp.re.MatchString(norm) {
			return hp.typ, true
		}
	}
	return "", false
}

func normalizeHeader(text string) string {
	norm := strings.ToLower(text)
	norm = nonHeaderChars.ReplaceAllString(norm, "")
	norm = spaceRuns.ReplaceAllString(norm, " ")
	return strings.TrimSpace(norm)
}
