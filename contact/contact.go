// Package contact recovers the contact block of a resume: name, email,
// phone, and profile links. Every field is best-effort; absence is a valid
// outcome, never an error.
package contact

import (
	"log/slog"
	"regexp"
	"strings"
)

// Contact holds the extracted contact fields. Empty string means absent.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// NameFinder returns candidate person names found in a text span. It is the
// only non-pure dependency of this package; failures never propagate past
// extraction.
type NameFinder interface {
	PersonNames(text string) ([]string, error)
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Optional country/trunk prefix followed by ten digits with arbitrary
	// space/dash/paren separators. Only the ten-digit subscriber number is
	// kept; the prefix is discarded during normalization.
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[\s().-]*)?(\d[\s().-]*){10}`)

	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/([A-Za-z0-9_-]+)`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9_-]+)`)
	websiteRe  = regexp.MustCompile(`https?://[^\s)>,;]+`)

	nonDigits = regexp.MustCompile(`\D`)

	// Fallback name heuristic: a short line of capitalized words with no
	// digits or separators, near the top of the document.
	nameLineRe = regexp.MustCompile(`^[A-Z][A-Za-z'.-]+( [A-Z][A-Za-z'.-]+){1,3}$`)
)

// Extractor runs the pattern and NER strategies over contact-bearing text.
type Extractor struct {
	namer NameFinder
}

func NewExtractor(namer NameFinder) *Extractor {
	return &Extractor{namer: namer}
}

// Extract combines the given text sources (contact/header section content
// plus the leading document lines) and recovers whatever fields it can.
func (e *Extractor) Extract(sources ...string) Contact {
	text := strings.Join(sources, "\n")

	var c Contact
	c.Email = emailRe.FindString(text)
	c.Phone = extractPhone(text)

	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		c.LinkedIn = "https://linkedin.com/in/" + m[1]
	}
	if m := githubRe.FindStringSubmatch(text); m != nil {
		c.GitHub = "https://github.com/" + m[1]
	}
	c.Website = extractWebsite(text, c)
	c.Name = e.extractName(text)
	return c
}

// extractPhone finds the first phone-shaped run and normalizes it to the
// ten-digit subscriber number, dropping any country or trunk prefix.
func extractPhone(text string) string {
	for _, match := range phoneRe.FindAllString(text, -1) {
		digits := nonDigits.ReplaceAllString(match, "")
		if len(digits) < 10 {
			continue
		}
		return digits[len(digits)-10:]
	}
	return ""
}

// extractWebsite returns the first bare URL not already claimed by a
// profile-link field.
func extractWebsite(text string, c Contact) string {
	for _, url := range websiteRe.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return strings.TrimRight(url, ".")
	}
	return ""
}

// extractName asks the NER finder first and falls back to a capitalized
// phrase heuristic over the leading lines. A finder failure leaves the name
// unset.
func (e *Extractor) extractName(text string) string {
	if e.namer != nil {
		if name := e.nerName(text); name != "" {
			return name
		}
	}

	for i, line := range strings.Split(text, "\n") {
		if i >= 5 {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || strings.ContainsAny(line, "0123456789/:") {
			continue
		}
		if nameLineRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// nerName runs the external person-name extractor, degrading to empty on any
// failure or panic.
func (e *Extractor) nerName(text string) (name string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("name extraction panicked", "panic", r)
			name = ""
		}
	}()

	names, err := e.namer.PersonNames(text)
	if err != nil {
		slog.Warn("name extraction failed", "error", err)
		return ""
	}
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
