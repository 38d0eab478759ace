// Package skill detects categorized skills in resume text and scores how
// confidently each mention reads as an affirmative claim of proficiency.
package skill

import (
	"regexp"
	"sort"
	"strings"
)

// Level is the proficiency level inferred from mention contexts.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelProficient   Level = "proficient"
	LevelExpert       Level = "expert"
)

// Record is one detected skill within a document.
type Record struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Matches    int      `json:"matches"`
	Contexts   []string `json:"contexts,omitempty"`
	Confidence float64  `json:"confidence"`
	Level      Level    `json:"level"`
}

// Config controls context extraction and confidence scoring.
type Config struct {
	ContextRadius   int     // characters kept on each side of a mention
	MaxContexts     int     // stored context windows per skill
	BaseConfidence  float64 // starting confidence per skill
	PositiveBoost   float64 // added per positive phrase per context
	NegativePenalty float64 // subtracted per negative phrase per context
	MinConfidence   float64 // clamp floor
	MaxConfidence   float64 // clamp ceiling
}

func DefaultConfig() Config {
	return Config{
		ContextRadius:   50,
		MaxContexts:     3,
		BaseConfidence:  0.5,
		PositiveBoost:   0.2,
		NegativePenalty: 0.3,
		MinConfidence:   0.1,
		MaxConfidence:   1.0,
	}
}

// Context-sentiment phrase tables. These judge whether a mention is an
// affirmative proficiency claim or a hedge.
var positivePhrases = []string{
	"experience with", "experienced in", "years of experience",
	"proficient in", "skilled in", "expert in", "expertise in",
	"built with", "built using", "developed with", "developed using",
	"implemented", "designed", "architected", "led the", "shipped",
}

var negativePhrases = []string{
	"not familiar with", "no experience", "learning",
	"basic understanding", "beginner", "exposure to", "willing to learn",
}

// Level keyword tables, checked against the concatenated contexts in
// priority order.
var (
	expertWords     = []string{"expert", "senior", "lead", "architect", "architected", "principal", "staff"}
	proficientWords = []string{"proficient", "experienced", "solid", "strong", "advanced", "extensive"}
	beginnerWords   = []string{"familiar", "basic", "junior", "learning", "beginner", "intro"}
)

// Extractor scans text against a dictionary with precompiled variant
// patterns. Safe for concurrent use once constructed.
type Extractor struct {
	cfg      Config
	dict     Dictionary
	patterns map[string][]*regexp.Regexp // variant patterns per "category/name"
}

func NewExtractor(cfg Config, dict Dictionary) *Extractor {
	if cfg.MaxConfidence == 0 {
		cfg = DefaultConfig()
	}
	if dict == nil {
		dict = DefaultDictionary()
	}

	e := &Extractor{cfg: cfg, dict: dict, patterns: make(map[string][]*regexp.Regexp)}
	for category, skills := range dict {
		for name, variants := range skills {
			key := category + "/" + name
			for _, v := range variants {
				e.patterns[key] = append(e.patterns[key], compileVariant(v))
			}
		}
	}
	return e
}

// compileVariant builds a case-insensitive whole-word pattern. Variants that
// begin or end with symbols (c++, .net, ci/cd) get explicit non-word
// boundaries because \b does not apply there. Group 1 is the variant itself.
func compileVariant(v string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(v)
	left, right := `\b`, `\b`
	if !isWordByte(v[0]) {
		left = `(?:^|[^A-Za-z0-9_])`
	}
	if !isWordByte(v[len(v)-1]) {
		right = `(?:$|[^A-Za-z0-9_])`
	}
	return regexp.MustCompile(`(?i)` + left + `(` + quoted + `)` + right)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Extract scans the text and returns detected skills grouped by category.
// Records within a category are sorted by name so output is deterministic.
func (e *Extractor) Extract(text string) map[string][]Record {
	if strings.TrimSpace(text) == "" {
		return map[string][]Record{}
	}

	found := make(map[string][]Record)
	for category, skills := range e.dict {
		for name := range skills {
			rec, ok := e.detect(text, category, name)
			if ok {
				found[category] = append(found[category], rec)
			}
		}
	}

	for category := range found {
		recs := found[category]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	}
	return found
}

// detect matches every variant of one skill, collects context windows, and
// scores confidence and level.
func (e *Extractor) detect(text, category, name string) (Record, bool) {
	var contexts []string
	matches := 0

	for _, re := range e.patterns[category+"/"+name] {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			// Group 1 bounds the variant without its boundary characters.
			start, end := loc[2], loc[3]
			matches++
			contexts = append(contexts, contextWindow(text, start, end, e.cfg.ContextRadius))
		}
	}
	if matches == 0 {
		return Record{}, false
	}

	rec := Record{
		Name:       name,
		Category:   category,
		Matches:    matches,
		Confidence: e.scoreConfidence(contexts),
		Level:      inferLevel(contexts),
	}

	kept := len(contexts)
	if kept > e.cfg.MaxContexts {
		kept = e.cfg.MaxContexts
	}
	rec.Contexts = contexts[:kept]
	return rec, true
}

// contextWindow slices radius characters on each side of a mention.
func contextWindow(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return strings.TrimSpace(text[lo:hi])
}

// scoreConfidence starts at the base and adjusts per sentiment phrase per
// context window, clamped into [MinConfidence, MaxConfidence].
func (e *Extractor) scoreConfidence(contexts []string) float64 {
	confidence := e.cfg.BaseConfidence
	for _, ctx := range contexts {
		lower := strings.ToLower(ctx)
		for _, p := range positivePhrases {
			if strings.Contains(lower, p) {
				confidence += e.cfg.PositiveBoost
			}
		}
		for _, n := range negativePhrases {
			if strings.Contains(lower, n) {
				confidence -= e.cfg.NegativePenalty
			}
		}
	}

	if confidence < e.cfg.MinConfidence {
		return e.cfg.MinConfidence
	}
	if confidence > e.cfg.MaxConfidence {
		return e.cfg.MaxConfidence
	}
	return confidence
}

// inferLevel reads the concatenated contexts for seniority language.
func inferLevel(contexts []string) Level {
	combined := strings.ToLower(strings.Join(contexts, " "))
	for _, w := range expertWords {
		if strings.Contains(combined, w) {
			return LevelExpert
		}
	}
	for _, w := range proficientWords {
		if strings.Contains(combined, w) {
			return LevelProficient
		}
	}
	for _, w := range beginnerWords {
		if strings.Contains(combined, w) {
			return LevelBeginner
		}
	}
	return LevelIntermediate
}
