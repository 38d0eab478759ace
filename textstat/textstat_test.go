package textstat

import (
	"testing"
)

// ---------------------------------------------------------------------------
// Keyword density tests
// ---------------------------------------------------------------------------

func TestKeywordDensityCountsAndCaps(t *testing.T) {
	text := "golang golang golang java java python ruby"
	top := KeywordDensity(text, 2)

	if len(top) != 2 {
		t.Fatalf("expected 2 keywords, got %v", top)
	}
	if top["golang"] != 3 {
		t.Errorf("golang count = %d, want 3", top["golang"])
	}
	if top["java"] != 2 {
		t.Errorf("java count = %d, want 2", top["java"])
	}
}

func TestKeywordDensityLowercasesAndFiltersShortTokens(t *testing.T) {
	top := KeywordDensity("Go GO go Java JAVA an it of", 10)

	if _, ok := top["go"]; ok {
		t.Errorf("two-letter token kept: %v", top)
	}
	if top["java"] != 2 {
		t.Errorf("java count = %d, want case-folded 2", top["java"])
	}
	for _, short := range []string{"an", "it", "of"} {
		if _, ok := top[short]; ok {
			t.Errorf("short token %q kept: %v", short, top)
		}
	}
}

func TestKeywordDensityTiebreakAlphabetical(t *testing.T) {
	// Equal counts: the alphabetically earlier word wins the last slot.
	top := KeywordDensity("zebra apple zebra apple mango", 2)

	if _, ok := top["apple"]; !ok {
		t.Errorf("apple missing from %v", top)
	}
	if _, ok := top["zebra"]; !ok {
		t.Errorf("zebra missing from %v", top)
	}
	if _, ok := top["mango"]; ok {
		t.Errorf("mango should lose the cap to higher counts: %v", top)
	}
}

func TestKeywordDensityEmpty(t *testing.T) {
	if top := KeywordDensity("", 5); len(top) != 0 {
		t.Errorf("expected empty map, got %v", top)
	}
}

// ---------------------------------------------------------------------------
// Readability tests
// ---------------------------------------------------------------------------

func TestReadabilityBounds(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"simple prose", "The cat sat. The dog ran. It was fun."},
		{"dense prose", "Comprehensively orchestrated multidimensional organizational transformations demonstrating extraordinary interdisciplinary accomplishments."},
		{"no terminators", "bullet one bullet two bullet three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Readability(tt.text)
			if score < 0 || score > 100 {
				t.Errorf("Readability(%q) = %v outside [0,100]", tt.text, score)
			}
		})
	}
}

func TestReadabilitySimpleBeatsDense(t *testing.T) {
	simple := Readability("The cat sat. The dog ran.")
	dense := Readability("Comprehensively orchestrated multidimensional organizational transformations demonstrating extraordinary accomplishments.")
	if simple <= dense {
		t.Errorf("simple prose (%v) should outscore dense prose (%v)", simple, dense)
	}
}

func TestReadabilityEmpty(t *testing.T) {
	if score := Readability(""); score != 0 {
		t.Errorf("Readability(\"\") = %v, want 0", score)
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"table", 2},
		{"syllable", 3},
		{"rhythm", 1}, // y counts as a vowel
		{"xyz", 1},    // floor of one
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := countSyllables(tt.word); got != tt.want {
				t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}
