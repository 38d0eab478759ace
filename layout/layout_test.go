package layout

import (
	"testing"

	"github.com/dnovais/cvlens/decode"
)

// ---------------------------------------------------------------------------
// Line reconstruction tests
// ---------------------------------------------------------------------------

func TestReconstructBandsGlyphsByY(t *testing.T) {
	glyphs := []decode.Glyph{
		{Text: "Doe", X: 40, Y: 700},
		{Text: "Jane", X: 10, Y: 702}, // within tolerance of 700
		{Text: "Engineer", X: 10, Y: 680},
	}

	lines := Reconstruct(glyphs, 5)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0].Text != "Jane Doe" {
		t.Errorf("line 0 = %q, want %q", lines[0].Text, "Jane Doe")
	}
	if lines[1].Text != "Engineer" {
		t.Errorf("line 1 = %q, want %q", lines[1].Text, "Engineer")
	}
}

func TestReconstructOrdersTopDown(t *testing.T) {
	// Glyphs arrive in arbitrary order; output must be top of page first
	// (descending y) regardless.
	glyphs := []decode.Glyph{
		{Text: "bottom", X: 0, Y: 100},
		{Text: "top", X: 0, Y: 700},
		{Text: "middle", X: 0, Y: 400},
	}

	lines := Reconstruct(glyphs, 5)
	got := []string{}
	for _, l := range lines {
		got = append(got, l.Text)
	}
	want := []string{"top", "middle", "bottom"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line order = %v, want %v", got, want)
		}
	}
}

func TestReconstructOrdersWithinLineByX(t *testing.T) {
	glyphs := []decode.Glyph{
		{Text: "Engineer", X: 120, Y: 500},
		{Text: "Software", X: 10, Y: 501},
		{Text: "Senior", X: 1, Y: 499},
	}

	lines := Reconstruct(glyphs, 5)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Senior Software Engineer" {
		t.Errorf("line = %q, want %q", lines[0].Text, "Senior Software Engineer")
	}
}

func TestReconstructDropsEmptyLines(t *testing.T) {
	glyphs := []decode.Glyph{
		{Text: "   ", X: 0, Y: 500},
		{Text: "", X: 10, Y: 500},
		{Text: "real", X: 0, Y: 400},
	}

	lines := Reconstruct(glyphs, 5)
	if len(lines) != 1 || lines[0].Text != "real" {
		t.Errorf("expected only the non-empty line, got %v", lines)
	}
}

func TestReconstructZeroToleranceUsesDefault(t *testing.T) {
	glyphs := []decode.Glyph{
		{Text: "a", X: 0, Y: 100},
		{Text: "b", X: 10, Y: 102},
	}

	lines := Reconstruct(glyphs, 0)
	if len(lines) != 1 {
		t.Fatalf("expected default tolerance to band glyphs, got %d lines", len(lines))
	}
}

func TestDocumentConcatenatesPages(t *testing.T) {
	pages := []decode.Page{
		{Number: 1, Glyphs: []decode.Glyph{{Text: "page one", X: 0, Y: 700}}},
		{Number: 2, Glyphs: []decode.Glyph{{Text: "page two", X: 0, Y: 700}}},
	}

	lines := Document(pages, 5)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "page one" || lines[1].Text != "page two" {
		t.Errorf("page order not preserved: %v", lines)
	}
}
