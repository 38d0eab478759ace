package decode

import (
	"context"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Registry tests
// ---------------------------------------------------------------------------

func TestRegistryBuiltInDecoders(t *testing.T) {
	reg := NewRegistry()

	formats := []string{"pdf", "txt", "text"}
	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			d, err := reg.Get(format)
			if err != nil {
				t.Fatalf("Get(%q) returned error: %v", format, err)
			}
			found := false
			for _, f := range d.SupportedFormats() {
				if f == format {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("decoder for %q does not list it in SupportedFormats(): %v",
					format, d.SupportedFormats())
			}
		})
	}
}

func TestRegistryUnknown(t *testing.T) {
	reg := NewRegistry()
	for _, format := range []string{"docx", "csv", "html", ""} {
		t.Run("format_"+format, func(t *testing.T) {
			if d, err := reg.Get(format); err == nil {
				t.Errorf("Get(%q) expected error, got decoder %T", format, d)
			}
		})
	}
}

func TestRegistryRegisterCustom(t *testing.T) {
	reg := NewRegistry()
	td := &TextDecoder{}
	reg.Register("md", td)

	d, err := reg.Get("md")
	if err != nil {
		t.Fatalf("Get(md): %v", err)
	}
	if d != td {
		t.Errorf("Get(md) = %T, want the registered decoder", d)
	}
}

// ---------------------------------------------------------------------------
// Text decoder tests
// ---------------------------------------------------------------------------

func TestTextDecoderSynthesizesGlyphs(t *testing.T) {
	input := "Jane Doe\njane@example.com\n\nEXPERIENCE\n"
	d := &TextDecoder{}

	res, err := d.Decode(context.Background(), strings.NewReader(input), int64(len(input)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(res.Pages) != 1 || res.Method != "text" {
		t.Fatalf("result = %+v", res)
	}

	glyphs := res.Pages[0].Glyphs
	want := []string{"Jane Doe", "jane@example.com", "EXPERIENCE"}
	if len(glyphs) != len(want) {
		t.Fatalf("glyphs = %+v, want %d non-empty lines", glyphs, len(want))
	}
	for i, g := range glyphs {
		if g.Text != want[i] {
			t.Errorf("glyph %d = %q, want %q", i, g.Text, want[i])
		}
	}
	// y must strictly descend so the layout pass keeps line order.
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].Y >= glyphs[i-1].Y {
			t.Errorf("glyph y not descending: %v then %v", glyphs[i-1].Y, glyphs[i].Y)
		}
	}
}

func TestTextDecoderCRLF(t *testing.T) {
	input := "one\r\ntwo\r\n"
	d := &TextDecoder{}

	res, err := d.Decode(context.Background(), strings.NewReader(input), int64(len(input)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	glyphs := res.Pages[0].Glyphs
	if len(glyphs) != 2 || glyphs[0].Text != "one" || glyphs[1].Text != "two" {
		t.Errorf("glyphs = %+v", glyphs)
	}
}

func TestTextDecoderEmpty(t *testing.T) {
	d := &TextDecoder{}
	if _, err := d.Decode(context.Background(), strings.NewReader(""), 0); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := d.Decode(context.Background(), strings.NewReader("  \n  "), 5); err == nil {
		t.Error("expected error for whitespace-only input")
	}
}
