package decode

import (
	"context"
	"fmt"
	"io"
)

// Glyph is one positioned text run as emitted by a decoder. Coordinates use
// the PDF convention: y grows upward, so larger y means closer to the top of
// the page.
type Glyph struct {
	Text string
	X    float64
	Y    float64
}

// Page holds the glyphs of one decoded page. Glyph order is unspecified;
// callers reconstruct lines from positions.
type Page struct {
	Number int
	Glyphs []Glyph
}

// Result is what a decoder produces from a document file.
type Result struct {
	Pages  []Page
	Method string // "pdf", "text"
}

// Decoder turns raw file bytes into positioned glyph pages.
type Decoder interface {
	Decode(ctx context.Context, r io.ReaderAt, size int64) (*Result, error)
	SupportedFormats() []string
}

// Registry maps file formats to decoders.
type Registry struct {
	decoders map[string]Decoder
}

func NewRegistry() *Registry {
	r := &Registry{decoders: make(map[string]Decoder)}
	for _, d := range []Decoder{&PDFDecoder{}, &TextDecoder{}} {
		for _, f := range d.SupportedFormats() {
			r.decoders[f] = d
		}
	}
	return r
}

func (r *Registry) Get(format string) (Decoder, error) {
	d, ok := r.decoders[format]
	if !ok {
		return nil, fmt.Errorf("no decoder for format: %s", format)
	}
	return d, nil
}

func (r *Registry) Register(format string, d Decoder) {
	r.decoders[format] = d
}
