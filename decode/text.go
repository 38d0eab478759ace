package decode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TextDecoder handles plain text files by synthesizing one glyph per line on
// a single page, with descending y so the layout pass orders them top-down.
type TextDecoder struct{}

// textLineStep is the synthetic vertical distance between consecutive lines.
// It only needs to exceed the line reconstruction tolerance.
const textLineStep = 12.0

func (d *TextDecoder) SupportedFormats() []string { return []string{"txt", "text"} }

func (d *TextDecoder) Decode(ctx context.Context, r io.ReaderAt, size int64) (*Result, error) {
	if size == 0 {
		return nil, errors.New("empty text file")
	}

	data := make([]byte, size)
	if _, err := r.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading text: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	var glyphs []Glyph
	y := float64(len(lines)+1) * textLineStep
	for _, line := range lines {
		y -= textLineStep
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		glyphs = append(glyphs, Glyph{Text: line, X: 0, Y: y})
	}

	if len(glyphs) == 0 {
		return nil, errors.New("no text content")
	}

	return &Result{
		Pages:  []Page{{Number: 1, Glyphs: glyphs}},
		Method: "text",
	}, nil
}
