package decode

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PDFDecoder extracts positioned text runs from PDF bytes.
type PDFDecoder struct{}

func (d *PDFDecoder) SupportedFormats() []string { return []string{"pdf"} }

func (d *PDFDecoder) Decode(ctx context.Context, r io.ReaderAt, size int64) (res *Result, err error) {
	// The underlying reader panics on some malformed cross-reference tables.
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, fmt.Errorf("malformed PDF: %v", p)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	totalPages := reader.NumPage()
	if totalPages == 0 {
		return nil, errors.New("PDF has no pages")
	}

	res = &Result{Method: "pdf"}
	for i := 1; i <= totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		glyphs := pageGlyphs(page)
		if len(glyphs) == 0 {
			continue
		}
		res.Pages = append(res.Pages, Page{Number: i, Glyphs: glyphs})
	}

	if len(res.Pages) == 0 {
		return nil, errors.New("no extractable text in PDF")
	}
	return res, nil
}

// pageGlyphs reads the positioned text runs of one page. The underlying
// library can panic on malformed content streams; a panic drops the page
// instead of aborting the whole decode.
func pageGlyphs(page pdf.Page) (glyphs []Glyph) {
	defer func() {
		if recover() != nil {
			glyphs = nil
		}
	}()

	content := page.Content()
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		glyphs = append(glyphs, Glyph{Text: t.S, X: t.X, Y: t.Y})
	}
	return glyphs
}
