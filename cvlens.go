// Package cvlens turns raw resume files into a structured, scored document
// model: typed sections, contact block, categorized skills with contextual
// confidence, and a composite quality score.
package cvlens

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dnovais/cvlens/contact"
	"github.com/dnovais/cvlens/decode"
	"github.com/dnovais/cvlens/history"
	"github.com/dnovais/cvlens/layout"
	"github.com/dnovais/cvlens/quality"
	"github.com/dnovais/cvlens/segment"
	"github.com/dnovais/cvlens/skill"
	"github.com/dnovais/cvlens/store"
	"github.com/dnovais/cvlens/textstat"
)

// Analyzer is the main entry point for resume analysis.
type Analyzer interface {
	// Parse reads and analyzes one file. The context bounds the whole call;
	// the pipeline itself is synchronous, CPU-bound, and has no internal
	// cancellation points.
	Parse(ctx context.Context, path string, opts ...ParseOption) (*ParsedDocument, error)

	// ParseBytes analyzes in-memory file bytes. The filename is used only
	// for format detection and cache metadata.
	ParseBytes(ctx context.Context, data []byte, filename string, opts ...ParseOption) (*ParsedDocument, error)

	// Documents lists cached analyses. Requires the result cache.
	Documents(ctx context.Context) ([]DocumentInfo, error)

	// Document returns one cached analysis by ID. Requires the result cache.
	Document(ctx context.Context, id int64) (*ParsedDocument, error)

	// Delete removes one cached analysis. Requires the result cache.
	Delete(ctx context.Context, id int64) error

	// Close releases the analyzer's resources.
	Close() error
}

// ParseOption configures a single parse call.
type ParseOption func(*parseOptions)

type parseOptions struct {
	skipCache bool
}

// WithoutCache forces a fresh analysis even when the content hash is cached.
func WithoutCache() ParseOption {
	return func(o *parseOptions) { o.skipCache = true }
}

type analyzer struct {
	cfg       Config
	decoders  *decode.Registry
	segmenter *segment.Segmenter
	contacts  *contact.Extractor
	skills    *skill.Extractor
	cache     *store.Store // nil when DBPath is unset
}

// New creates an analyzer from the configuration. When cfg.DBPath is set a
// SQLite result cache is opened; otherwise every parse recomputes.
func New(cfg Config) (Analyzer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	a := &analyzer{
		cfg:       cfg,
		decoders:  decode.NewRegistry(),
		segmenter: segment.New(cfg.segmentConfig()),
		contacts:  contact.NewExtractor(contact.ProseNameFinder{}),
		skills:    skill.NewExtractor(cfg.skillConfig(), skill.DefaultDictionary()),
	}

	if cfg.DBPath != "" {
		s, err := store.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening result cache: %w", err)
		}
		a.cache = s
	}
	return a, nil
}

func (a *analyzer) Parse(ctx context.Context, path string, opts ...ParseOption) (*ParsedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return a.ParseBytes(ctx, data, filepath.Base(path), opts...)
}

func (a *analyzer) ParseBytes(ctx context.Context, data []byte, filename string, opts ...ParseOption) (*ParsedDocument, error) {
	options := &parseOptions{}
	for _, o := range opts {
		o(options)
	}

	start := time.Now()
	hash := contentHash(data)

	if a.cache != nil && !options.skipCache {
		if doc, ok := a.cachedResult(ctx, hash); ok {
			slog.Info("parse: cache hit", "file", filename, "hash", hash[:12])
			a.logRun(ctx, filename, doc, true, time.Since(start))
			return doc, nil
		}
	}

	format := detectFormat(data, filename)
	dec, err := a.decoders.Get(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	decoded, err := dec.Decode(ctx, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	lines := layout.Document(decoded.Pages, a.cfg.LineYTolerance)
	if len(lines) == 0 {
		return nil, ErrEmptyDocument
	}

	doc := a.assemble(decoded, lines, filename)

	slog.Info("parse: complete",
		"file", filename,
		"pages", doc.PageCount,
		"sections", doc.SectionCount,
		"skills", doc.SkillAnalysis.TotalSkills,
		"score", doc.QualityMetrics.OverallScore,
		"elapsed", time.Since(start).Round(time.Millisecond))

	a.saveResult(ctx, hash, filename, doc)
	a.logRun(ctx, filename, doc, false, time.Since(start))
	return doc, nil
}

// assemble runs segmentation through quality scoring and builds the final
// document. Sub-extractor failures degrade their own field and nothing else.
func (a *analyzer) assemble(decoded *decode.Result, lines []layout.Line, filename string) *ParsedDocument {
	sections := a.segmenter.Segment(lines)

	ct := a.contacts.Extract(contactSources(sections, lines, a.cfg.ContactScanLines)...)

	skillText := strings.Join(segment.Content(sections,
		segment.TypeSkills, segment.TypeExperience, segment.TypeProjects), "\n")
	skills := a.skills.Extract(skillText)
	analysis := skill.Analyze(skills)

	experience := extractEntries(filename, "experience", func() []history.Experience {
		return history.Experiences(segment.Content(sections, segment.TypeExperience))
	})
	education := extractEntries(filename, "education", func() []history.Education {
		return history.Educations(segment.Content(sections, segment.TypeEducation))
	})

	metrics := quality.Score(sections, skills, ct, a.cfg.Quality)

	fullText := linesText(lines)

	return &ParsedDocument{
		Contact:          ct,
		Skills:           skills,
		Experience:       experience,
		Education:        education,
		Sections:         sections,
		SkillAnalysis:    analysis,
		QualityMetrics:   metrics,
		KeywordDensity:   textstat.KeywordDensity(fullText, a.cfg.KeywordTopN),
		ReadabilityScore: textstat.Readability(fullText),
		PageCount:        len(decoded.Pages),
		SectionCount:     len(sections),
		CharacterCount:   len(fullText),
		Confidence:       metrics.OverallConfidence,
	}
}

// extractEntries guards a sub-extractor so a panic degrades to an empty
// result instead of failing the parse.
func extractEntries[T any](filename, stage string, fn func() []T) (entries []T) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("parse: extractor degraded", "file", filename, "stage", stage, "panic", r)
			entries = nil
		}
	}()
	return fn()
}

// contactSources gathers the three overlapping text sources the contact
// extractor scans: contact section content, header section content, and the
// leading document lines.
func contactSources(sections []segment.Section, lines []layout.Line, scanLines int) []string {
	var sources []string
	if sec := segment.Find(sections, segment.TypeContact); sec != nil {
		sources = append(sources, strings.Join(sec.Content, "\n"))
	}
	if sec := segment.Find(sections, segment.TypeHeader); sec != nil {
		sources = append(sources, strings.Join(sec.Content, "\n"))
	}

	n := scanLines
	if n > len(lines) {
		n = len(lines)
	}
	lead := make([]string, 0, n)
	for _, line := range lines[:n] {
		lead = append(lead, line.Text)
	}
	sources = append(sources, strings.Join(lead, "\n"))
	return sources
}

func linesText(lines []layout.Line) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.Text
	}
	return strings.Join(parts, "\n")
}

// detectFormat sniffs PDF bytes first and falls back to the file extension.
func detectFormat(data []byte, filename string) string {
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return "pdf"
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return "txt"
	}
	return ext
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ---------------------------------------------------------------------------
// Result cache
// ---------------------------------------------------------------------------

func (a *analyzer) cachedResult(ctx context.Context, hash string) (*ParsedDocument, bool) {
	cached, err := a.cache.GetByHash(ctx, hash)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Warn("parse: cache lookup failed", "error", err)
		}
		return nil, false
	}

	var doc ParsedDocument
	if err := json.Unmarshal([]byte(cached.ResultJSON), &doc); err != nil {
		slog.Warn("parse: cached result unreadable, re-analyzing", "error", err)
		return nil, false
	}
	return &doc, true
}

func (a *analyzer) saveResult(ctx context.Context, hash, filename string, doc *ParsedDocument) {
	if a.cache == nil {
		return
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		slog.Warn("parse: result serialization failed", "file", filename, "error", err)
		return
	}

	if _, err := a.cache.Save(ctx, store.Document{
		Filename:     filename,
		ContentHash:  hash,
		PageCount:    doc.PageCount,
		OverallScore: doc.QualityMetrics.OverallScore,
		Confidence:   doc.Confidence,
		ResultJSON:   string(payload),
	}); err != nil {
		slog.Warn("parse: caching result failed", "file", filename, "error", err)
	}
}

func (a *analyzer) logRun(ctx context.Context, filename string, doc *ParsedDocument, cached bool, elapsed time.Duration) {
	if a.cache == nil {
		return
	}
	err := a.cache.LogAnalysis(ctx, store.AnalysisLog{
		Filename:     filename,
		OverallScore: doc.QualityMetrics.OverallScore,
		Confidence:   doc.Confidence,
		Cached:       cached,
		ElapsedMs:    elapsed.Milliseconds(),
	})
	if err != nil {
		slog.Warn("parse: analysis log failed", "file", filename, "error", err)
	}
}

func (a *analyzer) Documents(ctx context.Context) ([]DocumentInfo, error) {
	if a.cache == nil {
		return nil, ErrStoreDisabled
	}
	docs, err := a.cache.List(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]DocumentInfo, len(docs))
	for i, d := range docs {
		infos[i] = DocumentInfo{
			ID:           d.ID,
			Filename:     d.Filename,
			ContentHash:  d.ContentHash,
			PageCount:    d.PageCount,
			OverallScore: d.OverallScore,
			Confidence:   d.Confidence,
			CreatedAt:    d.CreatedAt,
			UpdatedAt:    d.UpdatedAt,
		}
	}
	return infos, nil
}

func (a *analyzer) Document(ctx context.Context, id int64) (*ParsedDocument, error) {
	if a.cache == nil {
		return nil, ErrStoreDisabled
	}
	d, err := a.cache.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	var doc ParsedDocument
	if err := json.Unmarshal([]byte(d.ResultJSON), &doc); err != nil {
		return nil, fmt.Errorf("decoding stored result: %w", err)
	}
	return &doc, nil
}

func (a *analyzer) Delete(ctx context.Context, id int64) error {
	if a.cache == nil {
		return ErrStoreDisabled
	}
	if err := a.cache.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	return nil
}

func (a *analyzer) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}
