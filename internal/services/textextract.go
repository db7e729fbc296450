package services

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat signals a filename suffix no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// TextExtractor decodes one document format into plain text.
type TextExtractor interface {
	ExtractText(content []byte) (string, error)
}

// ExtractorRegistry dispatches to the decoder registered for the filename
// suffix.
type ExtractorRegistry struct {
	extractors map[string]TextExtractor
}

func NewExtractorRegistry() *ExtractorRegistry {
	return &ExtractorRegistry{
		extractors: map[string]TextExtractor{
			".pdf":  &pdfExtractor{},
			".docx": &docxExtractor{},
			".txt":  &txtExtractor{},
		},
	}
}

// Extract decodes content based on the lowercased suffix of filename.
// Unknown suffixes return ErrUnsupportedFormat.
func (r *ExtractorRegistry) Extract(filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	extractor, ok := r.extractors[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	return extractor.ExtractText(content)
}

type pdfExtractor struct{}

func (p *pdfExtractor) ExtractText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	// A structurally valid but textless PDF (scanned images) yields an empty
	// string; the pipeline downgrades that to a low-text warning.
	return textBuilder.String(), nil
}

type docxExtractor struct{}

// paragraph close tags become newlines before the remaining markup is dropped
var (
	docxParaEnd = regexp.MustCompile(`</w:p>`)
	docxTags    = regexp.MustCompile(`<[^>]+>`)
)

func (d *docxExtractor) ExtractText(content []byte) (string, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer reader.Close()

	raw := reader.Editable().GetContent()

	text := docxParaEnd.ReplaceAllString(raw, "\n")
	text = docxTags.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	return text, nil
}

type txtExtractor struct{}

func (t *txtExtractor) ExtractText(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(content), nil
}
