// Package ingestion extracts plain text from uploaded resume documents.
// Document parsing lives here, outside the analysis core; the core only ever
// sees the extracted text string.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError indicates a resume file type the extractor cannot
// handle.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format: %s (expected .pdf, .docx, .html or .txt)", e.Filename)
}

// ExtractText extracts plain text from a resume document, dispatching on the
// file extension. The result is cleaned with CleanText before returning.
func ExtractText(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	case ".html", ".htm":
		text, err = extractHTMLText(data)
	case ".txt", ".md", ".text":
		text = string(data)
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

// extractPDFText concatenates the plain text of every PDF page. Pages that
// fail to decode are skipped rather than failing the whole document.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDocxText returns the editable content of a DOCX document.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return stripDocxTags(content), nil
}

// stripDocxTags removes the WordprocessingML markup that GetContent leaves
// in place, keeping only text runs separated by newlines.
func stripDocxTags(content string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			sb.WriteRune('\n')
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// extractHTMLText returns the visible text of an HTML document.
func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})
	if sb.Len() == 0 {
		return doc.Text(), nil
	}
	return sb.String(), nil
}
