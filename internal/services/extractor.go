package services

import (
	"fmt"
	"mime"
	"strings"
)

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type TextExtractor interface {
	Extract(mediaType string, data []byte) (string, error)
}

type textExtractor struct {
	pdfParser  PDFParserService
	docxParser DocxParserService
}

func NewTextExtractor(pdfParser PDFParserService, docxParser DocxParserService) TextExtractor {
	return &textExtractor{
		pdfParser:  pdfParser,
		docxParser: docxParser,
	}
}

// Extract dispatches on the declared media type only; the bytes are never sniffed.
func (e *textExtractor) Extract(mediaType string, data []byte) (string, error) {
	switch NormalizeMediaType(mediaType) {
	case MediaTypePDF:
		return e.pdfParser.ExtractText(data)
	case MediaTypeDOCX:
		return e.docxParser.ExtractText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, mediaType)
	}
}

// NormalizeMediaType lower-cases a Content-Type value and drops its parameters.
func NormalizeMediaType(mediaType string) string {
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		return parsed
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
