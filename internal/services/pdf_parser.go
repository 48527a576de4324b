package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
	ExtractTextWithMetaData(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	content, err := p.ExtractTextWithMetaData(data)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(data []byte) (content *PDFContent, err error) {
	// the pdf package panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtraction, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %w", ErrExtraction, err)
	}

	totalPage := r.NumPage()
	text := joinPages(totalPage, func(pageIndex int) (string, error) {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			return "", nil
		}
		return page.GetPlainText(nil)
	})

	return &PDFContent{
		Text:      text,
		PageCount: totalPage,
	}, nil
}

// joinPages concatenates pages 1..totalPage in order with no separator.
// A page whose text cannot be read contributes an empty string.
func joinPages(totalPage int, pageText func(pageIndex int) (string, error)) string {
	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		text, err := pageText(pageIndex)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
	}
	return textBuilder.String()
}
