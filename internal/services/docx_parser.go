package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	wordMLNamespace       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	wordMLStrictNamespace = "http://purl.oclc.org/ooxml/wordprocessingml/main"
	docxMainPart          = "word/document.xml"
)

type DocxParserService interface {
	ExtractText(data []byte) (string, error)
	Paragraphs(data []byte) ([]string, error)
}

type docxParserService struct{}

func NewDocxParserService() DocxParserService {
	return &docxParserService{}
}

// ExtractText returns every paragraph followed by a newline, in document order.
func (d *docxParserService) ExtractText(data []byte) (string, error) {
	paragraphs, err := d.Paragraphs(data)
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	for _, para := range paragraphs {
		textBuilder.WriteString(para)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func (d *docxParserService) Paragraphs(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a Word document: %w", ErrExtraction, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.EqualFold(f.Name, docxMainPart) {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%w: %s not found", ErrExtraction, docxMainPart)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrExtraction, docxMainPart, err)
	}
	defer rc.Close()

	paragraphs, err := readParagraphs(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrExtraction, docxMainPart, err)
	}
	return paragraphs, nil
}

// readParagraphs walks document.xml and returns the text of each paragraph
// that is a direct child of w:body. Tables, content controls and text boxes
// are skipped. Only run content counts: w:t text, w:tab as a tab, w:br and
// w:cr as a newline, from runs directly in the paragraph or in a w:hyperlink.
func readParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		path       []xml.Name
		current    *strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			path = append(path, t.Name)
			if !isWordML(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "p":
				if isBodyParagraph(path) {
					current = &strings.Builder{}
				}
			case "t":
				if current == nil || !inParagraphRun(path) {
					continue
				}
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return nil, err
				}
				path = path[:len(path)-1]
				current.WriteString(text)
			case "tab":
				if current != nil && inParagraphRun(path) {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if current != nil && inParagraphRun(path) {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if current != nil && isWordElement(t.Name, "p") && isBodyParagraph(path) {
				paragraphs = append(paragraphs, current.String())
				current = nil
			}
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return paragraphs, nil
}

// isBodyParagraph reports whether the innermost element of path is a w:p
// sitting directly under w:body.
func isBodyParagraph(path []xml.Name) bool {
	n := len(path)
	return n >= 2 &&
		isWordElement(path[n-1], "p") &&
		isWordElement(path[n-2], "body")
}

// inParagraphRun reports whether the innermost element of path is a child of
// a w:r that belongs to a body paragraph, either directly or via w:hyperlink.
func inParagraphRun(path []xml.Name) bool {
	n := len(path)
	if n < 3 || !isWordElement(path[n-2], "r") {
		return false
	}
	if isBodyParagraph(path[:n-2]) {
		return true
	}
	return n >= 4 &&
		isWordElement(path[n-3], "hyperlink") &&
		isBodyParagraph(path[:n-3])
}

func isWordElement(name xml.Name, local string) bool {
	return name.Local == local && isWordML(name)
}

func isWordML(name xml.Name) bool {
	return name.Space == wordMLNamespace || name.Space == wordMLStrictNamespace
}
