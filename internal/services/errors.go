package services

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported file format, please upload a PDF or Word document")
	ErrExtraction          = errors.New("failed to extract text from document")
	ErrEmbedding           = errors.New("failed to embed text")
	ErrEmbedderUnavailable = errors.New("semantic scoring is not configured")
)
