package services

import (
	"strings"

	"alfredoptarigan/resume-validator/internal/models"
)

type SectionClassifier interface {
	Classify(text string) models.Sections
}

type sectionClassifier struct {
	segmenter Segmenter
}

func NewSectionClassifier(segmenter Segmenter) SectionClassifier {
	return &sectionClassifier{segmenter: segmenter}
}

// Classify files each sentence under the first bucket, in models.SectionOrder,
// whose keyword it contains. Sentences matching no keyword are dropped.
func (c *sectionClassifier) Classify(text string) models.Sections {
	sections := models.NewSections()

	for _, sentence := range c.segmenter.Sentences(text) {
		lower := strings.ToLower(sentence)
		for _, bucket := range models.SectionOrder {
			if strings.Contains(lower, string(bucket)) {
				sections[bucket] = append(sections[bucket], sentence)
				break
			}
		}
	}

	return sections
}
