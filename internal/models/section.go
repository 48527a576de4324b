package models

type SectionBucket string

const (
	SectionSkills            SectionBucket = "skills"
	SectionTechnicalStrength SectionBucket = "technical strength"
	SectionExperience        SectionBucket = "experience"
	SectionEducation         SectionBucket = "education"
)

// SectionOrder is the classification priority. A sentence goes to the first
// bucket whose keyword it contains.
var SectionOrder = []SectionBucket{
	SectionSkills,
	SectionTechnicalStrength,
	SectionExperience,
	SectionEducation,
}

func (s SectionBucket) Label() string {
	switch s {
	case SectionSkills:
		return "Skills"
	case SectionTechnicalStrength:
		return "Technical Strength"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	}
	return string(s)
}

// Sections maps every bucket to its sentences in source order.
type Sections map[SectionBucket][]string

func NewSections() Sections {
	s := make(Sections, len(SectionOrder))
	for _, b := range SectionOrder {
		s[b] = []string{}
	}
	return s
}
