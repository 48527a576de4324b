package services

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-validator/internal/models"
)

func TestDocxParser_ExtractText(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "paragraphs each followed by newline",
			body: paragraphsXML("Skills: Python, SQL", "3 years experience"),
			want: "Skills: Python, SQL\n3 years experience\n",
		},
		{
			name: "empty paragraph keeps its newline",
			body: paragraphsXML("a") + `<w:p/>` + paragraphsXML("b"),
			want: "a\n\nb\n",
		},
		{
			name: "runs are joined within a paragraph",
			body: `<w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t>Engineer</w:t></w:r></w:p>`,
			want: "Senior Engineer\n",
		},
		{
			name: "tab and break inside runs",
			body: `<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>5y</w:t><w:br/><w:t>SQL</w:t></w:r></w:p>`,
			want: "Go\t5y\nSQL\n",
		},
		{
			name: "tab stops in paragraph properties are not text",
			body: `<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>Education</w:t></w:r></w:p>`,
			want: "Education\n",
		},
		{
			name: "table cell paragraphs are not body paragraphs",
			body: paragraphsXML("Before") +
				`<w:tbl><w:tr><w:tc>` + paragraphsXML("Cell one") + `</w:tc><w:tc>` + paragraphsXML("Cell two") + `</w:tc></w:tr></w:tbl>` +
				paragraphsXML("After"),
			want: "Before\nAfter\n",
		},
		{
			name: "text box content is skipped in both alternate forms",
			body: `<w:p><w:r><w:t>Outer heading</w:t></w:r><w:r>` + textBoxXML("Skills: Go") + `</w:r></w:p>` +
				paragraphsXML("Education: BSc"),
			want: "Outer heading\nEducation: BSc\n",
		},
		{
			name: "hyperlink runs belong to the paragraph",
			body: `<w:p><w:r><w:t xml:space="preserve">Portfolio: </w:t></w:r>` +
				`<w:hyperlink><w:r><w:t>example.dev</w:t></w:r></w:hyperlink></w:p>`,
			want: "Portfolio: example.dev\n",
		},
		{
			name: "content controls are skipped",
			body: `<w:sdt><w:sdtContent>` + paragraphsXML("Cover page") + `</w:sdtContent></w:sdt>` +
				paragraphsXML("Experience"),
			want: "Experience\n",
		},
		{
			name: "no paragraphs",
			body: ``,
			want: "",
		},
	}

	parser := NewDocxParserService()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parser.ExtractText(buildDOCX(t, tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDocxParser_TextBoxDoesNotReachSections(t *testing.T) {
	body := `<w:p><w:r><w:t>Outer heading</w:t></w:r><w:r>` + textBoxXML("Skills: Go") + `</w:r></w:p>` +
		paragraphsXML("Education: BSc")

	text, err := NewDocxParserService().ExtractText(buildDOCX(t, body))
	require.NoError(t, err)

	sections := NewSectionClassifier(NewRuleSegmenter()).Classify(text)
	assert.Empty(t, sections[models.SectionSkills])
	assert.Equal(t, []string{"Education: BSc"}, sections[models.SectionEducation])
}

func TestDocxParser_Paragraphs(t *testing.T) {
	paragraphs, err := NewDocxParserService().Paragraphs(buildDOCX(t, paragraphsXML("one", "two", "three")))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, paragraphs)
}

func TestDocxParser_Errors(t *testing.T) {
	parser := NewDocxParserService()

	_, err := parser.ExtractText([]byte("definitely not a zip"))
	assert.ErrorIs(t, err, ErrExtraction)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err = zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	_, err = parser.ExtractText(buf.Bytes())
	assert.ErrorIs(t, err, ErrExtraction)
	assert.ErrorContains(t, err, "word/document.xml not found")

	_, err = parser.ExtractText(buildDOCX(t, `<w:p><w:r><w:t>unclosed`))
	assert.ErrorIs(t, err, ErrExtraction)
}
