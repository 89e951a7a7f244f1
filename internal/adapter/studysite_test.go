package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studyPageHTML = `<html><body>
<h1>Data Structures (3130702)</h1>
<h2>Unit 1: Introduction</h2>
<ul>
  <li>Data types: primitive and non-primitive</li>
  <li>Performance analysis, space and time complexity</li>
</ul>
<h2>Unit 2: Linear Data Structures</h2>
<p>Stack operations and applications.</p>
<p>Queue variants including circular and priority queues.</p>
<h2>Reference Books</h2>
<ul><li>Fundamentals of Data Structures</li></ul>
<a href="/files/unit-1-notes.pdf">Unit 1 Notes PDF</a>
<a href="/subjects/3130702/unit/2/">Unit 2 page</a>
</body></html>`

func TestExtractSyllabusSections(t *testing.T) {
	page := testPage(t, "https://study.example/subjects/3130702/syllabus/", studyPageHTML)

	rows := ExtractSyllabusSections(page, "3130702")
	require.Len(t, rows, 3)

	assert.Equal(t, "3130702", rows[0].SubjectCode)
	assert.Equal(t, 1, rows[0].Unit)
	assert.Equal(t, "Introduction", rows[0].UnitTitle)
	assert.Equal(t, "Data types", rows[0].Topic)
	assert.Equal(t, "Data types: primitive and non-primitive", rows[0].Body)
	assert.Equal(t, page.URL.String(), rows[0].SourceURL)

	assert.Equal(t, 1, rows[1].Unit)
	assert.Equal(t, "Performance analysis", rows[1].Topic)

	// Sections without lists collapse their paragraphs into one topic.
	assert.Equal(t, 2, rows[2].Unit)
	assert.Equal(t, "Linear Data Structures", rows[2].Topic)
	assert.Contains(t, rows[2].Body, "Stack operations")
	assert.Contains(t, rows[2].Body, "Queue variants")
}

func TestExtractSyllabusSectionsIgnoresNonUnitHeadings(t *testing.T) {
	page := testPage(t, "https://study.example/subjects/x/syllabus/", `<html><body>
<h2>About This Course</h2><ul><li>irrelevant</li></ul>
</body></html>`)
	assert.Empty(t, ExtractSyllabusSections(page, "X"))
}

func TestExtractNoteLinks(t *testing.T) {
	page := testPage(t, "https://study.example/subjects/3130702/syllabus/", studyPageHTML)

	notes := ExtractNoteLinks(page, "3130702", "studysite")
	require.Len(t, notes, 1)

	n := notes[0]
	assert.Equal(t, "3130702", n.SubjectCode)
	assert.Equal(t, 1, n.Unit)
	assert.Equal(t, "Unit 1 Notes PDF", n.Title)
	assert.Equal(t, "https://study.example/files/unit-1-notes.pdf", n.FileURL)
	assert.Equal(t, "studysite", n.SourceName)
}

func TestIsDocumentURL(t *testing.T) {
	assert.True(t, isDocumentURL("https://x/notes.PDF"))
	assert.True(t, isDocumentURL("https://x/slides.pptx"))
	assert.False(t, isDocumentURL("https://x/page.html"))
	assert.False(t, isDocumentURL("https://x/archive.zip"))
}

func TestUnitTitle(t *testing.T) {
	assert.Equal(t, "Trees", unitTitle("Unit 3: Trees"))
	assert.Equal(t, "Graphs", unitTitle("Unit 4 - Graphs"))
	assert.Equal(t, "Hashing", unitTitle("Unit 5 Hashing"))
}

func TestStudySiteRequiresSubjectCode(t *testing.T) {
	a := NewStudySiteAdapter(testDeps(&fakeStore{}))
	err := a.Run(context.Background(), Params{SubjectName: "Data Structures", SeedURL: "https://x/syllabus/"})
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestStudySiteSkipsWithoutSeed(t *testing.T) {
	fs := &fakeStore{}
	a := NewStudySiteAdapter(testDeps(fs))
	require.NoError(t, a.Run(context.Background(), Params{SubjectName: "DS", SubjectCode: "3130702"}))
	assert.Empty(t, fs.syllabus)
	assert.Empty(t, fs.subjects)
}
