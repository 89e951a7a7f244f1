package studyguide

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pdfPageCount counts page objects in the rendered output.
func pdfPageCount(t *testing.T, data []byte) int {
	t.Helper()
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestRenderPDFSinglePage(t *testing.T) {
	out, err := RenderPDF("CS101 Unit 1 Study Guide", "INTRODUCTION\nA short body paragraph about the topic.")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, 1, pdfPageCount(t, out))
}

func TestRenderPDFPaginatesLongText(t *testing.T) {
	long := strings.Repeat("word ", 500)
	out, err := RenderPDF("CS101 Unit 2 Study Guide", long)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pdfPageCount(t, out), 2, "500 body words must overflow one A4 page")
}

func TestRenderPDFEmptyBodyStillRenders(t *testing.T) {
	out, err := RenderPDF("CS101 Unit 3 Study Guide", "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, 1, pdfPageCount(t, out))
}

func TestHeadingDetection(t *testing.T) {
	cases := []struct {
		line    string
		heading bool
	}{
		{"# Trees and Graphs", true},
		{"## Balancing", true},
		{"**Key Points**", true},
		{"SORTING ALGORITHMS", true},
		{"A normal sentence about sorting.", false},
		{"UPPERCASE HEADING THAT RUNS FAR TOO LONG TO PLAUSIBLY BE A SECTION TITLE", false},
		{"12345", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.heading, isHeading(tc.line), tc.line)
	}
}

func TestCleanHeading(t *testing.T) {
	assert.Equal(t, "Trees", cleanHeading("## Trees"))
	assert.Equal(t, "Key Points", cleanHeading("**Key Points**"))
}
