package studyguide

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin  = 15.0
	usableWidth = 180.0
	bodyLine    = 9.0
	headingLine = 9.0
	pageBreakAt = 282.0
)

// RenderPDF lays the guide text out on A4 pages. Lines that look like section
// headings (markdown markers, or short all-caps lines) are set bold; body
// text is word-wrapped to the usable width.
func RenderPDF(title, text string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isHeading(line) {
			writeHeading(pdf, cleanHeading(line))
		} else {
			writeBody(pdf, line)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render guide pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func isHeading(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
		return true
	}
	return len(line) <= 60 && line == strings.ToUpper(line) && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

func cleanHeading(line string) string {
	line = strings.TrimLeft(line, "# ")
	return strings.Trim(line, "* ")
}

func writeHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "B", 14)
	for _, line := range wrap(pdf, text) {
		breakPage(pdf, headingLine)
		pdf.CellFormat(usableWidth, headingLine, line, "", 1, "", false, 0, "")
	}
	pdf.Ln(4)
}

func writeBody(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "", 12)
	for _, line := range wrap(pdf, text) {
		breakPage(pdf, bodyLine)
		pdf.CellFormat(usableWidth, bodyLine, line, "", 1, "", false, 0, "")
	}
}

func breakPage(pdf *gofpdf.Fpdf, lineHeight float64) {
	if pdf.GetY()+lineHeight > pageBreakAt {
		pdf.AddPage()
	}
}

// wrap splits text into lines fitting the usable width under the current
// font. Words longer than a full line are emitted as-is; gofpdf clips them.
func wrap(pdf *gofpdf.Fpdf, text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if pdf.GetStringWidth(candidate) > usableWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
