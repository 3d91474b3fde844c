package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 54 // 0.75in in points

	titleSize     = 20
	contactSize   = 10
	headingSize   = 14
	paragraphSize = 10
)

// Render draws a composed block sequence into a single-column Letter
// PDF and returns the document bytes.
func Render(blocks []Block) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	pageWidth, _ := doc.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	for _, b := range blocks {
		switch b.Kind {
		case BlockTitle:
			doc.SetFont("Helvetica", "B", titleSize)
			doc.SetTextColor(26, 26, 26)
			doc.CellFormat(contentWidth, titleSize+6, b.Text, "", 1, "C", false, 0, "")
		case BlockContact:
			doc.SetFont("Helvetica", "", contactSize)
			doc.SetTextColor(26, 26, 26)
			doc.CellFormat(contentWidth, contactSize+4, b.Text, "", 1, "C", false, 0, "")
		case BlockHeading:
			doc.SetFont("Helvetica", "B", headingSize)
			doc.SetTextColor(44, 62, 80)
			doc.CellFormat(contentWidth, headingSize+6, b.Text, "", 1, "L", false, 0, "")
		case BlockParagraph:
			doc.SetTextColor(26, 26, 26)
			if b.Lead != "" {
				doc.SetFont("Helvetica", "B", paragraphSize)
				doc.Write(paragraphSize+4, b.Lead)
				doc.SetFont("Helvetica", "", paragraphSize)
				doc.Write(paragraphSize+4, b.Text)
				doc.Ln(paragraphSize + 4)
			} else {
				doc.SetFont("Helvetica", "", paragraphSize)
				doc.MultiCell(contentWidth, paragraphSize+4, b.Text, "", "L", false)
			}
		case BlockSpacer:
			doc.Ln(b.Height)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
