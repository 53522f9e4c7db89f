package formatter

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/theoremus-urban-solutions/gtfs-to-timetable/timetable"
)

const (
	pdfMargin     = 12.0
	pdfRowHeight  = 7.0
	pdfStopColMin = 55.0
)

// BuildPDF renders one timetable page as an A4 landscape PDF. Rows that
// overflow the sheet continue on a fresh sheet with the column headers
// repeated.
func BuildPDF(p *timetable.Page) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usableW := pageW - 2*pdfMargin

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(usableW, 9, pageTitle(p), "", 1, "L", false, 0, "")
	if p.RouteLongName != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(usableW, 7, p.RouteLongName, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 10)
	if p.Summary.DateRange != "" {
		pdf.CellFormat(usableW, 6, "Valid "+p.Summary.DateRange, "", 1, "L", false, 0, "")
	}
	if p.Summary.Days != "" {
		pdf.CellFormat(usableW, 6, "Runs "+p.Summary.Days, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	stopW, timeW := columnWidths(usableW, len(p.Headers))
	writePDFHeader(pdf, p, stopW, timeW)
	for i, row := range p.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-pdfMargin {
			pdf.AddPage()
			writePDFHeader(pdf, p, stopW, timeW)
		}
		style := ""
		if p.MajorStops[p.StopIDs[i]] {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		for j, cell := range row {
			w := timeW
			if j == 0 {
				w = stopW
			}
			pdf.CellFormat(w, pdfRowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(usableW float64, headerCount int) (stopW, timeW float64) {
	timeCols := headerCount - 1
	if timeCols < 1 {
		return usableW, 0
	}
	stopW = pdfStopColMin
	timeW = (usableW - stopW) / float64(timeCols)
	return stopW, timeW
}

func writePDFHeader(pdf *fpdf.Fpdf, p *timetable.Page, stopW, timeW float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for j, h := range p.Headers {
		w := timeW
		if j == 0 {
			w = stopW
		}
		pdf.CellFormat(w, pdfRowHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(pdfRowHeight)
}
