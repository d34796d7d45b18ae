package calendar

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

var weekdayHeaders = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

const (
	reportCellWidth  = 26.0
	reportCellHeight = 18.0
)

// WriteMonthReport renders the month grid and its summary as a PDF into w.
func WriteMonthReport(w io.Writer, view MonthView) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Workouts %d-%02d", view.Year, view.Month), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Workout Calendar: %s %d", view.MonthName, view.Year))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 10)
	for _, h := range weekdayHeaders {
		pdf.CellFormat(reportCellWidth, 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i, c := range view.Cells {
		x, y := pdf.GetXY()
		fill := false
		if c.Log != nil && c.Log.Completed {
			pdf.SetFillColor(194, 255, 0)
			fill = true
		}
		pdf.CellFormat(reportCellWidth, reportCellHeight, "", "1", 0, "", fill, 0, "")

		if !c.Blank {
			pdf.SetXY(x+1, y+1)
			pdf.CellFormat(reportCellWidth-2, 5, fmt.Sprintf("%d", c.Day), "", 0, "L", false, 0, "")
			if c.Log != nil {
				pdf.SetXY(x+1, y+reportCellHeight-6)
				pdf.CellFormat(reportCellWidth-2, 5, logLabel(c), "", 0, "R", false, 0, "")
			}
			pdf.SetXY(x+reportCellWidth, y)
		}

		if (i+1)%7 == 0 {
			pdf.Ln(reportCellHeight)
		}
	}
	if len(view.Cells)%7 != 0 {
		pdf.Ln(reportCellHeight)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Logged days: %d", view.Summary.LoggedDays))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Completed days: %d / %d", view.Summary.CompletedDays, view.DaysInMonth))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total duration: %d min", view.Summary.TotalMinutes))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func logLabel(c Cell) string {
	label := "-"
	if c.Log.Completed {
		label = "done"
	}
	if c.Log.DurationMinutes != nil {
		label = fmt.Sprintf("%s %dm", label, *c.Log.DurationMinutes)
	}
	return label
}
