package amortizer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the schedule as an Excel workbook with a single sheet
// named sheet. Amounts are written as numbers with a two decimals format.
func (s Schedule) WriteXLSX(w io.Writer, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &Columns); err != nil {
		return err
	}
	// built-in number format 2 is "0.00"
	style, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	for i, r := range s {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.Period, r.Amortization, r.InterestExpense, r.Payment, r.RemainingDebt}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(s) > 0 {
		last, err := excelize.CoordinatesToCellName(len(Columns), len(s)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "B2", last, style); err != nil {
			return err
		}
	}
	_, err = f.WriteTo(w)
	return err
}

// ExportXLSX computes the schedule with method m and writes it into
// path+"<method>_amortization.xlsx". path is a literal prefix like in
// ExportCSV.
func (l Loan) ExportXLSX(path string, m Method) (string, error) {
	s, err := l.Schedule(m)
	if err != nil {
		return "", err
	}
	name := ExportFilename(m, "xlsx")
	err = writeFile(path+name, func(w io.Writer) error {
		if err := s.WriteXLSX(w, m.String()); err != nil {
			return fmt.Errorf("cannot build workbook: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return confirmation(name, path), nil
}
