package amortizer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// this file contains the exporters of a schedule: HTML, JSON and CSV.
// The exporters only format a schedule, they never compute anything.

// Columns are the titles of the schedule columns, in order.
var Columns = []string{"Month:Period", "Amortization", "Interest expense", "Payment", "Remaining debt"}

// Cells returns the record formatted as table cells, in Columns order.
// Amounts have two decimals.
func (r PeriodRecord) Cells() []string {
	return []string{
		strconv.Itoa(r.Period),
		fixed2(r.Amortization),
		fixed2(r.InterestExpense),
		fixed2(r.Payment),
		fixed2(r.RemainingDebt),
	}
}

func fixed2(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }

// MarshalJSON writes the record as an object whose keys follow the column order.
func (r PeriodRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("period", r.Period)
	w.Fixed("amortization", r.Amortization, 2)
	w.Fixed("interest_expense", r.InterestExpense, 2)
	w.Fixed("payment", r.Payment, 2)
	w.Fixed("remaining_debt", r.RemainingDebt, 2)
	return w.MarshalJSON()
}

// MarshalJSON writes the schedule as an array of period objects.
func (s Schedule) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]PeriodRecord(s))
}

// WriteCSV writes the schedule as CSV: a header row then one row per period,
// without index column.
func (s Schedule) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range s {
		if err := cw.Write(r.Cells()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Markdown returns the schedule as a GFM table.
func (s Schedule) Markdown() string {
	var b strings.Builder
	row := func(cells []string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}
	row(Columns)
	sep := make([]string, len(Columns))
	for i := range sep {
		sep[i] = "---"
	}
	row(sep)
	for _, r := range s {
		row(r.Cells())
	}
	return b.String()
}

// htmlConverter converts markdown to HTML with GFM tables.
var htmlConverter = goldmark.New(goldmark.WithExtensions(extension.Table))

// WriteHTML writes the schedule as an HTML table.
func (s Schedule) WriteHTML(w io.Writer) error {
	return htmlConverter.Convert([]byte(s.Markdown()), w)
}

// RenderHTML computes the schedule with method m and returns it as HTML table markup.
func (l Loan) RenderHTML(m Method) (string, error) {
	s, err := l.Schedule(m)
	if err != nil {
		return "", err
	}
	var b bytes.Buffer
	if err := s.WriteHTML(&b); err != nil {
		return "", fmt.Errorf("cannot render html: %w", err)
	}
	return b.String(), nil
}

// RenderJSON computes the schedule with method m and returns it as a JSON array.
func (l Loan) RenderJSON(m Method) (string, error) {
	s, err := l.Schedule(m)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("cannot render json: %w", err)
	}
	return string(b), nil
}

// ExportFilename returns the name of the export file for method m and
// extension ext, e.g. "annuity_amortization.csv".
func ExportFilename(m Method, ext string) string {
	return m.String() + "_amortization." + ext
}

// ExportCSV computes the schedule with method m and writes it into
// path+"<method>_amortization.csv".
//
// path is used as a literal prefix, the caller supplies the trailing
// separator (e.g. "/tmp/"). It returns a confirmation message.
func (l Loan) ExportCSV(path string, m Method) (string, error) {
	s, err := l.Schedule(m)
	if err != nil {
		return "", err
	}
	name := ExportFilename(m, "csv")
	if err := writeFile(path+name, s.WriteCSV); err != nil {
		return "", err
	}
	return confirmation(name, path), nil
}

func confirmation(name, path string) string {
	return fmt.Sprintf("Data was recorded to %s at the following location: %s", name, path)
}

// writeFile creates filename and fills it with write. Any failure is
// reported as ErrExportIO, and a partially written file is removed.
func writeFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrExportIO, filename, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(filename)
		return fmt.Errorf("%w %q: %w", ErrExportIO, filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrExportIO, filename, err)
	}
	log.Printf("export-file name=%q", filename)
	return nil
}
