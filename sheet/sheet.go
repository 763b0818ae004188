// Package sheet renders a case profile record as a flat tabular spreadsheet.
//
// The XLSX encoding mirrors the paginated report's section/field model: one
// worksheet with a brand title block, a banner row per section and one
// label/value row per field, with alternating row fills for readability.
// There is no pagination; the encoding is a direct field-to-cell mapping.
package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/lvillar/casedoc"
)

// SheetName is the single worksheet holding the profile.
const SheetName = "Case Profile"

const (
	labelColWidth = 28.0
	valueColWidth = 64.0
)

// Workbook is the finished spreadsheet. Persisting it is the caller's
// responsibility.
type Workbook struct {
	file *excelize.File

	// FileName is the suggested file name, derived from the subject's
	// display name.
	FileName string
}

// Output writes the workbook to w.
func (wb *Workbook) Output(w io.Writer) error {
	return wb.file.Write(w)
}

// File exposes the underlying excelize file for callers that need to adjust
// the workbook before persisting it.
func (wb *Workbook) File() *excelize.File {
	return wb.file
}

// Close releases the workbook's resources.
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// Render maps the record's canonical sections onto one worksheet.
func Render(rec *casedoc.Record, brand casedoc.BrandConfig, opts ...casedoc.Option) (*Workbook, error) {
	if rec == nil {
		return nil, casedoc.NewRenderError("sheet.Render", casedoc.ErrNoRecord)
	}
	o := casedoc.NewOptions(opts...)
	lc := casedoc.ResolveLocale(o.Locale)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, casedoc.NewRenderError("sheet.Render", err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", labelColWidth); err != nil {
		return nil, casedoc.NewRenderError("sheet.Render", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", valueColWidth); err != nil {
		return nil, casedoc.NewRenderError("sheet.Render", err)
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, casedoc.NewRenderError("sheet.Render", err)
	}

	w := &sheetWriter{file: f, styles: styles}
	w.titleRow(brand.DisplayCompany(), styles.title)
	w.labelValue("Report", casedoc.ReportCaption, -1)
	w.labelValue("Subject", casedoc.DisplayName(rec), -1)
	w.labelValue("Generated", lc.LongDate(o.GeneratedAt), -1)
	w.blank()

	for _, s := range casedoc.Sections(rec, lc) {
		w.titleRow(s.Title, styles.banner)
		for i, field := range s.Fields {
			w.labelValue(field.Label, field.Value, i)
		}
		w.blank()
	}

	w.titleRow(casedoc.ConfidentialNotice, styles.notice)
	w.titleRow(brand.DisplayCopyright(), styles.notice)
	if w.err != nil {
		return nil, casedoc.NewRenderError("sheet.Render", w.err)
	}

	return &Workbook{
		file:     f,
		FileName: casedoc.SuggestedFileName(rec, ".xlsx"),
	}, nil
}

// styleSet holds the style IDs used across the worksheet.
type styleSet struct {
	title       int
	banner      int
	label       int
	labelTinted int
	tinted      int
	notice      int
}

func newStyleSet(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3F51B5"}},
	})
	if err != nil {
		return s, err
	}
	s.banner, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "303F9F"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E8EAF6"}},
	})
	if err != nil {
		return s, err
	}
	s.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	})
	if err != nil {
		return s, err
	}
	s.labelTinted, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F6FA"}},
	})
	if err != nil {
		return s, err
	}
	s.tinted, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F6FA"}},
	})
	if err != nil {
		return s, err
	}
	s.notice, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 9, Color: "6E6E6E"},
	})
	return s, err
}

// sheetWriter appends rows top to bottom, carrying the first error.
type sheetWriter struct {
	file   *excelize.File
	styles styleSet
	row    int
	err    error
}

func (w *sheetWriter) fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *sheetWriter) blank() {
	w.row++
}

// titleRow writes a full-width row (merged A:B) with the given style.
func (w *sheetWriter) titleRow(text string, style int) {
	w.row++
	a := fmt.Sprintf("A%d", w.row)
	b := fmt.Sprintf("B%d", w.row)
	w.fail(w.file.SetCellValue(SheetName, a, text))
	w.fail(w.file.MergeCell(SheetName, a, b))
	w.fail(w.file.SetCellStyle(SheetName, a, b, style))
}

// labelValue writes one label/value row. rowIndex controls the alternating
// tint within a section; pass a negative index for untinted metadata rows.
func (w *sheetWriter) labelValue(label, value string, rowIndex int) {
	w.row++
	a := fmt.Sprintf("A%d", w.row)
	b := fmt.Sprintf("B%d", w.row)
	w.fail(w.file.SetCellValue(SheetName, a, label))
	w.fail(w.file.SetCellValue(SheetName, b, value))
	labelStyle := w.styles.label
	if rowIndex >= 0 && rowIndex%2 == 0 {
		labelStyle = w.styles.labelTinted
		w.fail(w.file.SetCellStyle(SheetName, b, b, w.styles.tinted))
	}
	w.fail(w.file.SetCellStyle(SheetName, a, a, labelStyle))
}
