package sheet

import (
	"encoding/csv"
	"io"

	"github.com/lvillar/casedoc"
)

// Dialect specifies the CSV format variant.
type Dialect string

const (
	// DialectStandard is RFC 4180 compliant CSV.
	DialectStandard Dialect = "standard"

	// DialectExcel prefixes a UTF-8 BOM so spreadsheet applications detect
	// the encoding.
	DialectExcel Dialect = "excel"

	// DialectTSV separates values with tabs instead of commas.
	DialectTSV Dialect = "tsv"
)

// CSVConfig specifies options for the CSV encoding.
type CSVConfig struct {
	// Dialect selects the format variant. Default: DialectStandard.
	Dialect Dialect

	// IncludeHeader writes the column header row. Default: true; set
	// SkipHeader to suppress it.
	SkipHeader bool
}

var csvHeader = []string{"Section", "Field", "Value"}

// WriteCSV writes the record's canonical sections to w as one flat table
// with a section, field and value column per row.
func WriteCSV(w io.Writer, rec *casedoc.Record, cfg CSVConfig, opts ...casedoc.Option) error {
	if rec == nil {
		return casedoc.NewRenderError("sheet.WriteCSV", casedoc.ErrNoRecord)
	}
	o := casedoc.NewOptions(opts...)
	lc := casedoc.ResolveLocale(o.Locale)

	if cfg.Dialect == DialectExcel {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return casedoc.NewRenderError("sheet.WriteCSV", err)
		}
	}

	cw := csv.NewWriter(w)
	if cfg.Dialect == DialectTSV {
		cw.Comma = '\t'
	}

	if !cfg.SkipHeader {
		if err := cw.Write(csvHeader); err != nil {
			return casedoc.NewRenderError("sheet.WriteCSV", err)
		}
	}
	for _, s := range casedoc.Sections(rec, lc) {
		for _, f := range s.Fields {
			if err := cw.Write([]string{s.Title, f.Label, f.Value}); err != nil {
				return casedoc.NewRenderError("sheet.WriteCSV", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return casedoc.NewRenderError("sheet.WriteCSV", err)
	}
	return nil
}
