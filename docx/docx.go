// Package docx renders a case profile record as a flowing Word document.
//
// The encoding is deliberately mechanical: one styled heading per section and
// one label/value paragraph per field, assembled as a minimal OOXML package
// (a zip holding [Content_Types].xml, the package relationships and
// word/document.xml). Word handles its own pagination, so unlike the pdf
// package there is no layout engine here.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/lvillar/casedoc"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

	// A4 portrait with 2cm margins, in twentieths of a point.
	sectionProperties = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1134" w:header="720" w:footer="720"/></w:sectPr>`

	documentClose = `</w:body></w:document>`
)

// Document is the finished flowing document. Persisting it is the caller's
// responsibility.
type Document struct {
	data []byte

	// FileName is the suggested file name, derived from the subject's
	// display name.
	FileName string
}

// Bytes returns the DOCX package bytes.
func (d *Document) Bytes() []byte {
	return d.data
}

// Output writes the DOCX package to w.
func (d *Document) Output(w io.Writer) error {
	_, err := w.Write(d.data)
	return err
}

// Render maps the record's canonical sections onto a flowing document.
func Render(rec *casedoc.Record, brand casedoc.BrandConfig, opts ...casedoc.Option) (*Document, error) {
	if rec == nil {
		return nil, casedoc.NewRenderError("docx.Render", casedoc.ErrNoRecord)
	}
	o := casedoc.NewOptions(opts...)
	lc := casedoc.ResolveLocale(o.Locale)

	var body strings.Builder
	body.WriteString(documentOpen)

	writeParagraph(&body, paragraphStyle{spacingAfter: 40},
		run{text: brand.DisplayCompany(), bold: true, size: 32, color: "3F51B5"})
	writeParagraph(&body, paragraphStyle{spacingAfter: 160},
		run{text: casedoc.ReportCaption, size: 20, color: "6E6E6E"})

	writeParagraph(&body, paragraphStyle{spacingAfter: 40},
		run{text: casedoc.DisplayName(rec), bold: true, size: 28})
	caseRef := rec.CaseNumber
	if caseRef == "" {
		caseRef = casedoc.FallbackNotAssigned
	}
	writeParagraph(&body, paragraphStyle{spacingAfter: 60},
		run{text: "Case Reference: " + caseRef, size: 18, color: "6E6E6E"})
	writeParagraph(&body, paragraphStyle{spacingAfter: 160},
		run{text: "Generated: " + lc.LongDate(o.GeneratedAt), size: 18, color: "6E6E6E"})

	for _, s := range casedoc.Sections(rec, lc) {
		writeParagraph(&body, paragraphStyle{spacingBefore: 160, spacingAfter: 60},
			run{text: s.Title, bold: true, size: 24, color: "303F9F"})
		for _, f := range s.Fields {
			writeParagraph(&body, paragraphStyle{spacingAfter: 20},
				run{text: f.Label + ": ", bold: true, size: 20},
				run{text: f.Value, size: 20})
		}
	}

	writeParagraph(&body, paragraphStyle{spacingBefore: 240, spacingAfter: 20},
		run{text: casedoc.ConfidentialNotice, italic: true, size: 16, color: "6E6E6E"})
	writeParagraph(&body, paragraphStyle{},
		run{text: brand.DisplayCopyright(), italic: true, size: 14, color: "6E6E6E"})

	body.WriteString(sectionProperties)
	body.WriteString(documentClose)

	data, err := packDocx(body.String())
	if err != nil {
		return nil, casedoc.NewRenderError("docx.Render", err)
	}
	return &Document{
		data:     data,
		FileName: casedoc.SuggestedFileName(rec, ".docx"),
	}, nil
}

type paragraphStyle struct {
	spacingBefore int // twentieths of a point
	spacingAfter  int
}

// run is one styled text run within a paragraph. size is in half-points, as
// OOXML measures it.
type run struct {
	text   string
	bold   bool
	italic bool
	size   int
	color  string
}

func writeParagraph(b *strings.Builder, style paragraphStyle, runs ...run) {
	b.WriteString("<w:p>")
	if style.spacingBefore > 0 || style.spacingAfter > 0 {
		fmt.Fprintf(b, `<w:pPr><w:spacing w:before="%d" w:after="%d"/></w:pPr>`,
			style.spacingBefore, style.spacingAfter)
	}
	for _, r := range runs {
		b.WriteString("<w:r><w:rPr>")
		if r.bold {
			b.WriteString("<w:b/>")
		}
		if r.italic {
			b.WriteString("<w:i/>")
		}
		if r.color != "" {
			fmt.Fprintf(b, `<w:color w:val="%s"/>`, r.color)
		}
		if r.size > 0 {
			fmt.Fprintf(b, `<w:sz w:val="%d"/>`, r.size)
		}
		b.WriteString("</w:rPr>")
		fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(r.text))
		b.WriteString("</w:r>")
	}
	b.WriteString("</w:p>")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return ""
	}
	return buf.String()
}

// packDocx assembles the OOXML package in its fixed part order so identical
// inputs produce identical bytes.
func packDocx(documentXML string) ([]byte, error) {
	var out bytes.Buffer
	zw := zip.NewWriter(&out)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, p := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
