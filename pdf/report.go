package pdf

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/casedoc"
)

const verificationNotice = "This document was generated from official case records. " +
	"Entries marked as not provided or not specified were unavailable at the " +
	"time of generation. Verify the contents against the originating records " +
	"before acting on them."

// Report is the finished multi-page document. It is created by Render and
// holds no reference to the inputs; persisting it is the caller's
// responsibility.
type Report struct {
	doc *fpdf.Fpdf

	// PageCount is the actual number of pages produced by layout. It may
	// differ from the estimate stamped into headers.
	PageCount int

	// FileName is the suggested file name, derived from the subject's
	// display name.
	FileName string

	// Warnings lists non-fatal render problems, e.g. logo bytes that could
	// not be decoded. An empty slice means a clean render.
	Warnings []string
}

// Output writes the finished document to w and closes it. A Report can be
// written once.
func (r *Report) Output(w io.Writer) error {
	return r.doc.Output(w)
}

// WriteFile writes the finished document to the named file and closes it.
func (r *Report) WriteFile(name string) error {
	return r.doc.OutputFileAndClose(name)
}

// engine threads one cursor through all draw calls of a single render. Each
// render call owns its own engine, so independent renders may run
// concurrently.
type engine struct {
	doc      *fpdf.Fpdf
	cur      Cursor
	tr       func(string) string
	log      *slog.Logger
	warnings []string
}

func (e *engine) warn(op string, err error) {
	e.warnings = append(e.warnings, fmt.Sprintf("%s: %v", op, err))
	e.log.Warn("render warning", "op", op, "err", err)
}

// breakPage finalizes the current page (its footer is stamped by the footer
// callback), starts the next page (header stamped by the header callback) and
// resets the cursor to the top of the new body region.
func (e *engine) breakPage() {
	e.doc.AddPage()
	e.cur.Page++
	e.cur.Y = BodyTop
	e.doc.SetXY(marginLeft, BodyTop)
}

// Render lays the record out as a paginated PDF: a title block with an
// optional subject photo, the nine canonical sections in order, and a
// verification block when the final page has room for it. Headers and footers
// are stamped on every page.
//
// Missing record data is rendered as fallback text, and unreadable image
// bytes are logged and omitted; neither aborts the render.
func Render(rec *casedoc.Record, brand casedoc.BrandConfig, opts ...casedoc.Option) (*Report, error) {
	if rec == nil {
		return nil, casedoc.NewRenderError("pdf.Render", casedoc.ErrNoRecord)
	}
	o := casedoc.NewOptions(opts...)
	lc := casedoc.ResolveLocale(o.Locale)
	subject := casedoc.DisplayName(rec)

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(marginLeft, BodyTop, marginRight)
	doc.SetTitle(casedoc.ReportCaption+" - "+subject, true)
	doc.SetAuthor(brand.DisplayCompany(), true)
	doc.SetCreationDate(o.GeneratedAt)
	doc.SetModificationDate(o.GeneratedAt)

	e := &engine{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
		log: o.Logger,
	}

	logoType := ""
	if o.IncludeLogo && len(brand.LogoBytes) > 0 {
		tp, err := registerImage(doc, logoImageName, brand.LogoBytes)
		if err != nil {
			e.warn("header logo", err)
		} else {
			logoType = tp
		}
	}
	photoType := ""
	if o.IncludePhoto && len(rec.PhotoBytes) > 0 {
		tp, err := registerImage(doc, photoImageName, rec.PhotoBytes)
		if err != nil {
			e.warn("subject photo", err)
		} else {
			photoType = tp
		}
	}

	dec := &decorator{
		doc:       doc,
		tr:        e.tr,
		brand:     brand,
		subject:   subject,
		estimate:  o.PageEstimate,
		generated: o.GeneratedAt,
		locale:    lc,
		logoType:  logoType,
	}
	doc.SetHeaderFunc(dec.header)
	doc.SetFooterFunc(dec.footer)

	doc.AddPage()
	e.cur = Cursor{Page: 1, Y: BodyTop}

	e.drawTitle(rec, photoType)
	for _, s := range casedoc.Sections(rec, lc) {
		e.drawSection(s)
	}
	e.drawVerification(caseReference(rec))

	if doc.Err() {
		return nil, casedoc.NewRenderError("pdf.Render", doc.Error())
	}
	return &Report{
		doc:       doc,
		PageCount: doc.PageCount(),
		FileName:  casedoc.SuggestedFileName(rec, ".pdf"),
		Warnings:  e.warnings,
	}, nil
}

// titleWidth is the width available to the name and case reference lines. It
// is narrowed only when a photo occupies the right side of the title block.
func titleWidth(photoType string) float64 {
	if photoType == "" {
		return contentWidth
	}
	return contentWidth - photoWidth - 10
}

// drawTitle draws the subject name and case line at the top of page 1, with
// the subject photo on the right when available.
func (e *engine) drawTitle(rec *casedoc.Record, photoType string) {
	y := e.cur.Y
	textW := titleWidth(photoType)

	if photoType != "" {
		e.doc.ImageOptions(photoImageName, pageWidth-marginRight-photoWidth, y,
			photoWidth, photoHeight, false, fpdf.ImageOptions{ImageType: photoType}, 0, "")
		e.doc.SetDrawColor(180, 180, 180)
		e.doc.Rect(pageWidth-marginRight-photoWidth, y, photoWidth, photoHeight, "D")
		e.doc.SetDrawColor(0, 0, 0)
	}

	e.doc.SetFont("Helvetica", "B", 16)
	e.doc.SetXY(marginLeft, y)
	e.doc.CellFormat(textW, 20, e.tr(casedoc.DisplayName(rec)),
		"", 0, "L", false, 0, "")

	e.doc.SetFont("Helvetica", "", 9)
	e.doc.SetTextColor(110, 110, 110)
	e.doc.SetXY(marginLeft, y+22)
	e.doc.CellFormat(textW, 12,
		"Case Reference: "+e.tr(caseReference(rec)), "", 0, "L", false, 0, "")
	e.doc.SetTextColor(0, 0, 0)

	blockH := 40.0
	if photoType != "" {
		blockH = photoHeight + 8
	}
	e.cur.Advance(blockH)
	e.doc.SetXY(marginLeft, e.cur.Y)
}

// drawVerification appends the verification block to the final page when at
// least verificationMin points of body space remain; otherwise it is omitted
// entirely, never forced onto a new page. The block carries a notice
// paragraph, two signature lines and a QR code of the case reference.
func (e *engine) drawVerification(caseRef string) {
	if BodyBottom-e.cur.Y < verificationMin {
		return
	}
	y := e.cur.Y + 4

	e.doc.SetDrawColor(180, 180, 180)
	e.doc.SetLineWidth(0.5)
	e.doc.Line(marginLeft, y, pageWidth-marginRight, y)

	if data, err := qrPNG(caseRef, int(qrSize)); err != nil {
		e.warn("verification qr", err)
	} else if _, err := registerImage(e.doc, qrImageName, data); err != nil {
		e.warn("verification qr", err)
	} else {
		e.doc.ImageOptions(qrImageName, pageWidth-marginRight-qrSize, y+6,
			qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "png"}, 0, "")
	}

	e.doc.SetFont("Helvetica", "I", 8)
	e.doc.SetTextColor(110, 110, 110)
	e.doc.SetXY(marginLeft, y+8)
	e.doc.MultiCell(contentWidth-qrSize-16, 10, verificationNotice, "", "L", false)
	e.doc.SetTextColor(0, 0, 0)

	sigY := y + 52
	e.doc.SetDrawColor(60, 60, 60)
	e.doc.Line(marginLeft, sigY, marginLeft+170, sigY)
	e.doc.Line(marginLeft+220, sigY, marginLeft+340, sigY)
	e.doc.SetDrawColor(0, 0, 0)

	e.doc.SetFont("Helvetica", "", 8)
	e.doc.SetXY(marginLeft, sigY+2)
	e.doc.CellFormat(170, 10, "Authorized Signature", "", 0, "L", false, 0, "")
	e.doc.SetXY(marginLeft+220, sigY+2)
	e.doc.CellFormat(120, 10, "Date", "", 0, "L", false, 0, "")

	e.cur.Y = sigY + 12
	if e.cur.Y > BodyBottom {
		e.cur.Y = BodyBottom
	}
}

func caseReference(rec *casedoc.Record) string {
	if rec.CaseNumber != "" {
		return rec.CaseNumber
	}
	return casedoc.DisplayName(rec)
}
