package pdf

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/casedoc"
)

// decorator stamps the repeating page header and footer. It is registered as
// the document's header/footer callbacks, so every page receives exactly one
// stamp of each, independent of section content.
type decorator struct {
	doc       *fpdf.Fpdf
	tr        func(string) string
	brand     casedoc.BrandConfig
	subject   string
	estimate  int
	generated time.Time
	locale    casedoc.Locale
	logoType  string // non-empty when the logo image is registered
}

// header draws the fixed-height colored band: optional logo, company name,
// report caption, and the right-aligned subject name and page counter. The
// counter total is the pre-layout estimate, not the final page count.
func (d *decorator) header() {
	doc := d.doc

	doc.SetFillColor(63, 81, 181)
	doc.Rect(0, 0, pageWidth, headerBandHeight, "F")

	textX := marginLeft
	if d.logoType != "" {
		doc.ImageOptions(logoImageName, marginLeft, 12, 0, 40,
			false, fpdf.ImageOptions{ImageType: d.logoType}, 0, "")
		textX += 50
	}

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 14)
	doc.SetXY(textX, 14)
	doc.CellFormat(260, 16, d.tr(d.brand.DisplayCompany()), "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.SetXY(textX, 34)
	doc.CellFormat(260, 12, casedoc.ReportCaption, "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(pageWidth-marginRight-220, 14)
	doc.CellFormat(220, 14, d.tr(d.subject), "", 0, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.SetXY(pageWidth-marginRight-220, 32)
	doc.CellFormat(220, 12, fmt.Sprintf("Page %d of %d", doc.PageNo(), d.estimate),
		"", 0, "R", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetXY(marginLeft, BodyTop)
}

// footer draws the separating rule, generation timestamp, confidentiality
// notice, company name and copyright line inside the bottom band.
func (d *decorator) footer() {
	doc := d.doc

	lineY := pageHeight - footerBandHeight + 4
	doc.SetDrawColor(180, 180, 180)
	doc.SetLineWidth(0.5)
	doc.Line(marginLeft, lineY, pageWidth-marginRight, lineY)

	doc.SetTextColor(110, 110, 110)
	doc.SetFont("Helvetica", "", 8)

	rowY := lineY + 6
	generated := fmt.Sprintf("Generated: %s at %s",
		d.locale.LongDate(d.generated), d.generated.Format("15:04"))
	doc.SetXY(marginLeft, rowY)
	doc.CellFormat(180, 10, generated, "", 0, "L", false, 0, "")

	doc.SetXY(marginLeft+160, rowY)
	doc.CellFormat(contentWidth-320, 10, casedoc.ConfidentialNotice, "", 0, "C", false, 0, "")

	doc.SetXY(pageWidth-marginRight-160, rowY)
	doc.CellFormat(160, 10, d.tr(d.brand.DisplayCompany()), "", 0, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 7)
	doc.SetXY(marginLeft, rowY+14)
	doc.CellFormat(contentWidth, 9, d.tr(d.brand.DisplayCopyright()), "", 0, "C", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetDrawColor(0, 0, 0)
}
