package pdf

import "github.com/lvillar/casedoc"

// drawSection renders a titled section banner followed by its rows. The
// banner is only started when it fits together with at least one row of
// space; otherwise the whole section begins on a fresh page. Rows then check
// fit individually, so long sections flow naturally across page boundaries.
func (e *engine) drawSection(s casedoc.Section) {
	if !e.cur.Reserve(bannerHeight+rowHeight) && e.cur.Y > BodyTop {
		e.breakPage()
	}
	e.drawBanner(s.Title)
	for i, f := range s.Fields {
		e.drawRow(f.Label, f.Value, i)
	}
	e.cur.Advance(sectionGap)
	if e.cur.Y > BodyBottom {
		e.cur.Y = BodyBottom
	}
	e.doc.SetXY(marginLeft, e.cur.Y)
}

// drawBanner draws the section title band with its left accent bar.
func (e *engine) drawBanner(title string) {
	y := e.cur.Y

	e.doc.SetFillColor(232, 234, 246)
	e.doc.Rect(marginLeft, y, contentWidth, bannerHeight, "F")
	e.doc.SetFillColor(63, 81, 181)
	e.doc.Rect(marginLeft, y, 4, bannerHeight, "F")

	e.doc.SetTextColor(48, 63, 159)
	e.doc.SetFont("Helvetica", "B", 11)
	e.doc.SetXY(marginLeft+labelIndent, y+4)
	e.doc.CellFormat(contentWidth-labelIndent, 12, e.tr(title), "", 0, "L", false, 0, "")
	e.doc.SetTextColor(0, 0, 0)

	e.cur.Advance(bannerHeight + 2)
	e.doc.SetXY(marginLeft, e.cur.Y)
}

// drawRow renders one label/value pair at the cursor. Even-indexed rows get a
// light background tint (the first row is tinted). Values longer than the
// wrap threshold are split into lines constrained to the value column width,
// and the row height grows with the line count; wrapped lines are never split
// across pages. A row taller than the entire body region is drawn at the
// current offset even though it overflows.
func (e *engine) drawRow(label, value string, rowIndex int) {
	e.doc.SetFont("Helvetica", "", 10)

	value = e.tr(value)
	lines := []string{value}
	if len([]rune(value)) > wrapThreshold {
		lines = e.doc.SplitText(value, valueWidth)
	}

	h := rowHeight
	if len(lines) > 1 {
		h = float64(len(lines))*lineHeight + 2*rowPadV
	}

	if !e.cur.Reserve(h) && e.cur.Y > BodyTop {
		e.breakPage()
	}
	y := e.cur.Y

	if rowIndex%2 == 0 {
		e.doc.SetFillColor(245, 246, 250)
		e.doc.Rect(marginLeft, y, contentWidth, h, "F")
	}

	e.doc.SetFont("Helvetica", "B", 10)
	e.doc.SetTextColor(70, 70, 70)
	e.doc.SetXY(marginLeft+labelIndent, y+rowPadV)
	e.doc.CellFormat(valueColumn-marginLeft-labelIndent, lineHeight, e.tr(label),
		"", 0, "L", false, 0, "")

	e.doc.SetFont("Helvetica", "", 10)
	e.doc.SetTextColor(0, 0, 0)
	for i, line := range lines {
		e.doc.SetXY(valueColumn, y+rowPadV+float64(i)*lineHeight)
		e.doc.CellFormat(valueWidth, lineHeight, line, "", 0, "L", false, 0, "")
	}

	e.cur.Advance(h)
	e.doc.SetXY(marginLeft, e.cur.Y)
}
