// Package pdf renders a case profile record as a paginated A4 PDF document.
//
// It is a single-pass layout engine: a cursor tracks the vertical write
// position inside the page body, every block measures itself before drawing,
// and a page break is taken before any write that would overflow the body
// region. Pagination decisions are final; there is no re-layout pass.
package pdf

// Page geometry in points. A4 portrait with a fixed header band at the top
// and a fixed footer band at the bottom; everything between BodyTop and
// BodyBottom is cursor-writable.
const (
	pageWidth  = 595.28
	pageHeight = 841.89

	marginLeft  = 40.0
	marginRight = 40.0

	headerBandHeight = 64.0
	footerBandHeight = 54.0

	// BodyTop is the first writable vertical offset on a page.
	BodyTop = headerBandHeight + 12

	// BodyBottom is the last writable vertical offset on a page.
	BodyBottom = pageHeight - footerBandHeight - 6

	contentWidth = pageWidth - marginLeft - marginRight
)

// Block metrics.
const (
	bannerHeight = 20.0
	rowHeight    = 18.0
	lineHeight   = 12.0
	rowPadV      = 3.0
	sectionGap   = 10.0

	labelIndent = 8.0
	valueColumn = 210.0
	valueWidth  = pageWidth - marginRight - valueColumn - 6

	// wrapThreshold is the value length, in characters, beyond which a row
	// value is wrapped onto multiple lines.
	wrapThreshold = 50

	// verificationMin is the body space, in points, that must remain on the
	// final page for the verification block to be appended.
	verificationMin = 80.0

	photoWidth  = 84.0
	photoHeight = 100.0
	qrSize      = 52.0
)

// Cursor is the mutable layout position: the current page index (starting at
// 1) and the vertical offset within the body region. The engine threads a
// single Cursor through all sections of a render call.
type Cursor struct {
	Page int
	Y    float64
}

// Reserve reports whether a block of the given height fits between the
// current offset and BodyBottom. It is a pure query and never mutates the
// cursor.
func (c Cursor) Reserve(height float64) bool {
	return c.Y+height <= BodyBottom
}

// Advance moves the offset forward by height. Callers confirm fit with
// Reserve first, or intentionally accept overflow for an indivisible block
// taller than the whole body region.
func (c *Cursor) Advance(height float64) {
	c.Y += height
}
