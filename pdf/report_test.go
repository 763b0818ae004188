package pdf_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/lvillar/casedoc"
	"github.com/lvillar/casedoc/pdf"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func fullRecord() *casedoc.Record {
	return &casedoc.Record{
		CaseNumber: "CP-2024-01187",
		Personal: &casedoc.Personal{
			FirstName:     "Maria",
			MiddleName:    "Santos",
			LastName:      "Reyes",
			Sex:           "Female",
			CivilStatus:   "Married",
			BirthDate:     date(1989, time.March, 14),
			Nationality:   "Filipino",
			ContactNumber: "+63 917 555 0142",
			HomeAddress:   "124 Mabini Street, Barangay San Isidro, Quezon City",
		},
		Identity: &casedoc.Identity{
			PassportNumber: "P4418821A",
			PassportIssued: date(2021, time.June, 2),
			PassportExpiry: date(2031, time.June, 1),
			NationalID:     "6301-2218-4407-1123",
			WorkPermitID:   "WP-88-441203",
		},
		Location: &casedoc.LocationStatus{
			CurrentCity:  "Riyadh",
			Country:      "Saudi Arabia",
			Status:       "sheltered",
			ShelterName:  "Bahay Kalinga Riyadh",
			LastVerified: date(2024, time.January, 5),
		},
		Employer: &casedoc.Employer{
			Name:          "Al Rajhi Household Services",
			Address:       "King Fahd Road, Al Olaya District",
			City:          "Riyadh",
			ContactNumber: "+966 11 555 2210",
			Email:         "office@alrajhi-hs.example",
		},
		Employment: &casedoc.Employment{
			Position:      "Domestic Worker",
			MonthlySalary: "SAR 1,500",
			WorkSite:      "Private residence, Al Olaya",
			ContractStart: date(2022, time.September, 1),
			ContractEnd:   date(2024, time.August, 31),
		},
		Flight: &casedoc.Flight{
			Airline:          "Saudia",
			FlightNumber:     "SV 871",
			TicketNumber:     "065-4412889023",
			DepartureDate:    date(2022, time.August, 28),
			DepartureAirport: "MNL",
			ArrivalAirport:   "RUH",
		},
		PhilAgency: &casedoc.Agency{
			Name:          "Golden Horizon Manpower Services",
			LicenseNumber: "POEA-041-LB-2019",
			Address:       "Ermita, Manila",
			ContactPerson: "R. Villanueva",
			ContactNumber: "+63 2 8555 0199",
		},
		SaudiAgency: &casedoc.Agency{
			Name:          "Dar Al Khaleej Recruitment",
			LicenseNumber: "SA-22-04417",
			Address:       "Al Malaz, Riyadh",
			ContactPerson: "F. Al Harbi",
			ContactNumber: "+966 11 555 8842",
		},
		Complaint: &casedoc.Complaint{
			Nature:      "Unpaid wages",
			Details:     "Salary withheld for four consecutive months beginning September 2023 despite repeated written demands through the receiving agency.",
			Status:      "under review",
			CaseOfficer: "Atty. L. Domingo",
			FiledDate:   date(2024, time.January, 8),
		},
	}
}

func TestRenderFullRecord(t *testing.T) {
	rec := fullRecord()
	rec.PhotoBytes = pngBytes(t)
	brand := casedoc.BrandConfig{
		CompanyName: "Overseas Welfare Desk",
		LogoBytes:   pngBytes(t),
	}

	rep, err := pdf.Render(rec, brand,
		casedoc.WithLogo(true),
		casedoc.WithPhoto(true),
		casedoc.WithGeneratedAt(time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC)),
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rep.PageCount < 2 {
		t.Errorf("page count = %d, want at least 2 for a full record", rep.PageCount)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", rep.Warnings)
	}
	if rep.FileName != "Maria_Santos_Reyes.pdf" {
		t.Errorf("file name = %q", rep.FileName)
	}

	var buf bytes.Buffer
	if err := rep.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
	t.Logf("Full record PDF: %d pages, %d bytes", rep.PageCount, buf.Len())
}

func TestRenderEmptyRecord(t *testing.T) {
	rep, err := pdf.Render(&casedoc.Record{}, casedoc.BrandConfig{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rep.PageCount < 1 {
		t.Errorf("page count = %d, want at least 1", rep.PageCount)
	}
	if rep.FileName != "Unnamed_Subject.pdf" {
		t.Errorf("file name = %q", rep.FileName)
	}

	var buf bytes.Buffer
	if err := rep.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	t.Logf("Empty record PDF: %d pages, %d bytes", rep.PageCount, buf.Len())
}

func TestRenderNilRecord(t *testing.T) {
	if _, err := pdf.Render(nil, casedoc.BrandConfig{}); err == nil {
		t.Fatal("expected error for nil record")
	}
}

func TestMalformedLogoOmitted(t *testing.T) {
	brand := casedoc.BrandConfig{
		CompanyName: "Overseas Welfare Desk",
		LogoBytes:   []byte("definitely not an image"),
	}

	rep, err := pdf.Render(fullRecord(), brand, casedoc.WithLogo(true))
	if err != nil {
		t.Fatalf("render should survive a bad logo: %v", err)
	}
	if len(rep.Warnings) == 0 {
		t.Error("expected a warning for the malformed logo")
	}

	var buf bytes.Buffer
	if err := rep.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
}

func TestLogoExcludedWithoutOption(t *testing.T) {
	brand := casedoc.BrandConfig{LogoBytes: []byte("junk")}

	// Logo bytes present but the option is off: the bytes must never be
	// touched, so no warning either.
	rep, err := pdf.Render(fullRecord(), brand)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(rep.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", rep.Warnings)
	}
}

func TestRenderDeterministic(t *testing.T) {
	// The underlying writer serializes some PDF objects in map order, so two
	// renders of the same record need not be byte-identical. The layout
	// itself is deterministic: page count, file name, warnings and output
	// size must never vary between runs.
	at := time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC)
	brand := casedoc.BrandConfig{CompanyName: "Overseas Welfare Desk"}

	render := func() (*pdf.Report, int) {
		rep, err := pdf.Render(fullRecord(), brand, casedoc.WithGeneratedAt(at))
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		var buf bytes.Buffer
		if err := rep.Output(&buf); err != nil {
			t.Fatalf("output: %v", err)
		}
		return rep, buf.Len()
	}

	first, firstLen := render()
	second, secondLen := render()
	if first.PageCount != second.PageCount {
		t.Errorf("page count varies between runs: %d vs %d", first.PageCount, second.PageCount)
	}
	if first.FileName != second.FileName {
		t.Errorf("file name varies between runs: %q vs %q", first.FileName, second.FileName)
	}
	if len(first.Warnings) != 0 || len(second.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v / %v", first.Warnings, second.Warnings)
	}
	if firstLen != secondLen {
		t.Errorf("output size varies between runs: %d vs %d bytes", firstLen, secondLen)
	}
}

func TestOversizedComplaintStillRenders(t *testing.T) {
	// A single wrapped value taller than an entire body region: the block is
	// indivisible, so it is drawn overflowing rather than looping or being
	// dropped. The render must still terminate cleanly.
	rec := &casedoc.Record{
		Complaint: &casedoc.Complaint{
			Nature:  "Unpaid wages",
			Details: strings.Repeat("The employer repeatedly withheld wages and confiscated the subject's passport. ", 60),
		},
	}

	rep, err := pdf.Render(rec, casedoc.BrandConfig{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var buf bytes.Buffer
	if err := rep.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	t.Logf("Oversized complaint PDF: %d pages, %d bytes", rep.PageCount, buf.Len())
}
