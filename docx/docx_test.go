package docx_test

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/lvillar/casedoc"
	"github.com/lvillar/casedoc/docx"
)

func sampleRecord() *casedoc.Record {
	birth := time.Date(1989, time.March, 14, 0, 0, 0, 0, time.UTC)
	return &casedoc.Record{
		CaseNumber: "CP-2024-01187",
		Personal: &casedoc.Personal{
			FirstName: "Maria",
			LastName:  "Reyes",
			BirthDate: &birth,
		},
		Employer: &casedoc.Employer{
			Name: "Al Rajhi Trading & Services <LLC>",
		},
	}
}

func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("opening package: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening document part: %v", err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading document part: %v", err)
		}
		return string(content)
	}
	t.Fatal("word/document.xml missing from package")
	return ""
}

func TestRenderDocument(t *testing.T) {
	doc, err := docx.Render(sampleRecord(), casedoc.BrandConfig{CompanyName: "Overseas Welfare Desk"},
		casedoc.WithGeneratedAt(time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if doc.FileName != "Maria_Reyes.docx" {
		t.Errorf("file name = %q", doc.FileName)
	}

	content := documentXML(t, doc.Bytes())

	for _, want := range []string{
		"Overseas Welfare Desk",
		casedoc.TitlePersonal,
		casedoc.TitleSaudiAgency,
		casedoc.TitleComplaint,
		"March 14, 1989",
		casedoc.FallbackNotAssigned,
		casedoc.ConfidentialNotice,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
	t.Logf("DOCX package: %d bytes", len(doc.Bytes()))
}

func TestRenderEscapesMarkup(t *testing.T) {
	doc, err := docx.Render(sampleRecord(), casedoc.BrandConfig{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	content := documentXML(t, doc.Bytes())

	if !strings.Contains(content, "Al Rajhi Trading &amp; Services &lt;LLC&gt;") {
		t.Error("employer name was not XML-escaped")
	}
	if strings.Contains(content, "<LLC>") {
		t.Error("raw markup leaked into document.xml")
	}
}

func TestRenderNilRecord(t *testing.T) {
	if _, err := docx.Render(nil, casedoc.BrandConfig{}); err == nil {
		t.Fatal("expected error for nil record")
	}
}

func TestRenderDeterministic(t *testing.T) {
	at := time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC)

	first, err := docx.Render(sampleRecord(), casedoc.BrandConfig{}, casedoc.WithGeneratedAt(at))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := docx.Render(sampleRecord(), casedoc.BrandConfig{}, casedoc.WithGeneratedAt(at))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("identical inputs must produce byte-identical packages")
	}
}
