// Package casedoc renders a worker-case profile record into export documents.
//
// A Record is a collection of optional sub-records (personal details, identity
// papers, location status, employer, employment terms, flight, recruitment
// agencies, complaint). Any sub-record may be absent; absence is a normal
// state resolved to fallback text at render time, never an error.
//
// The package defines the record schema, the canonical section/field
// extraction shared by every output encoding, and caller-supplied brand and
// render options. The encodings themselves live in the pdf, sheet and docx
// subpackages.
package casedoc

import "time"

// Record is the complete case profile being reported on. Every sub-record is
// optional; a nil sub-record renders as a section of fallback values.
type Record struct {
	// CaseNumber is the tracking reference assigned when the case was opened.
	CaseNumber string

	Personal    *Personal
	Identity    *Identity
	Location    *LocationStatus
	Employer    *Employer
	Employment  *Employment
	Flight      *Flight
	PhilAgency  *Agency // deploying agency in the Philippines
	SaudiAgency *Agency // receiving agency in Saudi Arabia
	Complaint   *Complaint

	// PhotoBytes holds an optional subject photo (PNG, JPEG, GIF or WebP).
	PhotoBytes []byte
}

// Personal holds the subject's basic personal details.
type Personal struct {
	FirstName     string
	MiddleName    string
	LastName      string
	Sex           string
	CivilStatus   string
	BirthDate     *time.Time
	Nationality   string
	ContactNumber string
	HomeAddress   string
}

// Identity holds travel and identification documents.
type Identity struct {
	PassportNumber string
	PassportIssued *time.Time
	PassportExpiry *time.Time
	NationalID     string
	WorkPermitID   string
}

// LocationStatus records where the subject currently is and how the case
// stands.
type LocationStatus struct {
	CurrentCity  string
	Country      string
	Status       string // e.g. "deployed", "sheltered", "repatriated"
	ShelterName  string
	LastVerified *time.Time
}

// Employer identifies the foreign employer.
type Employer struct {
	Name          string
	Address       string
	City          string
	ContactNumber string
	Email         string
}

// Employment holds the terms of the employment contract.
type Employment struct {
	Position      string
	MonthlySalary string
	WorkSite      string
	ContractStart *time.Time
	ContractEnd   *time.Time
}

// Flight holds deployment flight and ticket details.
type Flight struct {
	Airline          string
	FlightNumber     string
	TicketNumber     string
	DepartureDate    *time.Time
	DepartureAirport string
	ArrivalAirport   string
}

// Agency identifies a recruitment agency on either end of the deployment.
type Agency struct {
	Name          string
	LicenseNumber string
	Address       string
	ContactPerson string
	ContactNumber string
}

// Complaint holds the complaint filed for the case, if any.
type Complaint struct {
	Nature      string
	Details     string
	Status      string
	CaseOfficer string
	FiledDate   *time.Time
}

// Shared literals stamped by every output encoding.
const (
	// DefaultProductName is used when the brand carries no company name.
	DefaultProductName = "CaseDoc"

	// DefaultCopyright is used when the brand carries no copyright text.
	DefaultCopyright = "Copyright (c) CaseDoc. All rights reserved."

	// ReportCaption is the fixed report title shown under the company name.
	ReportCaption = "Worker Case Profile Report"

	// ConfidentialNotice is the fixed confidentiality line in footers.
	ConfidentialNotice = "CONFIDENTIAL: For authorized use only"
)

// BrandConfig is caller-supplied identity and styling data. It is read-only:
// renderers apply defaults at the point of use and never modify it.
type BrandConfig struct {
	// CompanyName appears in the page header and footer. When empty the
	// renderers fall back to a default product name.
	CompanyName string

	// LogoBytes holds an optional logo image (PNG, JPEG, GIF or WebP).
	// Only drawn when the logo render option is enabled.
	LogoBytes []byte

	// CopyrightText appears in the page footer. When empty the renderers
	// fall back to a default copyright line.
	CopyrightText string
}

// DisplayCompany returns the company name, or DefaultProductName when unset.
func (b BrandConfig) DisplayCompany() string {
	if b.CompanyName == "" {
		return DefaultProductName
	}
	return b.CompanyName
}

// DisplayCopyright returns the copyright text, or DefaultCopyright when
// unset.
func (b BrandConfig) DisplayCopyright() string {
	if b.CopyrightText == "" {
		return DefaultCopyright
	}
	return b.CopyrightText
}
