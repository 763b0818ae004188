package casedoc

// Field is one label/value pair within a section. The value is already
// display-formatted: fallback literals resolved, dates rendered, statuses
// capitalized.
type Field struct {
	Label string
	Value string
}

// Section is a named, ordered group of fields rendered as one visual unit.
type Section struct {
	Title  string
	Fields []Field
}

// Canonical section titles, in render order.
const (
	TitlePersonal    = "PERSONAL INFORMATION"
	TitleIdentity    = "IDENTIFICATION"
	TitleLocation    = "LOCATION STATUS"
	TitleEmployer    = "EMPLOYER INFORMATION"
	TitleEmployment  = "EMPLOYMENT DETAILS"
	TitleFlight      = "FLIGHT INFORMATION"
	TitlePhilAgency  = "PHILIPPINE RECRUITMENT AGENCY"
	TitleSaudiAgency = "SAUDI RECRUITMENT AGENCY"
	TitleComplaint   = "COMPLAINT DETAILS"
)

// Sections extracts the canonical nine sections from a record. The sequence
// and its titles are fixed: a record always yields the same nine sections in
// the same order, with absent sub-records resolved to fallback values. All
// output encodings consume this one extraction.
func Sections(r *Record, lc Locale) []Section {
	if r == nil {
		r = &Record{}
	}
	return []Section{
		personalSection(r.Personal, lc),
		identitySection(r.Identity, lc),
		locationSection(r.Location, lc),
		employerSection(r.Employer),
		employmentSection(r.Employment, lc),
		flightSection(r.Flight, lc),
		agencySection(TitlePhilAgency, r.PhilAgency),
		agencySection(TitleSaudiAgency, r.SaudiAgency),
		complaintSection(r.Complaint, lc),
	}
}

func personalSection(p *Personal, lc Locale) Section {
	if p == nil {
		p = &Personal{}
	}
	return Section{Title: TitlePersonal, Fields: []Field{
		{"Full Name", Text(fullName(p), FallbackNotProvided)},
		{"Sex", Text(p.Sex, FallbackNotProvided)},
		{"Civil Status", Text(p.CivilStatus, FallbackNotProvided)},
		{"Date of Birth", FormatDate(p.BirthDate, lc)},
		{"Nationality", Text(p.Nationality, FallbackNotProvided)},
		{"Contact Number", Text(p.ContactNumber, FallbackNotProvided)},
		{"Home Address", Text(p.HomeAddress, FallbackNotProvided)},
	}}
}

func identitySection(id *Identity, lc Locale) Section {
	if id == nil {
		id = &Identity{}
	}
	return Section{Title: TitleIdentity, Fields: []Field{
		{"Passport Number", Text(id.PassportNumber, FallbackNotProvided)},
		{"Passport Issued", FormatDate(id.PassportIssued, lc)},
		{"Passport Expiry", FormatDate(id.PassportExpiry, lc)},
		{"National ID", Text(id.NationalID, FallbackNotProvided)},
		{"Work Permit ID", Text(id.WorkPermitID, FallbackNotProvided)},
	}}
}

func locationSection(ls *LocationStatus, lc Locale) Section {
	if ls == nil {
		ls = &LocationStatus{}
	}
	return Section{Title: TitleLocation, Fields: []Field{
		{"Current City", Text(ls.CurrentCity, FallbackNotProvided)},
		{"Country", Text(ls.Country, FallbackNotProvided)},
		{"Status", Status(ls.Status)},
		{"Shelter", Text(ls.ShelterName, FallbackNotApplicable)},
		{"Last Verified", FormatDate(ls.LastVerified, lc)},
	}}
}

func employerSection(e *Employer) Section {
	if e == nil {
		e = &Employer{}
	}
	return Section{Title: TitleEmployer, Fields: []Field{
		{"Employer Name", Text(e.Name, FallbackNotProvided)},
		{"Address", Text(e.Address, FallbackNotProvided)},
		{"City", Text(e.City, FallbackNotProvided)},
		{"Contact Number", Text(e.ContactNumber, FallbackNotProvided)},
		{"Email", Text(e.Email, FallbackNotProvided)},
	}}
}

func employmentSection(e *Employment, lc Locale) Section {
	if e == nil {
		e = &Employment{}
	}
	return Section{Title: TitleEmployment, Fields: []Field{
		{"Position", Text(e.Position, FallbackNotProvided)},
		{"Monthly Salary", Text(e.MonthlySalary, FallbackNotProvided)},
		{"Work Site", Text(e.WorkSite, FallbackNotProvided)},
		{"Contract Start", FormatDate(e.ContractStart, lc)},
		{"Contract End", FormatDate(e.ContractEnd, lc)},
	}}
}

func flightSection(f *Flight, lc Locale) Section {
	if f == nil {
		f = &Flight{}
	}
	return Section{Title: TitleFlight, Fields: []Field{
		{"Airline", Text(f.Airline, FallbackNotApplicable)},
		{"Flight Number", Text(f.FlightNumber, FallbackNotApplicable)},
		{"Ticket Number", Text(f.TicketNumber, FallbackNotApplicable)},
		{"Departure Date", FormatDate(f.DepartureDate, lc)},
		{"Departure Airport", Text(f.DepartureAirport, FallbackNotApplicable)},
		{"Arrival Airport", Text(f.ArrivalAirport, FallbackNotApplicable)},
	}}
}

func agencySection(title string, a *Agency) Section {
	if a == nil {
		a = &Agency{}
	}
	return Section{Title: title, Fields: []Field{
		{"Agency Name", Text(a.Name, FallbackNotAssigned)},
		{"License Number", Text(a.LicenseNumber, FallbackNotAssigned)},
		{"Address", Text(a.Address, FallbackNotProvided)},
		{"Contact Person", Text(a.ContactPerson, FallbackNotAssigned)},
		{"Contact Number", Text(a.ContactNumber, FallbackNotProvided)},
	}}
}

func complaintSection(c *Complaint, lc Locale) Section {
	if c == nil {
		c = &Complaint{}
	}
	return Section{Title: TitleComplaint, Fields: []Field{
		{"Nature of Complaint", Text(c.Nature, FallbackNotApplicable)},
		{"Details", Text(c.Details, FallbackNotApplicable)},
		{"Status", Status(c.Status)},
		{"Case Officer", Text(c.CaseOfficer, FallbackNotAssigned)},
		{"Date Filed", FormatDate(c.FiledDate, lc)},
	}}
}

func fullName(p *Personal) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return joinNonEmpty(parts)
}
