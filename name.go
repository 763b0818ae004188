package casedoc

import "strings"

// DefaultSubjectName is used when the record carries no personal name.
const DefaultSubjectName = "Unnamed Subject"

// DisplayName returns the subject's display name for headers and file names.
func DisplayName(r *Record) string {
	if r == nil || r.Personal == nil {
		return DefaultSubjectName
	}
	name := fullName(r.Personal)
	if name == "" {
		return DefaultSubjectName
	}
	return name
}

// SuggestedFileName derives a file name from the subject's display name with
// all whitespace collapsed to underscores. ext is appended as given
// (e.g. ".pdf").
func SuggestedFileName(r *Record, ext string) string {
	return strings.Join(strings.Fields(DisplayName(r)), "_") + ext
}

func joinNonEmpty(parts []string) string {
	return strings.Join(parts, " ")
}
