// Package document defines the fully-resolved document records and the
// assembler that builds them from submitted form values plus the static
// lookup data. A record is renderer-agnostic: the PDF and DOCX renderers
// consume the same record.
package document

import (
	"time"

	"formalgen/internal/lookup"
)

// OfficeOrder is the resolved data of one office order.
type OfficeOrder struct {
	Language  lookup.Language
	Header    []string
	Title     string
	Reference string
	Date      string
	Body      string
	From      string
	To        []string
}

// Circular is the resolved data of one circular.
type Circular struct {
	Language lookup.Language
	Header   lookup.CircularHeader
	Date     string
	Subject  string
	Body     string
	From     string
	ToPeople []lookup.Person
}

// Title returns the fixed circular heading in the record's language.
func (c Circular) Title() string {
	if c.Language == lookup.LangHI {
		return "परिपत्र"
	}
	return "Circular"
}

// DateLabel returns the language-specific date prefix used on a circular.
func (c Circular) DateLabel() string {
	if c.Language == lookup.LangHI {
		return "दिनांक :"
	}
	return "Date :"
}

// SubjectLabel returns the language-specific subject prefix.
func (c Circular) SubjectLabel() string {
	if c.Language == lookup.LangHI {
		return "विषय :"
	}
	return "Subject :"
}

// TableLabels returns the circular recipient table headers (serial number,
// name, signature) in the record's language.
func (c Circular) TableLabels() (sr, name, sign string) {
	if c.Language == lookup.LangHI {
		return "क्र.", "नाम", "हस्ताक्षर"
	}
	return "Sr. No.", "Name", "Sign"
}

// TableHeaders returns the same labels as TableLabels as a slice, in table
// column order. Templates range over it.
func (c Circular) TableHeaders() []string {
	sr, name, sign := c.TableLabels()
	return []string{sr, name, sign}
}

// FormatDate normalizes a form date (YYYY-MM-DD) to DD-MM-YYYY. Anything
// that does not parse is passed through unchanged.
func FormatDate(raw string) string {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return t.Format("02-01-2006")
}
