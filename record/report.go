package record

import (
	"fmt"
	"strings"
)

// ValidationError is one validation finding with its field path.
type ValidationError struct {
	Field   string // field path, e.g. "locations[0].latitude"
	Code    string // e.g. "required", "invalid_format", "out_of_range"
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Report collects all findings for a record. Errors are format problems the
// operator must fix or blank out; Warnings are soft range diagnostics on
// values the record keeps anyway.
type Report struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid reports whether the record has no errors.
func (r *Report) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether any warnings were recorded.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err returns a combined error, or nil if the record is valid.
func (r *Report) Err() error {
	if r.IsValid() {
		return nil
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// Validate sweeps the field validators over a whole record. Interactive
// sessions validate field-by-field at entry time; this entry point covers
// records loaded from files.
func Validate(rec *Record) *Report {
	report := &Report{}

	if strings.TrimSpace(rec.Title) == "" {
		report.Errors = append(report.Errors, ValidationError{
			Field:   "title",
			Code:    "required",
			Message: "title is required",
		})
	}

	report.add("publication_year", ValidateYear(rec.PublicationYear))
	report.add("attribution.doi", ValidateDOI(rec.Attribution.DOI))

	report.addPerson("author", rec.Author)
	for i, c := range rec.Contributors {
		report.addPerson(fmt.Sprintf("contributors[%d]", i), c)
	}

	for i, l := range rec.Locations {
		report.add(fmt.Sprintf("locations[%d].latitude", i), ValidateCoordinate(l.Latitude, Latitude))
		report.add(fmt.Sprintf("locations[%d].longitude", i), ValidateCoordinate(l.Longitude, Longitude))
	}

	report.add("temporal.start_date", ValidateDate(rec.Temporal.StartDate))
	report.add("temporal.start_time", ValidateTime(rec.Temporal.StartTime))
	report.add("temporal.end_date", ValidateDate(rec.Temporal.EndDate))
	report.add("temporal.end_time", ValidateTime(rec.Temporal.EndTime))

	return report
}

func (r *Report) add(field string, res Result) {
	if !res.OK {
		r.Errors = append(r.Errors, ValidationError{
			Field:   field,
			Code:    "invalid_format",
			Message: res.Message,
		})
		return
	}
	if res.Warning != "" {
		r.Warnings = append(r.Warnings, ValidationError{
			Field:   field,
			Code:    "out_of_range",
			Message: res.Warning,
		})
	}
}

func (r *Report) addPerson(field string, p Person) {
	for i, id := range p.Identifiers {
		if id.Kind == IdentifierORCID {
			r.add(fmt.Sprintf("%s.identifiers[%d]", field, i), ValidateORCID(id.Value))
		}
	}
}
