package record

import "fmt"

// Field identifies a correctable record field. The correction entry point
// switches exhaustively over these tags, so every field a presentation layer
// can offer for correction is covered at compile time rather than through a
// string lookup.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldPublicationYear
	FieldResourceType
	FieldAuthorName
	FieldAuthorORCID
	FieldAuthorEmail
	FieldAuthorAffiliation
	FieldAuthorAffiliationID
	FieldLicense
	FieldDOI
	FieldVersion
	FieldStartDate
	FieldStartTime
	FieldEndDate
	FieldEndTime
	FieldKeywords
)

// String returns the human-readable label used in correction menus.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldDescription:
		return "description"
	case FieldPublicationYear:
		return "publication year"
	case FieldResourceType:
		return "resource type"
	case FieldAuthorName:
		return "author name"
	case FieldAuthorORCID:
		return "author ORCID ID"
	case FieldAuthorEmail:
		return "author email"
	case FieldAuthorAffiliation:
		return "author affiliation"
	case FieldAuthorAffiliationID:
		return "author affiliation ROR ID"
	case FieldLicense:
		return "license"
	case FieldDOI:
		return "DOI"
	case FieldVersion:
		return "version"
	case FieldStartDate:
		return "start date"
	case FieldStartTime:
		return "start time"
	case FieldEndDate:
		return "end date"
	case FieldEndTime:
		return "end time"
	case FieldKeywords:
		return "keywords"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Correct applies a corrected raw value to a single field. Values are stored
// as given; callers run the appropriate validator before calling Correct.
func (r *Record) Correct(f Field, value string) error {
	switch f {
	case FieldTitle:
		r.Title = value
	case FieldDescription:
		r.Description = value
	case FieldPublicationYear:
		r.PublicationYear = value
	case FieldResourceType:
		r.ResourceType = value
	case FieldAuthorName:
		r.Author.Name = value
	case FieldAuthorORCID:
		r.Author.SetIdentifier(IdentifierORCID, value)
	case FieldAuthorEmail:
		r.Author.SetIdentifier(IdentifierEmail, value)
	case FieldAuthorAffiliation:
		r.Author.Affiliation.Name = value
	case FieldAuthorAffiliationID:
		r.Author.Affiliation.RORID = value
	case FieldLicense:
		r.Attribution.License = value
	case FieldDOI:
		r.Attribution.DOI = value
	case FieldVersion:
		r.Attribution.Version = value
	case FieldStartDate:
		r.Temporal.StartDate = value
	case FieldStartTime:
		r.Temporal.StartTime = value
	case FieldEndDate:
		r.Temporal.EndDate = value
	case FieldEndTime:
		r.Temporal.EndTime = value
	case FieldKeywords:
		r.SetKeywords(value)
	default:
		return fmt.Errorf("unknown field: %v", f)
	}
	return nil
}
