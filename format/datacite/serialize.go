package datacite

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/datalakes/metagen/record"
)

// FromRecord maps a record snapshot into the output document. It is a pure
// function: the same unmodified record always yields an identical document.
//
// Values reaching the numeric coercions here have already passed the field
// validators; a coercion failure is a programming-contract violation and
// returns an error instead of emitting a corrupt document.
func FromRecord(rec *record.Record) (*Document, error) {
	year, err := coerceYear(rec.PublicationYear)
	if err != nil {
		return nil, err
	}

	attrs := Attributes{
		Titles:          []Title{{Title: rec.Title}},
		Creators:        []Person{},
		Publisher:       Publisher,
		PublicationYear: year,
		ResourceType:    rec.ResourceType,
		Descriptions: []Description{{
			Description:     rec.Description,
			DescriptionType: "Abstract",
		}},
	}

	// No placeholder creator is emitted for a nameless author.
	if rec.Author.Name != "" {
		attrs.Creators = append(attrs.Creators, personEntry(rec.Author))
	}

	for _, c := range rec.Contributors {
		if c.Name == "" {
			continue
		}
		attrs.Contributors = append(attrs.Contributors, personEntry(c))
	}

	for i, loc := range rec.Locations {
		entry, ok, err := geoLocationEntry(loc)
		if err != nil {
			return nil, fmt.Errorf("locations[%d]: %w", i, err)
		}
		if ok {
			attrs.GeoLocations = append(attrs.GeoLocations, entry)
		}
	}

	if d, ok := collectedDate(rec.Temporal); ok {
		attrs.Dates = []Date{{Date: d, DateType: "Collected"}}
	}

	for _, kw := range rec.Keywords {
		attrs.Subjects = append(attrs.Subjects, Subject{Subject: kw})
	}

	attrs.DOI = rec.Attribution.DOI
	if rec.Attribution.License != "" {
		attrs.RightsList = []Rights{{Rights: rec.Attribution.License}}
	}
	attrs.Version = rec.Attribution.Version

	return &Document{Data: Data{Type: "dois", Attributes: attrs}}, nil
}

// Serialize writes the record's DataCite document as JSON.
func Serialize(w io.Writer, rec *record.Record, pretty bool) error {
	doc, err := FromRecord(rec)
	if err != nil {
		return fmt.Errorf("building DataCite document: %w", err)
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling DataCite document: %w", err)
	}
	return nil
}

// personEntry maps a person into a creator or contributor entry. The
// affiliation block appears only for a named affiliation, its ROR sub-block
// only when an identifier is present, and the ORCID sub-block only when the
// person carries one. Each entry is built independently.
func personEntry(p record.Person) Person {
	entry := Person{
		Name:     p.Name,
		NameType: "Personal",
	}

	if p.Affiliation.Name != "" {
		aff := Affiliation{Name: p.Affiliation.Name}
		if p.Affiliation.RORID != "" {
			aff.SchemeURI = rorSchemeURI
			aff.AffiliationIdentifier = p.Affiliation.RORID
			aff.AffiliationIdentifierScheme = "ROR"
		}
		entry.Affiliation = []Affiliation{aff}
	}

	if orcid := p.ORCID(); orcid != "" {
		entry.NameIdentifiers = []NameIdentifier{{
			SchemeURI:            orcidSchemeURI,
			NameIdentifier:       orcid,
			NameIdentifierScheme: "ORCID",
		}}
	}

	return entry
}

// geoLocationEntry maps one location. A location contributes an entry if it
// has a place name or a complete coordinate pair; the point block requires
// both coordinates.
func geoLocationEntry(loc record.Location) (GeoLocation, bool, error) {
	hasPair := loc.Latitude != "" && loc.Longitude != ""
	if loc.Place == "" && !hasPair {
		return GeoLocation{}, false, nil
	}

	entry := GeoLocation{Place: loc.Place}
	if hasPair {
		lat, err := strconv.ParseFloat(loc.Latitude, 64)
		if err != nil {
			return GeoLocation{}, false, fmt.Errorf("coercing latitude %q: %w", loc.Latitude, err)
		}
		lon, err := strconv.ParseFloat(loc.Longitude, 64)
		if err != nil {
			return GeoLocation{}, false, fmt.Errorf("coercing longitude %q: %w", loc.Longitude, err)
		}
		entry.Point = &GeoPoint{PointLatitude: lat, PointLongitude: lon}
	}
	return entry, true, nil
}

// collectedDate combines the temporal fields into the single date string
// with the most available precision: a timed ISO interval when both dates
// and both times are present, a date interval when both dates are, and a
// single date when only one bound exists.
func collectedDate(t record.Temporal) (string, bool) {
	switch {
	case t.StartDate != "" && t.EndDate != "" && t.StartTime != "" && t.EndTime != "":
		return fmt.Sprintf("%sT%s/%sT%s", t.StartDate, t.StartTime, t.EndDate, t.EndTime), true
	case t.StartDate != "" && t.EndDate != "":
		return t.StartDate + "/" + t.EndDate, true
	case t.StartDate != "":
		return t.StartDate, true
	case t.EndDate != "":
		return t.EndDate, true
	default:
		return "", false
	}
}

// coerceYear converts the raw publication year. An unset year coerces to 0
// so an incomplete record still yields a structurally valid document.
func coerceYear(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("coercing publicationYear %q: %w", raw, err)
	}
	return y, nil
}
