// Package record defines the metadata record assembled during an entry
// session: the author and contributor people, geographic locations, temporal
// coverage, attribution fields, and keywords, plus the validators applied to
// raw field input before it lands in the record.
//
// The record is a plain aggregate edited by exactly one session at a time.
// The presentation layers (terminal prompts, form UI) own all I/O; they feed
// validated strings into the setters here and read the record back out for
// summaries and corrections.
package record

import (
	"fmt"
	"strings"
)

// IdentifierKind tags a person identifier.
type IdentifierKind string

const (
	IdentifierORCID IdentifierKind = "ORCID"
	IdentifierEmail IdentifierKind = "email"
)

// Identifier is a single identifier attached to a person.
type Identifier struct {
	Value string         `json:"value" yaml:"value"`
	Kind  IdentifierKind `json:"kind" yaml:"kind"`
}

// Affiliation is an institutional affiliation, optionally resolved to a ROR
// identifier. An empty RORID means the affiliation was entered without one.
type Affiliation struct {
	Name  string `json:"name" yaml:"name"`
	RORID string `json:"ror_id,omitempty" yaml:"ror_id,omitempty"`
}

// Person is the author or one contributor. Each contributor owns its own
// Affiliation; nothing is shared between entries.
type Person struct {
	Name        string       `json:"name" yaml:"name"`
	Identifiers []Identifier `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`
	Affiliation Affiliation  `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// ORCID returns the person's ORCID identifier value, or "" if none is set.
func (p Person) ORCID() string {
	for _, id := range p.Identifiers {
		if id.Kind == IdentifierORCID {
			return id.Value
		}
	}
	return ""
}

// Email returns the person's email identifier value, or "" if none is set.
func (p Person) Email() string {
	for _, id := range p.Identifiers {
		if id.Kind == IdentifierEmail {
			return id.Value
		}
	}
	return ""
}

// SetIdentifier sets or replaces the identifier of the given kind. An empty
// value removes it. Relative order of the remaining identifiers is kept.
func (p *Person) SetIdentifier(kind IdentifierKind, value string) {
	value = strings.TrimSpace(value)
	for i, id := range p.Identifiers {
		if id.Kind == kind {
			if value == "" {
				p.Identifiers = append(p.Identifiers[:i], p.Identifiers[i+1:]...)
			} else {
				p.Identifiers[i].Value = value
			}
			return
		}
	}
	if value != "" {
		p.Identifiers = append(p.Identifiers, Identifier{Value: value, Kind: kind})
	}
}

// Location is one geographic location. Coordinates are kept as the raw
// validated strings; numeric coercion happens only when the record is
// transformed into the output document. Out-of-range values are tolerated
// here: the coordinate validator warns but does not reject them.
type Location struct {
	Place     string `json:"place" yaml:"place"`
	Latitude  string `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// Temporal is the data-collection time range. No ordering is enforced
// between start and end; an end before the start is accepted as entered.
type Temporal struct {
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	StartTime string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	EndTime   string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
}

// Attribution holds the license, DOI, and version fields.
type Attribution struct {
	License string `json:"license,omitempty" yaml:"license,omitempty"`
	DOI     string `json:"doi,omitempty" yaml:"doi,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Record is the root metadata aggregate for one dataset. It is created empty
// at session start and populated incrementally, in any order.
type Record struct {
	Title           string `json:"title" yaml:"title"`
	Description     string `json:"description" yaml:"description"`
	PublicationYear string `json:"publication_year" yaml:"publication_year"`
	ResourceType    string `json:"resource_type" yaml:"resource_type"`

	Author       Person     `json:"author" yaml:"author"`
	Contributors []Person   `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	Locations    []Location `json:"locations,omitempty" yaml:"locations,omitempty"`
	Temporal     Temporal   `json:"temporal,omitempty" yaml:"temporal,omitempty"`
	Attribution  Attribution `json:"attribution,omitempty" yaml:"attribution,omitempty"`
	Keywords     []string   `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// New creates an empty Record.
func New() *Record {
	return &Record{}
}

// SetAuthor replaces the primary author.
func (r *Record) SetAuthor(p Person) {
	r.Author = p
}

// AddContributor appends a contributor and returns its position.
func (r *Record) AddContributor(p Person) int {
	r.Contributors = append(r.Contributors, p)
	return len(r.Contributors) - 1
}

// UpdateContributor replaces the contributor at the given position.
func (r *Record) UpdateContributor(i int, p Person) error {
	if i < 0 || i >= len(r.Contributors) {
		return fmt.Errorf("no contributor at position %d", i)
	}
	r.Contributors[i] = p
	return nil
}

// RemoveContributor removes the contributor at the given position. Later
// entries shift down by one.
func (r *Record) RemoveContributor(i int) error {
	if i < 0 || i >= len(r.Contributors) {
		return fmt.Errorf("no contributor at position %d", i)
	}
	r.Contributors = append(r.Contributors[:i], r.Contributors[i+1:]...)
	return nil
}

// AddLocation appends a location and returns its position.
func (r *Record) AddLocation(l Location) int {
	r.Locations = append(r.Locations, l)
	return len(r.Locations) - 1
}

// UpdateLocation replaces the location at the given position.
func (r *Record) UpdateLocation(i int, l Location) error {
	if i < 0 || i >= len(r.Locations) {
		return fmt.Errorf("no location at position %d", i)
	}
	r.Locations[i] = l
	return nil
}

// RemoveLocation removes the location at the given position. Later entries
// shift down by one.
func (r *Record) RemoveLocation(i int) error {
	if i < 0 || i >= len(r.Locations) {
		return fmt.Errorf("no location at position %d", i)
	}
	r.Locations = append(r.Locations[:i], r.Locations[i+1:]...)
	return nil
}

// SetTemporal replaces the temporal coverage.
func (r *Record) SetTemporal(t Temporal) {
	r.Temporal = t
}

// SetAttribution replaces the attribution fields.
func (r *Record) SetAttribution(a Attribution) {
	r.Attribution = a
}

// SetKeywords replaces the keyword list from raw input. Both commas and
// newlines separate keywords; fragments are trimmed and empty ones dropped.
// Order is preserved and duplicates are retained.
func (r *Record) SetKeywords(raw string) {
	r.Keywords = SplitKeywords(raw)
}

// SplitKeywords normalizes raw keyword input into a list.
func SplitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, kw := range strings.Split(strings.ReplaceAll(raw, "\n", ","), ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
