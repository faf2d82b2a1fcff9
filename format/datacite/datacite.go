// Package datacite transforms a completed metadata record into the nested
// DataCite JSON payload consumed by the Datalakes publishing service.
package datacite

// Publisher is the fixed publisher emitted in every document.
const Publisher = "Datalakes"

const (
	orcidSchemeURI = "https://orcid.org"
	rorSchemeURI   = "https://ror.org"
)

// Document is the output payload: {data: {type: "dois", attributes: {...}}}.
type Document struct {
	Data Data `json:"data"`
}

// Data wraps the attributes with the JSON:API type tag.
type Data struct {
	Type       string     `json:"type"`
	Attributes Attributes `json:"attributes"`
}

// Attributes holds the DataCite properties. Titles, creators, publisher,
// publicationYear, resourceType, and descriptions are always present; the
// remaining blocks are omitted entirely when their source fields are empty.
type Attributes struct {
	Titles          []Title       `json:"titles"`
	Creators        []Person      `json:"creators"`
	Publisher       string        `json:"publisher"`
	PublicationYear int           `json:"publicationYear"`
	ResourceType    string        `json:"resourceType"`
	Descriptions    []Description `json:"descriptions"`
	Contributors    []Person      `json:"contributors,omitempty"`
	GeoLocations    []GeoLocation `json:"geoLocations,omitempty"`
	Dates           []Date        `json:"dates,omitempty"`
	Subjects        []Subject     `json:"subjects,omitempty"`
	DOI             string        `json:"doi,omitempty"`
	RightsList      []Rights      `json:"rightsList,omitempty"`
	Version         string        `json:"version,omitempty"`
}

type Title struct {
	Title string `json:"title"`
}

// Person is a creator or contributor entry.
type Person struct {
	Name            string           `json:"name"`
	NameType        string           `json:"nameType"`
	Affiliation     []Affiliation    `json:"affiliation,omitempty"`
	NameIdentifiers []NameIdentifier `json:"nameIdentifiers,omitempty"`
}

// Affiliation carries the ROR sub-block only when an identifier is present.
type Affiliation struct {
	Name                        string `json:"name"`
	SchemeURI                   string `json:"schemeUri,omitempty"`
	AffiliationIdentifier       string `json:"affiliationIdentifier,omitempty"`
	AffiliationIdentifierScheme string `json:"affiliationIdentifierScheme,omitempty"`
}

type NameIdentifier struct {
	SchemeURI            string `json:"schemeUri"`
	NameIdentifier       string `json:"nameIdentifier"`
	NameIdentifierScheme string `json:"nameIdentifierScheme"`
}

type Description struct {
	Description     string `json:"description"`
	DescriptionType string `json:"descriptionType"`
}

// GeoLocation emits the point block only for a complete coordinate pair.
type GeoLocation struct {
	Place string    `json:"geoLocationPlace,omitempty"`
	Point *GeoPoint `json:"geoLocationPoint,omitempty"`
}

type GeoPoint struct {
	PointLatitude  float64 `json:"pointLatitude"`
	PointLongitude float64 `json:"pointLongitude"`
}

type Date struct {
	Date     string `json:"date"`
	DateType string `json:"dateType"`
}

type Subject struct {
	Subject string `json:"subject"`
}

type Rights struct {
	Rights string `json:"rights"`
}
