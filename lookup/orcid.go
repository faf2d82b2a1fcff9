package lookup

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultORCIDBaseURL is the public ORCID CSV search endpoint. The CSV
// search is used because its field list can include the current institution,
// which makes candidates much easier to tell apart.
const DefaultORCIDBaseURL = "https://pub.orcid.org/v3.0/csv-search"

// orcidFieldList is the fixed fl parameter: positional response columns.
const orcidFieldList = "orcid,given-names,family-name,current-institution-affiliation-name"

// Researcher is one unresolved ORCID match pending disambiguation.
type Researcher struct {
	ORCID       string
	GivenNames  string
	FamilyName  string
	Affiliation string // current institution, may be empty
	DisplayName string
}

// ORCIDClient looks up researchers by name.
type ORCIDClient struct {
	BaseURL    string
	MaxResults int
	HTTPClient *http.Client
}

// NewORCIDClient creates an ORCID lookup client with the given request
// timeout. A zero timeout uses DefaultTimeout.
func NewORCIDClient(baseURL string, timeout time.Duration) *ORCIDClient {
	if baseURL == "" {
		baseURL = DefaultORCIDBaseURL
	}
	return &ORCIDClient{
		BaseURL:    baseURL,
		MaxResults: 5,
		HTTPClient: newHTTPClient(timeout),
	}
}

// Search queries ORCID for researchers matching the exact given and family
// names. Both names must be non-blank, otherwise no request is made. Rows
// with fewer than 4 columns or an empty identifier are dropped. The result
// is capped at MaxResults; it is empty on any transport or parse failure.
func (c *ORCIDClient) Search(firstName, lastName string) []Researcher {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil
	}

	params := url.Values{}
	// Plain quoting: the service's query syntax does not use Go escaping,
	// so names are embedded verbatim.
	params.Set("q", `given-names:"`+firstName+`" AND family-name:"`+lastName+`"`)
	params.Set("fl", orcidFieldList)

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		slog.Warn("building ORCID request failed", "error", err)
		return nil
	}
	req.Header.Set("Accept", "text/csv")

	slog.Debug("searching ORCID", "given", firstName, "family", lastName)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Warn("ORCID lookup failed, continuing without ORCID iD", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("ORCID lookup failed, continuing without ORCID iD", "status", resp.StatusCode)
		return nil
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		slog.Warn("parsing ORCID response failed", "error", err)
		return nil
	}

	// The first row is the column header.
	if len(rows) > 0 {
		rows = rows[1:]
	}

	max := c.MaxResults
	if max <= 0 {
		max = 5
	}

	var results []Researcher
	for _, row := range rows {
		if len(results) == max {
			break
		}
		r, ok := parseResearcherRow(row)
		if !ok {
			slog.Debug("dropping invalid ORCID result row", "columns", len(row))
			continue
		}
		results = append(results, r)
	}

	if len(results) == 0 {
		slog.Debug("no valid ORCID entries found", "given", firstName, "family", lastName)
	}
	return results
}

// parseResearcherRow converts one positional CSV row into a candidate. A row
// is valid only if it has at least 4 columns and a non-empty identifier.
func parseResearcherRow(row []string) (Researcher, bool) {
	if len(row) < 4 {
		return Researcher{}, false
	}
	orcid := strings.TrimSpace(row[0])
	if orcid == "" {
		return Researcher{}, false
	}

	given := strings.TrimSpace(row[1])
	family := strings.TrimSpace(row[2])
	return Researcher{
		ORCID:       orcid,
		GivenNames:  given,
		FamilyName:  family,
		Affiliation: strings.TrimSpace(row[3]),
		DisplayName: strings.TrimSpace(given + " " + family),
	}, true
}
