package lookup

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultRORBaseURL is the public ROR organization search endpoint.
const DefaultRORBaseURL = "https://api.ror.org/organizations"

// rorIDPrefix is stripped from the URL-shaped id field of each result.
const rorIDPrefix = "https://ror.org/"

// Organization is one unresolved ROR match pending disambiguation.
type Organization struct {
	ID      string
	Name    string
	Country string
	Aliases []string // at most 2
}

// RORClient looks up organizations by affiliation name.
type RORClient struct {
	BaseURL    string
	MaxResults int
	HTTPClient *http.Client
}

// NewRORClient creates a ROR lookup client with the given request timeout.
// A zero timeout uses DefaultTimeout.
func NewRORClient(baseURL string, timeout time.Duration) *RORClient {
	if baseURL == "" {
		baseURL = DefaultRORBaseURL
	}
	return &RORClient{
		BaseURL:    baseURL,
		MaxResults: 5,
		HTTPClient: newHTTPClient(timeout),
	}
}

// The ROR response mixes several naming conventions per item; the explicit
// shape below documents the parts the adapter reads. Name variants carry
// type tags: "ror_display" marks the display name, "label" a fallback, and
// "alias" alternate names.
type rorResponse struct {
	Items []rorItem `json:"items"`
}

type rorItem struct {
	ID        string        `json:"id"`
	Names     []rorName     `json:"names"`
	Locations []rorLocation `json:"locations"`
}

type rorName struct {
	Value string   `json:"value"`
	Types []string `json:"types"`
}

type rorLocation struct {
	GeonamesDetails struct {
		CountryName string `json:"country_name"`
	} `json:"geonames_details"`
}

// Search queries ROR for organizations matching the affiliation name. Blank
// input makes no request. A malformed item is skipped without discarding the
// rest of the batch. The result is capped at MaxResults; it is empty on any
// transport or parse failure.
func (c *RORClient) Search(name string) []Organization {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	params := url.Values{}
	params.Set("query", name)
	params.Set("page", "1")

	slog.Debug("searching ROR", "query", name)
	resp, err := c.HTTPClient.Get(c.BaseURL + "?" + params.Encode())
	if err != nil {
		slog.Warn("ROR lookup failed, continuing without ROR ID", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("ROR lookup failed, continuing without ROR ID", "status", resp.StatusCode)
		return nil
	}

	var payload rorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.Warn("parsing ROR response failed", "error", err)
		return nil
	}

	items := payload.Items
	max := c.MaxResults
	if max <= 0 {
		max = 5
	}
	if len(items) > max {
		items = items[:max]
	}

	var results []Organization
	for i, item := range items {
		org, ok := parseOrganization(item)
		if !ok {
			slog.Debug("skipping malformed ROR result", "index", i)
			continue
		}
		results = append(results, org)
	}

	if len(results) == 0 {
		slog.Debug("no valid ROR entries found", "query", name)
	}
	return results
}

// parseOrganization extracts one candidate from a raw result. The item is
// dropped only if its identifier is missing; a missing display name resolves
// to "Unknown" and a missing country to "N/A".
func parseOrganization(item rorItem) (Organization, bool) {
	id := strings.TrimPrefix(item.ID, rorIDPrefix)
	if id == "" {
		return Organization{}, false
	}

	org := Organization{
		ID:      id,
		Name:    pickDisplayName(item.Names),
		Country: "N/A",
	}

	if len(item.Locations) > 0 && item.Locations[0].GeonamesDetails.CountryName != "" {
		org.Country = item.Locations[0].GeonamesDetails.CountryName
	}

	for _, n := range item.Names {
		if len(org.Aliases) == 2 {
			break
		}
		if hasType(n, "alias") && n.Value != "" {
			org.Aliases = append(org.Aliases, n.Value)
		}
	}

	return org, true
}

// pickDisplayName scans the name variants for one tagged as the display
// name, falls back to a label, and finally to the literal "Unknown".
func pickDisplayName(names []rorName) string {
	for _, n := range names {
		if hasType(n, "ror_display") && n.Value != "" {
			return n.Value
		}
	}
	for _, n := range names {
		if hasType(n, "label") && n.Value != "" {
			return n.Value
		}
	}
	return "Unknown"
}

func hasType(n rorName, t string) bool {
	for _, nt := range n.Types {
		if nt == t {
			return true
		}
	}
	return false
}
