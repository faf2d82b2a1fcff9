package lookup

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const orcidCSVHeader = "orcid,given-names,family-name,current-institution-affiliation-name\n"

func newORCIDTestClient(t *testing.T, handler http.HandlerFunc) *ORCIDClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewORCIDClient(srv.URL, 0)
}

func TestORCIDSearch(t *testing.T) {
	var gotQuery, gotFields, gotAccept string
	client := newORCIDTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotFields = r.URL.Query().Get("fl")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(orcidCSVHeader +
			"0000-0002-1825-0097,Jane,Doe,University of Example\n" +
			"0000-0001-5109-3700,Jane,Doe,\n"))
	})

	results := client.Search("Jane", "Doe")

	if gotQuery != `given-names:"Jane" AND family-name:"Doe"` {
		t.Errorf("query: got %q", gotQuery)
	}
	if gotFields != "orcid,given-names,family-name,current-institution-affiliation-name" {
		t.Errorf("fl: got %q", gotFields)
	}
	if gotAccept != "text/csv" {
		t.Errorf("Accept: got %q", gotAccept)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].ORCID != "0000-0002-1825-0097" {
		t.Errorf("ORCID: got %q", results[0].ORCID)
	}
	if results[0].DisplayName != "Jane Doe" {
		t.Errorf("DisplayName: got %q", results[0].DisplayName)
	}
	if results[0].Affiliation != "University of Example" {
		t.Errorf("Affiliation: got %q", results[0].Affiliation)
	}
	if results[1].Affiliation != "" {
		t.Errorf("Affiliation of second result: got %q", results[1].Affiliation)
	}
}

func TestORCIDSearchQueryKeepsNamesVerbatim(t *testing.T) {
	var gotQuery string
	client := newORCIDTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(orcidCSVHeader))
	})

	// Names are embedded as-is: no Go-style backslash escaping of quotes.
	client.Search("Seán", `O"Brien`)

	if gotQuery != `given-names:"Seán" AND family-name:"O"Brien"` {
		t.Errorf("query: got %q", gotQuery)
	}
	if strings.Contains(gotQuery, `\`) {
		t.Errorf("query must not contain escape characters: %q", gotQuery)
	}
}

func TestORCIDSearchBlankNames(t *testing.T) {
	called := false
	client := newORCIDTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	for _, pair := range [][2]string{{"", "Doe"}, {"Jane", ""}, {"  ", "  "}} {
		if got := client.Search(pair[0], pair[1]); got != nil {
			t.Errorf("Search(%q, %q): got %v, want nil", pair[0], pair[1], got)
		}
	}
	if called {
		t.Error("Blank names must not trigger a request")
	}
}

func TestORCIDSearchHeaderOnly(t *testing.T) {
	client := newORCIDTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(orcidCSVHeader))
	})

	if got := client.Search("Jane", "Doe"); len(got) != 0 {
		t.Errorf("Expected no results, got %v", got)
	}
}

func TestORCIDSearchDropsInvalidRows(t *testing.T) {
	client := newORCIDTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// A short row and a row with an empty identifier are dropped.
		w.Write([]byte(orcidCSVHeader +
			"0000-0002-1825-0097,Jane\n" +
			",Jane,Doe,Somewhere\n" +
			"0000-0001-5109-3700,Jane,Doe,University of Example\n"))
	})

	results := client.Search("Jane", "Doe")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].ORCID != "0000-0001-5109-3700" {
		t.Errorf("ORCID: got %q", results[0].ORCID)
	}
}

func TestORCIDSearchCapsResults(t *testing.T) {
	client := newORCIDTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(orcidCSVHeader +
			"0000-0000-0000-0001,A,One,X\n" +
			"0000-0000-0000-0002,B,Two,X\n" +
			"0000-0000-0000-0003,C,Three,X\n"))
	})
	client.MaxResults = 2

	results := client.Search("Jane", "Doe")
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[1].ORCID != "0000-0000-0000-0002" {
		t.Errorf("Second result: got %q", results[1].ORCID)
	}
}

func TestORCIDSearchServerError(t *testing.T) {
	client := newORCIDTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if got := client.Search("Jane", "Doe"); got != nil {
		t.Errorf("Expected nil on server error, got %v", got)
	}
}

func TestORCIDSearchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewORCIDClient(srv.URL, 0)

	if got := client.Search("Jane", "Doe"); got != nil {
		t.Errorf("Expected nil on transport error, got %v", got)
	}
}
