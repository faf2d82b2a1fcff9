package lookup

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newRORTestClient(t *testing.T, handler http.HandlerFunc) *RORClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRORClient(srv.URL, 0)
}

func TestRORSearch(t *testing.T) {
	var gotQuery, gotPage string
	client := newRORTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotPage = r.URL.Query().Get("page")
		w.Write([]byte(`{"items": [
			{
				"id": "https://ror.org/04fw25q77",
				"names": [
					{"value": "EAWAG", "types": ["alias"]},
					{"value": "Swiss Federal Institute of Aquatic Science and Technology", "types": ["ror_display", "label"]}
				],
				"locations": [{"geonames_details": {"country_name": "Switzerland"}}]
			},
			{
				"id": "https://ror.org/02crff812",
				"names": [{"value": "University of Zurich", "types": ["label"]}],
				"locations": []
			}
		]}`))
	})

	results := client.Search("Eawag")

	if gotQuery != "Eawag" {
		t.Errorf("query: got %q", gotQuery)
	}
	if gotPage != "1" {
		t.Errorf("page: got %q", gotPage)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	first := results[0]
	if first.ID != "04fw25q77" {
		t.Errorf("ID: got %q", first.ID)
	}
	if first.Name != "Swiss Federal Institute of Aquatic Science and Technology" {
		t.Errorf("Name: got %q", first.Name)
	}
	if first.Country != "Switzerland" {
		t.Errorf("Country: got %q", first.Country)
	}
	if !reflect.DeepEqual(first.Aliases, []string{"EAWAG"}) {
		t.Errorf("Aliases: got %v", first.Aliases)
	}

	// Label-only name is the fallback; missing location reads as N/A.
	second := results[1]
	if second.Name != "University of Zurich" {
		t.Errorf("Name: got %q", second.Name)
	}
	if second.Country != "N/A" {
		t.Errorf("Country: got %q", second.Country)
	}
}

func TestRORSearchBlankName(t *testing.T) {
	called := false
	client := newRORTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	if got := client.Search("   "); got != nil {
		t.Errorf("Expected nil for blank name, got %v", got)
	}
	if called {
		t.Error("Blank name must not trigger a request")
	}
}

func TestRORSearchSkipsMalformedItems(t *testing.T) {
	client := newRORTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// The item without an id is skipped; the nameless one is kept as Unknown.
		w.Write([]byte(`{"items": [
			{"id": "", "names": [{"value": "Ghost", "types": ["ror_display"]}]},
			{"id": "https://ror.org/05a28rw58", "names": []}
		]}`))
	})

	results := client.Search("ETH")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].ID != "05a28rw58" {
		t.Errorf("ID: got %q", results[0].ID)
	}
	if results[0].Name != "Unknown" {
		t.Errorf("Name: got %q", results[0].Name)
	}
}

func TestRORSearchAliasCap(t *testing.T) {
	client := newRORTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [{
			"id": "https://ror.org/04fw25q77",
			"names": [
				{"value": "Main Name", "types": ["ror_display"]},
				{"value": "Alias One", "types": ["alias"]},
				{"value": "Alias Two", "types": ["alias"]},
				{"value": "Alias Three", "types": ["alias"]}
			]
		}]}`))
	})

	results := client.Search("Main")
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if !reflect.DeepEqual(results[0].Aliases, []string{"Alias One", "Alias Two"}) {
		t.Errorf("Aliases: got %v", results[0].Aliases)
	}
}

func TestRORSearchCapsItems(t *testing.T) {
	client := newRORTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [
			{"id": "https://ror.org/001", "names": [{"value": "One", "types": ["ror_display"]}]},
			{"id": "https://ror.org/002", "names": [{"value": "Two", "types": ["ror_display"]}]},
			{"id": "https://ror.org/003", "names": [{"value": "Three", "types": ["ror_display"]}]}
		]}`))
	})
	client.MaxResults = 2

	results := client.Search("University")
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[1].Name != "Two" {
		t.Errorf("Second result: got %q", results[1].Name)
	}
}

func TestRORSearchServerError(t *testing.T) {
	client := newRORTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if got := client.Search("Eawag"); got != nil {
		t.Errorf("Expected nil on server error, got %v", got)
	}
}

func TestRORSearchBadJSON(t *testing.T) {
	client := newRORTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	if got := client.Search("Eawag"); got != nil {
		t.Errorf("Expected nil on parse failure, got %v", got)
	}
}
