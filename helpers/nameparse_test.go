package helpers

import "testing"

func TestSplitName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantGiven  string
		wantFamily string
		wantOK     bool
	}{
		{name: "simple name", input: "Jane Doe", wantGiven: "Jane", wantFamily: "Doe", wantOK: true},
		{name: "multi-part family name", input: "Jane van der Berg", wantGiven: "Jane", wantFamily: "van der Berg", wantOK: true},
		{name: "extra whitespace", input: "  Jane   Doe  ", wantGiven: "Jane", wantFamily: "Doe", wantOK: true},
		{name: "single token", input: "Jane", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			given, family, ok := SplitName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if given != tt.wantGiven || family != tt.wantFamily {
				t.Errorf("got (%q, %q), want (%q, %q)", given, family, tt.wantGiven, tt.wantFamily)
			}
		})
	}
}
