package lookup

import "testing"

// scriptedSelector answers with canned decisions and records what it saw.
type scriptedSelector struct {
	confirm   bool
	pickIndex int
	pickOK    bool

	confirmCalls int
	pickCalls    int
	sawCount     int
}

func (s *scriptedSelector) Confirm(c string) bool {
	s.confirmCalls++
	return s.confirm
}

func (s *scriptedSelector) Pick(cs []string) (int, bool) {
	s.pickCalls++
	s.sawCount = len(cs)
	return s.pickIndex, s.pickOK
}

func TestDisambiguate(t *testing.T) {
	tests := []struct {
		name        string
		candidates  []string
		sel         scriptedSelector
		want        string
		wantOK      bool
		wantConfirm int
		wantPick    int
	}{
		{
			name:       "no candidates is no match",
			candidates: nil,
		},
		{
			name:        "single candidate accepted",
			candidates:  []string{"only"},
			sel:         scriptedSelector{confirm: true},
			want:        "only",
			wantOK:      true,
			wantConfirm: 1,
		},
		{
			name:        "single candidate rejected",
			candidates:  []string{"only"},
			sel:         scriptedSelector{confirm: false},
			wantConfirm: 1,
		},
		{
			name:       "multiple candidates picked",
			candidates: []string{"a", "b", "c"},
			sel:        scriptedSelector{pickIndex: 1, pickOK: true},
			want:       "b",
			wantOK:     true,
			wantPick:   1,
		},
		{
			name:       "multiple candidates escaped",
			candidates: []string{"a", "b"},
			sel:        scriptedSelector{pickOK: false},
			wantPick:   1,
		},
		{
			name:       "out of range pick is no match",
			candidates: []string{"a", "b"},
			sel:        scriptedSelector{pickIndex: 7, pickOK: true},
			wantPick:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Disambiguate(tt.candidates, &tt.sel)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if tt.sel.confirmCalls != tt.wantConfirm {
				t.Errorf("Confirm calls: got %d, want %d", tt.sel.confirmCalls, tt.wantConfirm)
			}
			if tt.sel.pickCalls != tt.wantPick {
				t.Errorf("Pick calls: got %d, want %d", tt.sel.pickCalls, tt.wantPick)
			}
			if tt.wantPick > 0 && tt.sel.sawCount != len(tt.candidates) {
				t.Errorf("Pick saw %d candidates, want %d", tt.sel.sawCount, len(tt.candidates))
			}
		})
	}
}
