package util

import (
	"reflect"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "blank", raw: "   ", expected: nil},
		{name: "single", raw: "tacos", expected: []string{"tacos"}},
		{name: "trims and drops empties", raw: " tacos, ,bbq ,", expected: []string{"tacos", "bbq"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SplitCSV(tt.raw); !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("SplitCSV(%q) = %#v, want %#v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tags     []string
		expected []string
	}{
		{name: "nil stays nil", tags: nil, expected: nil},
		{name: "keeps first spelling", tags: []string{"Mexican", "mexican", " BBQ "}, expected: []string{"Mexican", "BBQ"}},
		{name: "drops blanks", tags: []string{"", "  "}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeTags(tt.tags); !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("NormalizeTags(%v) = %#v, want %#v", tt.tags, got, tt.expected)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	if got := EscapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("EscapeLike = %s", got)
	}
}

func TestLowerAllAndPtr(t *testing.T) {
	t.Parallel()

	if got := LowerAll([]string{"A", "bC"}); !reflect.DeepEqual(got, []string{"a", "bc"}) {
		t.Fatalf("LowerAll = %v", got)
	}

	p := Ptr(3)
	if *p != 3 {
		t.Fatalf("Ptr = %d", *p)
	}
}
