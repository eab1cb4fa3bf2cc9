package token_test

import (
	"slices"
	"testing"

	"polarconv/internal/token"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		delim byte
		want  []string
	}{
		{"empty", "", ',', []string{}},
		{"single", "12", ',', []string{"12"}},
		{"simple", "1,2,3", ',', []string{"1", "2", "3"}},
		{"consecutive", "1,,3", ',', []string{"1", "", "3"}},
		{"trailing single", "1,2,", ',', []string{"1", "2"}},
		{"trailing double", "a,,", ',', []string{"a", ""}},
		{"leading", ",1", ',', []string{"", "1"}},
		{"tab", "4\t30\t5.1", '\t', []string{"4", "30", "5.1"}},
		{"no delimiter present", "1;2", ',', []string{"1;2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := token.Split(tc.line, tc.delim)
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Split(%q, %q) = %q, want %q", tc.line, tc.delim, got, tc.want)
			}
		})
	}
}

func TestSplitNumericDropsNonDigitFields(t *testing.T) {
	got := token.SplitNumeric("12,3.5,x,7", ',')
	want := []float64{12, 3.5, 7}
	if !slices.Equal(got, want) {
		t.Fatalf("SplitNumeric = %v, want %v", got, want)
	}
}

func TestSplitNumericQuirks(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []float64
	}{
		{"negative dropped", "4,-1.5,2", []float64{4, 2}},
		{"leading blank dropped", "4, 5.5,6", []float64{4, 6}},
		{"header decorator dropped", `TWA\TWS,4,8,12`, []float64{4, 8, 12}},
		{"trailing garbage tolerated", "4,5.5kn,6", []float64{4, 5.5, 6}},
		{"digit without number", "4,0x,6", []float64{4, 0, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := token.SplitNumeric(tc.line, ',')
			if !slices.Equal(got, tc.want) {
				t.Fatalf("SplitNumeric(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

func TestScanReportsDroppedFields(t *testing.T) {
	row := token.Scan("30,,-2, 4,5", ',')
	if !slices.Equal(row.Values, []float64{30, 5}) {
		t.Fatalf("values = %v", row.Values)
	}
	if !slices.Equal(row.Dropped, []string{"-2", " 4"}) {
		t.Fatalf("dropped = %q", row.Dropped)
	}
}
