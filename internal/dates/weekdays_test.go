package dates

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseWeekdayFilter(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", []int{1, 2, 3, 4, 5, 6, 7}},
		{"1-7", []int{1, 2, 3, 4, 5, 6, 7}},
		{"1-3,5,7", []int{1, 2, 3, 5, 7}},
		{"5", []int{5}},
		{"6-7", []int{6, 7}},
		{"1,1-2", []int{1, 2}}, // overlap de-duplicates
		{"5-2", nil},           // inverted range is silently empty
		{"5-2,3", []int{3}},
	}
	for _, tt := range tests {
		got, err := ParseWeekdayFilter(tt.in)
		if err != nil {
			t.Errorf("ParseWeekdayFilter(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseWeekdayFilter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWeekdayFilterInvalid(t *testing.T) {
	for _, in := range []string{"8", "0", "1-8", "monday", "1,,3", "1 - 3", "-"} {
		_, err := ParseWeekdayFilter(in)
		if err == nil {
			t.Errorf("ParseWeekdayFilter(%q) expected error", in)
			continue
		}
		var ferr *InvalidFilterError
		if !errors.As(err, &ferr) {
			t.Errorf("ParseWeekdayFilter(%q) error type = %T", in, err)
		}
	}
}

func TestParseWeekdayFilterErrorCarriesToken(t *testing.T) {
	_, err := ParseWeekdayFilter("1-3,9,5")
	var ferr *InvalidFilterError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected InvalidFilterError, got %v", err)
	}
	if ferr.Token != "9" {
		t.Errorf("offending token = %q, want %q", ferr.Token, "9")
	}
}
