package dates

import (
	"errors"
	"testing"
)

func TestParseTimeStringClockOnly(t *testing.T) {
	now := at("2024-03-10 15:30:00")

	// Past time today stays today.
	got, err := ParseTimeString(now, "12:34")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(at("2024-03-10 12:34:00")) {
		t.Errorf("12:34 = %s", got)
	}

	// A time later than now refers to yesterday.
	got, err = ParseTimeString(now, "16:00")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(at("2024-03-09 16:00:00")) {
		t.Errorf("16:00 = %s", got)
	}

	// Seconds are honored.
	got, err = ParseTimeString(now, "12:34:56")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(at("2024-03-10 12:34:56")) {
		t.Errorf("12:34:56 = %s", got)
	}
}

func TestParseTimeStringFullDate(t *testing.T) {
	now := at("2024-03-10 15:30:00")
	for _, in := range []string{"2021.09.01 12:34", "2021-09-01 12:34", "2021/09/01 12:34"} {
		got, err := ParseTimeString(now, in)
		if err != nil {
			t.Fatalf("ParseTimeString(%q): %v", in, err)
		}
		if !got.Equal(at("2021-09-01 12:34:00")) {
			t.Errorf("ParseTimeString(%q) = %s", in, got)
		}
	}
}

func TestParseTimeStringInvalid(t *testing.T) {
	now := at("2024-03-10 15:30:00")
	for _, in := range []string{"", "noon", "1234", "12:34pm", "2021.09.01"} {
		_, err := ParseTimeString(now, in)
		if err == nil {
			t.Errorf("ParseTimeString(%q) expected error", in)
			continue
		}
		var terr *InvalidTimeError
		if !errors.As(err, &terr) {
			t.Errorf("ParseTimeString(%q) error type = %T", in, err)
		} else if terr.Input != in {
			t.Errorf("error input = %q, want %q", terr.Input, in)
		}
	}
}
