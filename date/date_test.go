package date

import (
	"testing"
	"time"
)

// TestNew asserts that out-of-range components are normalized like time.Date does.
func TestNew(t *testing.T) {
	d := New(2025, 1, 32) // normalizes to Feb 1st
	if got, want := d.String(), "2025-02-01"; got != want {
		t.Errorf("New(2025, 1, 32).String() = %q; want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-07-01", want: "2025-07-01"},
		{in: "2025-7-1", want: "2025-07-01"}, // lenient single-digit form
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v; want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q).String() = %q; want %q", tc.in, got.String(), tc.want)
		}
	}
}

func TestBeforeAfter(t *testing.T) {
	d1 := New(2025, time.July, 1)
	d2 := d1.Add(1)
	if !d1.Before(d2) {
		t.Errorf("%s should be before %s", d1, d2)
	}
	if !d2.After(d1) {
		t.Errorf("%s should be after %s", d2, d1)
	}
}

func TestTextRoundTrip(t *testing.T) {
	d := New(2025, time.March, 9)
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var got Date
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", text, err)
	}
	if got != d {
		t.Errorf("round trip = %s; want %s", got, d)
	}
}
