package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Time
	}{
		{"2025-07-31 14:05:09", time.Date(2025, 7, 31, 14, 5, 9, 0, time.Local)},
		{"2025-7-1 08:00:00", time.Date(2025, 7, 1, 8, 0, 0, 0, time.Local)},
		{" 2025-07-31 ", time.Date(2025, 7, 31, 0, 0, 0, 0, time.Local)},
		{"2025-07-31T10:11:12", time.Date(2025, 7, 31, 10, 11, 12, 0, time.Local)},
		{"2025-07-31 10:11", time.Date(2025, 7, 31, 10, 11, 0, 0, time.Local)},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "31/07/2025", "2025-13-01"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected an error", in)
		}
	}
}

func TestParseOr(t *testing.T) {
	def := time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)
	if got := ParseOr("garbage", def); !got.Equal(def) {
		t.Errorf("ParseOr(garbage) = %v, want default %v", got, def)
	}
	if got := ParseOr("2025-01-02", def); got.Equal(def) {
		t.Errorf("ParseOr(valid) returned the default")
	}
}

// TestFormatRoundTrip asserts that a formatted timestamp parses back to the
// same second.
func TestFormatRoundTrip(t *testing.T) {
	now := time.Now()
	got, err := Parse(Format(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := Truncate(now); !got.Equal(want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
	if got := Format(time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local)); got != "2025-03-04 05:06:07" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormat_OtherLocation(t *testing.T) {
	in := time.Date(2025, 1, 15, 12, 30, 0, 0, time.FixedZone("UTC+5:30", 5*3600+1800))
	got, err := Parse(Format(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(in) {
		t.Errorf("Parse(Format(%v)) = %v, want the same instant", in, got)
	}
	if want := in.Local().Format(Layout); Format(in) != want {
		t.Errorf("Format(%v) = %q, want local time %q", in, Format(in), want)
	}
}
