package dca

import "testing"

func TestValidatePositiveDecimal(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
		want  string
	}{
		{"100", true, "100"},
		{" 12.5 ", true, "12.5"},
		{"12,5", true, "12.5"},
		{"0.00000001", true, "0.00000001"},
		{"", false, ""},
		{"   ", false, ""},
		{"abc", false, ""},
		{"1.2.3", false, ""},
		{"0", false, ""},
		{"-3", false, ""},
	}
	for _, tc := range testCases {
		got := ValidatePositiveDecimal(tc.input)
		if got.Valid != tc.valid {
			t.Errorf("ValidatePositiveDecimal(%q).Valid = %v, want %v (%s)", tc.input, got.Valid, tc.valid, got.Message)
			continue
		}
		if !tc.valid {
			if got.Message == "" {
				t.Errorf("ValidatePositiveDecimal(%q) has no message", tc.input)
			}
			continue
		}
		if !got.Value.Equal(D(tc.want)) {
			t.Errorf("ValidatePositiveDecimal(%q).Value = %s, want %s", tc.input, got.Value, tc.want)
		}
	}
}

func TestValidatePercent(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"0", true},
		{"15", true},
		{"7,5", true},
		{"100", true},
		{"100.5", false},
		{"-1", false},
		{"", false},
		{"%", false},
	}
	for _, tc := range testCases {
		if got := ValidatePercent(tc.input); got.Valid != tc.valid {
			t.Errorf("ValidatePercent(%q).Valid = %v, want %v (%s)", tc.input, got.Valid, tc.valid, got.Message)
		}
	}
}

func TestValidateAssetName(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"BTC", true},
		{"S&P 500", true},
		{"Złoto", true},
		{"", false},
		{"  ", false},
		{"a/b", false},
		{`a\b`, false},
		{"what?", false},
		{"x:y", false},
		{`"quoted"`, false},
		{"<tag>", false},
		{"a|b", false},
		{"star*", false},
	}
	for _, tc := range testCases {
		got := ValidateAssetName(tc.input)
		if got.Valid != tc.valid {
			t.Errorf("ValidateAssetName(%q).Valid = %v, want %v (%s)", tc.input, got.Valid, tc.valid, got.Message)
		}
	}
}
