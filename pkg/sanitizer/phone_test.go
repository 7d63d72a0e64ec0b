package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{
			name:   "valid E.164 format",
			input:  "+972541234567",
			region: "IN",
			want:   "+972541234567",
		},
		{
			name:   "international with spaces and dashes",
			input:  "+972 54-123-4567",
			region: "IN",
			want:   "+972541234567",
		},
		{
			name:   "national number in default region",
			input:  "98765 43210",
			region: "IN",
			want:   "+919876543210",
		},
		{
			name:   "lowercase region",
			input:  "98765 43210",
			region: "in",
			want:   "+919876543210",
		},
		{
			name:   "us national with parentheses",
			input:  "(212) 555-1234",
			region: "US",
			want:   "+12125551234",
		},
		{
			name:   "leading and trailing spaces",
			input:  "  +972541234567  ",
			region: "IN",
			want:   "+972541234567",
		},
		{
			name:   "empty string",
			input:  "",
			region: "IN",
			want:   "",
		},
		{
			name:   "only whitespace",
			input:  "   ",
			region: "IN",
			want:   "",
		},
		{
			name:   "not a phone number is kept",
			input:  " call me maybe ",
			region: "IN",
			want:   "call me maybe",
		},
		{
			name:   "too short is kept",
			input:  "123",
			region: "IN",
			want:   "123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input, tt.region)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"98765 43210", "+972-54-123-4567", "call me", ""}

	for _, input := range inputs {
		once := NormalizePhone(input, "IN")
		twice := NormalizePhone(once, "IN")
		if once != twice {
			t.Errorf("NormalizePhone not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
