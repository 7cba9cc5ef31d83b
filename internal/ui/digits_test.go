package ui

import "testing"

func TestToPersianDigits(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"0123456789", "۰۱۲۳۴۵۶۷۸۹"},
		{"192.168.1.1", "۱۹۲.۱۶۸.۱.۱"},
		{"پنل 42", "پنل ۴۲"},
		{"no digits", "no digits"},
		{"۴۲", "۴۲"},
	}

	for _, test := range tests {
		if got := ToPersianDigits(test.input); got != test.want {
			t.Errorf("ToPersianDigits(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
