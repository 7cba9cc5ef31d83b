package ui

import "strings"

var persianDigits = map[rune]rune{
	'0': '۰', '1': '۱', '2': '۲', '3': '۳', '4': '۴',
	'5': '۵', '6': '۶', '7': '۷', '8': '۸', '9': '۹',
}

// ToPersianDigits replaces ASCII digits with their Persian equivalents,
// leaving every other rune untouched.
func ToPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if p, ok := persianDigits[r]; ok {
			return p
		}
		return r
	}, s)
}
