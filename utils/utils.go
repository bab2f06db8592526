package utils

import "strconv"

// FormatRupiah renders an IDR amount with dot thousand separators, the
// way prices appear throughout the storefront (e.g. 1850000 → "1.850.000").
func FormatRupiah(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += "."
		}
		out += string(d)
	}
	if neg {
		return "-" + out
	}
	return out
}
