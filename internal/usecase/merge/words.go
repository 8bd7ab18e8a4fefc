package merge

import "strings"

var (
	ones = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tens = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
)

// NumberToWords spells a non-negative amount in the Indian numbering system
// (crore, lakh, thousand, hundred) followed by "Only". The fractional part is
// dropped. Zero and negative input yield "Zero".
func NumberToWords(n int64) string {
	if n <= 0 {
		return "Zero"
	}
	return strings.Join(indianWords(n), " ") + " Only"
}

func indianWords(n int64) []string {
	var out []string
	if n >= 10000000 {
		out = append(out, indianWords(n/10000000)...)
		out = append(out, "Crore")
		n %= 10000000
	}
	if n >= 100000 {
		out = append(out, belowHundred(n/100000)...)
		out = append(out, "Lakh")
		n %= 100000
	}
	if n >= 1000 {
		out = append(out, belowHundred(n/1000)...)
		out = append(out, "Thousand")
		n %= 1000
	}
	if n >= 100 {
		out = append(out, ones[n/100], "Hundred")
		n %= 100
	}
	return append(out, belowHundred(n)...)
}

func belowHundred(n int64) []string {
	switch {
	case n == 0:
		return nil
	case n < 20:
		return []string{ones[n]}
	case n%10 == 0:
		return []string{tens[n/10]}
	default:
		return []string{tens[n/10], ones[n%10]}
	}
}
