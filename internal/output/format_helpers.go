package output

import "github.com/shopspring/decimal"

// FormatAmount formats a currency amount with grouped thousands and no
// fractional paise/cents; projections at this horizon carry no useful
// sub-unit precision.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(0)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := ""
	for i, g := range groups {
		if i > 0 {
			out += ","
		}
		out += g
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercentage formats a fractional rate as a percentage with one decimal.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
