// Package format renders projection quantities for display.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/lcoe-forecast/pkg/mathutil"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	// Rounding first keeps sub-cent negatives from rendering as "-$0.00".
	amount = mathutil.Round(amount)
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// RatePerKWh renders a cost per kWh with three decimals, e.g. "$0.112/kWh".
func RatePerKWh(rate float64) string {
	if rate < 0 {
		return fmt.Sprintf("-$%.3f/kWh", math.Abs(rate))
	}
	return fmt.Sprintf("$%.3f/kWh", rate)
}

// Percent renders a percentage with one decimal, e.g. "69.1%".
func Percent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// Payback renders the payback year, or a "not reached" notice when the
// savings never offset the net cost within the lifetime.
func Payback(year int, reached bool, lifetime int) string {
	if !reached {
		return fmt.Sprintf("not reached within %d years", lifetime)
	}
	if year == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", year)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	intPart, decPart, found := strings.Cut(formatted, ".")
	if !found {
		decPart = "00"
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
