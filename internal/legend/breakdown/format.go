package breakdown

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatKindLabel joins an optional icon with a label.
func FormatKindLabel(icon, label string) string {
	return strings.TrimSpace(strings.TrimSpace(icon) + " " + label)
}

// FormatAmount renders a signed contribution amount rounded to two fraction
// digits. Percent values are scaled by 100 and suffixed with "%".
func FormatAmount(tag language.Tag, amount float64, percent bool) string {
	value := amount
	suffix := ""
	if percent {
		value = amount * 100
		suffix = "%"
	}
	// The sign is taken after rounding; -0.004 prints as "+0".
	value = math.Round(value*100) / 100
	sign := "+"
	if value < 0 {
		sign = "-"
		value = -value
	}
	printer := message.NewPrinter(tag)
	return sign + printer.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2))) + suffix
}
