package ui

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Percent formats a decimal return with one decimal place: 0.1234 -> "12.3%".
func Percent(x float64) string {
	return fmt.Sprintf("%.1f%%", x*100)
}

// SignedPercent always carries a sign: "+12.3%", "-4.0%".
func SignedPercent(x float64) string {
	return fmt.Sprintf("%+.1f%%", x*100)
}

// WholePercent formats without decimals: 0.5 -> "+50%".
func WholePercent(x float64) string {
	return fmt.Sprintf("%+.0f%%", x*100)
}

// Multiple formats a wealth multiple: 1.44 -> "1.440x".
func Multiple(x float64, decimals int) string {
	return strconv.FormatFloat(x, 'f', decimals, 64) + "x"
}

// Money formats whole dollars with thousands separators: 12345.6 -> "$12,346".
func Money(x float64) string {
	s := moneyPrinter.Sprintf("$%d", int64(math.Round(math.Abs(x))))
	if x < 0 && s != "$0" {
		return "-" + s
	}
	return s
}

// Delta colours a difference green when positive and red when negative.
func Delta(x float64) string {
	s := SignedPercent(x)
	switch {
	case x > 0:
		return C(current.Success, current.SymUp+" "+s)
	case x < 0:
		return C(current.Error, current.SymDown+" "+s)
	}
	return s
}
