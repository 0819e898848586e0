package view

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits mirrors the default precision of locale number formatting.
const maxFractionDigits = 3

// NumberFormatter groups digits according to a locale.
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter returns a formatter for the BCP 47 tag locale.
// Unparseable tags fall back to English.
func NewNumberFormatter(locale string) *NumberFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &NumberFormatter{printer: message.NewPrinter(tag)}
}

// FormatDecimal formats d with thousands grouping.
// Whole numbers that fit in an int64 are printed exactly; anything else keeps
// up to three fraction digits.
func (f *NumberFormatter) FormatDecimal(d decimal.Decimal) string {
	if d.IsInteger() {
		n := d.IntPart()
		if decimal.NewFromInt(n).Equal(d) {
			return f.printer.Sprintf("%d", n)
		}
	}
	fl, _ := d.Float64()
	return f.printer.Sprint(number.Decimal(fl, number.MaxFractionDigits(maxFractionDigits)))
}

// FormatYear renders a fiscal year as plain digits, without grouping.
func FormatYear(fy int) string {
	return strconv.Itoa(fy)
}
