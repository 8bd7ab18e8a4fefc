package merge

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultCurrencySymbol = "₹"
	DefaultLocale         = "en-IN"
)

// Formatter renders numbers with locale grouping separators. Fractions are
// printed only when present, up to two digits.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a Formatter for a BCP 47 locale. Unknown locales fall
// back to English.
func NewFormatter(symbol, locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// DefaultFormatter formats rupees with Indian digit grouping.
func DefaultFormatter() Formatter {
	return NewFormatter(DefaultCurrencySymbol, DefaultLocale)
}

func (f Formatter) Number(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

func (f Formatter) Currency(v float64) string {
	return f.symbol + f.Number(v)
}
