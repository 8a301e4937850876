package directory

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders salaries and dates for display.
type Formatter struct {
	printer        *message.Printer
	currencySymbol string
	dateLayout     string
}

// NewFormatter builds a formatter for a BCP 47 locale such as "en-US".
func NewFormatter(locale, currencySymbol, dateLayout string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	if dateLayout == "" {
		dateLayout = "Jan 2, 2006"
	}
	return &Formatter{
		printer:        message.NewPrinter(tag),
		currencySymbol: currencySymbol,
		dateLayout:     dateLayout,
	}, nil
}

// Salary formats a whole-unit amount with grouping, e.g. "$85,000".
func (f *Formatter) Salary(amount int) string {
	return f.currencySymbol + f.printer.Sprintf("%v", amount)
}

// Date reformats an ISO date. Unparsable input is returned unchanged.
func (f *Formatter) Date(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format(f.dateLayout)
}
