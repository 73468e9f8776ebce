package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Locale selects month abbreviations for date rendering. Unknown
// locales fall back to English.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleID Locale = "id"
)

var monthAbbrevs = map[Locale][12]string{
	LocaleEN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	LocaleID: {"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"},
}

func monthAbbrev(loc Locale, m time.Month) string {
	abbrevs, ok := monthAbbrevs[loc]
	if !ok {
		abbrevs = monthAbbrevs[LocaleEN]
	}
	return abbrevs[m-1]
}

// FormatDate renders a date as "02 Jan 2006". No timezone conversion is
// applied beyond what the value already carries.
func FormatDate(t time.Time, loc Locale) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), monthAbbrev(loc, t.Month()), t.Year())
}

// FormatDateTime renders a timestamp as "02 Jan 2006, 15:04".
func FormatDateTime(t time.Time, loc Locale) string {
	return fmt.Sprintf("%s, %02d:%02d", FormatDate(t, loc), t.Hour(), t.Minute())
}

// FormatMoney renders an amount as rupees with Indian digit grouping,
// e.g. 4500000 becomes ₹45,00,000. The amount is rounded to whole
// paise before the digits are split, so a carry out of the paise part
// lands in the rupee part; a nonzero paise part is shown to two places.
func FormatMoney(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	neg := rounded.Sign() < 0
	abs := rounded.Abs()

	intPart := abs.Truncate(0)
	frac := abs.Sub(intPart)

	grouped := groupIndian(intPart.String())
	out := "₹" + grouped
	if !frac.IsZero() {
		out += strings.TrimPrefix(frac.StringFixed(2), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// groupIndian groups the last three digits, then pairs: 1234567 becomes
// 12,34,567.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var pairs []string
	for len(head) > 2 {
		pairs = append([]string{head[len(head)-2:]}, pairs...)
		head = head[:len(head)-2]
	}
	if head != "" {
		pairs = append([]string{head}, pairs...)
	}
	return strings.Join(pairs, ",") + "," + tail
}
