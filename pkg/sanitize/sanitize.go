package sanitize

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Sanitize clamps x into [minVal, maxVal]. A NaN x yields fallback.
func Sanitize(x, minVal, maxVal, fallback float64) float64 {
	value := math.Max(math.Min(x, maxVal), minVal)
	if math.IsNaN(value) {
		return fallback
	}
	return value
}

// SplitDollarsAndCents truncates amount toward zero for the dollars and rounds
// the remainder to whole cents. Cents can come out as 100 when the fractional
// part rounds up (5.999 -> 5, 100).
func SplitDollarsAndCents(amount float64) (dollars, cents float64) {
	dollars = math.Trunc(amount)
	cents = math.Round(100 * (amount - dollars))
	return dollars, cents
}

// decimalLiteral is the only number syntax accepted from a control: an
// optional sign, digits with an optional fraction, and an optional exponent.
// It rules out what ParseFloat also takes, such as "inf", "1_000" or "0x1p4".
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts control text into a number. Empty or blank text is 0,
// anything that is not entirely a decimal literal is NaN.
func ParseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	if !decimalLiteral.MatchString(text) {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat reports out-of-range literals as ±Inf together with ErrRange.
		if errors.Is(err, strconv.ErrRange) {
			return value
		}
		return math.NaN()
	}
	return value
}

// FormatTotal renders x with exactly two decimals.
func FormatTotal(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// FormatWhole renders x in its shortest decimal form, e.g. 12 or 34.
func FormatWhole(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
