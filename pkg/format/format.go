// Package format renders cost amounts for report tables, chart titles and
// legends. Amounts are rounded with ceiling rounding, always carry at least
// two fraction digits, and group thousands with a space separator.
package format

import (
	"math"
	"strconv"
	"strings"
)

const minFractionDigits = 2

// Decimal formats value with at most decimals fraction digits. Fewer than two
// requested digits still produce two; trailing zeros beyond the first two
// fraction digits are trimmed. Rounding is ceiling (towards positive
// infinity), so 1.123 at two digits becomes "1.13".
func Decimal(value float64, decimals int) string {
	maxFrac := decimals
	if maxFrac < minFractionDigits {
		maxFrac = minFractionDigits
	}

	pow := math.Pow(10, float64(maxFrac))
	scaled := value * pow

	// Powers of ten are not exact in binary; treat values within a hair of an
	// integer as that integer before applying the ceiling.
	n := math.Round(scaled)
	if math.Abs(scaled-n) > 1e-9 {
		n = math.Ceil(scaled)
	}

	negative := n < 0
	digits := strconv.FormatInt(int64(math.Abs(n)), 10)
	for len(digits) <= maxFrac {
		digits = "0" + digits
	}

	intPart := digits[:len(digits)-maxFrac]
	fracPart := digits[len(digits)-maxFrac:]

	for len(fracPart) > minFractionDigits && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(groupThousands(intPart))
	sb.WriteByte('.')
	sb.WriteString(fracPart)
	return sb.String()
}

// groupThousands inserts a space between every group of three digits,
// counting from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, " ")
}
