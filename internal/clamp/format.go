package clamp

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatNumber rounds n to the given number of decimals and strips trailing zeros:
// 1.000 -> "1", 0.500 -> "0.5". Rounding works on the exact binary value with ties
// going away from zero, so 0.0625 becomes "0.063". Non-finite values format as "0"
// to keep the stylesheet syntactically valid.
func FormatNumber(n float64, decimals int) string {
	if !isFinite(n) {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	}

	scaled := new(big.Rat).SetFloat64(math.Abs(n))
	scaled.Mul(scaled, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)))

	q, r := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if r.Lsh(r, 1).Cmp(scaled.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if q.Sign() == 0 {
		return "0"
	}

	digits := q.String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	out := digits[:len(digits)-decimals]
	if frac := strings.TrimRight(digits[len(digits)-decimals:], "0"); frac != "" {
		out += "." + frac
	}
	if n < 0 {
		out = "-" + out
	}
	return out
}

// roundPx rounds half up (towards +Inf), matching how primitive names are keyed.
func roundPx(px float64) float64 {
	r := math.Floor(px + 0.5)
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}

// formatPx renders a rounded pixel value as used in a primitive name.
func formatPx(px float64) string {
	return strconv.FormatFloat(roundPx(px), 'f', -1, 64)
}

// isZeroLiteral reports whether a formatted number denotes zero.
func isZeroLiteral(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == 0
}
