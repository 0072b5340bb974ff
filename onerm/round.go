package onerm

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// roundPrec holds x * 10^MaxDecimals exactly: 53 mantissa bits plus the
// odd part of 10^100 (233 bits).
const roundPrec = 512

// Values at or beyond this magnitude are returned unchanged, mirroring
// fixed-point formatting which falls back to exponent notation there.
const fixedLimit = 1e21

var bigHalf = new(big.Float).SetPrec(roundPrec).SetFloat64(0.5)

// Round rounds x to decimals places the way fixed-point string formatting
// does: the exact binary value of x is rounded, ties go away from zero, and
// the decimal text is parsed back into a float64. So Round(1.005, 2) is 1
// (1.005 is stored as 1.00499...) while Round(112.5, 0) is 113.
//
// NaN and ±Inf are returned as is. decimals is clamped to [0, MaxDecimals].
func Round(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= fixedLimit {
		return x
	}
	decimals = min(max(decimals, 0), MaxDecimals)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	v := new(big.Float).SetPrec(roundPrec).SetFloat64(math.Abs(x))
	v.Mul(v, new(big.Float).SetPrec(roundPrec).SetInt(scale))

	n, _ := v.Int(nil)
	frac := new(big.Float).SetPrec(roundPrec).SetInt(n)
	frac.Sub(v, frac)
	if frac.Cmp(bigHalf) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	out, _ := strconv.ParseFloat(formatFixed(n, decimals, x < 0), 64)
	return out
}

// formatFixed renders n / 10^decimals as a plain decimal string.
func formatFixed(n *big.Int, decimals int, negative bool) string {
	digits := n.String()
	if decimals > 0 {
		if len(digits) <= decimals {
			digits = strings.Repeat("0", decimals-len(digits)+1) + digits
		}
		cut := len(digits) - decimals
		digits = digits[:cut] + "." + digits[cut:]
	}
	if negative {
		return "-" + digits
	}
	return digits
}
