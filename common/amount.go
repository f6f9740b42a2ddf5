package common

import (
	"fmt"
	"math/big"
	"strings"
)

// MinorUnitDecimals is the number of decimal places between the ledger's
// native coin and its minor unit.
const MinorUnitDecimals = 6

var minorUnitsPerCoin = big.NewInt(1_000_000)

// FormatAmount renders minor units as a decimal coin amount without trailing
// zeros, e.g. 1500000 -> "1.5".
func FormatAmount(minorUnits int64) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	whole := minorUnits / minorUnitsPerCoin.Int64()
	frac := minorUnits % minorUnitsPerCoin.Int64()
	if frac == 0 {
		return fmt.Sprintf("%s%d", sign, whole)
	}
	fracStr := strings.TrimRight(fmt.Sprintf("%0*d", MinorUnitDecimals, frac), "0")
	return fmt.Sprintf("%s%d.%s", sign, whole, fracStr)
}

// ParseAmount converts a decimal coin amount into minor units. More than six
// decimals is an error rather than a silent truncation.
func ParseAmount(amount string) (int64, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(amount))
	if !ok {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrInvalidIntent, amount)
	}
	r.Mul(r, new(big.Rat).SetInt(minorUnitsPerCoin))
	if !r.IsInt() {
		return 0, fmt.Errorf("%w: amount %q has more than %d decimals", ErrInvalidIntent, amount, MinorUnitDecimals)
	}
	n := r.Num()
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: amount %q out of range", ErrInvalidIntent, amount)
	}
	return n.Int64(), nil
}

// ExplorerTxURL links a transaction on the configured explorer. The base URL
// may contain %s for the tx id; otherwise the id is appended as a path.
func ExplorerTxURL(baseURL string, txID string) string {
	if baseURL == "" || txID == "" {
		return ""
	}
	if strings.Contains(baseURL, "%s") {
		return fmt.Sprintf(baseURL, txID)
	}
	return strings.TrimRight(baseURL, "/") + "/transaction/" + txID
}
