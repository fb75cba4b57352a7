// Package money does minor-unit (paise) arithmetic. Amounts are int64 paise
// everywhere; the only rounding point is percentage computation, which rounds
// half-up to the nearest paisa. Keeping a single rounding site avoids
// compounding error across the breakdown.
package money

import "fmt"

// PercentOf returns percent% of amount, rounded half-up to whole paise.
func PercentOf(amount int64, percent int64) int64 {
	n := amount * percent
	if n >= 0 {
		return (n + 50) / 100
	}
	return -((-n + 50) / 100)
}

// FromRupees converts whole rupees to paise.
func FromRupees(r int64) int64 {
	return r * 100
}

// Rupees formats paise as a rupee string, e.g. 56500 -> "565.00".
func Rupees(p int64) string {
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s%d.%02d", sign, p/100, p%100)
}

// Min returns the smaller of two amounts.
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
