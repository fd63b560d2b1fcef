package dto

import "github.com/shopspring/decimal"

// MinorUnitExponent is the number of decimal places of one cash or ly minor unit
const MinorUnitExponent = 2

// FormatMinor renders an amount in minor units as a fixed point decimal string, 12345 -> "123.45"
func FormatMinor(amount int64) string {
	return decimal.New(amount, -MinorUnitExponent).StringFixed(MinorUnitExponent)
}

// FormatBps renders basis points as a percentage, 1250 -> "12.50"
func FormatBps(bps int64) string {
	return decimal.New(bps, -2).StringFixed(2)
}
