package util

import "fmt"

// Pow10 returns 10^exp for 0 <= exp <= 18.
func Pow10(exp int) (int, error) {
	if exp < 0 || exp > 18 {
		return 0, fmt.Errorf("exponent out of range: %d", exp)
	}
	result := 1
	for i := 0; i < exp; i++ {
		result *= 10
	}
	return result, nil
}

// RoundedQuotient returns floor(dividend/divisor + 0.5) for a non-negative dividend
// and a positive divisor, without going through floating point.
func RoundedQuotient(dividend, divisor int) (int, error) {
	if divisor <= 0 {
		return 0, fmt.Errorf("divisor must be positive, got %d", divisor)
	}
	if dividend < 0 {
		return 0, fmt.Errorf("dividend must not be negative, got %d", dividend)
	}
	return (2*dividend + divisor) / (2 * divisor), nil
}
