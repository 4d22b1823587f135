package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const MaxAccountNumberLen = 30

// ValidateAccountNumber checks a console-entered account identifier.
func ValidateAccountNumber(number string) error {
	number = strings.TrimSpace(number)

	if number == "" {
		return fmt.Errorf("account number can't be empty")
	}

	if len(number) > MaxAccountNumberLen {
		return fmt.Errorf("account number too long (max %d characters)", MaxAccountNumberLen)
	}

	for _, c := range number {
		if c == ' ' || c == '|' {
			return fmt.Errorf("account number cannot contain '%c'", c)
		}
	}

	return nil
}

// ParseAmount parses a monetary amount: positive, at most 2 decimal places.
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount: %s", input)
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be greater than 0")
	}

	if amount.Exponent() < -2 {
		return decimal.Decimal{}, fmt.Errorf("amount can have at most 2 decimal places")
	}

	return amount, nil
}

// ParseRate parses an annualized interest rate in percent, strictly between
// 0 and 100.
func ParseRate(input string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid rate: %s", input)
	}

	if err := ValidateRate(rate); err != nil {
		return decimal.Decimal{}, err
	}

	return rate, nil
}

func ValidateRate(rate decimal.Decimal) error {
	if !rate.IsPositive() || rate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return fmt.Errorf("rate should be between 0 and 100")
	}
	return nil
}
