package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/awesomegic/teller/internal/model"
	"github.com/awesomegic/teller/internal/service"
	"github.com/awesomegic/teller/internal/validation"
	"github.com/shopspring/decimal"
)

// parseTransactionLine parses a "<Date> <Account> <Type> <Amount>" entry.
func parseTransactionLine(line string) (service.TransactionEntry, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return service.TransactionEntry{}, fmt.Errorf("invalid input format, expected <Date> <Account> <Type> <Amount>")
	}

	date, err := model.ParseDate(parts[0])
	if err != nil {
		return service.TransactionEntry{}, err
	}

	number := strings.ToUpper(parts[1])
	if err := validation.ValidateAccountNumber(number); err != nil {
		return service.TransactionEntry{}, err
	}

	txType, err := model.ParseTransactionType(parts[2])
	if err != nil {
		return service.TransactionEntry{}, err
	}

	amount, err := validation.ParseAmount(parts[3])
	if err != nil {
		return service.TransactionEntry{}, err
	}

	return service.TransactionEntry{
		Date:          date,
		AccountNumber: number,
		Type:          txType,
		Amount:        amount,
	}, nil
}

// parseRuleLine parses a "<Date> <RuleId> <Rate in %>" entry.
func parseRuleLine(line string) (time.Time, string, decimal.Decimal, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return time.Time{}, "", decimal.Decimal{}, fmt.Errorf("invalid input format, expected <Date> <RuleId> <Rate in %%>")
	}

	date, err := model.ParseDate(parts[0])
	if err != nil {
		return time.Time{}, "", decimal.Decimal{}, err
	}

	ruleID := strings.ToUpper(parts[1])

	rate, err := validation.ParseRate(parts[2])
	if err != nil {
		return time.Time{}, "", decimal.Decimal{}, err
	}

	return date, ruleID, rate, nil
}

// parseStatementLine parses an "<Account> <YYYYMM>" entry. The month token
// is validated later by the statement engine.
func parseStatementLine(line string) (string, string, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid input format, expected <Account> <YYYYMM>")
	}

	number := strings.ToUpper(parts[0])
	if err := validation.ValidateAccountNumber(number); err != nil {
		return "", "", err
	}

	return number, parts[1], nil
}
