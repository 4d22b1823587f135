package cmd

import (
	"testing"

	"github.com/awesomegic/teller/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionLine(t *testing.T) {
	entry, err := parseTransactionLine("20250626 ac001 d 123.45")
	require.NoError(t, err)

	assert.Equal(t, "AC001", entry.AccountNumber)
	assert.Equal(t, model.TypeDeposit, entry.Type)
	assert.Equal(t, "20250626", model.FormatDate(entry.Date))
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("123.45")))

	for _, line := range []string{
		"",
		"20250626 AC001 D",
		"20250626 AC001 D 100 extra",
		"20251337 AC001 D 100",
		"20250626 AC001 X 100",
		"20250626 AC001 D -100",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := parseTransactionLine(line)
			assert.Error(t, err)
		})
	}
}

func TestParseRuleLine(t *testing.T) {
	date, ruleID, rate, err := parseRuleLine("20230615 rule03 2.20")
	require.NoError(t, err)

	assert.Equal(t, "20230615", model.FormatDate(date))
	assert.Equal(t, "RULE03", ruleID)
	assert.True(t, rate.Equal(decimal.RequireFromString("2.2")))

	for _, line := range []string{"", "20230615 RULE03", "20230615 RULE03 0", "20230615 RULE03 101"} {
		t.Run(line, func(t *testing.T) {
			_, _, _, err := parseRuleLine(line)
			assert.Error(t, err)
		})
	}
}

func TestParseStatementLine(t *testing.T) {
	number, yearMonth, err := parseStatementLine("ac001 202306")
	require.NoError(t, err)

	assert.Equal(t, "AC001", number)
	assert.Equal(t, "202306", yearMonth)

	_, _, err = parseStatementLine("AC001")
	assert.Error(t, err)
}
