package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType int

const (
	TypeDeposit TransactionType = iota + 1
	TypeWithdrawal
	TypeInterest
)

// ParseTransactionType maps the single-letter console code to a type.
func ParseTransactionType(input string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "D":
		return TypeDeposit, nil
	case "W":
		return TypeWithdrawal, nil
	case "I":
		return TypeInterest, nil
	default:
		return 0, fmt.Errorf("invalid transaction type: %s", input)
	}
}

// Code returns the single-letter display code used on statements.
func (t TransactionType) Code() string {
	switch t {
	case TypeDeposit:
		return "D"
	case TypeWithdrawal:
		return "W"
	case TypeInterest:
		return "I"
	default:
		return "?"
	}
}

func (t TransactionType) String() string {
	switch t {
	case TypeDeposit:
		return "Deposit"
	case TypeWithdrawal:
		return "Withdrawal"
	case TypeInterest:
		return "Interest"
	default:
		return fmt.Sprintf("TransactionType(%d)", int(t))
	}
}

type Transaction struct {
	ID        int64
	AccountID int64
	Date      time.Time
	TxnID     string
	Type      TransactionType
	Amount    decimal.Decimal
}
