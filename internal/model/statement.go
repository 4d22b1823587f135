package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one row of an account statement. Balance is nil on the
// plain ledger view and set to the running balance on monthly statements.
// Interest lines carry an empty TxnID.
type StatementLine struct {
	Date    time.Time
	TxnID   string
	Type    TransactionType
	Amount  decimal.Decimal
	Balance *decimal.Decimal
}
