package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRule is an effective-dated annualized interest rate.
// Rate is a percentage, e.g. 2.50 for 2.5% p.a.
type InterestRule struct {
	ID     int64
	Date   time.Time
	RuleID string
	Rate   decimal.Decimal
}
