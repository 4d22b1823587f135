// Package statement reconstructs account balances and accrues daily
// interest for statement periods. Everything in this package is a pure
// function of caller-supplied snapshots: no I/O, no shared state, safe to
// call concurrently for different accounts or periods.
package statement

import (
	"sort"
	"time"

	"github.com/awesomegic/teller/internal/model"
	"github.com/shopspring/decimal"
)

// interestBasis divides balance*rate to get one day of interest:
// rate is a percentage (÷100) and accrual is simple daily on a 365-day year.
var interestBasis = decimal.NewFromInt(100 * 365)

// ActiveRule returns the interest rule in effect on the given day: the rule
// with the latest effective date on or before it. Rules must already be
// sorted by (date, id); a linear scan is fine at the rule counts involved.
// Returns nil when no rule has taken effect yet.
func ActiveRule(sortedRules []*model.InterestRule, day time.Time) *model.InterestRule {
	target := model.DateOnly(day)

	var active *model.InterestRule
	for _, rule := range sortedRules {
		if model.DateOnly(rule.Date).After(target) {
			break
		}
		active = rule
	}

	return active
}

func sortRules(rules []*model.InterestRule) []*model.InterestRule {
	sorted := make([]*model.InterestRule, len(rules))
	copy(sorted, rules)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := model.DateOnly(sorted[i].Date), model.DateOnly(sorted[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}

// BuildMonthlyStatement produces the statement body for [start, end]: one
// line per transaction in the period with its running balance, plus at most
// one interest line dated on the end date. The transaction and rule lists
// are immutable snapshots supplied by the caller and may be unsorted.
func BuildMonthlyStatement(start, end time.Time, txns []*model.Transaction, rules []*model.InterestRule) ([]model.StatementLine, error) {
	lines, closing, accrued, err := accruePeriod(start, end, txns, rules)
	if err != nil {
		return nil, err
	}

	// Only the period total is rounded; daily accruals accumulate unrounded.
	// Round is half away from zero, matching the posting convention.
	interest := accrued.Round(2)
	if !interest.IsZero() {
		closing = closing.Add(interest)
		balance := closing
		lines = append(lines, model.StatementLine{
			Date:    model.DateOnly(end),
			TxnID:   "",
			Type:    model.TypeInterest,
			Amount:  interest,
			Balance: &balance,
		})
	}

	sortLines(lines)

	return lines, nil
}

// accruePeriod walks the period day by day. Each day applies that day's
// transactions to the running balance first, then accrues interest on the
// post-transaction balance, so same-day deposits earn interest from the day
// they land.
func accruePeriod(start, end time.Time, txns []*model.Transaction, rules []*model.InterestRule) ([]model.StatementLine, decimal.Decimal, decimal.Decimal, error) {
	startDay := model.DateOnly(start)
	endDay := model.DateOnly(end)

	sortedTxns := sortTransactions(txns)
	sortedRules := sortRules(rules)

	// Carry-over balance from everything before the period.
	balance, err := BalanceAsOf(sortedTxns, startDay.AddDate(0, 0, -1))
	if err != nil {
		return nil, decimal.Decimal{}, decimal.Decimal{}, err
	}

	next := 0
	for next < len(sortedTxns) && model.DateOnly(sortedTxns[next].Date).Before(startDay) {
		next++
	}

	var lines []model.StatementLine
	accrued := decimal.Zero

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		for next < len(sortedTxns) && model.DateOnly(sortedTxns[next].Date).Equal(day) {
			txn := sortedTxns[next]

			balance, err = applyTransaction(balance, txn)
			if err != nil {
				return nil, decimal.Decimal{}, decimal.Decimal{}, err
			}

			running := balance
			lines = append(lines, model.StatementLine{
				Date:    model.DateOnly(txn.Date),
				TxnID:   txn.TxnID,
				Type:    txn.Type,
				Amount:  txn.Amount,
				Balance: &running,
			})

			next++
		}

		if rule := ActiveRule(sortedRules, day); rule != nil {
			daily := balance.Mul(rule.Rate).Div(interestBasis)
			accrued = accrued.Add(daily)
		}
	}

	return lines, balance, accrued, nil
}

// LedgerLines renders transactions as statement lines without running
// balances, for the plain (non-monthly) statement view. Lines come out in
// (date, id) order regardless of input order.
func LedgerLines(txns []*model.Transaction) []model.StatementLine {
	sorted := sortTransactions(txns)

	lines := make([]model.StatementLine, 0, len(sorted))
	for _, txn := range sorted {
		lines = append(lines, model.StatementLine{
			Date:   model.DateOnly(txn.Date),
			TxnID:  txn.TxnID,
			Type:   txn.Type,
			Amount: txn.Amount,
		})
	}

	return lines
}

// sortLines orders the final statement body by date, breaking same-day ties
// by type so the interest posting lands after that day's transactions. The
// sort is stable, so same-day lines of one type keep ledger order.
func sortLines(lines []model.StatementLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].Date.Equal(lines[j].Date) {
			return lines[i].Date.Before(lines[j].Date)
		}
		return lines[i].Type < lines[j].Type
	})
}
