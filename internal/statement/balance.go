package statement

import (
	"fmt"
	"sort"
	"time"

	"github.com/awesomegic/teller/internal/model"
	"github.com/shopspring/decimal"
)

// applyTransaction folds one transaction into a balance. Deposits and
// interest postings credit the account, withdrawals debit it.
func applyTransaction(balance decimal.Decimal, txn *model.Transaction) (decimal.Decimal, error) {
	switch txn.Type {
	case model.TypeDeposit, model.TypeInterest:
		return balance.Add(txn.Amount), nil
	case model.TypeWithdrawal:
		return balance.Sub(txn.Amount), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("no balance rule for transaction type '%s'", txn.Type)
	}
}

// sortTransactions returns a copy sorted by (date, id) ascending. Same-day
// transactions keep their insertion order via the id tie-break.
func sortTransactions(txns []*model.Transaction) []*model.Transaction {
	sorted := make([]*model.Transaction, len(txns))
	copy(sorted, txns)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := model.DateOnly(sorted[i].Date), model.DateOnly(sorted[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}

// BalanceAsOf computes the account balance immediately after applying every
// transaction dated on or before cutoff (day granularity). The input list
// may be unsorted.
func BalanceAsOf(txns []*model.Transaction, cutoff time.Time) (decimal.Decimal, error) {
	cutoffDay := model.DateOnly(cutoff)

	balance := decimal.Zero
	for _, txn := range sortTransactions(txns) {
		if model.DateOnly(txn.Date).After(cutoffDay) {
			break
		}

		var err error
		balance, err = applyTransaction(balance, txn)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}

	return balance, nil
}
