package service

import (
	"errors"
	"fmt"

	"github.com/awesomegic/teller/internal/model"
	"github.com/awesomegic/teller/internal/statement"
	"github.com/awesomegic/teller/internal/store"
)

type StatementService struct {
	repo store.Repository
}

func NewStatementService(repo store.Repository) *StatementService {
	return &StatementService{repo: repo}
}

// GetAccountStatement returns the full ledger of an account as statement
// lines without running balances. An unknown or empty account yields an
// empty statement, not an error.
func (ss *StatementService) GetAccountStatement(number string) ([]model.StatementLine, error) {
	account, err := ss.repo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	txns, err := ss.repo.GetTransactionsByAccount(account.ID)
	if err != nil {
		return nil, err
	}

	return statement.LedgerLines(txns), nil
}

// GetMonthlyStatement runs the accrual engine over the account's ledger and
// the rule table for the month given as YYYYMM.
func (ss *StatementService) GetMonthlyStatement(number, yearMonth string) ([]model.StatementLine, error) {
	start, end, err := statement.MonthRange(yearMonth)
	if err != nil {
		return nil, err
	}

	account, err := ss.repo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("account '%s' not found", number)
		}
		return nil, err
	}

	txns, err := ss.repo.GetTransactionsByAccount(account.ID)
	if err != nil {
		return nil, err
	}

	rules, err := ss.repo.GetAllInterestRules()
	if err != nil {
		return nil, err
	}

	return statement.BuildMonthlyStatement(start, end, txns, rules)
}
