package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/awesomegic/teller/internal/model"
	"github.com/awesomegic/teller/internal/store"
	"github.com/shopspring/decimal"
)

// memRepo is an in-memory store.Repository for service tests.
type memRepo struct {
	accounts []*model.Account
	txns     []*model.Transaction
	rules    []*model.InterestRule
	lastID   int64
}

func newMemRepo() *memRepo {
	return &memRepo{}
}

func (m *memRepo) nextID() int64 {
	m.lastID++
	return m.lastID
}

func (m *memRepo) CreateAccount(number string, balance decimal.Decimal) (int64, error) {
	for _, acc := range m.accounts {
		if acc.Number == number {
			return 0, fmt.Errorf("account '%s': %w", number, store.ErrDuplicateRecord)
		}
	}

	acc := &model.Account{ID: m.nextID(), Number: number, Balance: balance}
	m.accounts = append(m.accounts, acc)
	return acc.ID, nil
}

func (m *memRepo) GetAccountByNumber(number string) (*model.Account, error) {
	for _, acc := range m.accounts {
		if acc.Number == number {
			copied := *acc
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("account '%s': %w", number, store.ErrRecordNotFound)
}

func (m *memRepo) UpdateAccountBalance(accountID int64, balance decimal.Decimal) error {
	for _, acc := range m.accounts {
		if acc.ID == accountID {
			acc.Balance = balance
			return nil
		}
	}
	return fmt.Errorf("account with ID %d: %w", accountID, store.ErrRecordNotFound)
}

func (m *memRepo) CreateTransaction(txn *model.Transaction) (int64, error) {
	copied := *txn
	copied.ID = m.nextID()
	m.txns = append(m.txns, &copied)
	return copied.ID, nil
}

func (m *memRepo) GetTransactionsByAccount(accountID int64) ([]*model.Transaction, error) {
	var result []*model.Transaction
	for _, txn := range m.txns {
		if txn.AccountID == accountID {
			copied := *txn
			result = append(result, &copied)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (m *memRepo) CreateInterestRule(rule *model.InterestRule) (int64, error) {
	for _, existing := range m.rules {
		if existing.Date.Equal(rule.Date) {
			return 0, fmt.Errorf("interest rule for %s: %w", model.FormatDate(rule.Date), store.ErrDuplicateRecord)
		}
	}

	copied := *rule
	copied.ID = m.nextID()
	m.rules = append(m.rules, &copied)
	return copied.ID, nil
}

func (m *memRepo) UpdateInterestRule(ruleID int64, name string, rate decimal.Decimal) error {
	for _, rule := range m.rules {
		if rule.ID == ruleID {
			rule.RuleID = name
			rule.Rate = rate
			return nil
		}
	}
	return fmt.Errorf("interest rule with ID %d: %w", ruleID, store.ErrRecordNotFound)
}

func (m *memRepo) GetInterestRuleByDate(date time.Time) (*model.InterestRule, error) {
	for _, rule := range m.rules {
		if rule.Date.Equal(date) {
			copied := *rule
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("interest rule for %s: %w", model.FormatDate(date), store.ErrRecordNotFound)
}

func (m *memRepo) GetAllInterestRules() ([]*model.InterestRule, error) {
	result := make([]*model.InterestRule, 0, len(m.rules))
	for _, rule := range m.rules {
		copied := *rule
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (m *memRepo) ExecTx(fn func(store.Repository) error) error {
	return fn(m)
}

func (m *memRepo) Close() error {
	return nil
}
