package store

import (
	"time"

	"github.com/awesomegic/teller/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// Account Operations
	CreateAccount(number string, balance decimal.Decimal) (int64, error)
	GetAccountByNumber(number string) (*model.Account, error)
	UpdateAccountBalance(accountID int64, balance decimal.Decimal) error

	// Transaction Operations
	CreateTransaction(txn *model.Transaction) (int64, error)
	GetTransactionsByAccount(accountID int64) ([]*model.Transaction, error)

	// Interest Rule Operations
	CreateInterestRule(rule *model.InterestRule) (int64, error)
	UpdateInterestRule(ruleID int64, name string, rate decimal.Decimal) error
	GetInterestRuleByDate(date time.Time) (*model.InterestRule, error)
	GetAllInterestRules() ([]*model.InterestRule, error)

	ExecTx(fn func(Repository) error) error
	Close() error
}
