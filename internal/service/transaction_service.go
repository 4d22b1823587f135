package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/awesomegic/teller/internal/config"
	"github.com/awesomegic/teller/internal/model"
	"github.com/awesomegic/teller/internal/store"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	repo   store.Repository
	config *config.Config
}

func NewTransactionService(repo store.Repository, cfg *config.Config) *TransactionService {
	return &TransactionService{repo: repo, config: cfg}
}

// TransactionEntry is a parsed, not yet validated console entry.
type TransactionEntry struct {
	Date          time.Time
	AccountNumber string
	Type          model.TransactionType
	Amount        decimal.Decimal
}

// InputTransaction records a deposit or withdrawal. The first transaction of
// an unknown account must be a deposit and opens the account; a withdrawal
// may never take the balance below zero. Interest postings are synthesized
// on statements, never entered here.
func (ts *TransactionService) InputTransaction(entry TransactionEntry) error {
	if entry.Type != model.TypeDeposit && entry.Type != model.TypeWithdrawal {
		return fmt.Errorf("only Deposit (D) and Withdrawal (W) transactions can be entered")
	}

	if !entry.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than 0")
	}

	account, err := ts.repo.GetAccountByNumber(entry.AccountNumber)
	if err != nil {
		if !errors.Is(err, store.ErrRecordNotFound) {
			return err
		}
		return ts.openAccount(entry)
	}

	existing, err := ts.repo.GetTransactionsByAccount(account.ID)
	if err != nil {
		return err
	}

	newBalance := account.Balance
	switch entry.Type {
	case model.TypeDeposit:
		newBalance = newBalance.Add(entry.Amount)
	case model.TypeWithdrawal:
		newBalance = newBalance.Sub(entry.Amount)
	}

	if newBalance.IsNegative() {
		return fmt.Errorf("insufficient account balance to withdraw %s", entry.Amount.StringFixed(2))
	}

	txn := &model.Transaction{
		AccountID: account.ID,
		Date:      model.DateOnly(entry.Date),
		TxnID:     nextTxnID(existing, entry.Date),
		Type:      entry.Type,
		Amount:    entry.Amount,
	}

	return ts.repo.ExecTx(func(repo store.Repository) error {
		if _, err := repo.CreateTransaction(txn); err != nil {
			return err
		}
		return repo.UpdateAccountBalance(account.ID, newBalance)
	})
}

func (ts *TransactionService) openAccount(entry TransactionEntry) error {
	if entry.Type != model.TypeDeposit {
		return fmt.Errorf("first transaction of a new account must be a Deposit")
	}

	return ts.repo.ExecTx(func(repo store.Repository) error {
		accountID, err := repo.CreateAccount(entry.AccountNumber, entry.Amount)
		if err != nil {
			return err
		}

		txn := &model.Transaction{
			AccountID: accountID,
			Date:      model.DateOnly(entry.Date),
			TxnID:     nextTxnID(nil, entry.Date),
			Type:      model.TypeDeposit,
			Amount:    entry.Amount,
		}

		_, err = repo.CreateTransaction(txn)
		return err
	})
}

// nextTxnID allocates the YYYYMMDD-NN display id: a 2-digit, 1-based running
// number per account per day.
func nextTxnID(existing []*model.Transaction, date time.Time) string {
	day := model.DateOnly(date)

	maxNumber := 0
	for _, txn := range existing {
		if !model.DateOnly(txn.Date).Equal(day) {
			continue
		}

		parts := strings.Split(txn.TxnID, "-")
		if len(parts) != 2 {
			continue
		}
		if n, err := strconv.Atoi(parts[1]); err == nil && n > maxNumber {
			maxNumber = n
		}
	}

	return fmt.Sprintf("%s-%02d", model.FormatDate(day), maxNumber+1)
}
