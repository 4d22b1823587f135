package service

import (
	"testing"
	"time"

	"github.com/awesomegic/teller/internal/config"
	"github.com/awesomegic/teller/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *memRepo) {
	repo := newMemRepo()
	return NewService(repo, config.NewDefault()), repo
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func day(value string) time.Time {
	t, err := model.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(date, account string, txType model.TransactionType, amount string) TransactionEntry {
	return TransactionEntry{
		Date:          day(date),
		AccountNumber: account,
		Type:          txType,
		Amount:        d(amount),
	}
}

func TestInputTransaction_FirstDepositOpensAccount(t *testing.T) {
	svc, repo := newTestService()

	err := svc.Transaction.InputTransaction(entry("20250401", "AC001", model.TypeDeposit, "500"))
	require.NoError(t, err)

	acc, err := repo.GetAccountByNumber("AC001")
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(d("500")), "balance = %s", acc.Balance)

	txns, err := repo.GetTransactionsByAccount(acc.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "20250401-01", txns[0].TxnID)
}

func TestInputTransaction_FirstMustBeDeposit(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Transaction.InputTransaction(entry("20250401", "AC001", model.TypeWithdrawal, "100"))
	assert.ErrorContains(t, err, "must be a Deposit")
}

func TestInputTransaction_InterestCannotBeEntered(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Transaction.InputTransaction(entry("20250401", "AC001", model.TypeInterest, "1.50"))
	assert.ErrorContains(t, err, "Deposit (D) and Withdrawal (W)")
}

func TestInputTransaction_SameDaySequenceNumbers(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.Transaction.InputTransaction(entry("20250401", "AC001", model.TypeDeposit, "100")))
	require.NoError(t, svc.Transaction.InputTransaction(entry("20250401", "AC001", model.TypeDeposit, "100")))
	require.NoError(t, svc.Transaction.InputTransaction(entry("20250402", "AC001", model.TypeDeposit, "100")))

	acc, err := repo.GetAccountByNumber("AC001")
	require.NoError(t, err)

	txns, err := repo.GetTransactionsByAccount(acc.ID)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "20250401-01", txns[0].TxnID)
	assert.Equal(t, "20250401-02", txns[1].TxnID)
	assert.Equal(t, "20250402-01", txns[2].TxnID)
}

func TestInputTransaction_OverdraftRejected(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.Transaction.InputTransaction(entry("20250401", "AC001", model.TypeDeposit, "100")))

	err := svc.Transaction.InputTransaction(entry("20250402", "AC001", model.TypeWithdrawal, "200"))
	assert.ErrorContains(t, err, "insufficient account balance")

	acc, err := repo.GetAccountByNumber("AC001")
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(d("100")), "balance = %s", acc.Balance)

	txns, err := repo.GetTransactionsByAccount(acc.ID)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestInputTransaction_WithdrawalToZeroAllowed(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.Transaction.InputTransaction(entry("20250401", "AC001", model.TypeDeposit, "100")))
	require.NoError(t, svc.Transaction.InputTransaction(entry("20250402", "AC001", model.TypeWithdrawal, "100")))

	acc, err := repo.GetAccountByNumber("AC001")
	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero(), "balance = %s", acc.Balance)
}

func TestInputTransaction_BalanceTracksLedger(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.Transaction.InputTransaction(entry("20250401", "AC001", model.TypeDeposit, "500")))
	require.NoError(t, svc.Transaction.InputTransaction(entry("20250402", "AC001", model.TypeDeposit, "200")))
	require.NoError(t, svc.Transaction.InputTransaction(entry("20250403", "AC001", model.TypeWithdrawal, "300")))

	acc, err := repo.GetAccountByNumber("AC001")
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(d("400")), "balance = %s", acc.Balance)
}
