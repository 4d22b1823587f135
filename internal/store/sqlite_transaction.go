package store

import (
	"fmt"
	"time"

	"github.com/awesomegic/teller/internal/model"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateTransaction(txn *model.Transaction) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO transactions (account_id, txn_date, txn_id, type, amount)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(
		txn.AccountID,
		txn.Date.UTC().Format(model.DateStoreLayout),
		txn.TxnID,
		txn.Type.Code(),
		txn.Amount.String(),
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newID, nil
}

// GetTransactionsByAccount returns the full ledger for one account in
// (date, id) ascending order.
func (s *Store) GetTransactionsByAccount(accountID int64) ([]*model.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT id, account_id, txn_date, txn_id, type, amount
		FROM transactions
		WHERE account_id = ?
		ORDER BY txn_date, id
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []*model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	txn := &model.Transaction{}
	var dateStr, typeCode, amountStr string

	err := row.Scan(&txn.ID, &txn.AccountID, &dateStr, &txn.TxnID, &typeCode, &amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	txn.Date, err = time.ParseInLocation(model.DateStoreLayout, dateStr, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("corrupt transaction date '%s': %w", dateStr, err)
	}

	txn.Type, err = model.ParseTransactionType(typeCode)
	if err != nil {
		return nil, fmt.Errorf("corrupt transaction type: %w", err)
	}

	txn.Amount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt transaction amount '%s': %w", amountStr, err)
	}

	return txn, nil
}
