package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/awesomegic/teller/internal/model"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateAccount(number string, balance decimal.Decimal) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO accounts (number, balance)
		VALUES (?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(number, balance.String()).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: accounts.number") {
			return 0, fmt.Errorf("account '%s': %w", number, ErrDuplicateRecord)
		}
		return 0, fmt.Errorf("failed to insert account: %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccountByNumber(number string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT id, number, balance FROM accounts WHERE number = ?", number)

	acc := &model.Account{}
	var balanceStr string

	err := row.Scan(&acc.ID, &acc.Number, &balanceStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", number, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s': %w", number, err)
	}

	acc.Balance, err = decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt balance for account '%s': %w", number, err)
	}

	return acc, nil
}

func (s *Store) UpdateAccountBalance(accountID int64, balance decimal.Decimal) error {
	result, err := s.db.Exec(`
		UPDATE accounts
		SET balance = ?
		WHERE id = ?
	`, balance.String(), accountID)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("account with ID %d: %w", accountID, ErrRecordNotFound)
	}

	return nil
}
