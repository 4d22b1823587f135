package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/awesomegic/teller/internal/model"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateInterestRule(rule *model.InterestRule) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO interest_rules (effective_date, rule_id, rate)
		VALUES (?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(
		rule.Date.UTC().Format(model.DateStoreLayout),
		rule.RuleID,
		rule.Rate.String(),
	).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: interest_rules.effective_date") {
			return 0, fmt.Errorf("interest rule for %s: %w", model.FormatDate(rule.Date), ErrDuplicateRecord)
		}
		return 0, fmt.Errorf("failed to insert interest rule: %w", err)
	}

	return newID, nil
}

func (s *Store) UpdateInterestRule(ruleID int64, name string, rate decimal.Decimal) error {
	result, err := s.db.Exec(`
		UPDATE interest_rules
		SET rule_id = ?, rate = ?
		WHERE id = ?
	`, name, rate.String(), ruleID)
	if err != nil {
		return fmt.Errorf("failed to update interest rule: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("interest rule with ID %d: %w", ruleID, ErrRecordNotFound)
	}

	return nil
}

func (s *Store) GetInterestRuleByDate(date time.Time) (*model.InterestRule, error) {
	row := s.db.QueryRow(`
		SELECT id, effective_date, rule_id, rate
		FROM interest_rules
		WHERE effective_date = ?
	`, date.UTC().Format(model.DateStoreLayout))

	rule, err := scanInterestRule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("interest rule for %s: %w", model.FormatDate(date), ErrRecordNotFound)
		}
		return nil, err
	}

	return rule, nil
}

// GetAllInterestRules returns every rule in (effective date, id) order.
func (s *Store) GetAllInterestRules() ([]*model.InterestRule, error) {
	rows, err := s.db.Query(`
		SELECT id, effective_date, rule_id, rate
		FROM interest_rules
		ORDER BY effective_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query interest rules: %w", err)
	}
	defer rows.Close()

	var rules []*model.InterestRule
	for rows.Next() {
		rule, err := scanInterestRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func scanInterestRule(row rowScanner) (*model.InterestRule, error) {
	rule := &model.InterestRule{}
	var dateStr, rateStr string

	err := row.Scan(&rule.ID, &dateStr, &rule.RuleID, &rateStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan interest rule: %w", err)
	}

	rule.Date, err = time.ParseInLocation(model.DateStoreLayout, dateStr, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("corrupt rule date '%s': %w", dateStr, err)
	}

	rule.Rate, err = decimal.NewFromString(rateStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt rule rate '%s': %w", rateStr, err)
	}

	return rule, nil
}
