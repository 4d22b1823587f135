package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/awesomegic/teller/internal/config"
	"github.com/awesomegic/teller/internal/model"
	"github.com/awesomegic/teller/internal/store"
	"github.com/awesomegic/teller/internal/validation"
	"github.com/shopspring/decimal"
)

type RuleService struct {
	repo   store.Repository
	config *config.Config
}

func NewRuleService(repo store.Repository, cfg *config.Config) *RuleService {
	return &RuleService{repo: repo, config: cfg}
}

// DefineRule creates or replaces the interest rule for an effective date.
// At most one rule exists per date, so redefining a date is an update.
func (rs *RuleService) DefineRule(date time.Time, ruleID string, rate decimal.Decimal) error {
	ruleID = strings.TrimSpace(ruleID)
	if ruleID == "" {
		return fmt.Errorf("rule id can't be empty")
	}

	if err := validation.ValidateRate(rate); err != nil {
		return err
	}

	day := model.DateOnly(date)

	existing, err := rs.repo.GetInterestRuleByDate(day)
	if err == nil {
		return rs.repo.UpdateInterestRule(existing.ID, ruleID, rate)
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return err
	}

	_, err = rs.repo.CreateInterestRule(&model.InterestRule{
		Date:   day,
		RuleID: ruleID,
		Rate:   rate,
	})
	return err
}

// ListRules returns all interest rules in effective-date order.
func (rs *RuleService) ListRules() ([]*model.InterestRule, error) {
	return rs.repo.GetAllInterestRules()
}
