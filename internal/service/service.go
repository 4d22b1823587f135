package service

import (
	"github.com/awesomegic/teller/internal/config"
	"github.com/awesomegic/teller/internal/store"
)

type Service struct {
	Transaction *TransactionService
	Rule        *RuleService
	Statement   *StatementService
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Transaction: NewTransactionService(repo, cfg),
		Rule:        NewRuleService(repo, cfg),
		Statement:   NewStatementService(repo),
	}
}
