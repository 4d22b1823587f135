package config

import "github.com/awesomegic/teller/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Bank       BankConfig     `mapstructure:"bank"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type BankConfig struct {
	Name string `mapstructure:"name"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Bank:     BankConfig{Name: constants.DefaultBankName},
	}
}
