package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "AC001", false},
		{"trimmed", "  AC001  ", false},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"inner space", "AC 001", true},
		{"pipe", "AC|001", true},
		{"too long", "A123456789012345678901234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccountNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"integer", "500", "500", ""},
		{"two decimals", "123.45", "123.45", ""},
		{"trimmed", " 10.00 ", "10", ""},
		{"zero", "0", "", "greater than 0"},
		{"negative", "-5", "", "greater than 0"},
		{"three decimals", "1.005", "", "at most 2 decimal places"},
		{"junk", "abc", "", "invalid amount"},
		{"empty", "", "", "invalid amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"small", "0.01", "0.01", ""},
		{"typical", "2.50", "2.5", ""},
		{"near ceiling", "99.99", "99.99", ""},
		{"zero", "0", "", "between 0 and 100"},
		{"negative", "-1", "", "between 0 and 100"},
		{"ceiling", "100", "", "between 0 and 100"},
		{"above ceiling", "120", "", "between 0 and 100"},
		{"junk", "x", "", "invalid rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRate(tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
