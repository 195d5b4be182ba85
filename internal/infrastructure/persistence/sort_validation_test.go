package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns DESC", "", "DESC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"desc lowercase returns DESC", "desc", "DESC"},
		{"whitespace around asc returns ASC", "  asc  ", "ASC"},
		{"invalid value returns DESC", "sideways", "DESC"},
		{"injection attempt returns DESC", "asc; DROP TABLE users;--", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns default", "", "created_at"},
		{"whitelisted field passes", "username", "username"},
		{"whitespace around field is trimmed", "  email  ", "email"},
		{"unknown field returns default", "password_hash", "created_at"},
		{"case sensitive, uppercase rejected", "USERNAME", "created_at"},
		{"subquery returns default", "(SELECT password_hash FROM users LIMIT 1)", "created_at"},
		{"stacked statement returns default", "created_at); DROP TABLE users; --", "created_at"},
		{"quoted injection returns default", "username'--", "created_at"},
		{"field list returns default", "username, password_hash", "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, UserSortFields, "created_at"))
		})
	}
}

func TestSortFieldWhitelists(t *testing.T) {
	whitelists := map[string]map[string]bool{
		"UserSortFields":     UserSortFields,
		"ClientSortFields":   ClientSortFields,
		"ProviderSortFields": ProviderSortFields,
		"CategorySortFields": CategorySortFields,
		"ProductSortFields":  ProductSortFields,
		"PurchaseSortFields": PurchaseSortFields,
		"QuoteSortFields":    QuoteSortFields,
	}

	for name, whitelist := range whitelists {
		t.Run(name, func(t *testing.T) {
			for _, field := range []string{"id", "created_at", "updated_at", "status"} {
				assert.True(t, whitelist[field], "%s should contain %q", name, field)
			}
			assert.False(t, whitelist["password_hash"], "%s must not expose password_hash", name)
		})
	}
}
