package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// columns. Returns the defaultField if the input is empty or not whitelisted.
// Order-by input comes straight from the request and must never reach the
// database unchecked.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// UserSortFields contains allowed sort columns for users
var UserSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"username":   true,
	"email":      true,
	"full_name":  true,
	"status":     true,
}

// ClientSortFields contains allowed sort columns for clients
var ClientSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"contact":    true,
	"phone":      true,
	"nit":        true,
	"status":     true,
}

// ProviderSortFields contains allowed sort columns for providers
var ProviderSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"contact":    true,
	"phone":      true,
	"ruc":        true,
	"status":     true,
}

// CategorySortFields contains allowed sort columns for categories
var CategorySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
}

// ProductSortFields contains allowed sort columns for products
var ProductSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"name":        true,
	"category_id": true,
	"price":       true,
	"stock":       true,
	"status":      true,
}

// PurchaseSortFields contains allowed sort columns for purchases
var PurchaseSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"provider_id": true,
	"date":        true,
	"total":       true,
	"status":      true,
}

// QuoteSortFields contains allowed sort columns for quotes
var QuoteSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"client_id":  true,
	"date":       true,
	"total":      true,
	"status":     true,
}
