package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-warrior-store/internal/catalog"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrProviderNotConfigured = errors.New("payment provider is not configured")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
)

// CheckoutMetadata travels with a payment session so the confirmation
// callback can be expanded back into ledger rows without trusting the client.
type CheckoutMetadata struct {
	ProductID   string   `json:"product_id"`
	ProductType string   `json:"product_type"`
	Race        string   `json:"race"`
	Slot        string   `json:"slot"`
	ItemID      string   `json:"item_id"`
	BundleItems []string `json:"bundle_items,omitempty"`
}

func metadataForProduct(p *catalog.Product) CheckoutMetadata {
	return CheckoutMetadata{
		ProductID:   p.ID,
		ProductType: string(p.Kind),
		Race:        string(p.Race),
		Slot:        string(p.Slot),
		ItemID:      p.VariantID,
		BundleItems: p.BundleItems,
	}
}

// encodeBundleItems flattens the constituent list into a JSON string, the
// form every provider's string-only metadata store accepts.
func encodeBundleItems(items []string) string {
	if len(items) == 0 {
		return ""
	}
	encoded, _ := json.Marshal(items)
	return string(encoded)
}

// DecodeBundleItems parses a JSON-encoded constituent list carried in
// provider metadata. An empty string decodes to nil.
func DecodeBundleItems(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("malformed bundle_items metadata: %w", err)
	}
	return items, nil
}
