package service

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go-warrior-store/internal/catalog"
)

const lemonSqueezyAPIURL = "https://api.lemonsqueezy.com"

// LemonSqueezyCheckout creates hosted checkouts through the Lemon Squeezy
// JSON:API. Each catalog product maps to a store variant configured per
// environment.
type LemonSqueezyCheckout struct {
	catalog *catalog.Catalog
	client  *http.Client
	apiURL  string
}

func NewLemonSqueezyCheckout(cat *catalog.Catalog) *LemonSqueezyCheckout {
	return &LemonSqueezyCheckout{
		catalog: cat,
		client:  &http.Client{Timeout: 15 * time.Second},
		apiURL:  lemonSqueezyAPIURL,
	}
}

// variantEnvKey maps a product id to the env var holding its Lemon Squeezy
// variant id, e.g. human-knight-set -> LEMONSQUEEZY_VARIANT_HUMAN_KNIGHT_SET.
func variantEnvKey(productID string) string {
	return "LEMONSQUEEZY_VARIANT_" + strings.ToUpper(strings.ReplaceAll(productID, "-", "_"))
}

// CreateCheckout creates a hosted checkout for the product and returns its
// URL. Custom data mirrors the Stripe session metadata so the webhook handler
// can treat both providers the same.
func (s *LemonSqueezyCheckout) CreateCheckout(productID string) (string, error) {
	apiKey := os.Getenv("LEMONSQUEEZY_API_KEY")
	storeID := os.Getenv("LEMONSQUEEZY_STORE_ID")
	if apiKey == "" || storeID == "" {
		return "", ErrProviderNotConfigured
	}

	product := s.catalog.FindByID(productID)
	if product == nil {
		return "", ErrProductNotFound
	}

	variantID := os.Getenv(variantEnvKey(productID))
	if variantID == "" {
		return "", fmt.Errorf("%w: no variant id for product %s", ErrProviderNotConfigured, productID)
	}

	meta := metadataForProduct(product)
	body := map[string]interface{}{
		"data": map[string]interface{}{
			"type": "checkouts",
			"attributes": map[string]interface{}{
				"checkout_data": map[string]interface{}{
					"custom": map[string]string{
						"product_id":   meta.ProductID,
						"product_type": meta.ProductType,
						"race":         meta.Race,
						"slot":         meta.Slot,
						"item_id":      meta.ItemID,
						"bundle_items": encodeBundleItems(meta.BundleItems),
					},
				},
			},
			"relationships": map[string]interface{}{
				"store": map[string]interface{}{
					"data": map[string]string{"type": "stores", "id": storeID},
				},
				"variant": map[string]interface{}{
					"data": map[string]string{"type": "variants", "id": variantID},
				},
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL+"/v1/checkouts", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.api+json")
	req.Header.Set("Content-Type", "application/vnd.api+json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("lemonsqueezy checkout request failed: %s", resp.Status)
	}

	var out struct {
		Data struct {
			Attributes struct {
				URL string `json:"url"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Data.Attributes.URL == "" {
		return "", fmt.Errorf("lemonsqueezy checkout response carried no url")
	}
	return out.Data.Attributes.URL, nil
}

// LemonSqueezyEvent is the subset of the webhook payload the store consumes.
type LemonSqueezyEvent struct {
	Meta struct {
		EventName string `json:"event_name"`
	} `json:"meta"`
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			UserEmail  string            `json:"user_email"`
			Total      int64             `json:"total"`
			CustomData map[string]string `json:"custom_data"`
		} `json:"attributes"`
	} `json:"data"`
}

// VerifyWebhook authenticates a delivery using the env-configured secret.
func (s *LemonSqueezyCheckout) VerifyWebhook(payload []byte, signatureHex string) error {
	secret := os.Getenv("LEMONSQUEEZY_WEBHOOK_SECRET")
	if secret == "" {
		return ErrProviderNotConfigured
	}
	return VerifyLemonSqueezySignature(secret, payload, signatureHex)
}

// VerifyLemonSqueezySignature checks the HMAC-SHA256 hex signature over the
// raw payload. The comparison is constant time.
func VerifyLemonSqueezySignature(secret string, payload []byte, signatureHex string) error {
	signature, err := hex.DecodeString(signatureHex)
	if err != nil || len(signature) == 0 || len(payload) == 0 {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	if !hmac.Equal(mac.Sum(nil), signature) {
		return ErrInvalidSignature
	}
	return nil
}
