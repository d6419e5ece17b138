package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go-warrior-store/internal/catalog"
)

var ErrPaymentNotCompleted = errors.New("payment capture did not complete")

// PayPalCheckout drives the PayPal v2 Orders API directly: client-credentials
// OAuth, order creation with catalog pricing, and capture. PayPal has no
// server-verifiable webhook in this flow; the client-approved capture is
// recorded through the authenticated purchase-recording endpoint.
type PayPalCheckout struct {
	catalog *catalog.Catalog
	client  *http.Client
	apiURL  string // empty means derive from PAYPAL_MODE
}

func NewPayPalCheckout(cat *catalog.Catalog) *PayPalCheckout {
	return &PayPalCheckout{
		catalog: cat,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *PayPalCheckout) apiBase() string {
	if s.apiURL != "" {
		return s.apiURL
	}
	if os.Getenv("PAYPAL_MODE") == "live" {
		return "https://api-m.paypal.com"
	}
	return "https://api-m.sandbox.paypal.com"
}

func (s *PayPalCheckout) accessToken() (string, error) {
	clientID := os.Getenv("PAYPAL_CLIENT_ID")
	clientSecret := os.Getenv("PAYPAL_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return "", ErrProviderNotConfigured
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequest(http.MethodPost, s.apiBase()+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token request failed: %s", resp.Status)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("paypal token response carried no access_token")
	}
	return out.AccessToken, nil
}

// PayPalOrder is the slice of the order/capture response the store consumes.
type PayPalOrder struct {
	ID     string `json:"id"`
	Status string `json:"status"` // CREATED, APPROVED, COMPLETED
}

// CreateOrder creates a CAPTURE-intent order priced from the catalog. The
// checkout metadata rides in custom_id so the capture flow can recover it.
func (s *PayPalCheckout) CreateOrder(productID string) (*PayPalOrder, error) {
	product := s.catalog.FindByID(productID)
	if product == nil {
		return nil, ErrProductNotFound
	}

	token, err := s.accessToken()
	if err != nil {
		return nil, err
	}

	customID, err := json.Marshal(metadataForProduct(product))
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"description": product.Description,
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         centsToDecimal(product.PriceInCents),
				},
				"custom_id": string(customID),
			},
		},
	}

	return s.post("/v2/checkout/orders", token, body)
}

// CaptureOrder captures an approved order. Anything but COMPLETED is an
// error; the purchase must not be recorded on a pending capture.
func (s *PayPalCheckout) CaptureOrder(orderID string) (*PayPalOrder, error) {
	token, err := s.accessToken()
	if err != nil {
		return nil, err
	}

	order, err := s.post("/v2/checkout/orders/"+orderID+"/capture", token, nil)
	if err != nil {
		return nil, err
	}
	if order.Status != "COMPLETED" {
		return nil, ErrPaymentNotCompleted
	}
	return order, nil
}

func (s *PayPalCheckout) post(path, token string, body interface{}) (*PayPalOrder, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(http.MethodPost, s.apiBase()+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paypal request %s failed: %s", path, resp.Status)
	}

	var order PayPalOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func centsToDecimal(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
