package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-warrior-store/internal/catalog"
)

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyLemonSqueezySignature(t *testing.T) {
	secret := "whsec_test"
	payload := []byte(`{"meta":{"event_name":"order_created"}}`)
	valid := signPayload(secret, payload)

	if err := VerifyLemonSqueezySignature(secret, payload, valid); err != nil {
		t.Errorf("Expected valid signature to verify, got %v", err)
	}

	tampered := append([]byte{}, payload...)
	tampered[0] = '['
	if err := VerifyLemonSqueezySignature(secret, tampered, valid); err != ErrInvalidSignature {
		t.Errorf("Expected tampered payload to fail, got %v", err)
	}

	if err := VerifyLemonSqueezySignature("other_secret", payload, valid); err != ErrInvalidSignature {
		t.Errorf("Expected wrong secret to fail, got %v", err)
	}

	if err := VerifyLemonSqueezySignature(secret, payload, "not-hex!"); err != ErrInvalidSignature {
		t.Errorf("Expected malformed hex to fail, got %v", err)
	}

	if err := VerifyLemonSqueezySignature(secret, payload, ""); err != ErrInvalidSignature {
		t.Errorf("Expected empty signature to fail, got %v", err)
	}

	if err := VerifyLemonSqueezySignature(secret, nil, valid); err != ErrInvalidSignature {
		t.Errorf("Expected empty payload to fail, got %v", err)
	}
}

func TestBundleItemsEncoding(t *testing.T) {
	items := []string{"human-helmet-knight", "human-chestplate-plate", "human-weapon-axe"}

	encoded := encodeBundleItems(items)
	decoded, err := DecodeBundleItems(encoded)
	if err != nil {
		t.Fatal("Failed to decode:", err)
	}
	if len(decoded) != 3 || decoded[0] != items[0] || decoded[2] != items[2] {
		t.Errorf("Round trip mismatch: %v", decoded)
	}

	if encodeBundleItems(nil) != "" {
		t.Error("Expected empty encoding for no items")
	}
	if decoded, err := DecodeBundleItems(""); err != nil || decoded != nil {
		t.Errorf("Expected empty string to decode to nil, got %v %v", decoded, err)
	}
	if _, err := DecodeBundleItems("{not json"); err == nil {
		t.Error("Expected malformed metadata to fail")
	}
}

func TestMetadataForProduct(t *testing.T) {
	cat := catalog.Default("")

	meta := metadataForProduct(cat.FindByID("human-knight-set"))
	if meta.ProductID != "human-knight-set" || meta.ProductType != "themed_bundle" || meta.Race != "human" {
		t.Errorf("Unexpected metadata: %+v", meta)
	}
	if len(meta.BundleItems) != 3 {
		t.Errorf("Expected 3 bundle items, got %d", len(meta.BundleItems))
	}

	item := metadataForProduct(cat.FindByID("goblin-helmet-spiked"))
	if item.Slot != "helmet" || item.ItemID != "spiked" {
		t.Errorf("Unexpected item metadata: %+v", item)
	}
}

func TestVariantEnvKey(t *testing.T) {
	if got := variantEnvKey("human-knight-set"); got != "LEMONSQUEEZY_VARIANT_HUMAN_KNIGHT_SET" {
		t.Errorf("Unexpected env key %s", got)
	}
}

func TestCentsToDecimal(t *testing.T) {
	cases := map[int64]string{
		199:  "1.99",
		499:  "4.99",
		2399: "23.99",
		100:  "1.00",
		5:    "0.05",
		0:    "0.00",
	}
	for cents, want := range cases {
		if got := centsToDecimal(cents); got != want {
			t.Errorf("centsToDecimal(%d) = %s, want %s", cents, got, want)
		}
	}
}

func TestLemonSqueezyCreateCheckout(t *testing.T) {
	var gotBody []byte
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/checkouts" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"attributes":{"url":"https://store.lemonsqueezy.com/checkout/abc"}}}`))
	}))
	defer srv.Close()

	t.Setenv("LEMONSQUEEZY_API_KEY", "lsq_test_key")
	t.Setenv("LEMONSQUEEZY_STORE_ID", "12345")
	t.Setenv("LEMONSQUEEZY_VARIANT_HUMAN_KNIGHT_SET", "99001")

	checkout := NewLemonSqueezyCheckout(catalog.Default(""))
	checkout.apiURL = srv.URL

	url, err := checkout.CreateCheckout("human-knight-set")
	if err != nil {
		t.Fatal("Failed to create checkout:", err)
	}
	if url != "https://store.lemonsqueezy.com/checkout/abc" {
		t.Errorf("Unexpected checkout url %s", url)
	}
	if gotAuth != "Bearer lsq_test_key" {
		t.Errorf("Unexpected auth header %s", gotAuth)
	}

	var body struct {
		Data struct {
			Attributes struct {
				CheckoutData struct {
					Custom map[string]string `json:"custom"`
				} `json:"checkout_data"`
			} `json:"attributes"`
			Relationships struct {
				Variant struct {
					Data map[string]string `json:"data"`
				} `json:"variant"`
			} `json:"relationships"`
		} `json:"data"`
	}
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatal("Failed to parse request body:", err)
	}
	custom := body.Data.Attributes.CheckoutData.Custom
	if custom["product_id"] != "human-knight-set" || custom["product_type"] != "themed_bundle" {
		t.Errorf("Unexpected custom data: %v", custom)
	}
	if !strings.Contains(custom["bundle_items"], "human-helmet-knight") {
		t.Errorf("Expected bundle items in custom data, got %s", custom["bundle_items"])
	}
	if body.Data.Relationships.Variant.Data["id"] != "99001" {
		t.Errorf("Expected variant id 99001, got %v", body.Data.Relationships.Variant.Data)
	}
}

func TestLemonSqueezyCreateCheckoutUnconfigured(t *testing.T) {
	t.Setenv("LEMONSQUEEZY_API_KEY", "")
	t.Setenv("LEMONSQUEEZY_STORE_ID", "")

	checkout := NewLemonSqueezyCheckout(catalog.Default(""))
	if _, err := checkout.CreateCheckout("human-knight-set"); !errors.Is(err, ErrProviderNotConfigured) {
		t.Errorf("Expected ErrProviderNotConfigured, got %v", err)
	}
}

func TestLemonSqueezyCreateCheckoutUnknownProduct(t *testing.T) {
	t.Setenv("LEMONSQUEEZY_API_KEY", "lsq_test_key")
	t.Setenv("LEMONSQUEEZY_STORE_ID", "12345")

	checkout := NewLemonSqueezyCheckout(catalog.Default(""))
	if _, err := checkout.CreateCheckout("no-such-product"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func newPayPalTestServer(t *testing.T, orderHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/oauth2/token" {
			if !strings.HasPrefix(r.Header.Get("Authorization"), "Basic ") {
				t.Error("Expected basic auth on token request")
			}
			w.Write([]byte(`{"access_token":"test-token"}`))
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Unexpected auth header %s", r.Header.Get("Authorization"))
		}
		orderHandler(w, r)
	}))
}

func TestPayPalCreateOrder(t *testing.T) {
	var gotBody []byte
	srv := newPayPalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/checkout/orders" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"ORDER123","status":"CREATED"}`))
	})
	defer srv.Close()

	t.Setenv("PAYPAL_CLIENT_ID", "client")
	t.Setenv("PAYPAL_CLIENT_SECRET", "secret")

	checkout := NewPayPalCheckout(catalog.Default(""))
	checkout.apiURL = srv.URL

	order, err := checkout.CreateOrder("human-knight-set")
	if err != nil {
		t.Fatal("Failed to create order:", err)
	}
	if order.ID != "ORDER123" || order.Status != "CREATED" {
		t.Errorf("Unexpected order: %+v", order)
	}

	var body struct {
		Intent        string `json:"intent"`
		PurchaseUnits []struct {
			Amount   map[string]string `json:"amount"`
			CustomID string            `json:"custom_id"`
		} `json:"purchase_units"`
	}
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatal("Failed to parse order body:", err)
	}
	if body.Intent != "CAPTURE" {
		t.Errorf("Expected CAPTURE intent, got %s", body.Intent)
	}
	if len(body.PurchaseUnits) != 1 {
		t.Fatalf("Expected 1 purchase unit, got %d", len(body.PurchaseUnits))
	}
	if got := body.PurchaseUnits[0].Amount["value"]; got != "4.99" {
		t.Errorf("Expected catalog price 4.99, got %s", got)
	}

	var meta CheckoutMetadata
	if err := json.Unmarshal([]byte(body.PurchaseUnits[0].CustomID), &meta); err != nil {
		t.Fatal("Failed to parse custom_id metadata:", err)
	}
	if meta.ProductID != "human-knight-set" || len(meta.BundleItems) != 3 {
		t.Errorf("Unexpected metadata: %+v", meta)
	}
}

func TestPayPalCreateOrderUnknownProduct(t *testing.T) {
	checkout := NewPayPalCheckout(catalog.Default(""))
	if _, err := checkout.CreateOrder("no-such-product"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestPayPalCaptureOrder(t *testing.T) {
	srv := newPayPalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/checkout/orders/ORDER123/capture" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"ORDER123","status":"COMPLETED"}`))
	})
	defer srv.Close()

	t.Setenv("PAYPAL_CLIENT_ID", "client")
	t.Setenv("PAYPAL_CLIENT_SECRET", "secret")

	checkout := NewPayPalCheckout(catalog.Default(""))
	checkout.apiURL = srv.URL

	order, err := checkout.CaptureOrder("ORDER123")
	if err != nil {
		t.Fatal("Failed to capture:", err)
	}
	if order.Status != "COMPLETED" {
		t.Errorf("Expected COMPLETED, got %s", order.Status)
	}
}

func TestPayPalCapturePendingOrderRejected(t *testing.T) {
	srv := newPayPalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"ORDER123","status":"PENDING"}`))
	})
	defer srv.Close()

	t.Setenv("PAYPAL_CLIENT_ID", "client")
	t.Setenv("PAYPAL_CLIENT_SECRET", "secret")

	checkout := NewPayPalCheckout(catalog.Default(""))
	checkout.apiURL = srv.URL

	if _, err := checkout.CaptureOrder("ORDER123"); err != ErrPaymentNotCompleted {
		t.Errorf("Expected ErrPaymentNotCompleted, got %v", err)
	}
}
