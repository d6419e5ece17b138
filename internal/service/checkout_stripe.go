package service

import (
	"os"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"go-warrior-store/internal/catalog"
)

// StripeCheckout drives Stripe's embedded Checkout. Prices always come from
// the server-side catalog, never from the client.
type StripeCheckout struct {
	catalog *catalog.Catalog
}

func NewStripeCheckout(cat *catalog.Catalog) *StripeCheckout {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeCheckout{catalog: cat}
}

// CreateSession builds an embedded Checkout session for the product and
// returns its client secret. The session metadata carries everything the
// webhook needs to record the purchase.
func (s *StripeCheckout) CreateSession(productID, origin string) (string, error) {
	if stripe.Key == "" {
		return "", ErrProviderNotConfigured
	}

	product := s.catalog.FindByID(productID)
	if product == nil {
		return "", ErrProductNotFound
	}

	if origin == "" {
		origin = "http://localhost:3000"
	}

	params := &stripe.CheckoutSessionParams{
		UIMode: stripe.String(string(stripe.CheckoutSessionUIModeEmbedded)),
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(product.Name),
						Description: stripe.String(product.Description),
					},
					UnitAmount: stripe.Int64(product.PriceInCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ReturnURL: stripe.String(origin + "/checkout/return?session_id={CHECKOUT_SESSION_ID}"),
	}

	meta := metadataForProduct(product)
	params.AddMetadata("product_id", meta.ProductID)
	params.AddMetadata("product_type", meta.ProductType)
	params.AddMetadata("race", meta.Race)
	params.AddMetadata("slot", meta.Slot)
	params.AddMetadata("item_id", meta.ItemID)
	params.AddMetadata("bundle_items", encodeBundleItems(meta.BundleItems))

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.ClientSecret, nil
}

// SessionStatus is what the checkout return page needs.
type SessionStatus struct {
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

// RetrieveSession fetches a session's outcome for the return page.
func (s *StripeCheckout) RetrieveSession(sessionID string) (*SessionStatus, error) {
	if stripe.Key == "" {
		return nil, ErrProviderNotConfigured
	}

	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, err
	}

	status := &SessionStatus{
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		Metadata:      sess.Metadata,
	}
	if sess.CustomerDetails != nil {
		status.CustomerEmail = sess.CustomerDetails.Email
	}
	return status, nil
}

// VerifyWebhook authenticates a webhook delivery against the signing secret
// and returns the parsed event. The payload is never interpreted before the
// signature checks out.
func (s *StripeCheckout) VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error) {
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		return stripe.Event{}, ErrProviderNotConfigured
	}
	return webhook.ConstructEvent(payload, signatureHeader, secret)
}
