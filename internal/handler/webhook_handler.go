package handler

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v79"

	"go-warrior-store/internal/catalog"
	"go-warrior-store/internal/model"
	"go-warrior-store/internal/repository"
	"go-warrior-store/internal/service"
)

// WebhookHandler terminates the payment providers' server callbacks. Each
// handler authenticates the delivery before reading anything else out of the
// payload.
type WebhookHandler struct {
	stripeCheckout  *service.StripeCheckout
	lemonSqueezy    *service.LemonSqueezyCheckout
	userRepo        repository.UserRepository
	purchaseService service.PurchaseService
}

func NewWebhookHandler(
	stripeCheckout *service.StripeCheckout,
	lemonSqueezy *service.LemonSqueezyCheckout,
	userRepo repository.UserRepository,
	purchaseService service.PurchaseService,
) *WebhookHandler {
	return &WebhookHandler{
		stripeCheckout:  stripeCheckout,
		lemonSqueezy:    lemonSqueezy,
		userRepo:        userRepo,
		purchaseService: purchaseService,
	}
}

// StripeWebhook handles checkout.session.completed deliveries
// POST /api/v1/webhooks/stripe
func (h *WebhookHandler) StripeWebhook(c *fiber.Ctx) error {
	signature := c.Get("Stripe-Signature")
	if signature == "" {
		return c.Status(400).JSON(fiber.Map{"error": "No signature"})
	}

	event, err := h.stripeCheckout.VerifyWebhook(c.Body(), signature)
	if err != nil {
		if errors.Is(err, service.ErrProviderNotConfigured) {
			log.Println("webhook/stripe: signing secret is not configured")
			return c.Status(500).JSON(fiber.Map{"error": "Webhook secret not configured"})
		}
		log.Printf("webhook/stripe: signature verification failed: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Invalid signature"})
	}

	if event.Type != "checkout.session.completed" {
		return c.JSON(fiber.Map{"received": true})
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payload"})
	}

	if len(sess.Metadata) == 0 {
		log.Printf("webhook/stripe: no metadata in session %s", sess.ID)
		return c.Status(400).JSON(fiber.Map{"error": "No metadata"})
	}

	var customerEmail string
	if sess.CustomerDetails != nil {
		customerEmail = sess.CustomerDetails.Email
	}
	if customerEmail == "" {
		log.Printf("webhook/stripe: no customer email in session %s", sess.ID)
		return c.Status(400).JSON(fiber.Map{"error": "No customer email"})
	}

	user, err := h.userRepo.FindByEmail(customerEmail)
	if err != nil {
		// Accept the delivery so Stripe stops retrying; the email is logged
		// for manual reconciliation.
		log.Printf("webhook/stripe: no user for email %s (session %s)", customerEmail, sess.ID)
		return c.JSON(fiber.Map{
			"message": "User not found, purchase recorded with email",
			"email":   customerEmail,
		})
	}

	bundleItems, err := service.DecodeBundleItems(sess.Metadata["bundle_items"])
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	rows, err := h.purchaseService.Record(service.PurchaseInput{
		UserID:        user.ID,
		TransactionID: sess.ID,
		Provider:      model.ProviderStripe,
		ProductID:     sess.Metadata["product_id"],
		Kind:          catalog.Kind(sess.Metadata["product_type"]),
		AmountPaid:    sess.AmountTotal,
		BundleItems:   bundleItems,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error recording purchase"})
	}

	log.Printf("webhook/stripe: recorded %d purchase row(s) for user %s", len(rows), user.ID)
	return c.JSON(fiber.Map{"received": true})
}

// LemonSqueezyWebhook handles order_created deliveries
// POST /api/v1/webhooks/lemonsqueezy
func (h *WebhookHandler) LemonSqueezyWebhook(c *fiber.Ctx) error {
	payload := c.Body()

	if err := h.lemonSqueezy.VerifyWebhook(payload, c.Get("X-Signature")); err != nil {
		if errors.Is(err, service.ErrProviderNotConfigured) {
			log.Println("webhook/lemonsqueezy: signing secret is not configured")
			return c.Status(500).JSON(fiber.Map{"error": "Webhook secret not configured"})
		}
		log.Printf("webhook/lemonsqueezy: signature verification failed: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Invalid signature"})
	}

	var event service.LemonSqueezyEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payload"})
	}

	if event.Meta.EventName != "order_created" {
		return c.JSON(fiber.Map{"message": "Webhook processed"})
	}

	attrs := event.Data.Attributes
	custom := attrs.CustomData

	user, err := h.userRepo.FindByEmail(attrs.UserEmail)
	if err != nil {
		log.Printf("webhook/lemonsqueezy: no user for email %s (order %s)", attrs.UserEmail, event.Data.ID)
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	bundleItems, err := service.DecodeBundleItems(custom["bundle_items"])
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	rows, err := h.purchaseService.Record(service.PurchaseInput{
		UserID:        user.ID,
		TransactionID: event.Data.ID,
		Provider:      model.ProviderLemonSqueezy,
		ProductID:     custom["product_id"],
		Kind:          catalog.Kind(custom["product_type"]),
		AmountPaid:    attrs.Total,
		BundleItems:   bundleItems,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error recording purchase"})
	}

	log.Printf("webhook/lemonsqueezy: recorded %d purchase row(s) for user %s", len(rows), user.ID)
	return c.Status(200).JSON(fiber.Map{"message": "Webhook processed"})
}
