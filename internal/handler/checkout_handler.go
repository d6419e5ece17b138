package handler

import (
	"errors"

	"go-warrior-store/internal/catalog"
	"go-warrior-store/internal/model"
	"go-warrior-store/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	catalog         *catalog.Catalog
	stripe          *service.StripeCheckout
	lemonSqueezy    *service.LemonSqueezyCheckout
	paypal          *service.PayPalCheckout
	purchaseService service.PurchaseService
	ownership       service.OwnershipResolver
}

func NewCheckoutHandler(
	cat *catalog.Catalog,
	stripe *service.StripeCheckout,
	lemonSqueezy *service.LemonSqueezyCheckout,
	paypal *service.PayPalCheckout,
	purchaseService service.PurchaseService,
	ownership service.OwnershipResolver,
) *CheckoutHandler {
	return &CheckoutHandler{
		catalog:         cat,
		stripe:          stripe,
		lemonSqueezy:    lemonSqueezy,
		paypal:          paypal,
		purchaseService: purchaseService,
		ownership:       ownership,
	}
}

// CheckoutRequest selects the product to buy
type CheckoutRequest struct {
	ProductID string `json:"product_id"`
}

func checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	case errors.Is(err, service.ErrProviderNotConfigured):
		return c.Status(500).JSON(fiber.Map{"error": "Payment provider is not configured"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
}

// CreateStripeSession starts an embedded Stripe Checkout session
// POST /api/v1/checkout/stripe
func (h *CheckoutHandler) CreateStripeSession(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	clientSecret, err := h.stripe.CreateSession(req.ProductID, c.Get("Origin"))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(fiber.Map{"client_secret": clientSecret})
}

// GetStripeSession reports a session's outcome for the return page
// GET /api/v1/checkout/stripe/:id
func (h *CheckoutHandler) GetStripeSession(c *fiber.Ctx) error {
	status, err := h.stripe.RetrieveSession(c.Params("id"))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(status)
}

// CreateLemonSqueezyCheckout creates a hosted Lemon Squeezy checkout
// POST /api/v1/checkout/lemonsqueezy
func (h *CheckoutHandler) CreateLemonSqueezyCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	url, err := h.lemonSqueezy.CreateCheckout(req.ProductID)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

// CreatePayPalOrder creates a PayPal order priced from the catalog
// POST /api/v1/checkout/paypal
func (h *CheckoutHandler) CreatePayPalOrder(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.paypal.CreateOrder(req.ProductID)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(order)
}

// CapturePayPalOrder captures an approved PayPal order
// POST /api/v1/checkout/paypal/:id/capture
func (h *CheckoutHandler) CapturePayPalOrder(c *fiber.Ctx) error {
	order, err := h.paypal.CaptureOrder(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotCompleted) {
			return c.Status(402).JSON(fiber.Map{"error": err.Error()})
		}
		return checkoutError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "order": order})
}

// RecordPurchaseRequest records a client-approved payment (PayPal flow, which
// has no server-verifiable webhook here). The product is re-resolved from the
// catalog; the client only names it.
type RecordPurchaseRequest struct {
	TransactionID string `json:"transaction_id"`
	ProductID     string `json:"product_id"`
	AmountPaid    int64  `json:"amount_paid"`
}

// RecordPurchase writes ownership rows for the authenticated user
// POST /api/v1/purchases/record
func (h *CheckoutHandler) RecordPurchase(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid user context"})
	}

	var req RecordPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.TransactionID == "" || req.ProductID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	product := h.catalog.FindByID(req.ProductID)
	if product == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}

	rows, err := h.purchaseService.Record(service.PurchaseInput{
		UserID:        userID,
		TransactionID: req.TransactionID,
		Provider:      model.ProviderPayPal,
		ProductID:     product.ID,
		Kind:          product.Kind,
		AmountPaid:    req.AmountPaid,
		BundleItems:   product.BundleItems,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error recording purchase"})
	}

	return c.JSON(fiber.Map{"success": true, "recorded": len(rows)})
}

// GetPurchases lists the caller's ledger rows plus the derived ownership set
// GET /api/v1/purchases
func (h *CheckoutHandler) GetPurchases(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid user context"})
	}

	purchases, err := h.purchaseService.ListForUser(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load purchases"})
	}

	owned, err := h.ownership.OwnedProductIDs(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve ownership"})
	}

	return c.JSON(fiber.Map{"purchases": purchases, "owned_product_ids": owned})
}

// GetStoreStats reports the revenue overview
// GET /api/v1/stats
func (h *CheckoutHandler) GetStoreStats(c *fiber.Ctx) error {
	stats, err := h.purchaseService.GetStoreStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load stats"})
	}
	return c.JSON(stats)
}
