package model

import "github.com/google/uuid"

// Payment providers writing purchase rows
const (
	ProviderStripe       = "stripe"
	ProviderPayPal       = "paypal"
	ProviderLemonSqueezy = "lemonsqueezy"
)

// Purchase is one ownership ledger row, written only after payment
// confirmation. The unique index on (user_id, product_id, transaction_id)
// makes webhook redelivery idempotent.
type Purchase struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_purchases_dedup" json:"user_id" validate:"uuid_required"`
	ProductID     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_purchases_dedup" json:"product_id" validate:"required"`
	TransactionID string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_purchases_dedup" json:"transaction_id" validate:"required"`
	Provider      string    `gorm:"type:varchar(20);not null" json:"provider"`
	AmountPaid    int64     `gorm:"not null;default:0" json:"amount_paid"` // minor currency units
}
