package repository

import (
	"go-warrior-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepository interface {
	// InsertBatch writes all rows in one transaction; redelivered rows that
	// already exist are skipped instead of failing the batch.
	InsertBatch(purchases []model.Purchase) error
	FindByUserID(userID uuid.UUID) ([]model.Purchase, error)
	ListProductIDs(userID uuid.UUID) ([]string, error)
	GetStoreStats() (*StoreStats, error)
}

// StoreStats for the revenue overview
type StoreStats struct {
	TotalPurchases int64 `json:"total_purchases"`
	TotalRevenue   int64 `json:"total_revenue"`
	BuyerCount     int64 `json:"buyer_count"`
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) InsertBatch(purchases []model.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&purchases).Error
	})
}

func (r *purchaseRepo) FindByUserID(userID uuid.UUID) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) ListProductIDs(userID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Purchase{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("product_id", &ids).Error
	return ids, err
}

func (r *purchaseRepo) GetStoreStats() (*StoreStats, error) {
	var stats StoreStats

	if err := r.db.Model(&model.Purchase{}).Count(&stats.TotalPurchases).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Purchase{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Purchase{}).
		Distinct("user_id").
		Count(&stats.BuyerCount).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
