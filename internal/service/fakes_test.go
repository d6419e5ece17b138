package service

import (
	"errors"

	"github.com/google/uuid"

	"go-warrior-store/internal/model"
	"go-warrior-store/internal/repository"
)

// In-memory repository fakes used across the service tests.

type fakePurchaseRepo struct {
	rows      []model.Purchase
	failNext  bool
	batchLens []int
}

func (f *fakePurchaseRepo) InsertBatch(purchases []model.Purchase) error {
	if f.failNext {
		f.failNext = false
		return errors.New("insert failed")
	}
	f.batchLens = append(f.batchLens, len(purchases))
	f.rows = append(f.rows, purchases...)
	return nil
}

func (f *fakePurchaseRepo) FindByUserID(userID uuid.UUID) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) ListProductIDs(userID uuid.UUID) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, row := range f.rows {
		if row.UserID == userID && !seen[row.ProductID] {
			seen[row.ProductID] = true
			out = append(out, row.ProductID)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) GetStoreStats() (*repository.StoreStats, error) {
	stats := &repository.StoreStats{TotalPurchases: int64(len(f.rows))}
	buyers := make(map[uuid.UUID]bool)
	for _, row := range f.rows {
		stats.TotalRevenue += row.AmountPaid
		buyers[row.UserID] = true
	}
	stats.BuyerCount = int64(len(buyers))
	return stats, nil
}

type fakeConfigRepo struct {
	configs map[uuid.UUID]model.WarriorConfiguration
	failAll bool
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: make(map[uuid.UUID]model.WarriorConfiguration)}
}

func (f *fakeConfigRepo) FindByUserID(userID uuid.UUID) (*model.WarriorConfiguration, error) {
	if f.failAll {
		return nil, errors.New("db down")
	}
	cfg, ok := f.configs[userID]
	if !ok {
		return nil, nil
	}
	out := cfg
	return &out, nil
}

func (f *fakeConfigRepo) Upsert(cfg *model.WarriorConfiguration) error {
	if f.failAll {
		return errors.New("db down")
	}
	f.configs[cfg.UserID] = *cfg
	return nil
}
