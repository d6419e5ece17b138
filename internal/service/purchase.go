package service

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"go-warrior-store/internal/catalog"
	"go-warrior-store/internal/model"
	"go-warrior-store/internal/repository"
	"go-warrior-store/internal/ws"
)

var ErrEmptyBundle = errors.New("themed bundle carries no item ids")

// PurchaseInput is one confirmed payment, normalized across providers.
type PurchaseInput struct {
	UserID        uuid.UUID
	TransactionID string
	Provider      string
	ProductID     string
	Kind          catalog.Kind
	AmountPaid    int64
	BundleItems   []string // constituent item ids, themed bundles only
}

// PurchaseService translates confirmed payments into purchase rows.
type PurchaseService interface {
	Record(in PurchaseInput) ([]model.Purchase, error)
	ListForUser(userID uuid.UUID) ([]model.Purchase, error)
	GetStoreStats() (*repository.StoreStats, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	wsHub        *ws.Hub
}

func NewPurchaseService(purchaseRepo repository.PurchaseRepository, hub *ws.Hub) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		wsHub:        hub,
	}
}

// Record expands the payment into ledger rows:
//   - themed bundle: one row per constituent item, amount 0 each (the bundle
//     price is not attributed to any single item)
//   - complete bundle: one row for the bundle's own id, full amount
//   - item: one row, full amount
//
// The batch is written in one transaction; on failure nothing is recorded and
// the provider's redelivery governs retry.
func (s *purchaseService) Record(in PurchaseInput) ([]model.Purchase, error) {
	var rows []model.Purchase

	switch in.Kind {
	case catalog.KindThemedBundle:
		if len(in.BundleItems) == 0 {
			return nil, ErrEmptyBundle
		}
		for _, itemID := range in.BundleItems {
			rows = append(rows, model.Purchase{
				UserID:        in.UserID,
				ProductID:     itemID,
				TransactionID: in.TransactionID,
				Provider:      in.Provider,
				AmountPaid:    0,
			})
		}
	default:
		// complete_bundle and item both record a single full-amount row
		rows = append(rows, model.Purchase{
			UserID:        in.UserID,
			ProductID:     in.ProductID,
			TransactionID: in.TransactionID,
			Provider:      in.Provider,
			AmountPaid:    in.AmountPaid,
		})
	}

	if err := s.purchaseRepo.InsertBatch(rows); err != nil {
		log.Printf("purchase: failed to record user=%s product=%s tx=%s: %v",
			in.UserID, in.ProductID, in.TransactionID, err)
		return nil, err
	}

	if s.wsHub != nil {
		productIDs := make([]string, len(rows))
		for i, row := range rows {
			productIDs[i] = row.ProductID
		}
		go s.wsHub.BroadcastEvent("purchase_recorded", map[string]interface{}{
			"user_id":     in.UserID.String(),
			"product_ids": productIDs,
			"provider":    in.Provider,
		})
	}

	return rows, nil
}

func (s *purchaseService) ListForUser(userID uuid.UUID) ([]model.Purchase, error) {
	return s.purchaseRepo.FindByUserID(userID)
}

func (s *purchaseService) GetStoreStats() (*repository.StoreStats, error) {
	return s.purchaseRepo.GetStoreStats()
}
