package service

import (
	"github.com/google/uuid"

	"go-warrior-store/internal/catalog"
	"go-warrior-store/internal/repository"
)

// OwnershipResolver computes the derived ownership set: explicit purchase rows
// plus, when a complete bundle for a race is owned, every item of that race.
// This is the single place that expansion happens; the validator and the API
// both consume it.
type OwnershipResolver interface {
	OwnedProductIDs(userID uuid.UUID) ([]string, error)
	IsOwned(userID uuid.UUID, productID string) (bool, error)
}

type ownershipResolver struct {
	purchaseRepo repository.PurchaseRepository
	catalog      *catalog.Catalog
}

func NewOwnershipResolver(purchaseRepo repository.PurchaseRepository, cat *catalog.Catalog) OwnershipResolver {
	return &ownershipResolver{
		purchaseRepo: purchaseRepo,
		catalog:      cat,
	}
}

func (r *ownershipResolver) OwnedProductIDs(userID uuid.UUID) ([]string, error) {
	purchased, err := r.purchaseRepo.ListProductIDs(userID)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(purchased))
	var out []string
	add := func(id string) {
		if !owned[id] {
			owned[id] = true
			out = append(out, id)
		}
	}

	for _, id := range purchased {
		add(id)
		product := r.catalog.FindByID(id)
		if product != nil && product.Kind == catalog.KindCompleteBundle {
			for _, itemID := range r.catalog.ItemIDsForRace(product.Race) {
				add(itemID)
			}
		}
	}

	return out, nil
}

func (r *ownershipResolver) IsOwned(userID uuid.UUID, productID string) (bool, error) {
	ids, err := r.OwnedProductIDs(userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}
