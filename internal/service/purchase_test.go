package service

import (
	"testing"

	"github.com/google/uuid"

	"go-warrior-store/internal/catalog"
	"go-warrior-store/internal/model"
)

func TestRecordThemedBundleExpandsToZeroAmountRows(t *testing.T) {
	repo := &fakePurchaseRepo{}
	svc := NewPurchaseService(repo, nil)
	userID := uuid.New()

	rows, err := svc.Record(PurchaseInput{
		UserID:        userID,
		TransactionID: "cs_test_123",
		Provider:      model.ProviderStripe,
		ProductID:     "human-knight-set",
		Kind:          catalog.KindThemedBundle,
		AmountPaid:    499,
		BundleItems:   []string{"human-helmet-knight", "human-chestplate-plate", "human-weapon-axe"},
	})
	if err != nil {
		t.Fatal("Failed to record themed bundle:", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	wantIDs := map[string]bool{
		"human-helmet-knight":    false,
		"human-chestplate-plate": false,
		"human-weapon-axe":       false,
	}
	for _, row := range rows {
		if row.AmountPaid != 0 {
			t.Errorf("Expected amount 0 for bundle item %s, got %d", row.ProductID, row.AmountPaid)
		}
		if row.TransactionID != "cs_test_123" {
			t.Errorf("Expected shared transaction id, got %s", row.TransactionID)
		}
		if _, ok := wantIDs[row.ProductID]; !ok {
			t.Errorf("Unexpected product id %s", row.ProductID)
		}
		wantIDs[row.ProductID] = true
	}
	for id, seen := range wantIDs {
		if !seen {
			t.Errorf("Missing row for %s", id)
		}
	}
	if len(repo.batchLens) != 1 || repo.batchLens[0] != 3 {
		t.Errorf("Expected a single 3-row batch, got %v", repo.batchLens)
	}
}

func TestRecordCompleteBundleWritesOneFullAmountRow(t *testing.T) {
	repo := &fakePurchaseRepo{}
	svc := NewPurchaseService(repo, nil)

	rows, err := svc.Record(PurchaseInput{
		UserID:        uuid.New(),
		TransactionID: "order-42",
		Provider:      model.ProviderLemonSqueezy,
		ProductID:     "human-complete-bundle",
		Kind:          catalog.KindCompleteBundle,
		AmountPaid:    2399,
	})
	if err != nil {
		t.Fatal("Failed to record complete bundle:", err)
	}

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].ProductID != "human-complete-bundle" {
		t.Errorf("Expected the bundle's own id, got %s", rows[0].ProductID)
	}
	if rows[0].AmountPaid != 2399 {
		t.Errorf("Expected full amount 2399, got %d", rows[0].AmountPaid)
	}
}

func TestRecordSingleItem(t *testing.T) {
	repo := &fakePurchaseRepo{}
	svc := NewPurchaseService(repo, nil)

	rows, err := svc.Record(PurchaseInput{
		UserID:        uuid.New(),
		TransactionID: "pp-order-7",
		Provider:      model.ProviderPayPal,
		ProductID:     "goblin-helmet-spiked",
		Kind:          catalog.KindItem,
		AmountPaid:    199,
	})
	if err != nil {
		t.Fatal("Failed to record item:", err)
	}
	if len(rows) != 1 || rows[0].AmountPaid != 199 {
		t.Errorf("Expected one full-amount row, got %+v", rows)
	}
}

func TestRecordThemedBundleWithoutItemsFails(t *testing.T) {
	svc := NewPurchaseService(&fakePurchaseRepo{}, nil)

	_, err := svc.Record(PurchaseInput{
		UserID:        uuid.New(),
		TransactionID: "cs_test_999",
		ProductID:     "human-knight-set",
		Kind:          catalog.KindThemedBundle,
	})
	if err == nil {
		t.Fatal("Expected error for themed bundle without item ids")
	}
}

func TestRecordInsertFailureRecordsNothing(t *testing.T) {
	repo := &fakePurchaseRepo{failNext: true}
	svc := NewPurchaseService(repo, nil)

	_, err := svc.Record(PurchaseInput{
		UserID:        uuid.New(),
		TransactionID: "cs_test_500",
		ProductID:     "human-helmet-knight",
		Kind:          catalog.KindItem,
		AmountPaid:    199,
	})
	if err == nil {
		t.Fatal("Expected insert failure to surface")
	}
	if len(repo.rows) != 0 {
		t.Errorf("Expected no rows after failed batch, got %d", len(repo.rows))
	}
}
