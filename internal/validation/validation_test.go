package validation

import (
	"strings"
	"testing"

	"go-warrior-store/internal/catalog"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Product{
		{ID: "human-helmet-archer_hood", Name: "Human Archer Hood", Kind: catalog.KindItem, Race: catalog.RaceHuman, Slot: catalog.SlotHelmet, VariantID: "archer_hood"},
		{ID: "human-helmet-knight", Name: "Human Knight Helmet", PriceInCents: 199, Kind: catalog.KindItem, Race: catalog.RaceHuman, Slot: catalog.SlotHelmet, VariantID: "knight"},
		{ID: "human-chestplate-plate", Name: "Human Plate Armor", PriceInCents: 199, Kind: catalog.KindItem, Race: catalog.RaceHuman, Slot: catalog.SlotChestplate, VariantID: "plate"},
		{ID: "human-weapon-sword", Name: "Human Longsword", PriceInCents: 199, Kind: catalog.KindItem, Race: catalog.RaceHuman, Slot: catalog.SlotWeapon, VariantID: "sword"},
		{ID: "human-mount-warhorse", Name: "Human Warhorse", PriceInCents: 499, Kind: catalog.KindItem, Race: catalog.RaceHuman, Slot: catalog.SlotMount, VariantID: "warhorse"},
		{ID: "goblin-helmet-spiked", Name: "Goblin Spiked Helmet", PriceInCents: 199, Kind: catalog.KindItem, Race: catalog.RaceGoblin, Slot: catalog.SlotHelmet, VariantID: "spiked"},
		{ID: "human-complete-bundle", Name: "Human Warrior Complete Bundle", PriceInCents: 2399, Kind: catalog.KindCompleteBundle, Race: catalog.RaceHuman},
	}, "")
}

func allNone() Equipment {
	return Equipment{
		Helmet:     NoneItem,
		Chestplate: NoneItem,
		Pants:      NoneItem,
		Shoes:      NoneItem,
		Weapon:     NoneItem,
		FacialHair: NoneItem,
		Mount:      NoneItem,
	}
}

func TestAllNoneIsAlwaysStructurallyValid(t *testing.T) {
	v := New(fixtureCatalog())

	for _, race := range catalog.Races {
		result := v.ValidateRaceConfiguration(race, allNone())
		if !result.Valid {
			t.Errorf("Expected all-none config to be valid for %s, got errors: %v", race, result.Errors)
		}
	}
}

func TestValidTripleIsStructurallyValid(t *testing.T) {
	v := New(fixtureCatalog())

	eq := allNone()
	eq.Helmet = "knight"
	eq.Chestplate = "plate"

	result := v.ValidateRaceConfiguration(catalog.RaceHuman, eq)
	if !result.Valid {
		t.Errorf("Expected valid config, got errors: %v", result.Errors)
	}
}

func TestUnknownVariantFailsWithSlotAndID(t *testing.T) {
	v := New(fixtureCatalog())

	eq := allNone()
	eq.Helmet = "dragon_crown"

	result := v.ValidateRaceConfiguration(catalog.RaceHuman, eq)
	if result.Valid {
		t.Fatal("Expected validation to fail for unknown helmet variant")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(result.Errors), result.Errors)
	}
	if want := `Invalid helmet item "dragon_crown" for human race`; result.Errors[0] != want {
		t.Errorf("Expected %q, got %q", want, result.Errors[0])
	}
}

func TestWrongRaceVariantFails(t *testing.T) {
	v := New(fixtureCatalog())

	// "spiked" exists only for goblins
	eq := allNone()
	eq.Helmet = "spiked"

	if result := v.ValidateRaceConfiguration(catalog.RaceHuman, eq); result.Valid {
		t.Error("Expected spiked helmet to be invalid for humans")
	}
	if result := v.ValidateRaceConfiguration(catalog.RaceGoblin, eq); !result.Valid {
		t.Errorf("Expected spiked helmet to be valid for goblins, got: %v", result.Errors)
	}
}

func TestAllSlotsCheckedWithoutShortCircuit(t *testing.T) {
	v := New(fixtureCatalog())

	eq := allNone()
	eq.Helmet = "bogus_helmet"
	eq.Chestplate = "bogus_chest"
	eq.Weapon = "bogus_weapon"

	result := v.ValidateRaceConfiguration(catalog.RaceHuman, eq)
	if len(result.Errors) != 3 {
		t.Errorf("Expected 3 errors (one per bad slot), got %d: %v", len(result.Errors), result.Errors)
	}
}

func TestFreeItemsNeverAppearInOwnershipErrors(t *testing.T) {
	v := New(fixtureCatalog())

	eq := allNone()
	eq.Helmet = "archer_hood" // free allow-list
	eq.Weapon = "sword"       // priced in the catalog but allow-listed

	result := v.ValidateItemOwnership(catalog.RaceHuman, eq, nil)
	if !result.Valid {
		t.Errorf("Expected free items to pass with no owned products, got: %v", result.Errors)
	}
}

func TestUnownedPaidItemFailsOwnership(t *testing.T) {
	v := New(fixtureCatalog())

	eq := allNone()
	eq.Helmet = "knight"

	result := v.ValidateItemOwnership(catalog.RaceHuman, eq, nil)
	if result.Valid {
		t.Fatal("Expected ownership validation to fail")
	}
	if want := "You don't own the Human Knight Helmet"; result.Errors[0] != want {
		t.Errorf("Expected %q, got %q", want, result.Errors[0])
	}

	// Owning the product clears the error
	result = v.ValidateItemOwnership(catalog.RaceHuman, eq, []string{"human-helmet-knight"})
	if !result.Valid {
		t.Errorf("Expected owned item to pass, got: %v", result.Errors)
	}
}

func TestOwnershipWithCompleteBundleExpansion(t *testing.T) {
	cat := fixtureCatalog()
	v := New(cat)

	// The resolver expands a complete-bundle purchase into every item id of
	// the race; feed the expanded set in here.
	owned := append(cat.ItemIDsForRace(catalog.RaceHuman), "human-complete-bundle")

	eq := allNone()
	eq.Helmet = "knight"
	eq.Chestplate = "plate"
	eq.Mount = "warhorse"

	if result := v.ValidateItemOwnership(catalog.RaceHuman, eq, owned); !result.Valid {
		t.Errorf("Expected every human item to be owned, got: %v", result.Errors)
	}

	// The same set unlocks nothing for goblins
	goblinEq := allNone()
	goblinEq.Helmet = "spiked"
	if result := v.ValidateItemOwnership(catalog.RaceGoblin, goblinEq, owned); result.Valid {
		t.Error("Expected goblin items to stay locked for a human bundle owner")
	}
}

func TestValidationIsIdempotent(t *testing.T) {
	v := New(fixtureCatalog())

	eq := allNone()
	eq.Helmet = "bogus"
	eq.Chestplate = "plate"

	first := v.ValidateRaceConfiguration(catalog.RaceHuman, eq)
	second := v.ValidateRaceConfiguration(catalog.RaceHuman, eq)

	if first.Valid != second.Valid || strings.Join(first.Errors, "|") != strings.Join(second.Errors, "|") {
		t.Errorf("Expected identical results, got %v then %v", first, second)
	}

	firstOwn := v.ValidateItemOwnership(catalog.RaceHuman, eq, []string{"human-chestplate-plate"})
	secondOwn := v.ValidateItemOwnership(catalog.RaceHuman, eq, []string{"human-chestplate-plate"})
	if firstOwn.Valid != secondOwn.Valid || strings.Join(firstOwn.Errors, "|") != strings.Join(secondOwn.Errors, "|") {
		t.Errorf("Expected identical ownership results, got %v then %v", firstOwn, secondOwn)
	}
}

func TestIsProductForRace(t *testing.T) {
	v := New(fixtureCatalog())

	if !v.IsProductForRace("human-helmet-knight", catalog.RaceHuman) {
		t.Error("Expected human-helmet-knight to be a human product")
	}
	if v.IsProductForRace("human-helmet-knight", catalog.RaceGoblin) {
		t.Error("Expected human-helmet-knight to not be a goblin product")
	}
	if v.IsProductForRace("no-such-product", catalog.RaceHuman) {
		t.Error("Expected unknown product to not match any race")
	}
}
