package validation

import (
	"fmt"

	"go-warrior-store/internal/catalog"
)

// NoneItem is the empty selection. It is valid and free for every slot.
const NoneItem = "none"

// Equipment holds one variant id per equipment slot.
type Equipment struct {
	Helmet     string `json:"helmet"`
	Chestplate string `json:"chestplate"`
	Pants      string `json:"pants"`
	Shoes      string `json:"shoes"`
	Weapon     string `json:"weapon"`
	FacialHair string `json:"facial_hair"`
	Mount      string `json:"mount"`
}

// bySlot returns the selection keyed by slot, in EquipmentSlots order.
func (e Equipment) bySlot() map[catalog.Slot]string {
	return map[catalog.Slot]string{
		catalog.SlotHelmet:     e.Helmet,
		catalog.SlotChestplate: e.Chestplate,
		catalog.SlotPants:      e.Pants,
		catalog.SlotShoes:      e.Shoes,
		catalog.SlotWeapon:     e.Weapon,
		catalog.SlotFacialHair: e.FacialHair,
		catalog.SlotMount:      e.Mount,
	}
}

// Result collects the outcome of a validation pass. Errors holds one
// human-readable message per failing slot; all slots are checked, nothing
// short-circuits.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// freeItems is the per-slot allow-list of variant ids that are equippable
// without purchase. It is slot-specific and race-agnostic: a listed variant is
// free for every race that offers it.
var freeItems = map[catalog.Slot][]string{
	catalog.SlotHelmet:     {NoneItem, "archer_hood", "squire_helmet"},
	catalog.SlotChestplate: {NoneItem, "archer_tunic", "squire_vest"},
	catalog.SlotPants:      {NoneItem, "archer_pants", "squire_pants"},
	catalog.SlotShoes:      {NoneItem, "archer_boots", "squrie_boots"},
	catalog.SlotWeapon:     {NoneItem, "sword"},
	catalog.SlotFacialHair: {NoneItem, "full"},
	catalog.SlotMount:      {NoneItem},
}

// Validator checks equipment selections against the catalog. Both passes are
// pure functions over their inputs.
type Validator struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Validator {
	return &Validator{catalog: c}
}

// ValidateRaceConfiguration checks that every selected item exists in the
// catalog for the given race and slot.
func (v *Validator) ValidateRaceConfiguration(race catalog.Race, eq Equipment) Result {
	var errs []string

	selections := eq.bySlot()
	for _, slot := range catalog.EquipmentSlots {
		itemID := selections[slot]
		if itemID == NoneItem {
			continue
		}
		if v.catalog.FindItem(race, slot, itemID) == nil {
			errs = append(errs, fmt.Sprintf("Invalid %s item %q for %s race", slot, itemID, race))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateItemOwnership checks that every selected non-free item is in the
// user's owned product id set.
func (v *Validator) ValidateItemOwnership(race catalog.Race, eq Equipment, ownedProductIDs []string) Result {
	var errs []string

	owned := make(map[string]bool, len(ownedProductIDs))
	for _, id := range ownedProductIDs {
		owned[id] = true
	}

	selections := eq.bySlot()
	for _, slot := range catalog.EquipmentSlots {
		itemID := selections[slot]
		if isFreeItem(slot, itemID) {
			continue
		}
		product := v.catalog.FindItem(race, slot, itemID)
		if product != nil && !owned[product.ID] {
			errs = append(errs, fmt.Sprintf("You don't own the %s", product.Name))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// IsProductForRace reports whether a product id belongs to the given race.
func (v *Validator) IsProductForRace(productID string, race catalog.Race) bool {
	p := v.catalog.FindByID(productID)
	return p != nil && p.Race == race
}

func isFreeItem(slot catalog.Slot, itemID string) bool {
	for _, free := range freeItems[slot] {
		if itemID == free {
			return true
		}
	}
	return false
}
