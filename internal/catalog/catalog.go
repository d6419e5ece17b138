package catalog

import "strings"

// Race is the top-level character archetype gating which items are selectable.
type Race string

const (
	RaceHuman  Race = "human"
	RaceGoblin Race = "goblin"
)

// Races lists every selectable race.
var Races = []Race{RaceHuman, RaceGoblin}

func (r Race) Valid() bool {
	for _, race := range Races {
		if r == race {
			return true
		}
	}
	return false
}

// Slot is an equipment category. SlotBase is the race's base model and is not
// user-selectable.
type Slot string

const (
	SlotBase       Slot = "base"
	SlotHelmet     Slot = "helmet"
	SlotChestplate Slot = "chestplate"
	SlotPants      Slot = "pants"
	SlotShoes      Slot = "shoes"
	SlotWeapon     Slot = "weapon"
	SlotFacialHair Slot = "facial_hair"
	SlotMount      Slot = "mount"
)

// EquipmentSlots lists the slots a user equips items into, in display order.
var EquipmentSlots = []Slot{
	SlotHelmet,
	SlotChestplate,
	SlotPants,
	SlotShoes,
	SlotWeapon,
	SlotFacialHair,
	SlotMount,
}

// Kind distinguishes single items from the two bundle shapes.
type Kind string

const (
	KindItem           Kind = "item"
	KindThemedBundle   Kind = "themed_bundle"
	KindCompleteBundle Kind = "complete_bundle"
)

// Product is a catalog entry. The catalog is reference data compiled into the
// binary; products are never persisted.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceInCents int64    `json:"price_in_cents"`
	Kind         Kind     `json:"kind"`
	Race         Race     `json:"race,omitempty"`
	Slot         Slot     `json:"slot,omitempty"`
	VariantID    string   `json:"variant_id,omitempty"`
	BundleItems  []string `json:"bundle_items,omitempty"`
	StoragePath  string   `json:"storage_path,omitempty"`
}

// Bucket under the storage base URL holding the 3D assets.
const modelBucket = "3d-models"

// Catalog exposes lookup operations over an immutable product list. Construct
// one at startup and pass it by reference; tests substitute fixture data.
type Catalog struct {
	products       []Product
	byID           map[string]*Product
	storageBaseURL string
}

// New builds a catalog over the given products. storageBaseURL is the public
// root of the storage backend (may be empty, in which case model URLs resolve
// to "").
func New(products []Product, storageBaseURL string) *Catalog {
	c := &Catalog{
		products:       products,
		byID:           make(map[string]*Product, len(products)),
		storageBaseURL: strings.TrimSuffix(storageBaseURL, "/"),
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	return c
}

// Default returns the catalog with the production product list.
func Default(storageBaseURL string) *Catalog {
	return New(defaultProducts, storageBaseURL)
}

// FindByID returns the product with the given id, or nil.
func (c *Catalog) FindByID(id string) *Product {
	return c.byID[id]
}

// ListByRace returns every product (items and bundles) for a race.
func (c *Catalog) ListByRace(race Race) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Race == race {
			out = append(out, p)
		}
	}
	return out
}

// ListItemsBySlot returns the items (kind = item only) for a race and slot.
func (c *Catalog) ListItemsBySlot(race Race, slot Slot) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Race == race && p.Slot == slot && p.Kind == KindItem {
			out = append(out, p)
		}
	}
	return out
}

// FindItem returns the item for a (race, slot, variant) triple, or nil.
func (c *Catalog) FindItem(race Race, slot Slot, variantID string) *Product {
	for i := range c.products {
		p := &c.products[i]
		if p.Race == race && p.Slot == slot && p.VariantID == variantID && p.Kind == KindItem {
			return p
		}
	}
	return nil
}

// ThemedBundle returns the race's themed bundle, or nil.
func (c *Catalog) ThemedBundle(race Race) *Product {
	for i := range c.products {
		p := &c.products[i]
		if p.Race == race && p.Kind == KindThemedBundle {
			return p
		}
	}
	return nil
}

// CompleteBundle returns the race's complete bundle, or nil.
func (c *Catalog) CompleteBundle(race Race) *Product {
	for i := range c.products {
		p := &c.products[i]
		if p.Race == race && p.Kind == KindCompleteBundle {
			return p
		}
	}
	return nil
}

// ListBundles returns both themed and complete bundles for a race.
func (c *Catalog) ListBundles(race Race) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Race == race && (p.Kind == KindThemedBundle || p.Kind == KindCompleteBundle) {
			out = append(out, p)
		}
	}
	return out
}

// ItemIDsForRace returns the ids of every item of a race. A complete-bundle
// purchase unlocks exactly this set.
func (c *Catalog) ItemIDsForRace(race Race) []string {
	var out []string
	for _, p := range c.products {
		if p.Race == race && p.Kind == KindItem {
			out = append(out, p.ID)
		}
	}
	return out
}

// ModelURL resolves the public URL of a product's 3D asset. Returns "" when
// the product has no asset or no storage base URL is configured.
func (c *Catalog) ModelURL(p *Product) string {
	if p == nil || p.StoragePath == "" || c.storageBaseURL == "" {
		return ""
	}
	return c.storageBaseURL + "/storage/v1/object/public/" + modelBucket + "/" + p.StoragePath
}

// BaseModelURL resolves the base model asset URL for a race.
func (c *Catalog) BaseModelURL(race Race) string {
	for i := range c.products {
		p := &c.products[i]
		if p.Race == race && p.Slot == SlotBase {
			return c.ModelURL(p)
		}
	}
	return ""
}
