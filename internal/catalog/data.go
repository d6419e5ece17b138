package catalog

// Production product list for the warrior configurator.
// Individual items are $1.99, starter items are free, themed bundles
// (helmet + chestplate + weapon) are $4.99, mounts are $4.99, and complete
// bundles (every item of a race) are $23.99.
var defaultProducts = []Product{
	// Base models - one per race, always free, not purchaseable
	{
		ID:          "human-base",
		Name:        "Human Warrior Base",
		Description: "Base human warrior model",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotBase,
		VariantID:   "base",
		StoragePath: "human/base.glb",
	},
	{
		ID:          "goblin-base",
		Name:        "Goblin Warrior Base",
		Description: "Base goblin warrior model",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotBase,
		VariantID:   "base",
		StoragePath: "goblin/base.glb",
	},

	// Human - Helmets
	{
		ID:          "human-helmet-archer_hood",
		Name:        "Human Archer Hood",
		Description: "A light hood for human archers",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotHelmet,
		VariantID:   "archer_hood",
		StoragePath: "human/helmet/archer_hood.glb",
	},
	{
		ID:          "human-helmet-squire_helmet",
		Name:        "Human Squire Helmet",
		Description: "A plain training helmet issued to squires",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotHelmet,
		VariantID:   "squire_helmet",
		StoragePath: "human/helmet/squire.glb",
	},
	{
		ID:           "human-helmet-basic",
		Name:         "Human Basic Helmet",
		Description:  "A simple iron helmet for human warriors",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotHelmet,
		VariantID:    "basic",
		StoragePath:  "human/helmet/basic.glb",
	},
	{
		ID:           "human-helmet-knight",
		Name:         "Human Knight Helmet",
		Description:  "A noble knight's helmet with plume",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotHelmet,
		VariantID:    "knight",
		StoragePath:  "human/helmet/knight.glb",
	},

	// Human - Chestplates
	{
		ID:          "human-chestplate-archer_tunic",
		Name:        "Human Archer Tunic",
		Description: "A light tunic for human archers",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotChestplate,
		VariantID:   "archer_tunic",
		StoragePath: "human/chestplate/archer_tunic.glb",
	},
	{
		ID:          "human-chestplate-squire_vest",
		Name:        "Human Squire Vest",
		Description: "A padded training vest issued to squires",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotChestplate,
		VariantID:   "squire_vest",
		StoragePath: "human/chestplate/squire_vest.glb",
	},
	{
		ID:           "human-chestplate-leather",
		Name:         "Human Leather Armor",
		Description:  "Lightweight leather armor for agility",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotChestplate,
		VariantID:    "leather",
		StoragePath:  "human/chestplate/leather.glb",
	},
	{
		ID:           "human-chestplate-plate",
		Name:         "Human Plate Armor",
		Description:  "Heavy plate armor for maximum protection",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotChestplate,
		VariantID:    "plate",
		StoragePath:  "human/chestplate/plate.glb",
	},

	// Human - Pants
	{
		ID:          "human-pants-archer_pants",
		Name:        "Human Archer Pants",
		Description: "Light trousers for human archers",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotPants,
		VariantID:   "archer_pants",
		StoragePath: "human/pants/archer_pants.glb",
	},
	{
		ID:          "human-pants-squire_pants",
		Name:        "Human Squire Pants",
		Description: "Plain training trousers issued to squires",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotPants,
		VariantID:   "squire_pants",
		StoragePath: "human/pants/squire_pants.glb",
	},
	{
		ID:           "human-pants-plate",
		Name:         "Human Plate Greaves",
		Description:  "Heavy plate greaves matching the plate armor",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotPants,
		VariantID:    "plate",
		StoragePath:  "human/pants/plate.glb",
	},

	// Human - Shoes
	{
		ID:          "human-shoes-archer_boots",
		Name:        "Human Archer Boots",
		Description: "Soft leather boots for human archers",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotShoes,
		VariantID:   "archer_boots",
		StoragePath: "human/shoes/archer_boots.glb",
	},
	{
		ID:          "human-shoes-squrie_boots",
		Name:        "Human Squire Boots",
		Description: "Plain training boots issued to squires",
		Kind:        KindItem,
		Race:        RaceHuman,
		Slot:        SlotShoes,
		VariantID:   "squrie_boots",
		StoragePath: "human/shoes/squire_boots.glb",
	},
	{
		ID:           "human-shoes-plate",
		Name:         "Human Plate Sabatons",
		Description:  "Heavy plate sabatons matching the plate armor",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotShoes,
		VariantID:    "plate",
		StoragePath:  "human/shoes/plate.glb",
	},

	// Human - Weapons
	{
		ID:           "human-weapon-sword",
		Name:         "Human Longsword",
		Description:  "A classic longsword for human warriors",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotWeapon,
		VariantID:    "sword",
		StoragePath:  "human/weapon/sword.glb",
	},
	{
		ID:           "human-weapon-axe",
		Name:         "Human Battle Axe",
		Description:  "A powerful two-handed battle axe",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotWeapon,
		VariantID:    "axe",
		StoragePath:  "human/weapon/battle_axe.glb",
	},

	// Human - Facial Hair
	{
		ID:           "human-beard-full",
		Name:         "Human Full Beard",
		Description:  "A magnificent full beard",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotFacialHair,
		VariantID:    "full",
		StoragePath:  "human/facial_hair/full_beard.glb",
	},
	{
		ID:           "human-beard-goatee",
		Name:         "Human Goatee",
		Description:  "A stylish goatee",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotFacialHair,
		VariantID:    "goatee",
		StoragePath:  "human/facial_hair/goatee.glb",
	},

	// Human - Mounts
	{
		ID:           "human-mount-warhorse",
		Name:         "Human Warhorse",
		Description:  "An armored warhorse bred for battle",
		PriceInCents: 499,
		Kind:         KindItem,
		Race:         RaceHuman,
		Slot:         SlotMount,
		VariantID:    "warhorse",
		StoragePath:  "human/mount/warhorse.glb",
	},

	// Goblin - Helmets
	{
		ID:          "goblin-helmet-archer_hood",
		Name:        "Goblin Archer Hood",
		Description: "A ragged hood for goblin archers",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotHelmet,
		VariantID:   "archer_hood",
		StoragePath: "goblin/helmet/archer_hood.glb",
	},
	{
		ID:          "goblin-helmet-squire_helmet",
		Name:        "Goblin Squire Helmet",
		Description: "A dented training helmet for goblin whelps",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotHelmet,
		VariantID:   "squire_helmet",
		StoragePath: "goblin/helmet/squire.glb",
	},
	{
		ID:           "goblin-helmet-crude",
		Name:         "Goblin Crude Helmet",
		Description:  "A makeshift helmet for goblin warriors",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotHelmet,
		VariantID:    "crude",
		StoragePath:  "goblin/helmet/crude.glb",
	},
	{
		ID:           "goblin-helmet-spiked",
		Name:         "Goblin Spiked Helmet",
		Description:  "A menacing spiked helmet",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotHelmet,
		VariantID:    "spiked",
		StoragePath:  "goblin/helmet/spiked.glb",
	},

	// Goblin - Chestplates
	{
		ID:          "goblin-chestplate-archer_tunic",
		Name:        "Goblin Archer Tunic",
		Description: "A ragged tunic for goblin archers",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotChestplate,
		VariantID:   "archer_tunic",
		StoragePath: "goblin/chestplate/archer_tunic.glb",
	},
	{
		ID:          "goblin-chestplate-squire_vest",
		Name:        "Goblin Squire Vest",
		Description: "A patched training vest for goblin whelps",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotChestplate,
		VariantID:   "squire_vest",
		StoragePath: "goblin/chestplate/squire_vest.glb",
	},
	{
		ID:           "goblin-chestplate-scrap",
		Name:         "Goblin Scrap Armor",
		Description:  "Armor made from scavenged materials",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotChestplate,
		VariantID:    "scrap",
		StoragePath:  "goblin/chestplate/scrap.glb",
	},
	{
		ID:           "goblin-chestplate-tribal",
		Name:         "Goblin Tribal Armor",
		Description:  "Traditional goblin tribal armor",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotChestplate,
		VariantID:    "tribal",
		StoragePath:  "goblin/chestplate/tribal.glb",
	},

	// Goblin - Pants
	{
		ID:          "goblin-pants-archer_pants",
		Name:        "Goblin Archer Pants",
		Description: "Ragged trousers for goblin archers",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotPants,
		VariantID:   "archer_pants",
		StoragePath: "goblin/pants/archer_pants.glb",
	},
	{
		ID:          "goblin-pants-squire_pants",
		Name:        "Goblin Squire Pants",
		Description: "Patched training trousers for goblin whelps",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotPants,
		VariantID:   "squire_pants",
		StoragePath: "goblin/pants/squire_pants.glb",
	},
	{
		ID:           "goblin-pants-scrap",
		Name:         "Goblin Scrap Leggings",
		Description:  "Leggings stitched from scavenged scraps",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotPants,
		VariantID:    "scrap",
		StoragePath:  "goblin/pants/scrap.glb",
	},

	// Goblin - Shoes
	{
		ID:          "goblin-shoes-archer_boots",
		Name:        "Goblin Archer Boots",
		Description: "Worn leather boots for goblin archers",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotShoes,
		VariantID:   "archer_boots",
		StoragePath: "goblin/shoes/archer_boots.glb",
	},
	{
		ID:          "goblin-shoes-squrie_boots",
		Name:        "Goblin Squire Boots",
		Description: "Patched training boots for goblin whelps",
		Kind:        KindItem,
		Race:        RaceGoblin,
		Slot:        SlotShoes,
		VariantID:   "squrie_boots",
		StoragePath: "goblin/shoes/squire_boots.glb",
	},
	{
		ID:           "goblin-shoes-scrap",
		Name:         "Goblin Scrap Boots",
		Description:  "Boots hammered together from scavenged scraps",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotShoes,
		VariantID:    "scrap",
		StoragePath:  "goblin/shoes/scrap.glb",
	},

	// Goblin - Weapons
	{
		ID:           "goblin-weapon-sword",
		Name:         "Goblin Rusty Sword",
		Description:  "A notched sword scavenged from a battlefield",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotWeapon,
		VariantID:    "sword",
		StoragePath:  "goblin/weapon/rusty_sword.glb",
	},
	{
		ID:           "goblin-weapon-dagger",
		Name:         "Goblin Rusty Dagger",
		Description:  "A crude but effective dagger",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotWeapon,
		VariantID:    "dagger",
		StoragePath:  "goblin/weapon/rusty_dagger.glb",
	},
	{
		ID:           "goblin-weapon-club",
		Name:         "Goblin Spiked Club",
		Description:  "A brutal spiked club",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotWeapon,
		VariantID:    "club",
		StoragePath:  "goblin/weapon/club.glb",
	},

	// Goblin - Facial Hair
	{
		ID:           "goblin-beard-full",
		Name:         "Goblin Full Beard",
		Description:  "A surprisingly magnificent full beard",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotFacialHair,
		VariantID:    "full",
		StoragePath:  "goblin/facial_hair/full_beard.glb",
	},
	{
		ID:           "goblin-beard-scraggly",
		Name:         "Goblin Scraggly Beard",
		Description:  "A wild, unkempt beard",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotFacialHair,
		VariantID:    "scraggly",
		StoragePath:  "goblin/facial_hair/beard_scraggly.glb",
	},
	{
		ID:           "goblin-beard-braided",
		Name:         "Goblin Braided Beard",
		Description:  "A beard with tribal braids",
		PriceInCents: 199,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotFacialHair,
		VariantID:    "braided",
		StoragePath:  "goblin/facial_hair/beard_braided.glb",
	},

	// Goblin - Mounts
	{
		ID:           "goblin-mount-wolf",
		Name:         "Goblin Dire Wolf",
		Description:  "A snarling dire wolf mount",
		PriceInCents: 499,
		Kind:         KindItem,
		Race:         RaceGoblin,
		Slot:         SlotMount,
		VariantID:    "wolf",
		StoragePath:  "goblin/mount/dire_wolf.glb",
	},

	// Themed Bundles - $4.99 (1 helmet + 1 chestplate + 1 weapon)
	{
		ID:           "human-knight-set",
		Name:         "Knight Set",
		Description:  "Complete knight outfit: Knight Helmet + Plate Armor + Battle Axe",
		PriceInCents: 499,
		Kind:         KindThemedBundle,
		Race:         RaceHuman,
		BundleItems: []string{
			"human-helmet-knight",
			"human-chestplate-plate",
			"human-weapon-axe",
		},
	},
	{
		ID:           "goblin-raider-set",
		Name:         "Raider Set",
		Description:  "Complete raider outfit: Spiked Helmet + Tribal Armor + Spiked Club",
		PriceInCents: 499,
		Kind:         KindThemedBundle,
		Race:         RaceGoblin,
		BundleItems: []string{
			"goblin-helmet-spiked",
			"goblin-chestplate-tribal",
			"goblin-weapon-club",
		},
	},

	// Complete Bundles - $23.99 (unlock everything for a race)
	{
		ID:           "human-complete-bundle",
		Name:         "Human Warrior Complete Bundle",
		Description:  "Unlock all customization options for human warriors",
		PriceInCents: 2399,
		Kind:         KindCompleteBundle,
		Race:         RaceHuman,
	},
	{
		ID:           "goblin-complete-bundle",
		Name:         "Goblin Warrior Complete Bundle",
		Description:  "Unlock all customization options for goblin warriors",
		PriceInCents: 2399,
		Kind:         KindCompleteBundle,
		Race:         RaceGoblin,
	},
}
