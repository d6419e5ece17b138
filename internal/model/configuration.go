package model

import (
	"github.com/google/uuid"

	"go-warrior-store/internal/validation"
)

// WarriorConfiguration is the per-user equipment selection. One row per user;
// created on first save, updated on every subsequent save, never deleted.
// Race is locked permanently after the first save.
type WarriorConfiguration struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id" validate:"uuid_required"`
	Race   string    `gorm:"type:varchar(20);not null" json:"race" validate:"required,oneof=human goblin"`

	// One variant id per slot, "none" when empty
	Helmet     string `gorm:"type:varchar(50);not null;default:'none'" json:"helmet"`
	Chestplate string `gorm:"type:varchar(50);not null;default:'none'" json:"chestplate"`
	Pants      string `gorm:"type:varchar(50);not null;default:'none'" json:"pants"`
	Shoes      string `gorm:"type:varchar(50);not null;default:'none'" json:"shoes"`
	Weapon     string `gorm:"type:varchar(50);not null;default:'none'" json:"weapon"`
	FacialHair string `gorm:"column:facial_hair;type:varchar(50);not null;default:'none'" json:"facial_hair"`
	Mount      string `gorm:"type:varchar(50);not null;default:'none'" json:"mount"`
}

// TableName specifies the table name for GORM
func (WarriorConfiguration) TableName() string {
	return "warrior_configurations"
}

// Equipment returns the slot selections for validation
func (c *WarriorConfiguration) Equipment() validation.Equipment {
	return validation.Equipment{
		Helmet:     c.Helmet,
		Chestplate: c.Chestplate,
		Pants:      c.Pants,
		Shoes:      c.Shoes,
		Weapon:     c.Weapon,
		FacialHair: c.FacialHair,
		Mount:      c.Mount,
	}
}

// SetEquipment applies slot selections onto the row
func (c *WarriorConfiguration) SetEquipment(eq validation.Equipment) {
	c.Helmet = eq.Helmet
	c.Chestplate = eq.Chestplate
	c.Pants = eq.Pants
	c.Shoes = eq.Shoes
	c.Weapon = eq.Weapon
	c.FacialHair = eq.FacialHair
	c.Mount = eq.Mount
}
