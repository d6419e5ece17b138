package repository

import (
	"errors"

	"go-warrior-store/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigurationRepository interface {
	// FindByUserID returns (nil, nil) when the user has no configuration yet.
	FindByUserID(userID uuid.UUID) (*model.WarriorConfiguration, error)
	Upsert(cfg *model.WarriorConfiguration) error
}

type configurationRepo struct {
	db *gorm.DB
}

func NewConfigurationRepo(db *gorm.DB) ConfigurationRepository {
	return &configurationRepo{db}
}

func (r *configurationRepo) FindByUserID(userID uuid.UUID) (*model.WarriorConfiguration, error) {
	var cfg model.WarriorConfiguration
	err := r.db.Where("user_id = ?", userID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Expected for users who never saved; not an error
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert inserts the row on first save and updates the slot columns on every
// save after that. Race is deliberately excluded from the update set: the
// service refuses race changes before we get here, and the database must not
// overwrite it even if a stale request slips through.
func (r *configurationRepo) Upsert(cfg *model.WarriorConfiguration) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"helmet", "chestplate", "pants", "shoes",
			"weapon", "facial_hair", "mount", "updated_at",
		}),
	}).Create(cfg).Error
}
