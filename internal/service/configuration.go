package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-warrior-store/internal/catalog"
	"go-warrior-store/internal/model"
	"go-warrior-store/internal/repository"
	"go-warrior-store/internal/validation"
	"go-warrior-store/internal/ws"
	"go-warrior-store/pkg/validator"
)

var (
	ErrInvalidRace = errors.New("unknown race")
	ErrRaceLocked  = errors.New("race is locked after the first save and cannot be changed")
)

// ConfigurationService persists per-user equipment selections. A save runs
// structural validation, the race lock check, then ownership validation;
// nothing partial is ever written.
type ConfigurationService interface {
	// Save returns a non-nil validation result when the selection was
	// refused; the error is reserved for race-lock and infrastructure
	// failures.
	Save(userID uuid.UUID, race catalog.Race, eq validation.Equipment) (*model.WarriorConfiguration, *validation.Result, error)
	// Load returns (nil, nil) for users who never saved.
	Load(userID uuid.UUID) (*model.WarriorConfiguration, error)
}

type configurationService struct {
	configRepo repository.ConfigurationRepository
	ownership  OwnershipResolver
	validator  *validation.Validator
	wsHub      *ws.Hub
}

func NewConfigurationService(
	configRepo repository.ConfigurationRepository,
	ownership OwnershipResolver,
	v *validation.Validator,
	hub *ws.Hub,
) ConfigurationService {
	return &configurationService{
		configRepo: configRepo,
		ownership:  ownership,
		validator:  v,
		wsHub:      hub,
	}
}

func (s *configurationService) Save(userID uuid.UUID, race catalog.Race, eq validation.Equipment) (*model.WarriorConfiguration, *validation.Result, error) {
	if !race.Valid() {
		return nil, nil, ErrInvalidRace
	}

	// Structural pass first: it needs no database round trip, so bad input is
	// rejected before ownership data is ever touched.
	if result := s.validator.ValidateRaceConfiguration(race, eq); !result.Valid {
		return nil, &result, nil
	}

	existing, err := s.configRepo.FindByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil && existing.Race != string(race) {
		return nil, nil, ErrRaceLocked
	}

	owned, err := s.ownership.OwnedProductIDs(userID)
	if err != nil {
		return nil, nil, err
	}
	if result := s.validator.ValidateItemOwnership(race, eq, owned); !result.Valid {
		return nil, &result, nil
	}

	cfg := &model.WarriorConfiguration{
		UserID: userID,
		Race:   string(race),
	}
	if existing != nil {
		cfg.BaseModel = existing.BaseModel
	}
	cfg.SetEquipment(eq)

	if errs := validator.ValidateStruct(cfg); len(errs) > 0 {
		first := errs[0]
		return nil, nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	if err := s.configRepo.Upsert(cfg); err != nil {
		log.Printf("configuration: failed to save user=%s race=%s: %v", userID, race, err)
		return nil, nil, err
	}

	if s.wsHub != nil {
		go s.wsHub.BroadcastEvent("configuration_saved", map[string]interface{}{
			"user_id": userID.String(),
			"race":    string(race),
		})
	}

	return cfg, nil, nil
}

func (s *configurationService) Load(userID uuid.UUID) (*model.WarriorConfiguration, error) {
	return s.configRepo.FindByUserID(userID)
}
