package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/levelup/internal/services/game/storage"
	"github.com/louisbranch/levelup/internal/services/game/storage/sqlite/db"
)

func dbDaggerheartDomainToStorage(row db.DaggerheartDomain) storage.DaggerheartDomain {
	return storage.DaggerheartDomain{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   fromMillis(row.CreatedAt),
		UpdatedAt:   fromMillis(row.UpdatedAt),
	}
}

func dbDaggerheartDomainCardToStorage(row db.DaggerheartDomainCard) storage.DaggerheartDomainCard {
	return storage.DaggerheartDomainCard{
		ID:          row.ID,
		Name:        row.Name,
		DomainID:    row.DomainID,
		Level:       int(row.Level),
		Type:        row.Type,
		RecallCost:  int(row.RecallCost),
		FeatureText: row.FeatureText,
		CreatedAt:   fromMillis(row.CreatedAt),
		UpdatedAt:   fromMillis(row.UpdatedAt),
	}
}

func dbDaggerheartDomainCardsToStorage(rows []db.DaggerheartDomainCard) []storage.DaggerheartDomainCard {
	cards := make([]storage.DaggerheartDomainCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, dbDaggerheartDomainCardToStorage(row))
	}
	return cards
}

func dbDaggerheartClassToStorage(row db.DaggerheartClass) (storage.DaggerheartClass, error) {
	class := storage.DaggerheartClass{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: fromMillis(row.CreatedAt),
		UpdatedAt: fromMillis(row.UpdatedAt),
	}
	if row.DomainIdsJson != "" {
		if err := json.Unmarshal([]byte(row.DomainIdsJson), &class.DomainIDs); err != nil {
			return storage.DaggerheartClass{}, fmt.Errorf("decode daggerheart class domain ids: %w", err)
		}
	}
	return class, nil
}

func dbDaggerheartSubclassToStorage(row db.DaggerheartSubclass) storage.DaggerheartSubclass {
	return storage.DaggerheartSubclass{
		ID:        row.ID,
		Name:      row.Name,
		ClassID:   row.ClassID,
		CreatedAt: fromMillis(row.CreatedAt),
		UpdatedAt: fromMillis(row.UpdatedAt),
	}
}

func dbDaggerheartProgressionToStorage(row db.DaggerheartProgression) storage.DaggerheartProgression {
	return storage.DaggerheartProgression{
		CharacterID:        row.CharacterID,
		Level:              int(row.Level),
		ProfileJSON:        []byte(row.ProfileJson),
		LevelUpChoicesJSON: []byte(row.LevelUpChoicesJson),
		Version:            row.Version,
		CreatedAt:          fromMillis(row.CreatedAt),
		UpdatedAt:          fromMillis(row.UpdatedAt),
	}
}
