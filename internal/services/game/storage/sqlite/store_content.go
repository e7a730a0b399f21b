package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/levelup/internal/services/game/storage"
	"github.com/louisbranch/levelup/internal/services/game/storage/sqlite/db"
)

// Daggerheart content catalog methods

func requireCatalogEntryID(id string, label string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s id is required", label)
	}
	return nil
}

// PutDaggerheartDomain persists a Daggerheart domain catalog entry.
func (s *Store) PutDaggerheartDomain(ctx context.Context, domain storage.DaggerheartDomain) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireCatalogEntryID(domain.ID, "domain"); err != nil {
		return err
	}

	return s.q.PutDaggerheartDomain(ctx, db.PutDaggerheartDomainParams{
		ID:          domain.ID,
		Name:        domain.Name,
		Description: domain.Description,
		CreatedAt:   toMillis(domain.CreatedAt),
		UpdatedAt:   toMillis(domain.UpdatedAt),
	})
}

// GetDaggerheartDomain retrieves a Daggerheart domain catalog entry.
func (s *Store) GetDaggerheartDomain(ctx context.Context, id string) (storage.DaggerheartDomain, error) {
	if err := s.validate(ctx); err != nil {
		return storage.DaggerheartDomain{}, err
	}
	if err := requireCatalogEntryID(id, "domain"); err != nil {
		return storage.DaggerheartDomain{}, err
	}

	row, err := s.q.GetDaggerheartDomain(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DaggerheartDomain{}, storage.ErrNotFound
		}
		return storage.DaggerheartDomain{}, fmt.Errorf("get daggerheart domain: %w", err)
	}
	return dbDaggerheartDomainToStorage(row), nil
}

// ListDaggerheartDomains lists all Daggerheart domain catalog entries.
func (s *Store) ListDaggerheartDomains(ctx context.Context) ([]storage.DaggerheartDomain, error) {
	if err := s.validate(ctx); err != nil {
		return nil, err
	}

	rows, err := s.q.ListDaggerheartDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daggerheart domains: %w", err)
	}
	domains := make([]storage.DaggerheartDomain, 0, len(rows))
	for _, row := range rows {
		domains = append(domains, dbDaggerheartDomainToStorage(row))
	}
	return domains, nil
}

// DeleteDaggerheartDomain removes a Daggerheart domain catalog entry.
func (s *Store) DeleteDaggerheartDomain(ctx context.Context, id string) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireCatalogEntryID(id, "domain"); err != nil {
		return err
	}
	return s.q.DeleteDaggerheartDomain(ctx, id)
}

// PutDaggerheartDomainCard persists a Daggerheart domain card catalog entry.
func (s *Store) PutDaggerheartDomainCard(ctx context.Context, card storage.DaggerheartDomainCard) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireCatalogEntryID(card.ID, "domain card"); err != nil {
		return err
	}
	if strings.TrimSpace(card.DomainID) == "" {
		return fmt.Errorf("domain card domain id is required")
	}

	return s.q.PutDaggerheartDomainCard(ctx, db.PutDaggerheartDomainCardParams{
		ID:          card.ID,
		Name:        card.Name,
		DomainID:    card.DomainID,
		Level:       int64(card.Level),
		Type:        card.Type,
		RecallCost:  int64(card.RecallCost),
		FeatureText: card.FeatureText,
		CreatedAt:   toMillis(card.CreatedAt),
		UpdatedAt:   toMillis(card.UpdatedAt),
	})
}

// GetDaggerheartDomainCard retrieves a Daggerheart domain card catalog entry.
func (s *Store) GetDaggerheartDomainCard(ctx context.Context, id string) (storage.DaggerheartDomainCard, error) {
	if err := s.validate(ctx); err != nil {
		return storage.DaggerheartDomainCard{}, err
	}
	if err := requireCatalogEntryID(id, "domain card"); err != nil {
		return storage.DaggerheartDomainCard{}, err
	}

	row, err := s.q.GetDaggerheartDomainCard(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DaggerheartDomainCard{}, storage.ErrNotFound
		}
		return storage.DaggerheartDomainCard{}, fmt.Errorf("get daggerheart domain card: %w", err)
	}
	return dbDaggerheartDomainCardToStorage(row), nil
}

// ListDaggerheartDomainCards lists all Daggerheart domain cards ordered by level.
func (s *Store) ListDaggerheartDomainCards(ctx context.Context) ([]storage.DaggerheartDomainCard, error) {
	if err := s.validate(ctx); err != nil {
		return nil, err
	}

	rows, err := s.q.ListDaggerheartDomainCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daggerheart domain cards: %w", err)
	}
	return dbDaggerheartDomainCardsToStorage(rows), nil
}

// ListDaggerheartDomainCardsByDomain lists the cards of one domain ordered by level.
func (s *Store) ListDaggerheartDomainCardsByDomain(ctx context.Context, domainID string) ([]storage.DaggerheartDomainCard, error) {
	if err := s.validate(ctx); err != nil {
		return nil, err
	}
	if err := requireCatalogEntryID(domainID, "domain"); err != nil {
		return nil, err
	}

	rows, err := s.q.ListDaggerheartDomainCardsByDomain(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("list daggerheart domain cards by domain: %w", err)
	}
	return dbDaggerheartDomainCardsToStorage(rows), nil
}

// DeleteDaggerheartDomainCard removes a Daggerheart domain card catalog entry.
func (s *Store) DeleteDaggerheartDomainCard(ctx context.Context, id string) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireCatalogEntryID(id, "domain card"); err != nil {
		return err
	}
	return s.q.DeleteDaggerheartDomainCard(ctx, id)
}

// PutDaggerheartClass persists a Daggerheart class catalog entry.
func (s *Store) PutDaggerheartClass(ctx context.Context, class storage.DaggerheartClass) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireCatalogEntryID(class.ID, "class"); err != nil {
		return err
	}

	domainIDs := class.DomainIDs
	if domainIDs == nil {
		domainIDs = []string{}
	}
	domainIDsJSON, err := json.Marshal(domainIDs)
	if err != nil {
		return fmt.Errorf("marshal class domain ids: %w", err)
	}

	return s.q.PutDaggerheartClass(ctx, db.PutDaggerheartClassParams{
		ID:            class.ID,
		Name:          class.Name,
		DomainIdsJson: string(domainIDsJSON),
		CreatedAt:     toMillis(class.CreatedAt),
		UpdatedAt:     toMillis(class.UpdatedAt),
	})
}

// GetDaggerheartClass retrieves a Daggerheart class catalog entry.
func (s *Store) GetDaggerheartClass(ctx context.Context, id string) (storage.DaggerheartClass, error) {
	if err := s.validate(ctx); err != nil {
		return storage.DaggerheartClass{}, err
	}
	if err := requireCatalogEntryID(id, "class"); err != nil {
		return storage.DaggerheartClass{}, err
	}

	row, err := s.q.GetDaggerheartClass(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DaggerheartClass{}, storage.ErrNotFound
		}
		return storage.DaggerheartClass{}, fmt.Errorf("get daggerheart class: %w", err)
	}
	return dbDaggerheartClassToStorage(row)
}

// ListDaggerheartClasses lists all Daggerheart class catalog entries.
func (s *Store) ListDaggerheartClasses(ctx context.Context) ([]storage.DaggerheartClass, error) {
	if err := s.validate(ctx); err != nil {
		return nil, err
	}

	rows, err := s.q.ListDaggerheartClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daggerheart classes: %w", err)
	}
	classes := make([]storage.DaggerheartClass, 0, len(rows))
	for _, row := range rows {
		class, err := dbDaggerheartClassToStorage(row)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, nil
}

// DeleteDaggerheartClass removes a Daggerheart class catalog entry.
func (s *Store) DeleteDaggerheartClass(ctx context.Context, id string) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireCatalogEntryID(id, "class"); err != nil {
		return err
	}
	return s.q.DeleteDaggerheartClass(ctx, id)
}

// PutDaggerheartSubclass persists a Daggerheart subclass catalog entry.
func (s *Store) PutDaggerheartSubclass(ctx context.Context, subclass storage.DaggerheartSubclass) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireCatalogEntryID(subclass.ID, "subclass"); err != nil {
		return err
	}
	if strings.TrimSpace(subclass.ClassID) == "" {
		return fmt.Errorf("subclass class id is required")
	}

	return s.q.PutDaggerheartSubclass(ctx, db.PutDaggerheartSubclassParams{
		ID:        subclass.ID,
		Name:      subclass.Name,
		ClassID:   subclass.ClassID,
		CreatedAt: toMillis(subclass.CreatedAt),
		UpdatedAt: toMillis(subclass.UpdatedAt),
	})
}

// GetDaggerheartSubclass retrieves a Daggerheart subclass catalog entry.
func (s *Store) GetDaggerheartSubclass(ctx context.Context, id string) (storage.DaggerheartSubclass, error) {
	if err := s.validate(ctx); err != nil {
		return storage.DaggerheartSubclass{}, err
	}
	if err := requireCatalogEntryID(id, "subclass"); err != nil {
		return storage.DaggerheartSubclass{}, err
	}

	row, err := s.q.GetDaggerheartSubclass(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DaggerheartSubclass{}, storage.ErrNotFound
		}
		return storage.DaggerheartSubclass{}, fmt.Errorf("get daggerheart subclass: %w", err)
	}
	return dbDaggerheartSubclassToStorage(row), nil
}

// ListDaggerheartSubclasses lists all Daggerheart subclass catalog entries.
func (s *Store) ListDaggerheartSubclasses(ctx context.Context) ([]storage.DaggerheartSubclass, error) {
	if err := s.validate(ctx); err != nil {
		return nil, err
	}

	rows, err := s.q.ListDaggerheartSubclasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daggerheart subclasses: %w", err)
	}
	subclasses := make([]storage.DaggerheartSubclass, 0, len(rows))
	for _, row := range rows {
		subclasses = append(subclasses, dbDaggerheartSubclassToStorage(row))
	}
	return subclasses, nil
}

// DeleteDaggerheartSubclass removes a Daggerheart subclass catalog entry.
func (s *Store) DeleteDaggerheartSubclass(ctx context.Context, id string) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	if err := requireCatalogEntryID(id, "subclass"); err != nil {
		return err
	}
	return s.q.DeleteDaggerheartSubclass(ctx, id)
}
