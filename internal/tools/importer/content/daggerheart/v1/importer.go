package catalogimporter

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
	"github.com/louisbranch/levelup/internal/services/game/storage"
)

const (
	minCardLevel     = 1
	maxCardLevel     = 10
	maxClassDomains  = 2
	contentTypeClass = "class"
)

// validateCatalog checks ids and cross references so the rules never see a
// card whose domain is unknown or a subclass without its class.
func validateCatalog(p localePayloads) error {
	domains, err := idSet("domain", domainIDs(p))
	if err != nil {
		return err
	}
	classes, err := idSet(contentTypeClass, classIDs(p))
	if err != nil {
		return err
	}

	if p.DomainCards != nil {
		seen := map[string]struct{}{}
		for _, card := range p.DomainCards.Items {
			id := strings.TrimSpace(card.ID)
			if id == "" {
				return invalidContent("domain card id is required", "domain_card", "")
			}
			if _, dup := seen[id]; dup {
				return invalidContent(fmt.Sprintf("domain card %s is defined twice", id), "domain_card", id)
			}
			seen[id] = struct{}{}
			if _, ok := domains[card.DomainID]; !ok {
				return invalidContent(fmt.Sprintf("domain card %s references unknown domain %q", id, card.DomainID), "domain_card", id)
			}
			if card.Level < minCardLevel || card.Level > maxCardLevel {
				return invalidContent(fmt.Sprintf("domain card %s level %d is out of range %d..%d", id, card.Level, minCardLevel, maxCardLevel), "domain_card", id)
			}
			if card.RecallCost < 0 {
				return invalidContent(fmt.Sprintf("domain card %s recall cost must not be negative", id), "domain_card", id)
			}
		}
	}

	if p.Classes != nil {
		for _, class := range p.Classes.Items {
			if len(class.DomainIDs) == 0 || len(class.DomainIDs) > maxClassDomains {
				return invalidContent(fmt.Sprintf("class %s must have 1..%d domains, got %d", class.ID, maxClassDomains, len(class.DomainIDs)), contentTypeClass, class.ID)
			}
			for _, domainID := range class.DomainIDs {
				if _, ok := domains[domainID]; !ok {
					return invalidContent(fmt.Sprintf("class %s references unknown domain %q", class.ID, domainID), contentTypeClass, class.ID)
				}
			}
		}
	}

	if p.Subclasses != nil {
		seen := map[string]struct{}{}
		for _, subclass := range p.Subclasses.Items {
			id := strings.TrimSpace(subclass.ID)
			if id == "" {
				return invalidContent("subclass id is required", "subclass", "")
			}
			if _, dup := seen[id]; dup {
				return invalidContent(fmt.Sprintf("subclass %s is defined twice", id), "subclass", id)
			}
			seen[id] = struct{}{}
			if _, ok := classes[subclass.ClassID]; !ok {
				return invalidContent(fmt.Sprintf("subclass %s references unknown class %q", id, subclass.ClassID), "subclass", id)
			}
		}
	}
	return nil
}

// validateTranslation checks that a non-base locale carries exactly the ids
// the base locale defines, file by file.
func validateTranslation(base, translated localePayloads) error {
	check := func(kind string, known, ids []string) error {
		want := make(map[string]struct{}, len(known))
		for _, id := range known {
			want[id] = struct{}{}
		}
		got := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, ok := want[id]; !ok {
				return invalidContent(fmt.Sprintf("%s %s is not in the base locale", kind, id), kind, id)
			}
			got[id] = struct{}{}
		}
		for _, id := range known {
			if _, ok := got[id]; !ok {
				return invalidContent(fmt.Sprintf("%s %s is missing a translation", kind, id), kind, id)
			}
		}
		return nil
	}
	if err := check("domain", domainIDs(base), domainIDs(translated)); err != nil {
		return err
	}
	if err := check("domain_card", domainCardIDs(base), domainCardIDs(translated)); err != nil {
		return err
	}
	if err := check(contentTypeClass, classIDs(base), classIDs(translated)); err != nil {
		return err
	}
	return check("subclass", subclassIDs(base), subclassIDs(translated))
}

func upsertCatalog(ctx context.Context, store upsertStore, p localePayloads, now time.Time) error {
	if store == nil {
		return fmt.Errorf("content store is required")
	}
	if p.Domains != nil {
		if err := upsertDomains(ctx, store, p.Domains.Items, now); err != nil {
			return err
		}
	}
	if p.DomainCards != nil {
		if err := upsertDomainCards(ctx, store, p.DomainCards.Items, now); err != nil {
			return err
		}
	}
	if p.Classes != nil {
		if err := upsertClasses(ctx, store, p.Classes.Items, now); err != nil {
			return err
		}
	}
	if p.Subclasses != nil {
		if err := upsertSubclasses(ctx, store, p.Subclasses.Items, now); err != nil {
			return err
		}
	}
	return nil
}

func upsertDomains(ctx context.Context, store upsertStore, items []domainRecord, now time.Time) error {
	for _, item := range items {
		domain := storage.DaggerheartDomain{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := store.PutDaggerheartDomain(ctx, domain); err != nil {
			return fmt.Errorf("put domain %s: %w", item.ID, err)
		}
	}
	return nil
}

func upsertDomainCards(ctx context.Context, store upsertStore, items []domainCardRecord, now time.Time) error {
	for _, item := range items {
		card := storage.DaggerheartDomainCard{
			ID:          item.ID,
			Name:        item.Name,
			DomainID:    item.DomainID,
			Level:       item.Level,
			Type:        item.Type,
			RecallCost:  item.RecallCost,
			FeatureText: item.FeatureText,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := store.PutDaggerheartDomainCard(ctx, card); err != nil {
			return fmt.Errorf("put domain card %s: %w", item.ID, err)
		}
	}
	return nil
}

func upsertClasses(ctx context.Context, store upsertStore, items []classRecord, now time.Time) error {
	for _, item := range items {
		class := storage.DaggerheartClass{
			ID:        item.ID,
			Name:      item.Name,
			DomainIDs: append([]string{}, item.DomainIDs...),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutDaggerheartClass(ctx, class); err != nil {
			return fmt.Errorf("put class %s: %w", item.ID, err)
		}
	}
	return nil
}

func upsertSubclasses(ctx context.Context, store upsertStore, items []subclassRecord, now time.Time) error {
	for _, item := range items {
		subclass := storage.DaggerheartSubclass{
			ID:        item.ID,
			Name:      item.Name,
			ClassID:   item.ClassID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutDaggerheartSubclass(ctx, subclass); err != nil {
			return fmt.Errorf("put subclass %s: %w", item.ID, err)
		}
	}
	return nil
}

func idSet(kind string, ids []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return nil, invalidContent(kind+" id is required", kind, "")
		}
		if _, dup := set[id]; dup {
			return nil, invalidContent(fmt.Sprintf("%s %s is defined twice", kind, id), kind, id)
		}
		set[id] = struct{}{}
	}
	return set, nil
}

func domainIDs(p localePayloads) []string {
	if p.Domains == nil {
		return nil
	}
	ids := make([]string, 0, len(p.Domains.Items))
	for _, item := range p.Domains.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func domainCardIDs(p localePayloads) []string {
	if p.DomainCards == nil {
		return nil
	}
	ids := make([]string, 0, len(p.DomainCards.Items))
	for _, item := range p.DomainCards.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func classIDs(p localePayloads) []string {
	if p.Classes == nil {
		return nil
	}
	ids := make([]string, 0, len(p.Classes.Items))
	for _, item := range p.Classes.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func subclassIDs(p localePayloads) []string {
	if p.Subclasses == nil {
		return nil
	}
	ids := make([]string, 0, len(p.Subclasses.Items))
	for _, item := range p.Subclasses.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func invalidContent(message, kind, id string) error {
	return apperrors.WithMetadata(apperrors.CodeContentInvalid, message, map[string]string{"Kind": kind, "ID": id})
}
