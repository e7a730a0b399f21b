package levelup

import "sort"

// DomainCard is the catalog view of a domain card used for eligibility.
type DomainCard struct {
	ID       string `json:"id"`
	Level    int    `json:"level"`
	DomainID string `json:"domain_id"`
	Type     string `json:"type,omitempty"`
}

// Class is the catalog view of a class used for multiclassing.
type Class struct {
	ID        string   `json:"id"`
	DomainIDs []string `json:"domain_ids"`
}

// Subclass is the catalog view of a subclass, tagged by its source class.
type Subclass struct {
	ID      string `json:"id"`
	ClassID string `json:"class_id"`
}

// Catalog holds the content the rules consult.
type Catalog struct {
	DomainCards []DomainCard `json:"domain_cards"`
	Classes     []Class      `json:"classes"`
	Subclasses  []Subclass   `json:"subclasses"`
}

// EligibleDomainCards returns cards from domainIDs whose level is at most
// level, ordered by level then id.
func (c Catalog) EligibleDomainCards(domainIDs []string, level int) []DomainCard {
	domains := make(map[string]struct{}, len(domainIDs))
	for _, id := range domainIDs {
		domains[id] = struct{}{}
	}
	var out []DomainCard
	for _, card := range c.DomainCards {
		if _, ok := domains[card.DomainID]; !ok {
			continue
		}
		if card.Level > level {
			continue
		}
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Class looks up a class by id.
func (c Catalog) Class(id string) (Class, bool) {
	for _, class := range c.Classes {
		if class.ID == id {
			return class, true
		}
	}
	return Class{}, false
}

// Subclass looks up a subclass by id.
func (c Catalog) Subclass(id string) (Subclass, bool) {
	for _, subclass := range c.Subclasses {
		if subclass.ID == id {
			return subclass, true
		}
	}
	return Subclass{}, false
}
