package db

import (
	"context"
)

const deleteDaggerheartClass = `
DELETE FROM daggerheart_classes WHERE id = ?
`

func (q *Queries) DeleteDaggerheartClass(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteDaggerheartClass, id)
	return err
}

const deleteDaggerheartDomain = `
DELETE FROM daggerheart_domains WHERE id = ?
`

func (q *Queries) DeleteDaggerheartDomain(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteDaggerheartDomain, id)
	return err
}

const deleteDaggerheartDomainCard = `
DELETE FROM daggerheart_domain_cards WHERE id = ?
`

func (q *Queries) DeleteDaggerheartDomainCard(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteDaggerheartDomainCard, id)
	return err
}

const deleteDaggerheartSubclass = `
DELETE FROM daggerheart_subclasses WHERE id = ?
`

func (q *Queries) DeleteDaggerheartSubclass(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteDaggerheartSubclass, id)
	return err
}

const getDaggerheartClass = `
SELECT id, name, domain_ids_json, created_at, updated_at FROM daggerheart_classes WHERE id = ?
`

func (q *Queries) GetDaggerheartClass(ctx context.Context, id string) (DaggerheartClass, error) {
	row := q.db.QueryRowContext(ctx, getDaggerheartClass, id)
	var i DaggerheartClass
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.DomainIdsJson,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDaggerheartDomain = `
SELECT id, name, description, created_at, updated_at FROM daggerheart_domains WHERE id = ?
`

func (q *Queries) GetDaggerheartDomain(ctx context.Context, id string) (DaggerheartDomain, error) {
	row := q.db.QueryRowContext(ctx, getDaggerheartDomain, id)
	var i DaggerheartDomain
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDaggerheartDomainCard = `
SELECT id, name, domain_id, level, type, recall_cost, feature_text, created_at, updated_at
FROM daggerheart_domain_cards WHERE id = ?
`

func (q *Queries) GetDaggerheartDomainCard(ctx context.Context, id string) (DaggerheartDomainCard, error) {
	row := q.db.QueryRowContext(ctx, getDaggerheartDomainCard, id)
	var i DaggerheartDomainCard
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.DomainID,
		&i.Level,
		&i.Type,
		&i.RecallCost,
		&i.FeatureText,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDaggerheartSubclass = `
SELECT id, name, class_id, created_at, updated_at FROM daggerheart_subclasses WHERE id = ?
`

func (q *Queries) GetDaggerheartSubclass(ctx context.Context, id string) (DaggerheartSubclass, error) {
	row := q.db.QueryRowContext(ctx, getDaggerheartSubclass, id)
	var i DaggerheartSubclass
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.ClassID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listDaggerheartClasses = `
SELECT id, name, domain_ids_json, created_at, updated_at FROM daggerheart_classes ORDER BY id
`

func (q *Queries) ListDaggerheartClasses(ctx context.Context) ([]DaggerheartClass, error) {
	rows, err := q.db.QueryContext(ctx, listDaggerheartClasses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DaggerheartClass
	for rows.Next() {
		var i DaggerheartClass
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.DomainIdsJson,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listDaggerheartDomainCards = `
SELECT id, name, domain_id, level, type, recall_cost, feature_text, created_at, updated_at
FROM daggerheart_domain_cards ORDER BY level, id
`

func (q *Queries) ListDaggerheartDomainCards(ctx context.Context) ([]DaggerheartDomainCard, error) {
	rows, err := q.db.QueryContext(ctx, listDaggerheartDomainCards)
	if err != nil {
		return nil, err
	}
	return scanDaggerheartDomainCards(rows)
}

const listDaggerheartDomainCardsByDomain = `
SELECT id, name, domain_id, level, type, recall_cost, feature_text, created_at, updated_at
FROM daggerheart_domain_cards WHERE domain_id = ? ORDER BY level, id
`

func (q *Queries) ListDaggerheartDomainCardsByDomain(ctx context.Context, domainID string) ([]DaggerheartDomainCard, error) {
	rows, err := q.db.QueryContext(ctx, listDaggerheartDomainCardsByDomain, domainID)
	if err != nil {
		return nil, err
	}
	return scanDaggerheartDomainCards(rows)
}

type domainCardRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Close() error
	Err() error
}

func scanDaggerheartDomainCards(rows domainCardRows) ([]DaggerheartDomainCard, error) {
	defer rows.Close()
	var items []DaggerheartDomainCard
	for rows.Next() {
		var i DaggerheartDomainCard
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.DomainID,
			&i.Level,
			&i.Type,
			&i.RecallCost,
			&i.FeatureText,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listDaggerheartDomains = `
SELECT id, name, description, created_at, updated_at FROM daggerheart_domains ORDER BY id
`

func (q *Queries) ListDaggerheartDomains(ctx context.Context) ([]DaggerheartDomain, error) {
	rows, err := q.db.QueryContext(ctx, listDaggerheartDomains)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DaggerheartDomain
	for rows.Next() {
		var i DaggerheartDomain
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listDaggerheartSubclasses = `
SELECT id, name, class_id, created_at, updated_at FROM daggerheart_subclasses ORDER BY id
`

func (q *Queries) ListDaggerheartSubclasses(ctx context.Context) ([]DaggerheartSubclass, error) {
	rows, err := q.db.QueryContext(ctx, listDaggerheartSubclasses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DaggerheartSubclass
	for rows.Next() {
		var i DaggerheartSubclass
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.ClassID,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const putDaggerheartClass = `
INSERT INTO daggerheart_classes (id, name, domain_ids_json, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    domain_ids_json = excluded.domain_ids_json,
    updated_at = excluded.updated_at
`

type PutDaggerheartClassParams struct {
	ID            string
	Name          string
	DomainIdsJson string
	CreatedAt     int64
	UpdatedAt     int64
}

func (q *Queries) PutDaggerheartClass(ctx context.Context, arg PutDaggerheartClassParams) error {
	_, err := q.db.ExecContext(ctx, putDaggerheartClass,
		arg.ID,
		arg.Name,
		arg.DomainIdsJson,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const putDaggerheartDomain = `
INSERT INTO daggerheart_domains (id, name, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    description = excluded.description,
    updated_at = excluded.updated_at
`

type PutDaggerheartDomainParams struct {
	ID          string
	Name        string
	Description string
	CreatedAt   int64
	UpdatedAt   int64
}

func (q *Queries) PutDaggerheartDomain(ctx context.Context, arg PutDaggerheartDomainParams) error {
	_, err := q.db.ExecContext(ctx, putDaggerheartDomain,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const putDaggerheartDomainCard = `
INSERT INTO daggerheart_domain_cards (
    id, name, domain_id, level, type, recall_cost, feature_text, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    domain_id = excluded.domain_id,
    level = excluded.level,
    type = excluded.type,
    recall_cost = excluded.recall_cost,
    feature_text = excluded.feature_text,
    updated_at = excluded.updated_at
`

type PutDaggerheartDomainCardParams struct {
	ID          string
	Name        string
	DomainID    string
	Level       int64
	Type        string
	RecallCost  int64
	FeatureText string
	CreatedAt   int64
	UpdatedAt   int64
}

func (q *Queries) PutDaggerheartDomainCard(ctx context.Context, arg PutDaggerheartDomainCardParams) error {
	_, err := q.db.ExecContext(ctx, putDaggerheartDomainCard,
		arg.ID,
		arg.Name,
		arg.DomainID,
		arg.Level,
		arg.Type,
		arg.RecallCost,
		arg.FeatureText,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const putDaggerheartSubclass = `
INSERT INTO daggerheart_subclasses (id, name, class_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    class_id = excluded.class_id,
    updated_at = excluded.updated_at
`

type PutDaggerheartSubclassParams struct {
	ID        string
	Name      string
	ClassID   string
	CreatedAt int64
	UpdatedAt int64
}

func (q *Queries) PutDaggerheartSubclass(ctx context.Context, arg PutDaggerheartSubclassParams) error {
	_, err := q.db.ExecContext(ctx, putDaggerheartSubclass,
		arg.ID,
		arg.Name,
		arg.ClassID,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}
