package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const packageColumns = `id, name, description, duration_days, price_cents, visits_limit, sessions_included,
	trial_days, freeze_allowed, max_freeze_days, installments_allowed, max_installments, active,
	created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Package) (*Package, error) {
	query := `
		INSERT INTO membership_packages (name, description, duration_days, price_cents, visits_limit,
			sessions_included, trial_days, freeze_allowed, max_freeze_days, installments_allowed, max_installments)
		VALUES (:name, :description, :duration_days, :price_cents, :visits_limit,
			:sessions_included, :trial_days, :freeze_allowed, :max_freeze_days, :installments_allowed, :max_installments)
		RETURNING ` + packageColumns

	rows, err := r.db.NamedQueryContext(ctx, query, p)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var created Package
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}
	if err := rows.StructScan(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Package, error) {
	var p Package
	err := r.db.GetContext(ctx, &p, `SELECT `+packageColumns+` FROM membership_packages WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Package, error) {
	query := `SELECT ` + packageColumns + ` FROM membership_packages
		WHERE ($1 = false OR active = true)
		ORDER BY price_cents, name`

	packages := []Package{}
	if err := r.db.SelectContext(ctx, &packages, query, activeOnly); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *repository) Update(ctx context.Context, p *Package) (*Package, error) {
	query := `
		UPDATE membership_packages
		SET name = :name, description = :description, duration_days = :duration_days,
			price_cents = :price_cents, sessions_included = :sessions_included, trial_days = :trial_days,
			freeze_allowed = :freeze_allowed, max_freeze_days = :max_freeze_days,
			installments_allowed = :installments_allowed, max_installments = :max_installments,
			updated_at = NOW()
		WHERE id = :id
		RETURNING ` + packageColumns

	rows, err := r.db.NamedQueryContext(ctx, query, p)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrPackageNotFound
	}

	var updated Package
	if err := rows.StructScan(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) SetActive(ctx context.Context, id int, active bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE membership_packages SET active = $1, updated_at = NOW() WHERE id = $2`,
		active, id,
	)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPackageNotFound
	}
	return nil
}
