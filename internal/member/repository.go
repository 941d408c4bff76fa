package member

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
)

const memberColumns = `id, first_name, last_name, email, phone, date_of_birth, gender, address,
	emergency_contact_name, emergency_contact_phone, medical_notes, status, checkin_code,
	joined_at, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (first_name, last_name, email, phone, date_of_birth, gender, address,
			emergency_contact_name, emergency_contact_phone, medical_notes, status, checkin_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + memberColumns

	var created Member
	err := r.db.GetContext(ctx, &created, query,
		m.FirstName, m.LastName, m.Email, m.Phone, m.DateOfBirth, m.Gender, m.Address,
		m.EmergencyContactName, m.EmergencyContactPhone, m.MedicalNotes, m.Status, m.CheckinCode,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	return r.getOne(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
}

func (r *repository) GetByCheckinCode(ctx context.Context, code string) (*Member, error) {
	return r.getOne(ctx, `SELECT `+memberColumns+` FROM members WHERE checkin_code = $1`, code)
}

func (r *repository) getOne(ctx context.Context, query string, arg interface{}) (*Member, error) {
	var m Member
	err := r.db.GetContext(ctx, &m, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%'
		       OR email ILIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%')
		ORDER BY last_name, first_name, id
		LIMIT $3 OFFSET $4`

	members := []Member{}
	err := r.db.SelectContext(ctx, &members, query, filter.Status, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) Update(ctx context.Context, m *Member) (*Member, error) {
	query := `
		UPDATE members
		SET first_name = $1, last_name = $2, email = $3, phone = $4, date_of_birth = $5, gender = $6,
			address = $7, emergency_contact_name = $8, emergency_contact_phone = $9, medical_notes = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING ` + memberColumns

	var updated Member
	err := r.db.GetContext(ctx, &updated, query,
		m.FirstName, m.LastName, m.Email, m.Phone, m.DateOfBirth, m.Gender,
		m.Address, m.EmergencyContactName, m.EmergencyContactPhone, m.MedicalNotes, m.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return &updated, nil
}

func (r *repository) SetStatus(ctx context.Context, id int, status string) error {
	return r.exec(ctx, `UPDATE members SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
}

func (r *repository) SetCheckinCode(ctx context.Context, id int, code string) error {
	return r.exec(ctx, `UPDATE members SET checkin_code = $1, updated_at = NOW() WHERE id = $2`, code, id)
}

func (r *repository) exec(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *repository) EmailTaken(ctx context.Context, email string, exceptID int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM members WHERE lower(email) = lower($1) AND id <> $2)`,
		email, exceptID,
	)
}
