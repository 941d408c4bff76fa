package catalog

import "time"

// Package is a sellable membership offer.
type Package struct {
	ID                  int       `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Description         string    `db:"description" json:"description"`
	DurationDays        int       `db:"duration_days" json:"duration_days"`
	PriceCents          int64     `db:"price_cents" json:"price_cents"`
	VisitsLimit         *int      `db:"visits_limit" json:"visits_limit,omitempty"`
	SessionsIncluded    int       `db:"sessions_included" json:"sessions_included"`
	TrialDays           int       `db:"trial_days" json:"trial_days"`
	FreezeAllowed       bool      `db:"freeze_allowed" json:"freeze_allowed"`
	MaxFreezeDays       int       `db:"max_freeze_days" json:"max_freeze_days"`
	InstallmentsAllowed bool      `db:"installments_allowed" json:"installments_allowed"`
	MaxInstallments     int       `db:"max_installments" json:"max_installments"`
	Active              bool      `db:"active" json:"active"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePackageRequest struct {
	Name                string `json:"name" binding:"required,max=120"`
	Description         string `json:"description"`
	DurationDays        int    `json:"duration_days" binding:"required,gt=0"`
	PriceCents          int64  `json:"price_cents" binding:"gte=0"`
	VisitsLimit         *int   `json:"visits_limit,omitempty" binding:"omitempty,gt=0"`
	SessionsIncluded    int    `json:"sessions_included" binding:"gte=0"`
	TrialDays           int    `json:"trial_days" binding:"gte=0"`
	FreezeAllowed       bool   `json:"freeze_allowed"`
	MaxFreezeDays       int    `json:"max_freeze_days" binding:"gte=0"`
	InstallmentsAllowed bool   `json:"installments_allowed"`
	MaxInstallments     int    `json:"max_installments" binding:"gte=0,lte=36"`
}

// UpdatePackageRequest carries a partial update; nil fields are left alone.
type UpdatePackageRequest struct {
	Name                *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Description         *string `json:"description,omitempty"`
	DurationDays        *int    `json:"duration_days,omitempty" binding:"omitempty,gt=0"`
	PriceCents          *int64  `json:"price_cents,omitempty" binding:"omitempty,gte=0"`
	SessionsIncluded    *int    `json:"sessions_included,omitempty" binding:"omitempty,gte=0"`
	TrialDays           *int    `json:"trial_days,omitempty" binding:"omitempty,gte=0"`
	FreezeAllowed       *bool   `json:"freeze_allowed,omitempty"`
	MaxFreezeDays       *int    `json:"max_freeze_days,omitempty" binding:"omitempty,gte=0"`
	InstallmentsAllowed *bool   `json:"installments_allowed,omitempty"`
	MaxInstallments     *int    `json:"max_installments,omitempty" binding:"omitempty,gte=0,lte=36"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

// Apply copies the set fields of req onto p.
func (req UpdatePackageRequest) Apply(p *Package) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.DurationDays != nil {
		p.DurationDays = *req.DurationDays
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.SessionsIncluded != nil {
		p.SessionsIncluded = *req.SessionsIncluded
	}
	if req.TrialDays != nil {
		p.TrialDays = *req.TrialDays
	}
	if req.FreezeAllowed != nil {
		p.FreezeAllowed = *req.FreezeAllowed
	}
	if req.MaxFreezeDays != nil {
		p.MaxFreezeDays = *req.MaxFreezeDays
	}
	if req.InstallmentsAllowed != nil {
		p.InstallmentsAllowed = *req.InstallmentsAllowed
	}
	if req.MaxInstallments != nil {
		p.MaxInstallments = *req.MaxInstallments
	}
}
