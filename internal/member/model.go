package member

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Member struct {
	ID                    int        `db:"id" json:"id"`
	FirstName             string     `db:"first_name" json:"first_name"`
	LastName              string     `db:"last_name" json:"last_name"`
	Email                 *string    `db:"email" json:"email,omitempty"`
	Phone                 string     `db:"phone" json:"phone"`
	DateOfBirth           *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender                string     `db:"gender" json:"gender"`
	Address               string     `db:"address" json:"address"`
	EmergencyContactName  string     `db:"emergency_contact_name" json:"emergency_contact_name"`
	EmergencyContactPhone string     `db:"emergency_contact_phone" json:"emergency_contact_phone"`
	MedicalNotes          string     `db:"medical_notes" json:"medical_notes"`
	Status                string     `db:"status" json:"status"`
	CheckinCode           string     `db:"checkin_code" json:"checkin_code"`
	JoinedAt              time.Time  `db:"joined_at" json:"joined_at"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`
}

func (m *Member) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// Contact returns the email address or "" when none is on file.
func (m *Member) Contact() string {
	if m.Email == nil {
		return ""
	}
	return *m.Email
}

func (m *Member) IsActive() bool {
	return m.Status == StatusActive
}

type CreateMemberRequest struct {
	FirstName             string     `json:"first_name" binding:"required,max=80"`
	LastName              string     `json:"last_name" binding:"required,max=80"`
	Email                 string     `json:"email" binding:"omitempty,email"`
	Phone                 string     `json:"phone" binding:"max=32"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Gender                string     `json:"gender" binding:"omitempty,oneof=male female other"`
	Address               string     `json:"address"`
	EmergencyContactName  string     `json:"emergency_contact_name"`
	EmergencyContactPhone string     `json:"emergency_contact_phone"`
	MedicalNotes          string     `json:"medical_notes"`
}

type UpdateMemberRequest struct {
	FirstName             *string    `json:"first_name,omitempty" binding:"omitempty,max=80"`
	LastName              *string    `json:"last_name,omitempty" binding:"omitempty,max=80"`
	Email                 *string    `json:"email,omitempty" binding:"omitempty,email"`
	Phone                 *string    `json:"phone,omitempty" binding:"omitempty,max=32"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Gender                *string    `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	Address               *string    `json:"address,omitempty"`
	EmergencyContactName  *string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone,omitempty"`
	MedicalNotes          *string    `json:"medical_notes,omitempty"`
}

type ListFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}
