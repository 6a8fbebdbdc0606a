package db_models

type AccountType string

const (
	AccountTypePatient      AccountType = "patient"
	AccountTypePractitioner AccountType = "practitioner"
)

func (t AccountType) Valid() bool {
	return t == AccountTypePatient || t == AccountTypePractitioner
}

// WellnessSnapshot mirrors the latest submitted feedback scores on a 0-100
// scale (score x10).
type WellnessSnapshot struct {
	Wellness int `json:"wellness"`
	Energy   int `json:"energy"`
	Sleep    int `json:"sleep"`
}

// Profile holds the mutable, non-identity part of an account. Practice
// fields stay empty for patients.
type Profile struct {
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Address       string `json:"address,omitempty"`
	PracticeName  string `json:"practice_name,omitempty"`
	Specialty     string `json:"specialty,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
}

type Account struct {
	BaseModel
	FullName     string           `json:"full_name"`
	Email        string           `gorm:"uniqueIndex" json:"email"`
	PasswordHash string           `json:"-"`
	Phone        string           `json:"phone"`
	AccountType  AccountType      `gorm:"type:varchar(16)" json:"account_type"`
	Active       bool             `gorm:"default:true" json:"active"`
	LastLogin    int64            `json:"last_login"`
	Profile      Profile          `gorm:"serializer:json" json:"profile"`
	Wellness     WellnessSnapshot `gorm:"serializer:json" json:"wellness_metrics"`
}
