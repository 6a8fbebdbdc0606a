package request_models

import (
	"regexp"
	"strings"

	"serenity/internal/models/db_models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type SignUpRequest struct {
	FullName    string             `json:"full_name"`
	Email       string             `json:"email"`
	Password    string             `json:"password"`
	Phone       string             `json:"phone"`
	AccountType string             `json:"account_type"`
	Profile     *db_models.Profile `json:"profile,omitempty"`
}

// Validate returns one message per failed field; an empty slice means the
// request is well formed.
func (r *SignUpRequest) Validate() []string {
	var errs []string
	if len(strings.TrimSpace(r.FullName)) < 2 {
		errs = append(errs, "full_name must be at least 2 characters")
	}
	if !emailPattern.MatchString(strings.TrimSpace(r.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	if len(r.Password) < 6 {
		errs = append(errs, "password must be at least 6 characters")
	}
	if len(strings.TrimSpace(r.Phone)) < 10 {
		errs = append(errs, "phone must be at least 10 characters")
	}
	if !db_models.AccountType(r.AccountType).Valid() {
		errs = append(errs, "account_type must be patient or practitioner")
	}
	return errs
}

// NormalizedEmail is the canonical lookup key: trimmed, lowercased.
func (r *SignUpRequest) NormalizedEmail() string {
	return NormalizeEmail(r.Email)
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (r *LoginRequest) Validate() []string {
	var errs []string
	if !emailPattern.MatchString(strings.TrimSpace(r.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

func (r *LoginRequest) NormalizedEmail() string {
	return NormalizeEmail(r.Email)
}

// UpdateProfileRequest only exposes mutable fields. Identity-critical fields
// (email, password, id, timestamps) have no place here, so attempts to patch
// them are stripped by construction.
type UpdateProfileRequest struct {
	FullName *string            `json:"full_name,omitempty"`
	Phone    *string            `json:"phone,omitempty"`
	Profile  *db_models.Profile `json:"profile,omitempty"`
}

func (r *UpdateProfileRequest) Validate() []string {
	var errs []string
	if r.FullName != nil && len(strings.TrimSpace(*r.FullName)) < 2 {
		errs = append(errs, "full_name must be at least 2 characters")
	}
	if r.Phone != nil && len(strings.TrimSpace(*r.Phone)) < 10 {
		errs = append(errs, "phone must be at least 10 characters")
	}
	return errs
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() []string {
	var errs []string
	if r.CurrentPassword == "" {
		errs = append(errs, "current_password is required")
	}
	if len(r.NewPassword) < 6 {
		errs = append(errs, "new_password must be at least 6 characters")
	}
	return errs
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
