package response_models

import (
	"serenity/internal/models/db_models"
)

// AccountResponse is the sanitized account view: the password hash never
// leaves the service.
type AccountResponse struct {
	ID          string                     `json:"id"`
	FullName    string                     `json:"full_name"`
	Email       string                     `json:"email"`
	Phone       string                     `json:"phone"`
	AccountType string                     `json:"account_type"`
	Active      bool                       `json:"active"`
	LastLogin   int64                      `json:"last_login"`
	Profile     db_models.Profile          `json:"profile"`
	Wellness    db_models.WellnessSnapshot `json:"wellness_metrics"`
}

func NewAccountResponse(account *db_models.Account) *AccountResponse {
	return &AccountResponse{
		ID:          account.ID.String(),
		FullName:    account.FullName,
		Email:       account.Email,
		Phone:       account.Phone,
		AccountType: string(account.AccountType),
		Active:      account.Active,
		LastLogin:   account.LastLogin,
		Profile:     account.Profile,
		Wellness:    account.Wellness,
	}
}

type AuthResponse struct {
	Token   string           `json:"token"`
	Account *AccountResponse `json:"account"`
}
