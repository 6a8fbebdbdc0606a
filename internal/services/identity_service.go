package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenity/internal/models/db_models"
	"serenity/internal/models/request_models"
	"serenity/internal/models/response_models"
	"serenity/internal/repositories"
	"serenity/pkg/utils"
)

type IdentityServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	ChangePassword(ctx context.Context, accountID uuid.UUID, request request_models.ChangePasswordRequest) error
}

type IdentityService struct {
	accountRepo repositories.AccountRepository
	onboarding  OnboardingServiceInterface
}

func NewIdentityService(accountRepo repositories.AccountRepository, onboarding OnboardingServiceInterface) IdentityServiceInterface {
	return &IdentityService{
		accountRepo: accountRepo,
		onboarding:  onboarding,
	}
}

func (s *IdentityService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	if fields := request.Validate(); len(fields) > 0 {
		return nil, utils.NewValidationError(fields)
	}

	email := request.NormalizedEmail()

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	// Hashing is an explicit step here, not a save hook; a failure is
	// fatal to the whole signup.
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("Password hashing failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		FullName:     request.FullName,
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        request.Phone,
		AccountType:  db_models.AccountType(request.AccountType),
		Active:       true,
		LastLogin:    time.Now().Unix(),
	}
	if request.Profile != nil {
		account.Profile = *request.Profile
	}

	if err := s.accountRepo.Insert(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	// Post-commit seeding is best-effort: a failure is logged, never
	// propagated to the caller.
	s.seedSafely(ctx, account)

	token, err := utils.CreateToken(account.ID, account.Email, string(account.AccountType), utils.DefaultTokenTTL)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token:   token,
		Account: response_models.NewAccountResponse(account),
	}, nil
}

func (s *IdentityService) seedSafely(ctx context.Context, account *db_models.Account) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Onboarding panic for account %s: %v", account.ID, r)
		}
	}()
	if err := s.onboarding.SeedAccount(ctx, account); err != nil {
		log.Printf("Onboarding failed for account %s: %v", account.ID, err)
	}
}

func (s *IdentityService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	if fields := request.Validate(); len(fields) > 0 {
		return nil, utils.NewValidationError(fields)
	}

	account, err := s.accountRepo.FindByEmail(ctx, request.NormalizedEmail())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Unknown email and wrong password must be indistinguishable.
	if account == nil || !account.Active {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	ttl := utils.DefaultTokenTTL
	if request.RememberMe {
		ttl = utils.ExtendedTokenTTL
	}
	token, err := utils.CreateToken(account.ID, account.Email, string(account.AccountType), ttl)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account.LastLogin = time.Now().Unix()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token:   token,
		Account: response_models.NewAccountResponse(account),
	}, nil
}

func (s *IdentityService) GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !account.Active {
		return nil, utils.ErrUnauthorized
	}
	return response_models.NewAccountResponse(account), nil
}

func (s *IdentityService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	if fields := request.Validate(); len(fields) > 0 {
		return nil, utils.NewValidationError(fields)
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !account.Active {
		return nil, utils.ErrUnauthorized
	}

	if request.FullName != nil {
		account.FullName = *request.FullName
	}
	if request.Phone != nil {
		account.Phone = *request.Phone
	}
	if request.Profile != nil {
		account.Profile = *request.Profile
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewAccountResponse(account), nil
}

func (s *IdentityService) ChangePassword(ctx context.Context, accountID uuid.UUID, request request_models.ChangePasswordRequest) error {
	if fields := request.Validate(); len(fields) > 0 {
		return utils.NewValidationError(fields)
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil || !account.Active {
		return utils.ErrUnauthorized
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.CurrentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		log.Printf("Password hashing failed: %v", err)
		return utils.ErrDatabaseError
	}

	account.PasswordHash = hashedPassword
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
