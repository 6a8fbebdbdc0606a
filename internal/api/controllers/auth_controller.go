package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity/internal/models/request_models"
	"serenity/internal/services"
	"serenity/pkg/utils"
)

type AuthController struct {
	identityService services.IdentityServiceInterface
}

func NewAuthController(identityService services.IdentityServiceInterface) *AuthController {
	return &AuthController{
		identityService: identityService,
	}
}

// SignUp godoc
// @Summary Register a new account
// @Description Create a patient or practitioner account and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AuthController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.identityService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate and return a token plus the account snapshot
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.identityService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// Me godoc
// @Summary Current account
// @Description Return the account behind the presented token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	account, err := a.identityService.GetCurrentAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Patch mutable profile fields; identity fields are ignored
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/profile [put]
func (a *AuthController) UpdateProfile(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.identityService.UpdateProfile(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Profile updated successfully")
}

// ChangePassword godoc
// @Summary Change password
// @Description Verify the current password and set a new one
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/change-password [put]
func (a *AuthController) ChangePassword(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.identityService.ChangePassword(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password changed successfully")
}

// Logout godoc
// @Summary Logout
// @Description Tokens are not revocable server-side; the client drops its cached session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	utils.RespondSuccess(c, nil, "Logged out successfully")
}
