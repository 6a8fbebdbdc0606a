package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"serenity/internal/models/request_models"
	"serenity/internal/services"
	"serenity/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// ListSessions godoc
// @Summary List therapy sessions
// @Tags Sessions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [get]
func (s *SessionController) ListSessions(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sessions, err := s.sessionService.ListSessions(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessions, "Sessions fetched successfully")
}

// CreateSession godoc
// @Summary Schedule a therapy session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest true "Session payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions [post]
func (s *SessionController) CreateSession(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := s.sessionService.CreateSession(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "Session scheduled successfully")
}

// SubmitFeedback godoc
// @Summary Submit session feedback
// @Description Completes the session and advances the treatment progress
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.FeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{id}/feedback [put]
func (s *SessionController) SubmitFeedback(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.sessionService.SubmitFeedback(c.Request.Context(), accountID, sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Feedback submitted successfully")
}
