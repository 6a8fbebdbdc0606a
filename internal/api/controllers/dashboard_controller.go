package controllers

import (
	"github.com/gin-gonic/gin"

	"serenity/internal/services"
	"serenity/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Dashboard bundle
// @Description Progress, notifications, upcoming sessions and wellness metrics in one pull
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	accountID, err := accountIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	dashboard, err := d.dashboardService.BuildDashboard(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}
