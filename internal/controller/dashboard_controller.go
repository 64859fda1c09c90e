package controller

import (
	"github.com/Bright-ted/SkillTrack/internal/service"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// InstructorDashboard godoc
// @Summary Instructor home screen summary
// @Description Course count, student count, platform average and recent submissions
// @Tags dashboard
// @Produce  json
// @Success 200 {object} util.Response{data=service.InstructorStats}
// @Router /api/instructor/dashboard [get]
func (c *DashboardController) InstructorDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	stats, err := c.DashboardService.InstructorDashboard(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
