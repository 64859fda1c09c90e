package controller

import (
	"errors"

	"github.com/Bright-ted/SkillTrack/internal/service"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// ListUsers godoc
// @Summary List all user accounts
// @Tags admin
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.AdminService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	util.Success(ctx, users)
}

// swagger:model SetDisabledRequest
type SetDisabledRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// SetUserDisabled godoc
// @Summary Enable or disable a user account
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   body body SetDisabledRequest true "Target state"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "Admin accounts cannot be disabled"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/admin/users/{id}/disabled [put]
func (c *AdminController) SetUserDisabled(ctx *gin.Context) {
	userID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}
	var req SetDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AdminService.SetUserDisabled(userID, *req.Disabled); err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, "Admin accounts cannot be disabled")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
