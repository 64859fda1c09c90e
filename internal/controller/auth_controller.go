package controller

import (
	"errors"
	"net/http"

	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/service"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=student instructor"`
	SchoolID   string `json:"schoolId"`
	Department string `json:"department"`
}

// Register godoc
// @Summary Register a new account
// @Description Creates a student or instructor account with its profile row
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Registration form"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(service.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
		Role:       model.UserRole(req.Role),
		SchoolID:   req.SchoolID,
		Department: req.Department,
	})
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, http.StatusConflict, "This email is already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Portal   string `json:"portal" binding:"omitempty,oneof=student instructor admin"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials against the chosen portal and returns a JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Login credentials"
// @Success 200 {object} util.Response{data=object} "OK"
// @Failure 401 {object} util.Response "Invalid credentials"
// @Failure 403 {object} util.Response "Wrong portal or disabled account"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password, model.UserRole(req.Portal))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrWrongPortal):
			util.Forbidden(ctx, "This account does not belong to the selected portal")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, "This account has been disabled")
		default:
			util.Unauthorized(ctx)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"fullName": user.FullName,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Profile godoc
// @Summary Current user profile
// @Tags auth
// @Produce  json
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GetUser(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	user.Password = ""
	util.Success(ctx, user)
}
