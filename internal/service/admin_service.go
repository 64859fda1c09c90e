package service

import (
	"errors"

	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/repository"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"gorm.io/gorm"
)

type AdminService struct {
	UserRepo *repository.UserRepository
}

func NewAdminService(userRepo *repository.UserRepository) *AdminService {
	return &AdminService{UserRepo: userRepo}
}

func (s *AdminService) ListUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

// SetUserDisabled toggles an account. Admin accounts cannot be disabled,
// and a disabled account is rejected at login rather than having its
// sessions revoked.
func (s *AdminService) SetUserDisabled(userID uint, disabled bool) error {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	} else if err != nil {
		return err
	}
	if user.Role == model.Admin && disabled {
		return util.ErrPermissionDenied
	}
	return s.UserRepo.SetDisabled(userID, disabled)
}
