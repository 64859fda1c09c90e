package service

import (
	"errors"
	"time"

	"github.com/Bright-ted/SkillTrack/internal/config"
	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/repository"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// RegisterInput carries the registration form, including the role-specific
// school identifiers.
type RegisterInput struct {
	FullName   string
	Email      string
	Password   string
	Role       model.UserRole
	SchoolID   string // student number or lecturer number, by role
	Department string
}

func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(input.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName: input.FullName,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     input.Role,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	switch input.Role {
	case model.Student:
		err = s.UserRepo.CreateStudentProfile(&model.StudentProfile{
			UserID:     user.ID,
			StudentID:  input.SchoolID,
			Department: input.Department,
		})
	case model.Instructor:
		err = s.UserRepo.CreateInstructorProfile(&model.InstructorProfile{
			UserID:     user.ID,
			LecturerID: input.SchoolID,
			Department: input.Department,
		})
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates and checks the account matches the portal the user
// came through, mirroring the role-select flow of the web client.
func (s *AuthService) Login(email, password string, portal model.UserRole) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if user.Disabled {
		return "", nil, util.ErrPermissionDenied
	}

	if portal != "" && user.Role != portal {
		return "", nil, util.ErrWrongPortal
	}

	user.LastLogin = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetUser(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}
