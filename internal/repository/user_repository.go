package repository

import (
	"time"

	"github.com/Bright-ted/SkillTrack/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByIDs(ids []uint) ([]model.User, error) {
	var users []model.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) SetDisabled(userID uint, disabled bool) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("disabled", disabled).
		Error
}

// AddPoints increments atomically in SQL so concurrent submissions by the
// same student cannot lose an update.
func (r *UserRepository) AddPoints(tx *gorm.DB, userID uint, delta int) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", delta)).
		Error
}

// CountWithMorePoints backs the global rank shown on the student dashboard.
func (r *UserRepository) CountWithMorePoints(points int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("points > ?", points).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByRole(role model.UserRole) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepository) CreateStudentProfile(profile *model.StudentProfile) error {
	return r.DB.Create(profile).Error
}

func (r *UserRepository) CreateInstructorProfile(profile *model.InstructorProfile) error {
	return r.DB.Create(profile).Error
}

func (r *UserRepository) FindStudentProfile(userID uint) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *UserRepository) FindInstructorProfile(userID uint) (*model.InstructorProfile, error) {
	var profile model.InstructorProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

// StudentNumbersByUserIDs resolves the school-facing student numbers for a
// set of users, missing profiles simply absent from the map.
func (r *UserRepository) StudentNumbersByUserIDs(ids []uint) (map[uint]string, error) {
	numbers := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return numbers, nil
	}
	var profiles []model.StudentProfile
	if err := r.DB.Where("user_id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		numbers[p.UserID] = p.StudentID
	}
	return numbers, nil
}
