package service

import (
	"errors"

	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/progression"
	"github.com/Bright-ted/SkillTrack/internal/repository"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"gorm.io/gorm"
)

// ProgressionService applies XP awards after graded submissions. All
// writes for one award happen inside a single transaction; any failure
// rolls the whole award back, leaving the student's XP and level exactly
// as they were (the exam result itself is persisted separately and
// survives).
type ProgressionService struct {
	UserRepo   *repository.UserRepository
	CourseRepo *repository.CourseRepository
	LevelRepo  *repository.LevelRepository
	XPRepo     *repository.XPTransactionRepository
	db         *gorm.DB
}

func NewProgressionService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	levelRepo *repository.LevelRepository,
	xpRepo *repository.XPTransactionRepository,
	db *gorm.DB,
) *ProgressionService {
	return &ProgressionService{
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
		LevelRepo:  levelRepo,
		XPRepo:     xpRepo,
		db:         db,
	}
}

// Award credits XP for a graded submission and re-derives level and badge.
// The points update is a SQL-side increment, and the level is resolved
// from the post-increment value read back in the same transaction, so
// concurrent submissions by one student cannot lose an update.
func (s *ProgressionService) Award(studentID uint, quiz *model.Quiz, scorePercent int) (*progression.Award, error) {
	course, err := s.CourseRepo.FindByID(quiz.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	thresholds, err := s.LevelRepo.Thresholds()
	if err != nil {
		return nil, err
	}

	delta := progression.XPDelta(course.Category, scorePercent)
	reason := progression.Reason(course.Category, scorePercent, quiz.Title)

	award := &progression.Award{XPDelta: delta, Reason: reason}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.AddPoints(tx, studentID, delta); err != nil {
			return err
		}

		var user model.User
		if err := tx.First(&user, studentID).Error; err != nil {
			return err
		}

		level, badge := progression.ResolveLevel(thresholds, user.Points)
		if err := tx.Model(&model.User{}).
			Where("id = ?", studentID).
			Updates(map[string]interface{}{"level": level, "current_badge": badge}).
			Error; err != nil {
			return err
		}

		award.NewPoints = user.Points
		award.NewLevel = level
		award.NewBadge = badge

		return s.XPRepo.Create(tx, &model.XPTransaction{
			StudentID: studentID,
			QuizID:    quiz.ID,
			XPEarned:  delta,
			Reason:    reason,
		})
	})
	if err != nil {
		return nil, err
	}

	return award, nil
}
