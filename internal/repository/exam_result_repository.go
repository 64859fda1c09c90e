package repository

import (
	"errors"
	"time"

	"github.com/Bright-ted/SkillTrack/internal/grading"
	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExamResultRepository struct {
	DB *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) *ExamResultRepository {
	return &ExamResultRepository{DB: db}
}

// CreateAttempt reserves the next attempt slot and inserts the result in
// one transaction. The attempt count is read under a row lock and the
// (student, quiz, attempt_no) unique index backstops it, so two in-flight
// submissions cannot both land inside the limit; the loser of the race is
// retried once against the fresh count.
func (r *ExamResultRepository) CreateAttempt(result *model.ExamResult, maxAttempts int) error {
	if result.SubmittedAt.IsZero() {
		result.SubmittedAt = time.Now()
	}
	var err error
	for try := 0; try < 2; try++ {
		err = r.DB.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&model.ExamResult{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("student_id = ? AND quiz_id = ?", result.StudentID, result.QuizID).
				Count(&count).Error; err != nil {
				return err
			}
			if int(count) >= maxAttempts {
				return util.ErrAttemptsExhausted
			}
			result.AttemptNo = int(count) + 1
			return tx.Create(result).Error
		})
		if err == nil || !isDuplicateAttempt(err) {
			return err
		}
	}
	return err
}

// isDuplicateAttempt reports a unique-key violation (MySQL error 1062),
// which here can only mean the uq_attempt index rejected the slot.
func isDuplicateAttempt(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (r *ExamResultRepository) FindByID(id string) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.DB.Where("id = ?", id).First(&result).Error
	return &result, err
}

func (r *ExamResultRepository) FindByStudentAndQuiz(studentID, quizID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.DB.Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Order("attempt_no ASC").
		Find(&results).Error
	return results, err
}

func (r *ExamResultRepository) FindByStudent(studentID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.DB.Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&results).Error
	return results, err
}

func (r *ExamResultRepository) FindByQuiz(quizID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.DB.Where("quiz_id = ?", quizID).
		Order("submitted_at DESC").
		Find(&results).Error
	return results, err
}

func (r *ExamResultRepository) FindByQuizIDs(quizIDs []uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	if len(quizIDs) == 0 {
		return results, nil
	}
	err := r.DB.Where("quiz_id IN ?", quizIDs).
		Order("submitted_at DESC").
		Find(&results).Error
	return results, err
}

func (r *ExamResultRepository) FindRecent(limit int) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.DB.Order("submitted_at DESC").Limit(limit).Find(&results).Error
	return results, err
}

// AverageScore over every result in the system, 0 when there are none.
func (r *ExamResultRepository) AverageScore() (int, error) {
	var avg *float64
	err := r.DB.Model(&model.ExamResult{}).Select("AVG(score)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return int(*avg + 0.5), nil
}

// OverrideGrade is the only mutation ever applied to a stored result.
func (r *ExamResultRepository) OverrideGrade(id string, score int, feedback string) error {
	return r.DB.Model(&model.ExamResult{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"score":    score,
			"passed":   score >= grading.PassMark,
			"feedback": feedback,
		}).Error
}
