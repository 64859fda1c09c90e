package repository

import (
	"github.com/Bright-ted/SkillTrack/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudentAnswerRepository struct {
	DB *gorm.DB
}

func NewStudentAnswerRepository(db *gorm.DB) *StudentAnswerRepository {
	return &StudentAnswerRepository{DB: db}
}

// Upsert keeps one autosave row per (student, question).
func (r *StudentAnswerRepository) Upsert(answer *model.StudentAnswer) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"selected_answer", "updated_at"}),
	}).Create(answer).Error
}

func (r *StudentAnswerRepository) FindByStudentAndQuiz(studentID, quizID uint) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.DB.Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Find(&answers).Error
	return answers, err
}

// ClearForQuiz drops autosave rows once the attempt has been submitted.
func (r *StudentAnswerRepository) ClearForQuiz(studentID, quizID uint) error {
	return r.DB.Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Delete(&model.StudentAnswer{}).
		Error
}
