package repository

import (
	"github.com/Bright-ted/SkillTrack/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

// FindByCourseOldestFirst keeps the CSV gradebook columns in creation
// order, matching the order quizzes were given to the class.
func (r *QuizRepository) FindByCourseOldestFirst(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("course_id = ?", courseID).
		Order("created_at ASC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindActiveByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("course_id = ? AND is_active = ?", courseID, true).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) IDsForCourse(courseID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Quiz{}).
		Where("course_id = ?", courseID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *QuizRepository) IDsForInstructor(instructorID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Quiz{}).
		Joins("JOIN courses ON courses.id = quizzes.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Pluck("quizzes.id", &ids).Error
	return ids, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Quiz{}, id).Error
}
