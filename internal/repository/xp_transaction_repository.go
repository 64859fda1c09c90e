package repository

import (
	"github.com/Bright-ted/SkillTrack/internal/model"

	"gorm.io/gorm"
)

type XPTransactionRepository struct {
	DB *gorm.DB
}

func NewXPTransactionRepository(db *gorm.DB) *XPTransactionRepository {
	return &XPTransactionRepository{DB: db}
}

func (r *XPTransactionRepository) Create(tx *gorm.DB, entry *model.XPTransaction) error {
	return tx.Create(entry).Error
}

func (r *XPTransactionRepository) FindByStudent(studentID uint) ([]model.XPTransaction, error) {
	var entries []model.XPTransaction
	err := r.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
